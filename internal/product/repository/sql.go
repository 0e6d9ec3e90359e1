package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/product/dto"
)

const selectProducts = `
    SELECT p.id, p.nombre, p.descripcion, p.categoria_id, p.precio, p.stock, p.estado,
           p.fecha_lanzamiento, p.ultima_actualizacion,
           c.nombre AS categoria_nombre, c.descripcion AS categoria_descripcion
    FROM productos p
    LEFT JOIN categorias c ON c.id = p.categoria_id`

// Tables whose rows are removed by ON DELETE CASCADE when a product goes.
var dependentTables = []string{"sensores", "pruebas", "ventas", "fabricacion", "producto_material"}

type productRow struct {
	model.Product
	CategoryName        *string `db:"categoria_nombre"`
	CategoryDescription *string `db:"categoria_descripcion"`
}

func (row productRow) toModel() model.Product {
	p := row.Product
	if p.CategoryID != nil && row.CategoryName != nil {
		p.Category = &model.Category{
			ID:          *p.CategoryID,
			Name:        *row.CategoryName,
			Description: row.CategoryDescription,
		}
	}
	return p
}

type SQLRepository struct {
	DB sqlx.ExtContext
}

func NewSQLRepository(db sqlx.ExtContext) *SQLRepository {
	return &SQLRepository{DB: db}
}

// Create inserts p. Price is rounded to the column's two decimals first,
// as PostgreSQL would, so both engines check the same stored value.
func (r *SQLRepository) Create(ctx context.Context, p *model.Product) error {
	p.Price = model.Money(p.Price)
	query := `
        INSERT INTO productos (
            nombre, descripcion, categoria_id, precio, stock, estado, fecha_lanzamiento
        )
        VALUES (
            :nombre, :descripcion, :categoria_id, :precio, :stock, :estado, :fecha_lanzamiento
        )
        RETURNING id
    `
	if err := database.NamedGet(ctx, r.DB, query, p, &p.ID); err != nil {
		return err
	}
	return r.readUpdatedAt(ctx, p)
}

// readUpdatedAt loads the database-maintained ultima_actualizacion into p.
func (r *SQLRepository) readUpdatedAt(ctx context.Context, p *model.Product) error {
	return sqlx.GetContext(ctx, r.DB, &p.UpdatedAt,
		r.DB.Rebind("SELECT ultima_actualizacion FROM productos WHERE id = ?"), p.ID)
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	return r.findOne(ctx, selectProducts+` WHERE p.id = ?`, id)
}

func (r *SQLRepository) FindByName(ctx context.Context, name string) (*model.Product, error) {
	return r.findOne(ctx, selectProducts+` WHERE p.nombre = ?`, name)
}

func (r *SQLRepository) findOne(ctx context.Context, query string, args ...interface{}) (*model.Product, error) {
	var row productRow
	err := sqlx.GetContext(ctx, r.DB, &row, r.DB.Rebind(query), args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p := row.toModel()
	return &p, nil
}

func (r *SQLRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.CategoryID != nil {
		conditions = append(conditions, "p.categoria_id = :categoria_id")
		args["categoria_id"] = *f.CategoryID
	}
	if f.Uncategorized {
		conditions = append(conditions, "p.categoria_id IS NULL")
	}
	if f.Status != "" {
		conditions = append(conditions, "p.estado = :estado")
		args["estado"] = string(f.Status)
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "LOWER(p.nombre) LIKE LOWER(:search)"+database.LikeEscape)
		args["search"] = database.Contains(f.SearchQuery)
	}

	whereClause := database.Where(conditions)

	count, err := database.NamedCount(ctx, r.DB, "SELECT count(*) FROM productos p"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}

	// Prevent SQL injection by whitelisting fields
	orderBy := "p.id ASC"
	switch f.SortBy {
	case "name":
		orderBy = "p.nombre" + database.Direction(f.SortOrder)
	case "price":
		orderBy = "p.precio" + database.Direction(f.SortOrder) + ", p.id ASC"
	case "stock":
		orderBy = "p.stock" + database.Direction(f.SortOrder) + ", p.id ASC"
	case "updated_at":
		orderBy = "p.ultima_actualizacion" + database.Direction(f.SortOrder) + ", p.id ASC"
	}

	query := fmt.Sprintf("%s%s ORDER BY %s%s", selectProducts, whereClause, orderBy, database.Page(f.Page, f.PageSize))

	var rows []productRow
	if err := database.NamedSelect(ctx, r.DB, &rows, query, args); err != nil {
		return nil, 0, err
	}

	products := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toModel())
	}
	return products, count, nil
}

// Update rewrites the row. ultima_actualizacion is refreshed by a trigger and
// read back into p.
func (r *SQLRepository) Update(ctx context.Context, p *model.Product) error {
	p.Price = model.Money(p.Price)
	query := `
        UPDATE productos
        SET nombre = :nombre,
            descripcion = :descripcion,
            categoria_id = :categoria_id,
            precio = :precio,
            stock = :stock,
            estado = :estado,
            fecha_lanzamiento = :fecha_lanzamiento
        WHERE id = :id
    `
	if err := database.ExpectAffected(sqlx.NamedExecContext(ctx, r.DB, query, p)); err != nil {
		return err
	}
	return r.readUpdatedAt(ctx, p)
}

// Delete removes the product; its sensors, tests, sales, manufacturing
// records and bill-of-materials lines go with it.
func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	return database.ExpectAffected(r.DB.ExecContext(ctx, r.DB.Rebind("DELETE FROM productos WHERE id = ?"), id))
}

func (r *SQLRepository) FindDetail(ctx context.Context, id int64) (*model.ProductDetail, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}

	detail := &model.ProductDetail{
		Product:   *p,
		Sensors:   []model.Sensor{},
		Tests:     []model.QualityTest{},
		Materials: []model.ProductMaterial{},
	}

	err = sqlx.SelectContext(ctx, r.DB, &detail.Sensors, r.DB.Rebind(`
        SELECT id, tipo, especificaciones, estado, producto_id
        FROM sensores WHERE producto_id = ? ORDER BY id`), id)
	if err != nil {
		return nil, err
	}

	err = sqlx.SelectContext(ctx, r.DB, &detail.Tests, r.DB.Rebind(`
        SELECT id, producto_id, descripcion, resultados, estado, fecha
        FROM pruebas WHERE producto_id = ? ORDER BY fecha, id`), id)
	if err != nil {
		return nil, err
	}

	err = sqlx.SelectContext(ctx, r.DB, &detail.Materials, r.DB.Rebind(`
        SELECT pm.producto_id, pm.material_id, pm.cantidad_usada,
               p.nombre AS producto_nombre, m.nombre AS material_nombre
        FROM producto_material pm
        JOIN materiales m ON m.id = pm.material_id
        JOIN productos p ON p.id = pm.producto_id
        WHERE pm.producto_id = ?
        ORDER BY m.nombre`), id)
	if err != nil {
		return nil, err
	}

	return detail, nil
}

func (r *SQLRepository) CountDependents(ctx context.Context, id int64) (map[string]int, error) {
	counts := make(map[string]int, len(dependentTables))
	for _, table := range dependentTables {
		var n int
		query := r.DB.Rebind("SELECT count(*) FROM " + table + " WHERE producto_id = ?")
		if err := sqlx.GetContext(ctx, r.DB, &n, query, id); err != nil {
			return nil, err
		}
		counts[table] = n
	}
	return counts, nil
}

func (r *SQLRepository) IsNameUnique(ctx context.Context, name string, excludeID int64) (bool, error) {
	var count int
	query := `SELECT count(*) FROM productos WHERE nombre = ?`
	args := []interface{}{name}
	if excludeID != 0 {
		query += ` AND id <> ?`
		args = append(args, excludeID)
	}

	err := sqlx.GetContext(ctx, r.DB, &count, r.DB.Rebind(query), args...)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
