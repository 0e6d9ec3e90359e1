package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/supplier/dto"
)

const columns = `id, nombre, contacto, direccion, estado, fecha_registro`

type SQLRepository struct {
	DB sqlx.ExtContext
}

func NewSQLRepository(db sqlx.ExtContext) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, s *model.Supplier) error {
	query := `
        INSERT INTO proveedores (nombre, contacto, direccion, estado)
        VALUES (:nombre, :contacto, :direccion, :estado)
        RETURNING id
    `
	if err := database.NamedGet(ctx, r.DB, query, s, &s.ID); err != nil {
		return err
	}
	return sqlx.GetContext(ctx, r.DB, &s.RegisteredAt,
		r.DB.Rebind("SELECT fecha_registro FROM proveedores WHERE id = ?"), s.ID)
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Supplier, error) {
	return r.findOne(ctx, `SELECT `+columns+` FROM proveedores WHERE id = ?`, id)
}

func (r *SQLRepository) FindByName(ctx context.Context, name string) (*model.Supplier, error) {
	return r.findOne(ctx, `SELECT `+columns+` FROM proveedores WHERE nombre = ?`, name)
}

func (r *SQLRepository) findOne(ctx context.Context, query string, args ...interface{}) (*model.Supplier, error) {
	var s model.Supplier
	err := sqlx.GetContext(ctx, r.DB, &s, r.DB.Rebind(query), args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SQLRepository) FindAll(ctx context.Context, f *dto.SupplierFilters) ([]model.Supplier, int, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.Status != "" {
		conditions = append(conditions, "estado = :estado")
		args["estado"] = string(f.Status)
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "LOWER(nombre) LIKE LOWER(:search)"+database.LikeEscape)
		args["search"] = database.Contains(f.SearchQuery)
	}
	whereClause := database.Where(conditions)

	count, err := database.NamedCount(ctx, r.DB, "SELECT count(*) FROM proveedores"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + columns + " FROM proveedores" + whereClause + " ORDER BY nombre ASC" +
		database.Page(f.Page, f.PageSize)

	suppliers := []model.Supplier{}
	if err := database.NamedSelect(ctx, r.DB, &suppliers, query, args); err != nil {
		return nil, 0, err
	}
	return suppliers, count, nil
}

func (r *SQLRepository) Update(ctx context.Context, s *model.Supplier) error {
	query := `
        UPDATE proveedores
        SET nombre = :nombre,
            contacto = :contacto,
            direccion = :direccion,
            estado = :estado
        WHERE id = :id
    `
	return database.ExpectAffected(sqlx.NamedExecContext(ctx, r.DB, query, s))
}

// Delete removes the supplier and its manufacturing records.
func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	return database.ExpectAffected(r.DB.ExecContext(ctx, r.DB.Rebind("DELETE FROM proveedores WHERE id = ?"), id))
}

func (r *SQLRepository) CountManufacturing(ctx context.Context, id int64) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, r.DB, &count, r.DB.Rebind("SELECT count(*) FROM fabricacion WHERE proveedor_id = ?"), id)
	return count, err
}

func (r *SQLRepository) IsNameUnique(ctx context.Context, name string, excludeID int64) (bool, error) {
	var count int
	query := `SELECT count(*) FROM proveedores WHERE nombre = ?`
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
