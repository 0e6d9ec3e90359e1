package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/material/dto"
	"github.com/termoflexpro/termoflex-store/internal/model"
)

const columns = `id, nombre, descripcion, estado, ultima_actualizacion`

type SQLRepository struct {
	DB sqlx.ExtContext
}

func NewSQLRepository(db sqlx.ExtContext) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, m *model.Material) error {
	query := `
        INSERT INTO materiales (nombre, descripcion, estado)
        VALUES (:nombre, :descripcion, :estado)
        RETURNING id
    `
	if err := database.NamedGet(ctx, r.DB, query, m, &m.ID); err != nil {
		return err
	}
	return r.readUpdatedAt(ctx, m)
}

func (r *SQLRepository) readUpdatedAt(ctx context.Context, m *model.Material) error {
	return sqlx.GetContext(ctx, r.DB, &m.UpdatedAt,
		r.DB.Rebind("SELECT ultima_actualizacion FROM materiales WHERE id = ?"), m.ID)
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Material, error) {
	return r.findOne(ctx, `SELECT `+columns+` FROM materiales WHERE id = ?`, id)
}

func (r *SQLRepository) FindByName(ctx context.Context, name string) (*model.Material, error) {
	return r.findOne(ctx, `SELECT `+columns+` FROM materiales WHERE nombre = ?`, name)
}

func (r *SQLRepository) findOne(ctx context.Context, query string, args ...interface{}) (*model.Material, error) {
	var m model.Material
	err := sqlx.GetContext(ctx, r.DB, &m, r.DB.Rebind(query), args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *SQLRepository) FindAll(ctx context.Context, f *dto.MaterialFilters) ([]model.Material, int, error) {
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

	count, err := database.NamedCount(ctx, r.DB, "SELECT count(*) FROM materiales"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + columns + " FROM materiales" + whereClause + " ORDER BY nombre ASC" +
		database.Page(f.Page, f.PageSize)

	materials := []model.Material{}
	if err := database.NamedSelect(ctx, r.DB, &materials, query, args); err != nil {
		return nil, 0, err
	}
	return materials, count, nil
}

// Update rewrites the row and reads back the trigger-maintained
// ultima_actualizacion.
func (r *SQLRepository) Update(ctx context.Context, m *model.Material) error {
	query := `
        UPDATE materiales
        SET nombre = :nombre,
            descripcion = :descripcion,
            estado = :estado
        WHERE id = :id
    `
	if err := database.ExpectAffected(sqlx.NamedExecContext(ctx, r.DB, query, m)); err != nil {
		return err
	}
	return r.readUpdatedAt(ctx, m)
}

// Delete removes the material and every bill-of-materials line using it.
func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	return database.ExpectAffected(r.DB.ExecContext(ctx, r.DB.Rebind("DELETE FROM materiales WHERE id = ?"), id))
}

func (r *SQLRepository) CountProducts(ctx context.Context, id int64) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, r.DB, &count, r.DB.Rebind("SELECT count(*) FROM producto_material WHERE material_id = ?"), id)
	return count, err
}

func (r *SQLRepository) IsNameUnique(ctx context.Context, name string, excludeID int64) (bool, error) {
	var count int
	query := `SELECT count(*) FROM materiales WHERE nombre = ?`
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
