package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/termoflexpro/termoflex-store/internal/category/dto"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/model"
)

const columns = `id, nombre, descripcion`

type SQLRepository struct {
	DB sqlx.ExtContext
}

// NewSQLRepository accepts a *sqlx.DB or a *sqlx.Tx.
func NewSQLRepository(db sqlx.ExtContext) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categorias (nombre, descripcion)
        VALUES (:nombre, :descripcion)
        RETURNING id
    `
	return database.NamedGet(ctx, r.DB, query, c, &c.ID)
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	return r.findOne(ctx, `SELECT `+columns+` FROM categorias WHERE id = ?`, id)
}

func (r *SQLRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	return r.findOne(ctx, `SELECT `+columns+` FROM categorias WHERE nombre = ?`, name)
}

func (r *SQLRepository) findOne(ctx context.Context, query string, args ...interface{}) (*model.Category, error) {
	var category model.Category
	err := sqlx.GetContext(ctx, r.DB, &category, r.DB.Rebind(query), args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *SQLRepository) FindAll(ctx context.Context, f *dto.CategoryFilters) ([]model.Category, int, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.SearchQuery != "" {
		conditions = append(conditions, "LOWER(nombre) LIKE LOWER(:search)"+database.LikeEscape)
		args["search"] = database.Contains(f.SearchQuery)
	}
	whereClause := database.Where(conditions)

	count, err := database.NamedCount(ctx, r.DB, "SELECT count(*) FROM categorias"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + columns + " FROM categorias" + whereClause + " ORDER BY nombre ASC" +
		database.Page(f.Page, f.PageSize)

	categories := []model.Category{}
	if err := database.NamedSelect(ctx, r.DB, &categories, query, args); err != nil {
		return nil, 0, err
	}
	return categories, count, nil
}

func (r *SQLRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
        UPDATE categorias
        SET nombre = :nombre,
            descripcion = :descripcion
        WHERE id = :id
    `
	return database.ExpectAffected(sqlx.NamedExecContext(ctx, r.DB, query, c))
}

// Delete removes the category. Products that referenced it keep existing
// with categoria_id set to NULL by the foreign key.
func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	return database.ExpectAffected(r.DB.ExecContext(ctx, r.DB.Rebind("DELETE FROM categorias WHERE id = ?"), id))
}

func (r *SQLRepository) CountProducts(ctx context.Context, id int64) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, r.DB, &count, r.DB.Rebind("SELECT count(*) FROM productos WHERE categoria_id = ?"), id)
	return count, err
}
