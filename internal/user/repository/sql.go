package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/user/dto"
)

const columns = `id, nombre, email, telefono, direccion, estado, fecha_registro`

type SQLRepository struct {
	DB sqlx.ExtContext
}

func NewSQLRepository(db sqlx.ExtContext) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, u *model.User) error {
	query := `
        INSERT INTO usuarios (nombre, email, telefono, direccion, estado)
        VALUES (:nombre, :email, :telefono, :direccion, :estado)
        RETURNING id
    `
	if err := database.NamedGet(ctx, r.DB, query, u, &u.ID); err != nil {
		return err
	}
	return sqlx.GetContext(ctx, r.DB, &u.RegisteredAt,
		r.DB.Rebind("SELECT fecha_registro FROM usuarios WHERE id = ?"), u.ID)
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+columns+` FROM usuarios WHERE id = ?`, id)
}

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+columns+` FROM usuarios WHERE email = ?`, email)
}

func (r *SQLRepository) findOne(ctx context.Context, query string, args ...interface{}) (*model.User, error) {
	var u model.User
	err := sqlx.GetContext(ctx, r.DB, &u, r.DB.Rebind(query), args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *SQLRepository) FindAll(ctx context.Context, f *dto.UserFilters) ([]model.User, int, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.Status != "" {
		conditions = append(conditions, "estado = :estado")
		args["estado"] = string(f.Status)
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(LOWER(nombre) LIKE LOWER(:search)"+database.LikeEscape+" OR LOWER(email) LIKE LOWER(:search)"+database.LikeEscape+")")
		args["search"] = database.Contains(f.SearchQuery)
	}
	whereClause := database.Where(conditions)

	count, err := database.NamedCount(ctx, r.DB, "SELECT count(*) FROM usuarios"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + columns + " FROM usuarios" + whereClause + " ORDER BY id ASC" +
		database.Page(f.Page, f.PageSize)

	users := []model.User{}
	if err := database.NamedSelect(ctx, r.DB, &users, query, args); err != nil {
		return nil, 0, err
	}
	return users, count, nil
}

func (r *SQLRepository) Update(ctx context.Context, u *model.User) error {
	query := `
        UPDATE usuarios
        SET nombre = :nombre,
            email = :email,
            telefono = :telefono,
            direccion = :direccion,
            estado = :estado
        WHERE id = :id
    `
	return database.ExpectAffected(sqlx.NamedExecContext(ctx, r.DB, query, u))
}

// Delete removes the user and, through the foreign key, the user's sales.
func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	return database.ExpectAffected(r.DB.ExecContext(ctx, r.DB.Rebind("DELETE FROM usuarios WHERE id = ?"), id))
}

func (r *SQLRepository) CountSales(ctx context.Context, id int64) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, r.DB, &count, r.DB.Rebind("SELECT count(*) FROM ventas WHERE usuario_id = ?"), id)
	return count, err
}

func (r *SQLRepository) IsEmailUnique(ctx context.Context, email string, excludeID int64) (bool, error) {
	var count int
	query := `SELECT count(*) FROM usuarios WHERE email = ?`
	args := []interface{}{email}
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
