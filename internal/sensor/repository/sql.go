package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/sensor/dto"
)

const columns = `id, tipo, especificaciones, estado, producto_id`

type SQLRepository struct {
	DB sqlx.ExtContext
}

func NewSQLRepository(db sqlx.ExtContext) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, s *model.Sensor) error {
	query := `
        INSERT INTO sensores (tipo, especificaciones, estado, producto_id)
        VALUES (:tipo, :especificaciones, :estado, :producto_id)
        RETURNING id
    `
	return database.NamedGet(ctx, r.DB, query, s, &s.ID)
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Sensor, error) {
	var s model.Sensor
	err := sqlx.GetContext(ctx, r.DB, &s, r.DB.Rebind(`SELECT `+columns+` FROM sensores WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SQLRepository) FindAll(ctx context.Context, f *dto.SensorFilters) ([]model.Sensor, int, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.ProductID != nil {
		conditions = append(conditions, "producto_id = :producto_id")
		args["producto_id"] = *f.ProductID
	}
	if f.Type != "" {
		conditions = append(conditions, "tipo = :tipo")
		args["tipo"] = f.Type
	}
	if f.Status != "" {
		conditions = append(conditions, "estado = :estado")
		args["estado"] = string(f.Status)
	}
	whereClause := database.Where(conditions)

	count, err := database.NamedCount(ctx, r.DB, "SELECT count(*) FROM sensores"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + columns + " FROM sensores" + whereClause + " ORDER BY id ASC" +
		database.Page(f.Page, f.PageSize)

	sensors := []model.Sensor{}
	if err := database.NamedSelect(ctx, r.DB, &sensors, query, args); err != nil {
		return nil, 0, err
	}
	return sensors, count, nil
}

func (r *SQLRepository) Update(ctx context.Context, s *model.Sensor) error {
	query := `
        UPDATE sensores
        SET tipo = :tipo,
            especificaciones = :especificaciones,
            estado = :estado,
            producto_id = :producto_id
        WHERE id = :id
    `
	return database.ExpectAffected(sqlx.NamedExecContext(ctx, r.DB, query, s))
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	return database.ExpectAffected(r.DB.ExecContext(ctx, r.DB.Rebind("DELETE FROM sensores WHERE id = ?"), id))
}
