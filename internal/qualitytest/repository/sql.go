package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/qualitytest/dto"
)

const columns = `id, producto_id, descripcion, resultados, estado, fecha`

type SQLRepository struct {
	DB sqlx.ExtContext
}

func NewSQLRepository(db sqlx.ExtContext) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, t *model.QualityTest) error {
	query := `
        INSERT INTO pruebas (producto_id, descripcion, resultados, estado, fecha)
        VALUES (:producto_id, :descripcion, :resultados, :estado, :fecha)
        RETURNING id
    `
	return database.NamedGet(ctx, r.DB, query, t, &t.ID)
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.QualityTest, error) {
	var t model.QualityTest
	err := sqlx.GetContext(ctx, r.DB, &t, r.DB.Rebind(`SELECT `+columns+` FROM pruebas WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *SQLRepository) FindAll(ctx context.Context, f *dto.TestFilters) ([]model.QualityTest, int, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.ProductID != nil {
		conditions = append(conditions, "producto_id = :producto_id")
		args["producto_id"] = *f.ProductID
	}
	if f.Status != "" {
		conditions = append(conditions, "estado = :estado")
		args["estado"] = string(f.Status)
	}
	if f.StartDate != nil {
		conditions = append(conditions, "fecha >= :start_date")
		args["start_date"] = model.Day(*f.StartDate)
	}
	if f.EndDate != nil {
		conditions = append(conditions, "fecha <= :end_date")
		args["end_date"] = model.Day(*f.EndDate)
	}
	whereClause := database.Where(conditions)

	count, err := database.NamedCount(ctx, r.DB, "SELECT count(*) FROM pruebas"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + columns + " FROM pruebas" + whereClause + " ORDER BY fecha DESC, id DESC" +
		database.Page(f.Page, f.PageSize)

	tests := []model.QualityTest{}
	if err := database.NamedSelect(ctx, r.DB, &tests, query, args); err != nil {
		return nil, 0, err
	}
	return tests, count, nil
}

func (r *SQLRepository) Update(ctx context.Context, t *model.QualityTest) error {
	query := `
        UPDATE pruebas
        SET producto_id = :producto_id,
            descripcion = :descripcion,
            resultados = :resultados,
            estado = :estado,
            fecha = :fecha
        WHERE id = :id
    `
	return database.ExpectAffected(sqlx.NamedExecContext(ctx, r.DB, query, t))
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	return database.ExpectAffected(r.DB.ExecContext(ctx, r.DB.Rebind("DELETE FROM pruebas WHERE id = ?"), id))
}
