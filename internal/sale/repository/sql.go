package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/sale/dto"
)

const columns = `id, usuario_id, producto_id, cantidad, fecha, total, estado`

type SQLRepository struct {
	DB sqlx.ExtContext
}

func NewSQLRepository(db sqlx.ExtContext) *SQLRepository {
	return &SQLRepository{DB: db}
}

// Create inserts s with its total rounded to two decimals.
func (r *SQLRepository) Create(ctx context.Context, s *model.Sale) error {
	s.Total = model.Money(s.Total)
	query := `
        INSERT INTO ventas (usuario_id, producto_id, cantidad, fecha, total, estado)
        VALUES (:usuario_id, :producto_id, :cantidad, :fecha, :total, :estado)
        RETURNING id
    `
	return database.NamedGet(ctx, r.DB, query, s, &s.ID)
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Sale, error) {
	var s model.Sale
	err := sqlx.GetContext(ctx, r.DB, &s, r.DB.Rebind(`SELECT `+columns+` FROM ventas WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SQLRepository) FindAll(ctx context.Context, f *dto.SaleFilters) ([]model.Sale, int, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.UserID != nil {
		conditions = append(conditions, "usuario_id = :usuario_id")
		args["usuario_id"] = *f.UserID
	}
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
		args["start_date"] = f.StartDate.UTC()
	}
	if f.EndDate != nil {
		conditions = append(conditions, "fecha < :end_date")
		args["end_date"] = f.EndDate.UTC()
	}
	whereClause := database.Where(conditions)

	count, err := database.NamedCount(ctx, r.DB, "SELECT count(*) FROM ventas"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + columns + " FROM ventas" + whereClause + " ORDER BY fecha DESC, id DESC" +
		database.Page(f.Page, f.PageSize)

	sales := []model.Sale{}
	if err := database.NamedSelect(ctx, r.DB, &sales, query, args); err != nil {
		return nil, 0, err
	}
	return sales, count, nil
}

func (r *SQLRepository) Update(ctx context.Context, s *model.Sale) error {
	s.Total = model.Money(s.Total)
	query := `
        UPDATE ventas
        SET usuario_id = :usuario_id,
            producto_id = :producto_id,
            cantidad = :cantidad,
            fecha = :fecha,
            total = :total,
            estado = :estado
        WHERE id = :id
    `
	return database.ExpectAffected(sqlx.NamedExecContext(ctx, r.DB, query, s))
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	return database.ExpectAffected(r.DB.ExecContext(ctx, r.DB.Rebind("DELETE FROM ventas WHERE id = ?"), id))
}
