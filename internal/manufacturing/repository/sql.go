package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/manufacturing/dto"
	"github.com/termoflexpro/termoflex-store/internal/model"
)

const columns = `id, proveedor_id, producto_id, cantidad, fecha`

type SQLRepository struct {
	DB sqlx.ExtContext
}

func NewSQLRepository(db sqlx.ExtContext) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, m *model.Manufacturing) error {
	query := `
        INSERT INTO fabricacion (proveedor_id, producto_id, cantidad, fecha)
        VALUES (:proveedor_id, :producto_id, :cantidad, :fecha)
        RETURNING id
    `
	return database.NamedGet(ctx, r.DB, query, m, &m.ID)
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Manufacturing, error) {
	var m model.Manufacturing
	err := sqlx.GetContext(ctx, r.DB, &m, r.DB.Rebind(`SELECT `+columns+` FROM fabricacion WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *SQLRepository) FindAll(ctx context.Context, f *dto.ManufacturingFilters) ([]model.Manufacturing, int, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.SupplierID != nil {
		conditions = append(conditions, "proveedor_id = :proveedor_id")
		args["proveedor_id"] = *f.SupplierID
	}
	if f.ProductID != nil {
		conditions = append(conditions, "producto_id = :producto_id")
		args["producto_id"] = *f.ProductID
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

	count, err := database.NamedCount(ctx, r.DB, "SELECT count(*) FROM fabricacion"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + columns + " FROM fabricacion" + whereClause + " ORDER BY fecha DESC, id DESC" +
		database.Page(f.Page, f.PageSize)

	records := []model.Manufacturing{}
	if err := database.NamedSelect(ctx, r.DB, &records, query, args); err != nil {
		return nil, 0, err
	}
	return records, count, nil
}

func (r *SQLRepository) Update(ctx context.Context, m *model.Manufacturing) error {
	query := `
        UPDATE fabricacion
        SET proveedor_id = :proveedor_id,
            producto_id = :producto_id,
            cantidad = :cantidad,
            fecha = :fecha
        WHERE id = :id
    `
	return database.ExpectAffected(sqlx.NamedExecContext(ctx, r.DB, query, m))
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	return database.ExpectAffected(r.DB.ExecContext(ctx, r.DB.Rebind("DELETE FROM fabricacion WHERE id = ?"), id))
}

func (r *SQLRepository) TotalBySupplier(ctx context.Context, supplierID int64) ([]model.ManufacturingTotal, error) {
	query := r.DB.Rebind(`
        SELECT f.producto_id, p.nombre AS producto_nombre,
               count(*) AS lotes, SUM(f.cantidad) AS cantidad
        FROM fabricacion f
        JOIN productos p ON p.id = f.producto_id
        WHERE f.proveedor_id = ?
        GROUP BY f.producto_id, p.nombre
        ORDER BY p.nombre ASC`)

	totals := []model.ManufacturingTotal{}
	if err := sqlx.SelectContext(ctx, r.DB, &totals, query, supplierID); err != nil {
		return nil, err
	}
	return totals, nil
}
