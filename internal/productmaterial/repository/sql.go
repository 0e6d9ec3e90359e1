package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/model"
)

const selectLines = `
    SELECT pm.producto_id, pm.material_id, pm.cantidad_usada,
           p.nombre AS producto_nombre, m.nombre AS material_nombre
    FROM producto_material pm
    JOIN productos p ON p.id = pm.producto_id
    JOIN materiales m ON m.id = pm.material_id`

type SQLRepository struct {
	DB sqlx.ExtContext
}

func NewSQLRepository(db sqlx.ExtContext) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, line *model.ProductMaterial) error {
	line.QuantityUsed = model.Money(line.QuantityUsed)
	query := `
        INSERT INTO producto_material (producto_id, material_id, cantidad_usada)
        VALUES (:producto_id, :material_id, :cantidad_usada)
    `
	_, err := sqlx.NamedExecContext(ctx, r.DB, query, line)
	return database.Translate(err)
}

func (r *SQLRepository) Find(ctx context.Context, productID, materialID int64) (*model.ProductMaterial, error) {
	var line model.ProductMaterial
	query := r.DB.Rebind(selectLines + ` WHERE pm.producto_id = ? AND pm.material_id = ?`)
	err := sqlx.GetContext(ctx, r.DB, &line, query, productID, materialID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

func (r *SQLRepository) ListByProduct(ctx context.Context, productID int64) ([]model.ProductMaterial, error) {
	lines := []model.ProductMaterial{}
	query := r.DB.Rebind(selectLines + ` WHERE pm.producto_id = ? ORDER BY m.nombre ASC`)
	if err := sqlx.SelectContext(ctx, r.DB, &lines, query, productID); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *SQLRepository) ListByMaterial(ctx context.Context, materialID int64) ([]model.ProductMaterial, error) {
	lines := []model.ProductMaterial{}
	query := r.DB.Rebind(selectLines + ` WHERE pm.material_id = ? ORDER BY p.nombre ASC`)
	if err := sqlx.SelectContext(ctx, r.DB, &lines, query, materialID); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *SQLRepository) Update(ctx context.Context, line *model.ProductMaterial) error {
	line.QuantityUsed = model.Money(line.QuantityUsed)
	query := `
        UPDATE producto_material
        SET cantidad_usada = :cantidad_usada
        WHERE producto_id = :producto_id AND material_id = :material_id
    `
	return database.ExpectAffected(sqlx.NamedExecContext(ctx, r.DB, query, line))
}

func (r *SQLRepository) Delete(ctx context.Context, productID, materialID int64) error {
	query := r.DB.Rebind("DELETE FROM producto_material WHERE producto_id = ? AND material_id = ?")
	return database.ExpectAffected(r.DB.ExecContext(ctx, query, productID, materialID))
}
