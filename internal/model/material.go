package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Material struct {
	ID          int64        `db:"id" json:"id"`
	Name        string       `db:"nombre" json:"name"`
	Description *string      `db:"descripcion" json:"description"`
	Status      ActiveStatus `db:"estado" json:"status"`
	UpdatedAt   time.Time    `db:"ultima_actualizacion" json:"updated_at"`
}

// ProductMaterial is one bill-of-materials line, keyed by the pair of ids.
type ProductMaterial struct {
	ProductID    int64           `db:"producto_id" json:"product_id"`
	MaterialID   int64           `db:"material_id" json:"material_id"`
	QuantityUsed decimal.Decimal `db:"cantidad_usada" json:"quantity_used"`
	ProductName  string          `db:"producto_nombre" json:"product_name,omitempty"`   // Joined data
	MaterialName string          `db:"material_nombre" json:"material_name,omitempty"` // Joined data
}
