package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sale struct {
	ID        int64           `db:"id" json:"id"`
	UserID    int64           `db:"usuario_id" json:"user_id"`
	ProductID int64           `db:"producto_id" json:"product_id"`
	Quantity  int             `db:"cantidad" json:"quantity"`
	Date      time.Time       `db:"fecha" json:"date"`
	Total     decimal.Decimal `db:"total" json:"total"`
	Status    SaleStatus      `db:"estado" json:"status"`
}
