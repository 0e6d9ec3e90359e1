package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/termoflexpro/termoflex-store/internal/model"
)

type CreateSaleInput struct {
	UserID    int64 `db:"usuario_id" validate:"gt=0"`
	ProductID int64 `db:"producto_id" validate:"gt=0"`
	Quantity  int   `db:"cantidad" validate:"gt=0"`
	Total     decimal.Decimal
	Status    model.SaleStatus // Defaults to pending
	Date      *time.Time       // Defaults to now
}

type UpdateSaleInput struct {
	ID        int64
	UserID    int64 `db:"usuario_id" validate:"gt=0"`
	ProductID int64 `db:"producto_id" validate:"gt=0"`
	Quantity  int   `db:"cantidad" validate:"gt=0"`
	Total     decimal.Decimal
	Status    model.SaleStatus // Empty keeps the current status
	Date      *time.Time       // Nil keeps the current date
}
