package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/termoflexpro/termoflex-store/internal/model"
)

type CreateProductInput struct {
	Name        string `db:"nombre" validate:"required,max=100"`
	Description *string
	CategoryID  *int64 `db:"categoria_id" validate:"omitempty,gt=0"`
	Price       decimal.Decimal
	Stock       int                `db:"stock" validate:"gte=0"`
	Status      model.ActiveStatus // Defaults to active
	ReleaseDate *time.Time
}

type UpdateProductInput struct {
	ID          int64
	Name        string `db:"nombre" validate:"required,max=100"`
	Description *string
	CategoryID  *int64 `db:"categoria_id" validate:"omitempty,gt=0"`
	Price       decimal.Decimal
	Stock       int                `db:"stock" validate:"gte=0"`
	Status      model.ActiveStatus // Empty keeps the current status
	ReleaseDate *time.Time
}
