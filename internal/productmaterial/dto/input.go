package dto

import "github.com/shopspring/decimal"

// ProductMaterialInput serves both create and update; the pair of ids is
// the key and cannot change.
type ProductMaterialInput struct {
	ProductID    int64 `db:"producto_id" validate:"gt=0"`
	MaterialID   int64 `db:"material_id" validate:"gt=0"`
	QuantityUsed decimal.Decimal
}
