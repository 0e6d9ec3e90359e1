package dto

import "time"

type CreateManufacturingInput struct {
	SupplierID int64      `db:"proveedor_id" validate:"gt=0"`
	ProductID  int64      `db:"producto_id" validate:"gt=0"`
	Quantity   int        `db:"cantidad" validate:"gt=0"`
	Date       *time.Time // Defaults to today
}

type UpdateManufacturingInput struct {
	ID         int64
	SupplierID int64      `db:"proveedor_id" validate:"gt=0"`
	ProductID  int64      `db:"producto_id" validate:"gt=0"`
	Quantity   int        `db:"cantidad" validate:"gt=0"`
	Date       *time.Time // Nil keeps the current date
}
