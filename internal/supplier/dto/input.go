package dto

import "github.com/termoflexpro/termoflex-store/internal/model"

type CreateSupplierInput struct {
	Name    string  `db:"nombre" validate:"required,max=100"`
	Contact *string `db:"contacto" validate:"omitempty,max=100"`
	Address *string
	Status  model.ActiveStatus // Defaults to active
}

type UpdateSupplierInput struct {
	ID      int64
	Name    string  `db:"nombre" validate:"required,max=100"`
	Contact *string `db:"contacto" validate:"omitempty,max=100"`
	Address *string
	Status  model.ActiveStatus // Empty keeps the current status
}
