package dto

import "github.com/termoflexpro/termoflex-store/internal/model"

type CreateUserInput struct {
	Name    string  `db:"nombre" validate:"required,max=100"`
	Email   string  `db:"email" validate:"required,max=150,email"`
	Phone   *string `db:"telefono" validate:"omitempty,max=20"`
	Address *string
	Status  model.ActiveStatus // Defaults to active
}

type UpdateUserInput struct {
	ID      int64
	Name    string  `db:"nombre" validate:"required,max=100"`
	Email   string  `db:"email" validate:"required,max=150,email"`
	Phone   *string `db:"telefono" validate:"omitempty,max=20"`
	Address *string
	Status  model.ActiveStatus // Empty keeps the current status
}
