package dto

import "github.com/termoflexpro/termoflex-store/internal/model"

type CreateMaterialInput struct {
	Name        string `db:"nombre" validate:"required,max=100"`
	Description *string
	Status      model.ActiveStatus // Defaults to active
}

type UpdateMaterialInput struct {
	ID          int64
	Name        string `db:"nombre" validate:"required,max=100"`
	Description *string
	Status      model.ActiveStatus // Empty keeps the current status
}
