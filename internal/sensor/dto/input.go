package dto

import "github.com/termoflexpro/termoflex-store/internal/model"

type CreateSensorInput struct {
	ProductID      int64  `db:"producto_id" validate:"gt=0"`
	Type           string `db:"tipo" validate:"required,max=50"`
	Specifications *string
	Status         model.ActiveStatus // Defaults to active
}

type UpdateSensorInput struct {
	ID             int64
	ProductID      int64  `db:"producto_id" validate:"gt=0"`
	Type           string `db:"tipo" validate:"required,max=50"`
	Specifications *string
	Status         model.ActiveStatus // Empty keeps the current status
}
