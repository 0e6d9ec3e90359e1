package dto

import (
	"time"

	"github.com/termoflexpro/termoflex-store/internal/model"
)

type CreateTestInput struct {
	ProductID   int64 `db:"producto_id" validate:"gt=0"`
	Description *string
	Results     *string
	Status      model.TestStatus // Defaults to pending
	Date        time.Time        // Required
}

type UpdateTestInput struct {
	ID          int64
	ProductID   int64 `db:"producto_id" validate:"gt=0"`
	Description *string
	Results     *string
	Status      model.TestStatus // Empty keeps the current status
	Date        time.Time        // Required
}
