package dto

import (
	"time"

	"github.com/termoflexpro/termoflex-store/internal/model"
)

type TestFilters struct {
	ProductID *int64
	Status    model.TestStatus
	StartDate *time.Time // Inclusive
	EndDate   *time.Time // Inclusive
	Page      int
	PageSize  int
}
