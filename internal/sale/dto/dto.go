package dto

import (
	"time"

	"github.com/termoflexpro/termoflex-store/internal/model"
)

type SaleFilters struct {
	UserID    *int64
	ProductID *int64
	Status    model.SaleStatus
	StartDate *time.Time // Inclusive
	EndDate   *time.Time // Exclusive
	Page      int
	PageSize  int
}
