package dto

import "github.com/termoflexpro/termoflex-store/internal/model"

type SensorFilters struct {
	ProductID *int64
	Type      string // Exact match
	Status    model.ActiveStatus
	Page      int
	PageSize  int
}
