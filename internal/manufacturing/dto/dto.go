package dto

import "time"

type ManufacturingFilters struct {
	SupplierID *int64
	ProductID  *int64
	StartDate  *time.Time // Inclusive
	EndDate    *time.Time // Inclusive
	Page       int
	PageSize   int
}
