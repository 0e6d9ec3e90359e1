package dto

import "github.com/termoflexpro/termoflex-store/internal/model"

type ProductFilters struct {
	CategoryID    *int64
	Uncategorized bool // Only products whose category was removed or never set
	Status        model.ActiveStatus
	SearchQuery   string // Matches name, case-insensitive
	SortBy        string // name, price, stock, updated_at
	SortOrder     string // asc, desc
	Page          int
	PageSize      int
}
