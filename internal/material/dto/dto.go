package dto

import "github.com/termoflexpro/termoflex-store/internal/model"

type MaterialFilters struct {
	Status      model.ActiveStatus
	SearchQuery string // Matches name, case-insensitive
	Page        int
	PageSize    int
}
