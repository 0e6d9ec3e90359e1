package dto

import "github.com/termoflexpro/termoflex-store/internal/model"

type UserFilters struct {
	Status      model.ActiveStatus
	SearchQuery string // Matches name or email, case-insensitive
	Page        int
	PageSize    int
}
