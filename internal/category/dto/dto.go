package dto

type CategoryFilters struct {
	SearchQuery string // Matches name, case-insensitive
	Page        int
	PageSize    int
}
