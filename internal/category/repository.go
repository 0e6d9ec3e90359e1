package category

import (
	"context"

	"github.com/termoflexpro/termoflex-store/internal/category/dto"
	"github.com/termoflexpro/termoflex-store/internal/model"
)

type Repository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
	FindAll(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error)
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id int64) error

	// CountProducts reports how many products reference the category.
	CountProducts(ctx context.Context, id int64) (int, error)
}
