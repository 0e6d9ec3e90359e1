package product

import (
	"context"

	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindByName(ctx context.Context, name string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error

	// FindDetail loads the product, its category and every dependent row.
	FindDetail(ctx context.Context, id int64) (*model.ProductDetail, error)

	// CountDependents reports, per dependent table, how many rows a delete
	// of the product would cascade to.
	CountDependents(ctx context.Context, id int64) (map[string]int, error)

	IsNameUnique(ctx context.Context, name string, excludeID int64) (bool, error)
}
