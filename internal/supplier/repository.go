package supplier

import (
	"context"

	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/supplier/dto"
)

type Repository interface {
	Create(ctx context.Context, supplier *model.Supplier) error
	FindByID(ctx context.Context, id int64) (*model.Supplier, error)
	FindByName(ctx context.Context, name string) (*model.Supplier, error)
	FindAll(ctx context.Context, filters *dto.SupplierFilters) ([]model.Supplier, int, error)
	Update(ctx context.Context, supplier *model.Supplier) error
	Delete(ctx context.Context, id int64) error

	// CountManufacturing reports how many manufacturing records a delete of
	// the supplier would remove.
	CountManufacturing(ctx context.Context, id int64) (int, error)

	IsNameUnique(ctx context.Context, name string, excludeID int64) (bool, error)
}
