package manufacturing

import (
	"context"

	"github.com/termoflexpro/termoflex-store/internal/manufacturing/dto"
	"github.com/termoflexpro/termoflex-store/internal/model"
)

type Repository interface {
	Create(ctx context.Context, record *model.Manufacturing) error
	FindByID(ctx context.Context, id int64) (*model.Manufacturing, error)
	FindAll(ctx context.Context, filters *dto.ManufacturingFilters) ([]model.Manufacturing, int, error)
	Update(ctx context.Context, record *model.Manufacturing) error
	Delete(ctx context.Context, id int64) error

	// TotalBySupplier sums the quantities a supplier has built per product.
	TotalBySupplier(ctx context.Context, supplierID int64) ([]model.ManufacturingTotal, error)
}
