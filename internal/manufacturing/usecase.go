package manufacturing

import (
	"context"

	"github.com/termoflexpro/termoflex-store/internal/manufacturing/dto"
	"github.com/termoflexpro/termoflex-store/internal/model"
)

type UseCase interface {
	CreateManufacturing(ctx context.Context, input *dto.CreateManufacturingInput) (*model.Manufacturing, error)
	GetManufacturing(ctx context.Context, id int64) (*model.Manufacturing, error)
	ListManufacturing(ctx context.Context, filters *dto.ManufacturingFilters) ([]model.Manufacturing, int, error)
	UpdateManufacturing(ctx context.Context, input *dto.UpdateManufacturingInput) (*model.Manufacturing, error)
	DeleteManufacturing(ctx context.Context, id int64) error
	SupplierTotals(ctx context.Context, supplierID int64) ([]model.ManufacturingTotal, error)
}
