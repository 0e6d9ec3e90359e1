package sale

import (
	"context"

	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/sale/dto"
)

type Repository interface {
	Create(ctx context.Context, sale *model.Sale) error
	FindByID(ctx context.Context, id int64) (*model.Sale, error)
	FindAll(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, int, error)
	Update(ctx context.Context, sale *model.Sale) error
	Delete(ctx context.Context, id int64) error
}
