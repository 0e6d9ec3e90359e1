package sale

import (
	"context"

	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/sale/dto"
)

type UseCase interface {
	CreateSale(ctx context.Context, input *dto.CreateSaleInput) (*model.Sale, error)
	GetSale(ctx context.Context, id int64) (*model.Sale, error)
	ListSales(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, int, error)
	UpdateSale(ctx context.Context, input *dto.UpdateSaleInput) (*model.Sale, error)
	DeleteSale(ctx context.Context, id int64) error
}
