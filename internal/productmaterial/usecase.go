package productmaterial

import (
	"context"

	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/productmaterial/dto"
)

type UseCase interface {
	CreateProductMaterial(ctx context.Context, input *dto.ProductMaterialInput) (*model.ProductMaterial, error)
	GetProductMaterial(ctx context.Context, productID, materialID int64) (*model.ProductMaterial, error)
	ListByProduct(ctx context.Context, productID int64) ([]model.ProductMaterial, error)
	ListByMaterial(ctx context.Context, materialID int64) ([]model.ProductMaterial, error)
	UpdateProductMaterial(ctx context.Context, input *dto.ProductMaterialInput) (*model.ProductMaterial, error)
	DeleteProductMaterial(ctx context.Context, productID, materialID int64) error
}
