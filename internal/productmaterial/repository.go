package productmaterial

import (
	"context"

	"github.com/termoflexpro/termoflex-store/internal/model"
)

// Repository stores bill-of-materials lines, addressed by the
// (product, material) pair.
type Repository interface {
	Create(ctx context.Context, line *model.ProductMaterial) error
	Find(ctx context.Context, productID, materialID int64) (*model.ProductMaterial, error)
	ListByProduct(ctx context.Context, productID int64) ([]model.ProductMaterial, error)
	ListByMaterial(ctx context.Context, materialID int64) ([]model.ProductMaterial, error)
	Update(ctx context.Context, line *model.ProductMaterial) error
	Delete(ctx context.Context, productID, materialID int64) error
}
