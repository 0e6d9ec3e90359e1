package usecase

import (
	"context"

	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/logger"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/productmaterial"
	"github.com/termoflexpro/termoflex-store/internal/productmaterial/dto"
	"github.com/termoflexpro/termoflex-store/internal/validation"
	"go.uber.org/zap"
)

type productMaterialUseCase struct {
	repo   productmaterial.Repository
	logger logger.ZapLogger
}

func NewProductMaterialUseCase(repo productmaterial.Repository, log logger.ZapLogger) productmaterial.UseCase {
	return &productMaterialUseCase{
		repo:   repo,
		logger: log.With(zap.String("entity", "product_material")),
	}
}

// CreateProductMaterial links a material to a product. A second link for
// the same pair fails with database.ErrDuplicateKey.
func (uc *productMaterialUseCase) CreateProductMaterial(ctx context.Context, input *dto.ProductMaterialInput) (*model.ProductMaterial, error) {
	line, err := toModel(input)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, line); err != nil {
		return nil, err
	}
	return uc.GetProductMaterial(ctx, line.ProductID, line.MaterialID)
}

func (uc *productMaterialUseCase) GetProductMaterial(ctx context.Context, productID, materialID int64) (*model.ProductMaterial, error) {
	line, err := uc.repo.Find(ctx, productID, materialID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, database.ErrNotFound
	}
	return line, nil
}

func (uc *productMaterialUseCase) ListByProduct(ctx context.Context, productID int64) ([]model.ProductMaterial, error) {
	return uc.repo.ListByProduct(ctx, productID)
}

func (uc *productMaterialUseCase) ListByMaterial(ctx context.Context, materialID int64) ([]model.ProductMaterial, error) {
	return uc.repo.ListByMaterial(ctx, materialID)
}

func (uc *productMaterialUseCase) UpdateProductMaterial(ctx context.Context, input *dto.ProductMaterialInput) (*model.ProductMaterial, error) {
	line, err := toModel(input)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, line); err != nil {
		return nil, err
	}
	return uc.GetProductMaterial(ctx, line.ProductID, line.MaterialID)
}

func (uc *productMaterialUseCase) DeleteProductMaterial(ctx context.Context, productID, materialID int64) error {
	return uc.repo.Delete(ctx, productID, materialID)
}

func toModel(input *dto.ProductMaterialInput) (*model.ProductMaterial, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	quantity := model.Money(input.QuantityUsed)
	if !model.FitsMoney(quantity) {
		return nil, database.NewValidationError("cantidad_usada", "must be below 100000000")
	}
	return &model.ProductMaterial{
		ProductID:    input.ProductID,
		MaterialID:   input.MaterialID,
		QuantityUsed: quantity,
	}, nil
}
