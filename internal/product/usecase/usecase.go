package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/logger"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/product"
	"github.com/termoflexpro/termoflex-store/internal/product/dto"
	"github.com/termoflexpro/termoflex-store/internal/validation"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo   product.Repository
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log.With(zap.String("entity", "product")),
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	in := *input
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.StatusActive
	}

	p := &model.Product{
		Name:        in.Name,
		Description: model.NullIfBlank(in.Description),
		CategoryID:  in.CategoryID,
		Price:       model.Money(in.Price),
		Stock:       in.Stock,
		Status:      status,
		ReleaseDate: in.ReleaseDate,
	}
	if err := validate(p); err != nil {
		return nil, err
	}

	unique, err := uc.repo.IsNameUnique(ctx, p.Name, 0)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, fmt.Errorf("product %q already exists: %w", p.Name, database.ErrDuplicateKey)
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, database.ErrNotFound
	}
	return p, nil
}

func (uc *productUseCase) GetProductByName(ctx context.Context, name string) (*model.Product, error) {
	p, err := uc.repo.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, database.ErrNotFound
	}
	return p, nil
}

func (uc *productUseCase) GetProductDetail(ctx context.Context, id int64) (*model.ProductDetail, error) {
	detail, err := uc.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, database.ErrNotFound
	}
	return detail, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	if filters == nil {
		filters = &dto.ProductFilters{}
	}
	if filters.Status != "" && !filters.Status.Valid() {
		return nil, 0, database.NewValidationError("estado", "must be active or inactive")
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.GetProduct(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	in := *input
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	if in.Name != p.Name {
		unique, err := uc.repo.IsNameUnique(ctx, in.Name, p.ID)
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, fmt.Errorf("product %q already exists: %w", in.Name, database.ErrDuplicateKey)
		}
	}

	p.Name = in.Name
	p.Description = model.NullIfBlank(in.Description)
	p.CategoryID = in.CategoryID
	p.Category = nil
	p.Price = model.Money(in.Price)
	p.Stock = in.Stock
	if in.Status != "" {
		p.Status = in.Status
	}
	p.ReleaseDate = in.ReleaseDate

	if err := validate(p); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	dependents, err := uc.repo.CountDependents(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	fields := []zap.Field{zap.Int64("product_id", id)}
	for table, n := range dependents {
		if n > 0 {
			fields = append(fields, zap.Int(table, n))
		}
	}
	uc.logger.Info("Product deleted", fields...)
	return nil
}

// validate covers the rules struct tags cannot express.
func validate(p *model.Product) error {
	if !p.Price.GreaterThan(decimal.Zero) {
		return database.NewValidationError("precio", "must be greater than zero")
	}
	if !model.FitsMoney(p.Price) {
		return database.NewValidationError("precio", "must be below 100000000")
	}
	if !p.Status.Valid() {
		return database.NewValidationError("estado", "must be active or inactive")
	}
	return nil
}
