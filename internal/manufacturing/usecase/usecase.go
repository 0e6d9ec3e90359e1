package usecase

import (
	"context"
	"time"

	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/logger"
	"github.com/termoflexpro/termoflex-store/internal/manufacturing"
	"github.com/termoflexpro/termoflex-store/internal/manufacturing/dto"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/validation"
	"go.uber.org/zap"
)

type manufacturingUseCase struct {
	repo   manufacturing.Repository
	logger logger.ZapLogger
	now    func() time.Time
}

func NewManufacturingUseCase(repo manufacturing.Repository, log logger.ZapLogger) manufacturing.UseCase {
	return &manufacturingUseCase{
		repo:   repo,
		logger: log.With(zap.String("entity", "manufacturing")),
		now:    time.Now,
	}
}

func (uc *manufacturingUseCase) CreateManufacturing(ctx context.Context, input *dto.CreateManufacturingInput) (*model.Manufacturing, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	date := uc.now()
	if input.Date != nil {
		date = *input.Date
	}

	m := &model.Manufacturing{
		SupplierID: input.SupplierID,
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
		Date:       model.Day(date),
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (uc *manufacturingUseCase) GetManufacturing(ctx context.Context, id int64) (*model.Manufacturing, error) {
	m, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, database.ErrNotFound
	}
	return m, nil
}

func (uc *manufacturingUseCase) ListManufacturing(ctx context.Context, filters *dto.ManufacturingFilters) ([]model.Manufacturing, int, error) {
	if filters == nil {
		filters = &dto.ManufacturingFilters{}
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *manufacturingUseCase) UpdateManufacturing(ctx context.Context, input *dto.UpdateManufacturingInput) (*model.Manufacturing, error) {
	m, err := uc.GetManufacturing(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	m.SupplierID = input.SupplierID
	m.ProductID = input.ProductID
	m.Quantity = input.Quantity
	if input.Date != nil {
		m.Date = model.Day(*input.Date)
	}
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (uc *manufacturingUseCase) DeleteManufacturing(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *manufacturingUseCase) SupplierTotals(ctx context.Context, supplierID int64) ([]model.ManufacturingTotal, error) {
	return uc.repo.TotalBySupplier(ctx, supplierID)
}
