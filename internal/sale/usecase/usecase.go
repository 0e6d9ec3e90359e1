package usecase

import (
	"context"
	"time"

	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/logger"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/sale"
	"github.com/termoflexpro/termoflex-store/internal/sale/dto"
	"github.com/termoflexpro/termoflex-store/internal/validation"
	"go.uber.org/zap"
)

type saleUseCase struct {
	repo   sale.Repository
	logger logger.ZapLogger
	now    func() time.Time
}

func NewSaleUseCase(repo sale.Repository, log logger.ZapLogger) sale.UseCase {
	return &saleUseCase{
		repo:   repo,
		logger: log.With(zap.String("entity", "sale")),
		now:    time.Now,
	}
}

func (uc *saleUseCase) CreateSale(ctx context.Context, input *dto.CreateSaleInput) (*model.Sale, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = model.SalePending
	}
	date := uc.now()
	if input.Date != nil {
		date = *input.Date
	}

	s := &model.Sale{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Date:      timestamp(date),
		Total:     model.Money(input.Total),
		Status:    status,
	}
	if err := validate(s); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *saleUseCase) GetSale(ctx context.Context, id int64) (*model.Sale, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, database.ErrNotFound
	}
	return s, nil
}

func (uc *saleUseCase) ListSales(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, int, error) {
	if filters == nil {
		filters = &dto.SaleFilters{}
	}
	if filters.Status != "" && !filters.Status.Valid() {
		return nil, 0, database.NewValidationError("estado", "must be completed, pending or cancelled")
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *saleUseCase) UpdateSale(ctx context.Context, input *dto.UpdateSaleInput) (*model.Sale, error) {
	s, err := uc.GetSale(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	s.UserID = input.UserID
	s.ProductID = input.ProductID
	s.Quantity = input.Quantity
	s.Total = model.Money(input.Total)
	if input.Status != "" {
		s.Status = input.Status
	}
	if input.Date != nil {
		s.Date = timestamp(*input.Date)
	}
	if err := validate(s); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *saleUseCase) DeleteSale(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// timestamp drops what a TIMESTAMPTZ column cannot hold.
func timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func validate(s *model.Sale) error {
	if s.Total.IsNegative() {
		return database.NewValidationError("total", "must not be negative")
	}
	if !model.FitsMoney(s.Total) {
		return database.NewValidationError("total", "must be below 100000000")
	}
	if !s.Status.Valid() {
		return database.NewValidationError("estado", "must be completed, pending or cancelled")
	}
	return nil
}
