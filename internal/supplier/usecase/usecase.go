package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/logger"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/supplier"
	"github.com/termoflexpro/termoflex-store/internal/supplier/dto"
	"github.com/termoflexpro/termoflex-store/internal/validation"
	"go.uber.org/zap"
)

type supplierUseCase struct {
	repo   supplier.Repository
	logger logger.ZapLogger
}

func NewSupplierUseCase(repo supplier.Repository, log logger.ZapLogger) supplier.UseCase {
	return &supplierUseCase{
		repo:   repo,
		logger: log.With(zap.String("entity", "supplier")),
	}
}

func (uc *supplierUseCase) CreateSupplier(ctx context.Context, input *dto.CreateSupplierInput) (*model.Supplier, error) {
	in := *input
	in.Name = strings.TrimSpace(in.Name)
	in.Contact = model.NullIfBlank(in.Contact)
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.StatusActive
	}

	s := &model.Supplier{
		Name:    in.Name,
		Contact: in.Contact,
		Address: model.NullIfBlank(in.Address),
		Status:  status,
	}
	if err := validate(s); err != nil {
		return nil, err
	}

	unique, err := uc.repo.IsNameUnique(ctx, s.Name, 0)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, fmt.Errorf("supplier %q already exists: %w", s.Name, database.ErrDuplicateKey)
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *supplierUseCase) GetSupplier(ctx context.Context, id int64) (*model.Supplier, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, database.ErrNotFound
	}
	return s, nil
}

func (uc *supplierUseCase) GetSupplierByName(ctx context.Context, name string) (*model.Supplier, error) {
	s, err := uc.repo.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, database.ErrNotFound
	}
	return s, nil
}

func (uc *supplierUseCase) ListSuppliers(ctx context.Context, filters *dto.SupplierFilters) ([]model.Supplier, int, error) {
	if filters == nil {
		filters = &dto.SupplierFilters{}
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *supplierUseCase) UpdateSupplier(ctx context.Context, input *dto.UpdateSupplierInput) (*model.Supplier, error) {
	s, err := uc.GetSupplier(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	in := *input
	in.Name = strings.TrimSpace(in.Name)
	in.Contact = model.NullIfBlank(in.Contact)
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	if in.Name != s.Name {
		unique, err := uc.repo.IsNameUnique(ctx, in.Name, s.ID)
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, fmt.Errorf("supplier %q already exists: %w", in.Name, database.ErrDuplicateKey)
		}
	}

	s.Name = in.Name
	s.Contact = in.Contact
	s.Address = model.NullIfBlank(in.Address)
	if in.Status != "" {
		s.Status = in.Status
	}
	if err := validate(s); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *supplierUseCase) DeleteSupplier(ctx context.Context, id int64) error {
	batches, err := uc.repo.CountManufacturing(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	if batches > 0 {
		uc.logger.Info("Supplier deleted with its manufacturing records",
			zap.Int64("supplier_id", id),
			zap.Int("fabricacion", batches),
		)
	}
	return nil
}

func validate(s *model.Supplier) error {
	if !s.Status.Valid() {
		return database.NewValidationError("estado", "must be active or inactive")
	}
	return nil
}
