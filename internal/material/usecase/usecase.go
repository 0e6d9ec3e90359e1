package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/logger"
	"github.com/termoflexpro/termoflex-store/internal/material"
	"github.com/termoflexpro/termoflex-store/internal/material/dto"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/validation"
	"go.uber.org/zap"
)

type materialUseCase struct {
	repo   material.Repository
	logger logger.ZapLogger
}

func NewMaterialUseCase(repo material.Repository, log logger.ZapLogger) material.UseCase {
	return &materialUseCase{
		repo:   repo,
		logger: log.With(zap.String("entity", "material")),
	}
}

func (uc *materialUseCase) CreateMaterial(ctx context.Context, input *dto.CreateMaterialInput) (*model.Material, error) {
	in := *input
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.StatusActive
	}

	m := &model.Material{
		Name:        in.Name,
		Description: model.NullIfBlank(in.Description),
		Status:      status,
	}
	if err := validate(m); err != nil {
		return nil, err
	}

	unique, err := uc.repo.IsNameUnique(ctx, m.Name, 0)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, fmt.Errorf("material %q already exists: %w", m.Name, database.ErrDuplicateKey)
	}

	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (uc *materialUseCase) GetMaterial(ctx context.Context, id int64) (*model.Material, error) {
	m, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, database.ErrNotFound
	}
	return m, nil
}

func (uc *materialUseCase) GetMaterialByName(ctx context.Context, name string) (*model.Material, error) {
	m, err := uc.repo.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, database.ErrNotFound
	}
	return m, nil
}

func (uc *materialUseCase) ListMaterials(ctx context.Context, filters *dto.MaterialFilters) ([]model.Material, int, error) {
	if filters == nil {
		filters = &dto.MaterialFilters{}
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *materialUseCase) UpdateMaterial(ctx context.Context, input *dto.UpdateMaterialInput) (*model.Material, error) {
	m, err := uc.GetMaterial(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	in := *input
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	if in.Name != m.Name {
		unique, err := uc.repo.IsNameUnique(ctx, in.Name, m.ID)
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, fmt.Errorf("material %q already exists: %w", in.Name, database.ErrDuplicateKey)
		}
	}

	m.Name = in.Name
	m.Description = model.NullIfBlank(in.Description)
	if in.Status != "" {
		m.Status = in.Status
	}
	if err := validate(m); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (uc *materialUseCase) DeleteMaterial(ctx context.Context, id int64) error {
	links, err := uc.repo.CountProducts(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	if links > 0 {
		uc.logger.Info("Material deleted with its bill-of-materials lines",
			zap.Int64("material_id", id),
			zap.Int("producto_material", links),
		)
	}
	return nil
}

func validate(m *model.Material) error {
	if !m.Status.Valid() {
		return database.NewValidationError("estado", "must be active or inactive")
	}
	return nil
}
