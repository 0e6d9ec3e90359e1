package usecase

import (
	"context"
	"strings"

	"github.com/termoflexpro/termoflex-store/internal/category"
	"github.com/termoflexpro/termoflex-store/internal/category/dto"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/logger"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/validation"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log.With(zap.String("entity", "category")),
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	in := *input
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	cat := &model.Category{
		Name:        in.Name,
		Description: model.NullIfBlank(in.Description),
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, database.ErrNotFound
	}
	return cat, nil
}

func (uc *categoryUseCase) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	cat, err := uc.repo.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, database.ErrNotFound
	}
	return cat, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error) {
	if filters == nil {
		filters = &dto.CategoryFilters{}
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	cat, err := uc.GetCategory(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	in := *input
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	cat.Name = in.Name
	cat.Description = model.NullIfBlank(in.Description)

	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	orphans, err := uc.repo.CountProducts(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	if orphans > 0 {
		uc.logger.Info("Category deleted, products left uncategorised",
			zap.Int64("category_id", id),
			zap.Int("products", orphans),
		)
	}
	return nil
}
