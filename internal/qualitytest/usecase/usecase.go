package usecase

import (
	"context"

	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/logger"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/qualitytest"
	"github.com/termoflexpro/termoflex-store/internal/qualitytest/dto"
	"github.com/termoflexpro/termoflex-store/internal/validation"
	"go.uber.org/zap"
)

type testUseCase struct {
	repo   qualitytest.Repository
	logger logger.ZapLogger
}

func NewTestUseCase(repo qualitytest.Repository, log logger.ZapLogger) qualitytest.UseCase {
	return &testUseCase{
		repo:   repo,
		logger: log.With(zap.String("entity", "quality_test")),
	}
}

func (uc *testUseCase) CreateTest(ctx context.Context, input *dto.CreateTestInput) (*model.QualityTest, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = model.TestPending
	}
	if input.Date.IsZero() {
		return nil, database.NewValidationError("fecha", "is required")
	}

	t := &model.QualityTest{
		ProductID:   input.ProductID,
		Description: model.NullIfBlank(input.Description),
		Results:     model.NullIfBlank(input.Results),
		Status:      status,
		Date:        model.Day(input.Date),
	}
	if err := validate(t); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (uc *testUseCase) GetTest(ctx context.Context, id int64) (*model.QualityTest, error) {
	t, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, database.ErrNotFound
	}
	return t, nil
}

func (uc *testUseCase) ListTests(ctx context.Context, filters *dto.TestFilters) ([]model.QualityTest, int, error) {
	if filters == nil {
		filters = &dto.TestFilters{}
	}
	if filters.Status != "" && !filters.Status.Valid() {
		return nil, 0, database.NewValidationError("estado", "must be pending, completed or failed")
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *testUseCase) UpdateTest(ctx context.Context, input *dto.UpdateTestInput) (*model.QualityTest, error) {
	t, err := uc.GetTest(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, database.NewValidationError("fecha", "is required")
	}

	t.ProductID = input.ProductID
	t.Description = model.NullIfBlank(input.Description)
	t.Results = model.NullIfBlank(input.Results)
	if input.Status != "" {
		t.Status = input.Status
	}
	t.Date = model.Day(input.Date)
	if err := validate(t); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (uc *testUseCase) DeleteTest(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func validate(t *model.QualityTest) error {
	if !t.Status.Valid() {
		return database.NewValidationError("estado", "must be pending, completed or failed")
	}
	return nil
}
