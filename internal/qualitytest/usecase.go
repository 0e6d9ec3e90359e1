package qualitytest

import (
	"context"

	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/qualitytest/dto"
)

type UseCase interface {
	CreateTest(ctx context.Context, input *dto.CreateTestInput) (*model.QualityTest, error)
	GetTest(ctx context.Context, id int64) (*model.QualityTest, error)
	ListTests(ctx context.Context, filters *dto.TestFilters) ([]model.QualityTest, int, error)
	UpdateTest(ctx context.Context, input *dto.UpdateTestInput) (*model.QualityTest, error)
	DeleteTest(ctx context.Context, id int64) error
}
