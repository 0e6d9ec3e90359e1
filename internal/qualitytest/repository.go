package qualitytest

import (
	"context"

	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/qualitytest/dto"
)

type Repository interface {
	Create(ctx context.Context, test *model.QualityTest) error
	FindByID(ctx context.Context, id int64) (*model.QualityTest, error)
	FindAll(ctx context.Context, filters *dto.TestFilters) ([]model.QualityTest, int, error)
	Update(ctx context.Context, test *model.QualityTest) error
	Delete(ctx context.Context, id int64) error
}
