package material

import (
	"context"

	"github.com/termoflexpro/termoflex-store/internal/material/dto"
	"github.com/termoflexpro/termoflex-store/internal/model"
)

type Repository interface {
	Create(ctx context.Context, material *model.Material) error
	FindByID(ctx context.Context, id int64) (*model.Material, error)
	FindByName(ctx context.Context, name string) (*model.Material, error)
	FindAll(ctx context.Context, filters *dto.MaterialFilters) ([]model.Material, int, error)
	Update(ctx context.Context, material *model.Material) error
	Delete(ctx context.Context, id int64) error

	// CountProducts reports how many bill-of-materials lines use the material.
	CountProducts(ctx context.Context, id int64) (int, error)

	IsNameUnique(ctx context.Context, name string, excludeID int64) (bool, error)
}
