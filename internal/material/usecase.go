package material

import (
	"context"

	"github.com/termoflexpro/termoflex-store/internal/material/dto"
	"github.com/termoflexpro/termoflex-store/internal/model"
)

type UseCase interface {
	CreateMaterial(ctx context.Context, input *dto.CreateMaterialInput) (*model.Material, error)
	GetMaterial(ctx context.Context, id int64) (*model.Material, error)
	GetMaterialByName(ctx context.Context, name string) (*model.Material, error)
	ListMaterials(ctx context.Context, filters *dto.MaterialFilters) ([]model.Material, int, error)
	UpdateMaterial(ctx context.Context, input *dto.UpdateMaterialInput) (*model.Material, error)
	DeleteMaterial(ctx context.Context, id int64) error
}
