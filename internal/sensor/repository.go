package sensor

import (
	"context"

	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/sensor/dto"
)

type Repository interface {
	Create(ctx context.Context, sensor *model.Sensor) error
	FindByID(ctx context.Context, id int64) (*model.Sensor, error)
	FindAll(ctx context.Context, filters *dto.SensorFilters) ([]model.Sensor, int, error)
	Update(ctx context.Context, sensor *model.Sensor) error
	Delete(ctx context.Context, id int64) error
}
