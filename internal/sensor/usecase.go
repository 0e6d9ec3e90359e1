package sensor

import (
	"context"

	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/sensor/dto"
)

type UseCase interface {
	CreateSensor(ctx context.Context, input *dto.CreateSensorInput) (*model.Sensor, error)
	GetSensor(ctx context.Context, id int64) (*model.Sensor, error)
	ListSensors(ctx context.Context, filters *dto.SensorFilters) ([]model.Sensor, int, error)
	UpdateSensor(ctx context.Context, input *dto.UpdateSensorInput) (*model.Sensor, error)
	DeleteSensor(ctx context.Context, id int64) error
}
