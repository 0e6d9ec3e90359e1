package usecase

import (
	"context"
	"strings"

	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/logger"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/sensor"
	"github.com/termoflexpro/termoflex-store/internal/sensor/dto"
	"github.com/termoflexpro/termoflex-store/internal/validation"
	"go.uber.org/zap"
)

type sensorUseCase struct {
	repo   sensor.Repository
	logger logger.ZapLogger
}

func NewSensorUseCase(repo sensor.Repository, log logger.ZapLogger) sensor.UseCase {
	return &sensorUseCase{
		repo:   repo,
		logger: log.With(zap.String("entity", "sensor")),
	}
}

func (uc *sensorUseCase) CreateSensor(ctx context.Context, input *dto.CreateSensorInput) (*model.Sensor, error) {
	in := *input
	in.Type = strings.TrimSpace(in.Type)
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.StatusActive
	}

	s := &model.Sensor{
		Type:           in.Type,
		Specifications: model.NullIfBlank(in.Specifications),
		Status:         status,
		ProductID:      in.ProductID,
	}
	if err := validate(s); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *sensorUseCase) GetSensor(ctx context.Context, id int64) (*model.Sensor, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, database.ErrNotFound
	}
	return s, nil
}

func (uc *sensorUseCase) ListSensors(ctx context.Context, filters *dto.SensorFilters) ([]model.Sensor, int, error) {
	if filters == nil {
		filters = &dto.SensorFilters{}
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *sensorUseCase) UpdateSensor(ctx context.Context, input *dto.UpdateSensorInput) (*model.Sensor, error) {
	s, err := uc.GetSensor(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	in := *input
	in.Type = strings.TrimSpace(in.Type)
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	s.Type = in.Type
	s.Specifications = model.NullIfBlank(in.Specifications)
	s.ProductID = in.ProductID
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

func (uc *sensorUseCase) DeleteSensor(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func validate(s *model.Sensor) error {
	if !s.Status.Valid() {
		return database.NewValidationError("estado", "must be active or inactive")
	}
	return nil
}
