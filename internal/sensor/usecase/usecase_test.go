package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/database/dbtest"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/sensor/dto"
	"github.com/termoflexpro/termoflex-store/internal/sensor/repository"
	"github.com/termoflexpro/termoflex-store/internal/sensor/usecase"
)

func TestSensorLifecycle(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	uc := usecase.NewSensorUseCase(repository.NewSQLRepository(db), dbtest.Logger(t))
	productID := dbtest.Product(t, db, "TermoFlex Pro Sport", nil)

	s, err := uc.CreateSensor(ctx, &dto.CreateSensorInput{
		ProductID:      productID,
		Type:           "temperatura",
		Specifications: model.String("-20 a 120 °C"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, s.Status)

	updated, err := uc.UpdateSensor(ctx, &dto.UpdateSensorInput{
		ID:        s.ID,
		ProductID: productID,
		Type:      "temperatura",
		Status:    model.StatusInactive,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInactive, updated.Status)
	assert.Nil(t, updated.Specifications)

	got, err := uc.GetSensor(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	require.NoError(t, uc.DeleteSensor(ctx, s.ID))
	assert.ErrorIs(t, uc.DeleteSensor(ctx, s.ID), database.ErrNotFound)
}

func TestSensorErrors(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	uc := usecase.NewSensorUseCase(repository.NewSQLRepository(db), dbtest.Logger(t))
	productID := dbtest.Product(t, db, "TermoFlex Pro Sport", nil)

	_, err := uc.CreateSensor(ctx, &dto.CreateSensorInput{ProductID: productID})
	assert.ErrorIs(t, err, database.ErrCheckViolation, "type is required")

	_, err = uc.CreateSensor(ctx, &dto.CreateSensorInput{ProductID: productID, Type: "humedad", Status: "broken"})
	assert.ErrorIs(t, err, database.ErrCheckViolation)

	_, err = uc.CreateSensor(ctx, &dto.CreateSensorInput{ProductID: productID + 1, Type: "humedad"})
	assert.ErrorIs(t, err, database.ErrForeignKeyViolation)

	_, err = uc.UpdateSensor(ctx, &dto.UpdateSensorInput{ID: 7, ProductID: productID, Type: "humedad"})
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestListSensors(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	uc := usecase.NewSensorUseCase(repository.NewSQLRepository(db), dbtest.Logger(t))
	sport := dbtest.Product(t, db, "TermoFlex Pro Sport", nil)
	home := dbtest.Product(t, db, "TermoFlex Casa", nil)

	inputs := []dto.CreateSensorInput{
		{ProductID: sport, Type: "temperatura"},
		{ProductID: sport, Type: "humedad", Status: model.StatusInactive},
		{ProductID: home, Type: "temperatura"},
	}
	for i := range inputs {
		_, err := uc.CreateSensor(ctx, &inputs[i])
		require.NoError(t, err)
	}

	tests := []struct {
		name    string
		filters dto.SensorFilters
		want    int
	}{
		{"all", dto.SensorFilters{}, 3},
		{"by product", dto.SensorFilters{ProductID: &sport}, 2},
		{"by type", dto.SensorFilters{Type: "temperatura"}, 2},
		{"by status", dto.SensorFilters{Status: model.StatusInactive}, 1},
		{"combined", dto.SensorFilters{ProductID: &home, Type: "humedad"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sensors, total, err := uc.ListSensors(ctx, &tt.filters)
			require.NoError(t, err)
			assert.Equal(t, tt.want, total)
			assert.Len(t, sensors, tt.want)
		})
	}
}
