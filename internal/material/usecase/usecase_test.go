package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/database/dbtest"
	"github.com/termoflexpro/termoflex-store/internal/material/dto"
	"github.com/termoflexpro/termoflex-store/internal/material/repository"
	"github.com/termoflexpro/termoflex-store/internal/material/usecase"
	"github.com/termoflexpro/termoflex-store/internal/model"
)

func TestMaterialLifecycle(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	uc := usecase.NewMaterialUseCase(repository.NewSQLRepository(db), dbtest.Logger(t))

	m, err := uc.CreateMaterial(ctx, &dto.CreateMaterialInput{Name: "Acero inoxidable"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, m.Status)
	assert.False(t, m.UpdatedAt.IsZero())
	before := m.UpdatedAt

	time.Sleep(10 * time.Millisecond)

	updated, err := uc.UpdateMaterial(ctx, &dto.UpdateMaterialInput{
		ID:          m.ID,
		Name:        "Acero inoxidable 304",
		Description: model.String("Grado alimenticio"),
	})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(before), "%v should be after %v", updated.UpdatedAt, before)

	got, err := uc.GetMaterialByName(ctx, "Acero inoxidable 304")
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)
	assert.True(t, got.UpdatedAt.Equal(updated.UpdatedAt))

	_, err = uc.GetMaterialByName(ctx, "Acero inoxidable")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestMaterialErrors(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	uc := usecase.NewMaterialUseCase(repository.NewSQLRepository(db), dbtest.Logger(t))

	_, err := uc.CreateMaterial(ctx, &dto.CreateMaterialInput{Name: "Neopreno"})
	require.NoError(t, err)

	_, err = uc.CreateMaterial(ctx, &dto.CreateMaterialInput{Name: "Neopreno"})
	assert.ErrorIs(t, err, database.ErrDuplicateKey)

	_, err = uc.CreateMaterial(ctx, &dto.CreateMaterialInput{Name: "Vidrio", Status: "used"})
	assert.ErrorIs(t, err, database.ErrCheckViolation)

	_, err = uc.UpdateMaterial(ctx, &dto.UpdateMaterialInput{ID: 99, Name: "Vidrio"})
	assert.ErrorIs(t, err, database.ErrNotFound)

	_, err = db.ExecContext(ctx, `INSERT INTO materiales (nombre, estado) VALUES ('Cobre', 'ACTIVE')`)
	assert.ErrorIs(t, database.Translate(err), database.ErrCheckViolation)
}

func TestDeleteMaterialCascadesToLinks(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	uc := usecase.NewMaterialUseCase(repository.NewSQLRepository(db), dbtest.Logger(t))

	materialID := dbtest.Material(t, db, "Neopreno")
	productID := dbtest.Product(t, db, "TermoFlex Pro Sport", nil)
	_, err := db.ExecContext(ctx, `INSERT INTO producto_material (producto_id, material_id, cantidad_usada) VALUES (?, ?, 0.5)`,
		productID, materialID)
	require.NoError(t, err)

	require.NoError(t, uc.DeleteMaterial(ctx, materialID))

	assert.Zero(t, dbtest.Count(t, db, "producto_material"))
	assert.Equal(t, 1, dbtest.Count(t, db, "productos"))
}

func TestListMaterials(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	uc := usecase.NewMaterialUseCase(repository.NewSQLRepository(db), dbtest.Logger(t))

	for _, in := range []dto.CreateMaterialInput{
		{Name: "Neopreno"},
		{Name: "Acero"},
		{Name: "Plástico ABS", Status: model.StatusInactive},
	} {
		in := in
		_, err := uc.CreateMaterial(ctx, &in)
		require.NoError(t, err)
	}

	materials, total, err := uc.ListMaterials(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, "Acero", materials[0].Name)

	inactive, total, err := uc.ListMaterials(ctx, &dto.MaterialFilters{Status: model.StatusInactive})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Plástico ABS", inactive[0].Name)
}
