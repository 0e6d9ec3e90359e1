package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/database/dbtest"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/supplier/dto"
	"github.com/termoflexpro/termoflex-store/internal/supplier/repository"
	"github.com/termoflexpro/termoflex-store/internal/supplier/usecase"
)

func TestSupplierLifecycle(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	uc := usecase.NewSupplierUseCase(repository.NewSQLRepository(db), dbtest.Logger(t))

	s, err := uc.CreateSupplier(ctx, &dto.CreateSupplierInput{
		Name:    "Metales del Norte",
		Contact: model.String("Jorge Ruiz"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, s.Status)
	assert.False(t, s.RegisteredAt.IsZero())

	_, err = uc.UpdateSupplier(ctx, &dto.UpdateSupplierInput{
		ID:      s.ID,
		Name:    "Metales del Norte SA",
		Contact: s.Contact,
		Status:  model.StatusInactive,
	})
	require.NoError(t, err)

	got, err := uc.GetSupplierByName(ctx, "Metales del Norte SA")
	require.NoError(t, err)
	assert.Equal(t, model.StatusInactive, got.Status)
	require.NotNil(t, got.Contact)
	assert.Equal(t, "Jorge Ruiz", *got.Contact)

	list, total, err := uc.ListSuppliers(ctx, &dto.SupplierFilters{Status: model.StatusActive})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, list)
}

func TestSupplierErrors(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	uc := usecase.NewSupplierUseCase(repository.NewSQLRepository(db), dbtest.Logger(t))

	_, err := uc.CreateSupplier(ctx, &dto.CreateSupplierInput{Name: " "})
	assert.ErrorIs(t, err, database.ErrCheckViolation)

	_, err = uc.CreateSupplier(ctx, &dto.CreateSupplierInput{Name: "Plásticos MX"})
	require.NoError(t, err)
	_, err = uc.CreateSupplier(ctx, &dto.CreateSupplierInput{Name: "Plásticos MX"})
	assert.ErrorIs(t, err, database.ErrDuplicateKey)

	_, err = uc.GetSupplier(ctx, 77)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestDeleteSupplierCascadesToManufacturing(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	uc := usecase.NewSupplierUseCase(repository.NewSQLRepository(db), dbtest.Logger(t))

	supplierID := dbtest.Supplier(t, db, "Metales del Norte")
	productID := dbtest.Product(t, db, "TermoFlex Pro Sport", nil)
	_, err := db.ExecContext(ctx, `INSERT INTO fabricacion (proveedor_id, producto_id, cantidad) VALUES (?, ?, 200)`,
		supplierID, productID)
	require.NoError(t, err)

	require.NoError(t, uc.DeleteSupplier(ctx, supplierID))
	assert.Zero(t, dbtest.Count(t, db, "fabricacion"))
	assert.Equal(t, 1, dbtest.Count(t, db, "productos"))
}
