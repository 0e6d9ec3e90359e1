package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/database/dbtest"
	"github.com/termoflexpro/termoflex-store/internal/manufacturing/dto"
	"github.com/termoflexpro/termoflex-store/internal/manufacturing/repository"
	"github.com/termoflexpro/termoflex-store/internal/manufacturing/usecase"
	"github.com/termoflexpro/termoflex-store/internal/model"
)

func TestManufacturingLifecycle(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	uc := usecase.NewManufacturingUseCase(repository.NewSQLRepository(db), dbtest.Logger(t))

	supplierID := dbtest.Supplier(t, db, "Metales del Norte")
	productID := dbtest.Product(t, db, "TermoFlex Pro Sport", nil)

	m, err := uc.CreateManufacturing(ctx, &dto.CreateManufacturingInput{
		SupplierID: supplierID,
		ProductID:  productID,
		Quantity:   500,
	})
	require.NoError(t, err)
	assert.Equal(t, model.Day(time.Now()), m.Date, "defaults to today")

	june := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	updated, err := uc.UpdateManufacturing(ctx, &dto.UpdateManufacturingInput{
		ID:         m.ID,
		SupplierID: supplierID,
		ProductID:  productID,
		Quantity:   450,
		Date:       &june,
	})
	require.NoError(t, err)
	assert.Equal(t, 450, updated.Quantity)

	got, err := uc.GetManufacturing(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, got.Date.Equal(june), got.Date.String())

	require.NoError(t, uc.DeleteManufacturing(ctx, m.ID))
	assert.ErrorIs(t, uc.DeleteManufacturing(ctx, m.ID), database.ErrNotFound)
}

func TestManufacturingErrors(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	uc := usecase.NewManufacturingUseCase(repository.NewSQLRepository(db), dbtest.Logger(t))

	supplierID := dbtest.Supplier(t, db, "Metales del Norte")
	productID := dbtest.Product(t, db, "TermoFlex Pro Sport", nil)

	_, err := uc.CreateManufacturing(ctx, &dto.CreateManufacturingInput{SupplierID: supplierID, ProductID: productID})
	assert.ErrorIs(t, err, database.ErrCheckViolation)

	_, err = uc.CreateManufacturing(ctx, &dto.CreateManufacturingInput{SupplierID: supplierID + 1, ProductID: productID, Quantity: 1})
	assert.ErrorIs(t, err, database.ErrForeignKeyViolation)

	_, err = db.ExecContext(ctx, `INSERT INTO fabricacion (proveedor_id, producto_id, cantidad) VALUES (?, ?, -4)`, supplierID, productID)
	assert.ErrorIs(t, database.Translate(err), database.ErrCheckViolation)
}

func TestListManufacturingAndTotals(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	uc := usecase.NewManufacturingUseCase(repository.NewSQLRepository(db), dbtest.Logger(t))

	north := dbtest.Supplier(t, db, "Metales del Norte")
	south := dbtest.Supplier(t, db, "Textiles del Sur")
	sport := dbtest.Product(t, db, "TermoFlex Pro Sport", nil)
	home := dbtest.Product(t, db, "TermoFlex Casa", nil)

	may := time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)
	june := time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC)
	for _, in := range []dto.CreateManufacturingInput{
		{SupplierID: north, ProductID: sport, Quantity: 100, Date: &may},
		{SupplierID: north, ProductID: sport, Quantity: 50, Date: &june},
		{SupplierID: north, ProductID: home, Quantity: 30, Date: &june},
		{SupplierID: south, ProductID: sport, Quantity: 10, Date: &june},
	} {
		in := in
		_, err := uc.CreateManufacturing(ctx, &in)
		require.NoError(t, err)
	}

	records, total, err := uc.ListManufacturing(ctx, &dto.ManufacturingFilters{SupplierID: &north})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.True(t, records[0].Date.Equal(june), "newest first")

	_, total, err = uc.ListManufacturing(ctx, &dto.ManufacturingFilters{ProductID: &sport, EndDate: &may})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	totals, err := uc.SupplierTotals(ctx, north)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, model.ManufacturingTotal{ProductID: home, ProductName: "TermoFlex Casa", Batches: 1, Quantity: 30}, totals[0])
	assert.Equal(t, model.ManufacturingTotal{ProductID: sport, ProductName: "TermoFlex Pro Sport", Batches: 2, Quantity: 150}, totals[1])
}
