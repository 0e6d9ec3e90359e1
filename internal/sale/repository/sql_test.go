package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termoflexpro/termoflex-store/internal/database/dbtest"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/sale/repository"
)

func TestTotalIsRoundedToColumnScale(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	repo := repository.NewSQLRepository(db)

	s := &model.Sale{
		UserID:    dbtest.User(t, db, "ana@example.com"),
		ProductID: dbtest.Product(t, db, "TermoFlex Pro Sport", nil),
		Quantity:  1,
		Date:      time.Date(2023, 3, 1, 10, 0, 0, 0, time.UTC),
		Total:     decimal.RequireFromString("3500.987"),
		Status:    model.SalePending,
	}
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, decimal.RequireFromString("3500.99").Equal(got.Total), got.Total.String())

	got.Total = decimal.RequireFromString("0.004")
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, got.Total.IsZero(), got.Total.String())
}
