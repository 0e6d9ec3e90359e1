package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termoflexpro/termoflex-store/internal/category"
	"github.com/termoflexpro/termoflex-store/internal/category/dto"
	"github.com/termoflexpro/termoflex-store/internal/category/repository"
	"github.com/termoflexpro/termoflex-store/internal/category/usecase"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/database/dbtest"
	"github.com/termoflexpro/termoflex-store/internal/model"
)

func newUseCase(t *testing.T) category.UseCase {
	db := dbtest.NewSQLite(t)
	return usecase.NewCategoryUseCase(repository.NewSQLRepository(db), dbtest.Logger(t))
}

func TestCategoryLifecycle(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	cat, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{
		Name:        " Deportivos ",
		Description: model.String("Termos para deporte"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Deportivos", cat.Name)

	got, err := uc.GetCategoryByName(ctx, "Deportivos")
	require.NoError(t, err)
	assert.Equal(t, cat.ID, got.ID)
	require.NotNil(t, got.Description)
	assert.Equal(t, "Termos para deporte", *got.Description)

	updated, err := uc.UpdateCategory(ctx, &dto.UpdateCategoryInput{ID: cat.ID, Name: "Deporte", Description: model.String("  ")})
	require.NoError(t, err)
	assert.Nil(t, updated.Description, "blank description is stored as NULL")

	require.NoError(t, uc.DeleteCategory(ctx, cat.ID))

	_, err = uc.GetCategory(ctx, cat.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
	assert.ErrorIs(t, uc.DeleteCategory(ctx, cat.ID), database.ErrNotFound)
}

func TestCategoryErrors(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	_, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: ""})
	assert.ErrorIs(t, err, database.ErrCheckViolation)

	_, err = uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Hogar"})
	require.NoError(t, err)
	_, err = uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Hogar"})
	assert.ErrorIs(t, err, database.ErrDuplicateKey)

	_, err = uc.UpdateCategory(ctx, &dto.UpdateCategoryInput{ID: 42, Name: "Nada"})
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	for _, name := range []string{"Hogar", "Deportivos", "Oficina"} {
		_, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: name})
		require.NoError(t, err)
	}

	all, total, err := uc.ListCategories(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, all, 3)
	assert.Equal(t, "Deportivos", all[0].Name, "sorted by name")

	page, total, err := uc.ListCategories(ctx, &dto.CategoryFilters{SearchQuery: "O", Page: 1, PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, total, "every name contains an o")
	assert.Len(t, page, 1)
}
