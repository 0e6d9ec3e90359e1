package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/database/dbtest"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/user/dto"
	"github.com/termoflexpro/termoflex-store/internal/user/repository"
	"github.com/termoflexpro/termoflex-store/internal/user/usecase"
)

func TestUserLifecycle(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	uc := usecase.NewUserUseCase(repository.NewSQLRepository(db), dbtest.Logger(t))

	u, err := uc.CreateUser(ctx, &dto.CreateUserInput{
		Name:  "Ana Torres",
		Email: "ana@example.com",
		Phone: model.String("+52 55 1234 5678"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, u.Status)
	assert.False(t, u.RegisteredAt.IsZero())

	updated, err := uc.UpdateUser(ctx, &dto.UpdateUserInput{
		ID:      u.ID,
		Name:    "Ana Torres",
		Email:   "ana.torres@example.com",
		Address: model.String("Av. Reforma 1"),
		Status:  model.StatusInactive,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Phone)

	got, err := uc.GetUserByEmail(ctx, "ana.torres@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, model.StatusInactive, got.Status)

	users, total, err := uc.ListUsers(ctx, &dto.UserFilters{SearchQuery: "TORRES"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, users, 1)
}

func TestUserValidation(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	uc := usecase.NewUserUseCase(repository.NewSQLRepository(db), dbtest.Logger(t))

	tests := []struct {
		name  string
		input dto.CreateUserInput
	}{
		{"missing name", dto.CreateUserInput{Email: "a@example.com"}},
		{"missing email", dto.CreateUserInput{Name: "Ana"}},
		{"malformed email", dto.CreateUserInput{Name: "Ana", Email: "ana.example.com"}},
		{"display name in email", dto.CreateUserInput{Name: "Ana", Email: "Ana <ana@example.com>"}},
		{"long phone", dto.CreateUserInput{Name: "Ana", Email: "a@example.com", Phone: model.String("0123456789012345678901")}},
		{"bad status", dto.CreateUserInput{Name: "Ana", Email: "a@example.com", Status: "banned"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateUser(ctx, &tt.input)
			assert.ErrorIs(t, err, database.ErrCheckViolation)
		})
	}
	assert.Zero(t, dbtest.Count(t, db, "usuarios"))
}

func TestUserEmailIsUnique(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	uc := usecase.NewUserUseCase(repository.NewSQLRepository(db), dbtest.Logger(t))

	_, err := uc.CreateUser(ctx, &dto.CreateUserInput{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	other, err := uc.CreateUser(ctx, &dto.CreateUserInput{Name: "Luis", Email: "luis@example.com"})
	require.NoError(t, err)

	_, err = uc.CreateUser(ctx, &dto.CreateUserInput{Name: "Otra Ana", Email: "ana@example.com"})
	assert.ErrorIs(t, err, database.ErrDuplicateKey)

	_, err = uc.UpdateUser(ctx, &dto.UpdateUserInput{ID: other.ID, Name: "Luis", Email: "ana@example.com"})
	assert.ErrorIs(t, err, database.ErrDuplicateKey)

	_, err = db.ExecContext(ctx, `INSERT INTO usuarios (nombre, email) VALUES ('Copia', 'luis@example.com')`)
	assert.ErrorIs(t, database.Translate(err), database.ErrDuplicateKey)
}

func TestDeleteUserCascadesToSales(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	uc := usecase.NewUserUseCase(repository.NewSQLRepository(db), dbtest.Logger(t))

	userID := dbtest.User(t, db, "ana@example.com")
	productID := dbtest.Product(t, db, "TermoFlex Pro Sport", nil)
	_, err := db.ExecContext(ctx, `INSERT INTO ventas (usuario_id, producto_id, cantidad, total) VALUES (?, ?, 1, 10)`,
		userID, productID)
	require.NoError(t, err)

	require.NoError(t, uc.DeleteUser(ctx, userID))
	assert.Zero(t, dbtest.Count(t, db, "ventas"))
	assert.Equal(t, 1, dbtest.Count(t, db, "productos"))

	assert.ErrorIs(t, uc.DeleteUser(ctx, userID), database.ErrNotFound)
}
