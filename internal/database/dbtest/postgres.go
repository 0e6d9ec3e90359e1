//go:build integration

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// NewPostgres starts a throwaway PostgreSQL container and returns an
// unmigrated pool connected to it. The container is terminated when the
// test ends.
func NewPostgres(t testing.TB) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("termoflexpro"),
		postgres.WithUsername("termoflex"),
		postgres.WithPassword("termoflex"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(ctx, &database.Config{
		Driver:       database.DialectPostgres,
		DSN:          connStr,
		MaxOpenConns: 5,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}
