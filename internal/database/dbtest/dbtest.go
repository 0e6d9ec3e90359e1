// Package dbtest provides migrated throwaway databases for tests.
package dbtest

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/logger"
	"github.com/termoflexpro/termoflex-store/internal/schema"
	"go.uber.org/zap/zaptest"
)

// NewSQLite returns an empty, uniquely named in-memory SQLite database with
// the full schema applied. It is closed when the test ends.
func NewSQLite(t testing.TB) *sqlx.DB {
	t.Helper()

	db := OpenSQLite(t)
	require.NoError(t, schema.Migrate(context.Background(), db, Logger(t)))
	return db
}

// OpenSQLite is NewSQLite without the migrations.
func OpenSQLite(t testing.TB) *sqlx.DB {
	t.Helper()

	name := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.NewSQLite(context.Background(), database.SQLiteDSN(name, 5000))
	require.NoError(t, err)

	// The in-memory database lives as long as one connection does. A single
	// connection also keeps shared-cache table locks out of the picture.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	t.Cleanup(func() { db.Close() })
	return db
}

func Logger(t testing.TB) logger.ZapLogger {
	return logger.Wrap(zaptest.NewLogger(t))
}
