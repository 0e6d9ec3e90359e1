package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termoflexpro/termoflex-store/internal/database"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		seedFile, migrate = "", false
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMigrateAndSeed(t *testing.T) {
	t.Setenv("LOGGER_LEVEL", "error")
	dsn := database.SQLiteDSN(filepath.Join(t.TempDir(), "termoflex.db"), 5000)

	out, err := run(t, "migrate", "status", "--driver", "sqlite", "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "create_tables")
	assert.Contains(t, out, "pending")

	out, err = run(t, "migrate", "up", "--driver", "sqlite", "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "Applied 2 migration(s)")

	out, err = run(t, "seed", "--driver", "sqlite", "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "ventas")

	_, err = run(t, "seed", "--driver", "sqlite", "--dsn", dsn)
	assert.ErrorIs(t, err, database.ErrDuplicateKey)

	out, err = run(t, "migrate", "status", "--driver", "sqlite", "--dsn", dsn)
	require.NoError(t, err)
	assert.NotContains(t, out, "pending")

	_, err = run(t, "migrate", "down", "--driver", "sqlite", "--dsn", dsn)
	require.NoError(t, err)
}

func TestSeedWithMigrateFlag(t *testing.T) {
	t.Setenv("LOGGER_LEVEL", "error")
	dsn := database.SQLiteDSN(filepath.Join(t.TempDir(), "termoflex.db"), 5000)

	out, err := run(t, "seed", "--migrate", "--driver", "sqlite", "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "productos")
}

func TestUnknownDriver(t *testing.T) {
	_, err := run(t, "migrate", "up", "--driver", "oracle", "--dsn", "x")
	assert.ErrorContains(t, err, "unsupported database driver")
}
