//go:build integration

package schema_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/database/dbtest"
	"github.com/termoflexpro/termoflex-store/internal/schema"
	"github.com/termoflexpro/termoflex-store/internal/seed"
)

func TestPostgresSchema(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewPostgres(t)
	log := dbtest.Logger(t)

	t.Run("concurrent migrators apply each migration once", func(t *testing.T) {
		var wg sync.WaitGroup
		applied := make([]int, 3)
		errs := make([]error, 3)
		for i := range applied {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				applied[i], errs[i] = schema.NewMigrator(db, log).Up(ctx)
			}(i)
		}
		wg.Wait()

		total := 0
		for i := range applied {
			require.NoError(t, errs[i])
			total += applied[i]
		}
		assert.Equal(t, 2, total)

		status, err := schema.NewMigrator(db, log).Status(ctx)
		require.NoError(t, err)
		for _, s := range status {
			assert.True(t, s.Applied(), s.Version)
		}
	})

	t.Run("seed", func(t *testing.T) {
		report, err := seed.Seed(ctx, db, log)
		require.NoError(t, err)
		assert.Equal(t, 4, report["ventas"])

		_, err = seed.Seed(ctx, db, log)
		assert.ErrorIs(t, err, database.ErrDuplicateKey)

		var n int
		require.NoError(t, db.GetContext(ctx, &n, "SELECT count(*) FROM usuarios"))
		assert.Equal(t, 4, n)
	})

	t.Run("constraint errors are classified", func(t *testing.T) {
		tests := []struct {
			name       string
			query      string
			kind       error
			constraint string
		}{
			{
				name:       "duplicate product name",
				query:      `INSERT INTO productos (nombre, precio, stock) VALUES ('TermoFlex Home', 1, 1)`,
				kind:       database.ErrDuplicateKey,
				constraint: "productos_nombre_key",
			},
			{
				name:       "zero price",
				query:      `INSERT INTO productos (nombre, precio, stock) VALUES ('Gratis', 0, 1)`,
				kind:       database.ErrCheckViolation,
				constraint: "productos_precio_check",
			},
			{
				name:       "unknown sale status",
				query:      `UPDATE ventas SET estado = 'refunded'`,
				kind:       database.ErrCheckViolation,
				constraint: "ventas_estado_check",
			},
			{
				name:       "sensor for missing product",
				query:      `INSERT INTO sensores (producto_id, tipo) VALUES (999999, 'Temperatura')`,
				kind:       database.ErrForeignKeyViolation,
				constraint: "sensores_producto_id_fkey",
			},
			{
				name:  "test without date",
				query: `INSERT INTO pruebas (producto_id, fecha) SELECT id, NULL FROM productos LIMIT 1`,
				kind:  database.ErrCheckViolation,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := db.ExecContext(ctx, tt.query)
				err = database.Translate(err)
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.kind)

				if tt.constraint != "" {
					var ce *database.ConstraintError
					require.True(t, errors.As(err, &ce))
					assert.Equal(t, tt.constraint, ce.Constraint)
				}
			})
		}
	})

	t.Run("trigger refreshes ultima_actualizacion", func(t *testing.T) {
		var before time.Time
		require.NoError(t, db.GetContext(ctx, &before,
			`SELECT ultima_actualizacion FROM productos WHERE nombre = 'TermoFlex Home'`))

		time.Sleep(10 * time.Millisecond)
		_, err := db.ExecContext(ctx, `UPDATE productos SET stock = stock + 1 WHERE nombre = 'TermoFlex Home'`)
		require.NoError(t, err)

		var after time.Time
		require.NoError(t, db.GetContext(ctx, &after,
			`SELECT ultima_actualizacion FROM productos WHERE nombre = 'TermoFlex Home'`))
		assert.True(t, after.After(before), "before %v, after %v", before, after)
	})

	t.Run("deleting a product cascades", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `DELETE FROM productos WHERE nombre = 'TermoFlex Pro Sport'`)
		require.NoError(t, err)

		for table, want := range map[string]int{
			"sensores":          1,
			"pruebas":           1,
			"ventas":            2,
			"producto_material": 2,
		} {
			var n int
			require.NoError(t, db.GetContext(ctx, &n, "SELECT count(*) FROM "+table))
			assert.Equal(t, want, n, table)
		}
	})

	t.Run("deleting a category orphans its products", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `DELETE FROM categorias WHERE nombre = 'Hogar'`)
		require.NoError(t, err)

		var categoryID *int64
		require.NoError(t, db.GetContext(ctx, &categoryID,
			`SELECT categoria_id FROM productos WHERE nombre = 'TermoFlex Home'`))
		assert.Nil(t, categoryID)
	})

	t.Run("down drops everything", func(t *testing.T) {
		require.NoError(t, schema.NewMigrator(db, log).Down(ctx))

		var n int
		require.NoError(t, db.GetContext(ctx, &n,
			`SELECT count(*) FROM information_schema.tables WHERE table_schema = 'public'`))
		assert.Zero(t, n)
	})
}
