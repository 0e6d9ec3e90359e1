package dbtest

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// insert runs an INSERT ... RETURNING id written with ? placeholders.
func insert(t testing.TB, db *sqlx.DB, query string, args ...interface{}) int64 {
	t.Helper()

	var id int64
	require.NoError(t, db.GetContext(context.Background(), &id, db.Rebind(query+" RETURNING id"), args...))
	return id
}

func Category(t testing.TB, db *sqlx.DB, name string) int64 {
	t.Helper()
	return insert(t, db, `INSERT INTO categorias (nombre) VALUES (?)`, name)
}

// Product inserts an active product priced at 10.00 with 5 units in stock.
func Product(t testing.TB, db *sqlx.DB, name string, categoryID *int64) int64 {
	t.Helper()
	return insert(t, db, `INSERT INTO productos (nombre, categoria_id, precio, stock) VALUES (?, ?, ?, ?)`,
		name, categoryID, "10.00", 5)
}

func Material(t testing.TB, db *sqlx.DB, name string) int64 {
	t.Helper()
	return insert(t, db, `INSERT INTO materiales (nombre) VALUES (?)`, name)
}

func User(t testing.TB, db *sqlx.DB, email string) int64 {
	t.Helper()
	return insert(t, db, `INSERT INTO usuarios (nombre, email) VALUES (?, ?)`, "Cliente "+email, email)
}

func Supplier(t testing.TB, db *sqlx.DB, name string) int64 {
	t.Helper()
	return insert(t, db, `INSERT INTO proveedores (nombre) VALUES (?)`, name)
}

// Count returns the number of rows in table.
func Count(t testing.TB, db *sqlx.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.GetContext(context.Background(), &n, "SELECT count(*) FROM "+table))
	return n
}
