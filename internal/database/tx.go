package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// WithTx runs fn inside a transaction. The transaction is rolled back if fn
// returns an error or panics.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return Translate(err)
	}
	return nil
}

// NamedGet runs a named query that yields one row (typically INSERT ...
// RETURNING) and scans it into dest.
func NamedGet(ctx context.Context, e sqlx.ExtContext, query string, arg interface{}, dest ...interface{}) error {
	rows, err := sqlx.NamedQueryContext(ctx, e, query, arg)
	if err != nil {
		return Translate(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return Translate(err)
		}
		return ErrNotFound
	}
	if err := rows.Scan(dest...); err != nil {
		return Translate(err)
	}
	return Translate(rows.Close())
}

// ExpectAffected turns a zero-row UPDATE or DELETE into ErrNotFound.
func ExpectAffected(res sql.Result, err error) error {
	if err != nil {
		return Translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
