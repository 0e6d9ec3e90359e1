package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrCheckViolation is returned when a value is outside its column's domain
	// (range check, closed enumeration, or missing required value).
	ErrCheckViolation = errors.New("check constraint violation")

	// ErrDuplicateKey is returned when a unique constraint is violated.
	ErrDuplicateKey = errors.New("duplicate key value")

	// ErrForeignKeyViolation is returned when a reference does not match a parent row.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// PostgreSQL SQLSTATE codes of the integrity constraint violation class.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// ConstraintError is a driver error classified into one of the sentinels above.
type ConstraintError struct {
	Kind       error
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint == "" {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%v (%s): %v", e.Kind, e.Constraint, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

func (e *ConstraintError) Is(target error) bool {
	return target == e.Kind
}

// ValidationError is returned by use cases before a write reaches storage.
// It matches ErrCheckViolation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrCheckViolation
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Translate classifies constraint violations reported by pgx or modernc
// sqlite. Other errors are returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		var kind error
		switch pgErr.Code {
		case pgUniqueViolation:
			kind = ErrDuplicateKey
		case pgForeignKeyViolation:
			kind = ErrForeignKeyViolation
		case pgCheckViolation, pgNotNullViolation:
			kind = ErrCheckViolation
		default:
			return err
		}
		constraint := pgErr.ConstraintName
		if constraint == "" {
			constraint = pgErr.ColumnName
		}
		return &ConstraintError{Kind: kind, Constraint: constraint, Err: err}
	}

	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		var kind error
		switch sqErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			kind = ErrDuplicateKey
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			kind = ErrForeignKeyViolation
		case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			kind = ErrCheckViolation
		default:
			return err
		}
		return &ConstraintError{Kind: kind, Constraint: sqliteConstraint(sqErr.Error()), Err: err}
	}

	return err
}

// sqliteConstraint extracts "productos.nombre" from messages such as
// "constraint failed: UNIQUE constraint failed: productos.nombre (2067)".
func sqliteConstraint(msg string) string {
	i := strings.LastIndex(msg, "failed: ")
	if i < 0 {
		return ""
	}
	msg = msg[i+len("failed: "):]
	if j := strings.LastIndex(msg, " ("); j >= 0 {
		msg = msg[:j]
	}
	return strings.TrimSpace(msg)
}
