package schema

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/logger"
	"go.uber.org/zap"
)

// advisoryLockID serialises concurrent migrators on PostgreSQL.
const advisoryLockID int64 = 7_461_020_230

type Migration struct {
	Version    string
	Name       string
	Statements []string
}

type MigrationStatus struct {
	Version   string     `db:"version" json:"version"`
	Name      string     `db:"name" json:"name"`
	AppliedAt *time.Time `db:"applied_at" json:"applied_at"`
}

func (s MigrationStatus) Applied() bool {
	return s.AppliedAt != nil
}

// Migrations returns the ordered migration list for a dialect.
func Migrations(d database.Dialect) []Migration {
	triggers := postgresTriggers
	if d == database.DialectSQLite {
		triggers = sqliteTriggers
	}
	return []Migration{
		{Version: "20230301000001", Name: "create_tables", Statements: render(d, createTables...)},
		{Version: "20230301000002", Name: "last_update_triggers", Statements: triggers},
	}
}

type Migrator struct {
	db      *sqlx.DB
	dialect database.Dialect
	logger  logger.ZapLogger
}

func NewMigrator(db *sqlx.DB, log logger.ZapLogger) *Migrator {
	return &Migrator{
		db:      db,
		dialect: database.DialectOf(db),
		logger:  log,
	}
}

// Initialize creates the schema_migrations table if it doesn't exist.
func (m *Migrator) Initialize(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, render(m.dialect, migrationsTable)[0]); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}
	return nil
}

// Up applies every pending migration, each in its own transaction, and
// returns how many were applied.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	conn, err := m.db.Connx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	if m.dialect == database.DialectPostgres {
		if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
			return 0, fmt.Errorf("failed to acquire migration lock: %w", err)
		}
		defer func() {
			if _, err := conn.ExecContext(context.Background(), "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
				m.logger.Warn("failed to release migration lock", zap.Error(err))
			}
		}()
	}

	if _, err := conn.ExecContext(ctx, render(m.dialect, migrationsTable)[0]); err != nil {
		return 0, fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	var applied []string
	if err := conn.SelectContext(ctx, &applied, "SELECT version FROM schema_migrations"); err != nil {
		return 0, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	done := make(map[string]bool, len(applied))
	for _, v := range applied {
		done[v] = true
	}

	count := 0
	for _, mig := range Migrations(m.dialect) {
		if done[mig.Version] {
			continue
		}
		if err := m.apply(ctx, conn, mig); err != nil {
			return count, err
		}
		m.logger.Info("Applied migration", zap.String("version", mig.Version), zap.String("name", mig.Name))
		count++
	}
	return count, nil
}

func (m *Migrator) apply(ctx context.Context, conn *sqlx.Conn, mig Migration) error {
	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration %s: %w", mig.Version, err)
	}
	defer tx.Rollback()

	for i, stmt := range mig.Statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %s (%s) statement %d: %w", mig.Version, mig.Name, i+1, err)
		}
	}

	insert := tx.Rebind("INSERT INTO schema_migrations (version, name) VALUES (?, ?)")
	if _, err := tx.ExecContext(ctx, insert, mig.Version, mig.Name); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", mig.Version, err)
	}
	return tx.Commit()
}

// Down drops every table, child tables first, and forgets applied migrations.
func (m *Migrator) Down(ctx context.Context) error {
	return database.WithTx(ctx, m.db, func(tx *sqlx.Tx) error {
		for _, stmt := range dropStatements(m.dialect) {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to drop schema: %w", err)
			}
		}
		m.logger.Info("Dropped schema", zap.Int("tables", len(Tables)))
		return nil
	})
}

// Status lists every known migration with its applied time, if any.
func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	if err := m.Initialize(ctx); err != nil {
		return nil, err
	}

	var records []MigrationStatus
	err := m.db.SelectContext(ctx, &records, "SELECT version, name, applied_at FROM schema_migrations ORDER BY version ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	byVersion := make(map[string]MigrationStatus, len(records))
	for _, r := range records {
		byVersion[r.Version] = r
	}

	out := make([]MigrationStatus, 0, len(records))
	for _, mig := range Migrations(m.dialect) {
		if r, ok := byVersion[mig.Version]; ok {
			out = append(out, r)
			continue
		}
		out = append(out, MigrationStatus{Version: mig.Version, Name: mig.Name})
	}
	return out, nil
}

// Migrate is a shorthand for NewMigrator(db, log).Up(ctx).
func Migrate(ctx context.Context, db *sqlx.DB, log logger.ZapLogger) error {
	_, err := NewMigrator(db, log).Up(ctx)
	return err
}
