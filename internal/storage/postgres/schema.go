package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// codeUndefinedTable is SQLSTATE undefined_table.
const codeUndefinedTable = "42P01"

// schema creates the projects table and its lookup indexes. Every statement
// is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		language        TEXT NOT NULL,
		template_id     TEXT NOT NULL,
		github_username TEXT NOT NULL,
		repository_url  TEXT NOT NULL DEFAULT '',
		status          TEXT NOT NULL DEFAULT 'created',
		metadata        JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_github_username ON projects (github_username)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_language ON projects (language)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_created_at ON projects (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_name ON projects (name)`,
}

// Migrate applies the schema in one transaction.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer tx.Rollback()

	for i, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}

// IsUndefinedTable reports whether err is a missing-table error from either
// the pgx or the lib/pq driver.
func IsUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeUndefinedTable
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == codeUndefinedTable
	}
	return false
}
