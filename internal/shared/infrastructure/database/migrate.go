package database

import (
	"context"
	"database/sql"
	"fmt"
)

var sqliteMigrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		base_priority INTEGER NOT NULL DEFAULT 2,
		elo_rating REAL NOT NULL DEFAULT 1500,
		comparison_count INTEGER NOT NULL DEFAULT 0,
		due_date TEXT,
		done INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS comparisons (
		id TEXT PRIMARY KEY,
		winner_id INTEGER NOT NULL,
		loser_id INTEGER NOT NULL,
		winner_before REAL NOT NULL,
		winner_after REAL NOT NULL,
		loser_before REAL NOT NULL,
		loser_after REAL NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_done ON tasks(done)`,
	`CREATE INDEX IF NOT EXISTS idx_comparisons_created_at ON comparisons(created_at)`,
}

var postgresMigrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		base_priority INTEGER NOT NULL DEFAULT 2,
		elo_rating DOUBLE PRECISION NOT NULL DEFAULT 1500,
		comparison_count INTEGER NOT NULL DEFAULT 0,
		due_date DATE,
		done BOOLEAN NOT NULL DEFAULT FALSE,
		completed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS comparisons (
		id UUID PRIMARY KEY,
		winner_id BIGINT NOT NULL,
		loser_id BIGINT NOT NULL,
		winner_before DOUBLE PRECISION NOT NULL,
		winner_after DOUBLE PRECISION NOT NULL,
		loser_before DOUBLE PRECISION NOT NULL,
		loser_after DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_done ON tasks(done)`,
	`CREATE INDEX IF NOT EXISTS idx_comparisons_created_at ON comparisons(created_at)`,
}

// Migrate applies the schema for the given driver. Statements are
// idempotent, so repeated startup is safe.
func Migrate(ctx context.Context, db *sql.DB, driver Driver) error {
	var stmts []string
	switch driver {
	case DriverSQLite:
		stmts = sqliteMigrations
	case DriverPostgres:
		stmts = postgresMigrations
	default:
		return fmt.Errorf("unsupported database driver: %s", driver)
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying migration: %w", err)
		}
	}
	return nil
}
