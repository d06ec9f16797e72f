package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a fatal
// error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS revenues (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					import_id INTEGER NOT NULL,
					name TEXT NOT NULL,
					memo TEXT,
					amount TEXT NOT NULL,
					expected_amount TEXT NOT NULL,
					date TEXT NOT NULL,
					is_recurring INTEGER NOT NULL DEFAULT 0,
					category TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE TABLE IF NOT EXISTS expenses (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					import_id INTEGER NOT NULL,
					name TEXT NOT NULL,
					memo TEXT,
					amount TEXT NOT NULL,
					expected_amount TEXT NOT NULL,
					date TEXT NOT NULL,
					is_recurring INTEGER NOT NULL DEFAULT 0,
					category TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE TABLE IF NOT EXISTS transfers (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					import_id INTEGER NOT NULL,
					name TEXT NOT NULL,
					memo TEXT,
					amount TEXT NOT NULL,
					date TEXT NOT NULL,
					is_internal INTEGER NOT NULL DEFAULT 1,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_revenues_date ON revenues(date)`,
				`CREATE INDEX idx_expenses_date ON expenses(date)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add import audit table",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS imports (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					file_name TEXT NOT NULL,
					account_id TEXT,
					account_type TEXT,
					income_count INTEGER NOT NULL DEFAULT 0,
					expense_count INTEGER NOT NULL DEFAULT 0,
					transfer_count INTEGER NOT NULL DEFAULT 0,
					degraded_dates INTEGER NOT NULL DEFAULT 0,
					total_income TEXT NOT NULL DEFAULT '0',
					total_expenses TEXT NOT NULL DEFAULT '0',
					imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_revenues_import ON revenues(import_id)`,
				`CREATE INDEX idx_expenses_import ON expenses(import_id)`,
				`CREATE INDEX idx_transfers_import ON transfers(import_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	var currentVersion int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Description, err)
		}

		// PRAGMA doesn't support placeholders
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		slog.Debug("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	return nil
}
