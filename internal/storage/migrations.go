package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
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
			return execAll(tx,
				`CREATE TABLE IF NOT EXISTS identities (
					position INTEGER NOT NULL,
					name TEXT PRIMARY KEY,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE TABLE IF NOT EXISTS runs (
					id TEXT PRIMARY KEY,
					source TEXT NOT NULL,
					target TEXT NOT NULL,
					total INTEGER NOT NULL,
					won INTEGER NOT NULL,
					lost INTEGER NOT NULL,
					suppressed INTEGER NOT NULL,
					win_rate REAL NOT NULL,
					average_gap REAL NOT NULL,
					row_count INTEGER NOT NULL,
					dropped INTEGER NOT NULL,
					created_at DATETIME NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS run_listings (
					run_id TEXT NOT NULL,
					position INTEGER NOT NULL,
					listing_id TEXT NOT NULL,
					asin TEXT NOT NULL,
					title TEXT NOT NULL,
					image_url TEXT,
					buy_box_seller TEXT NOT NULL,
					status TEXT NOT NULL,
					our_price REAL NOT NULL,
					buy_box_price REAL NOT NULL,
					delta REAL NOT NULL,
					action TEXT NOT NULL,
					PRIMARY KEY (run_id, position),
					FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
				)`,
			)
		},
	},
	{
		Version:     2,
		Description: "Add indexes for run history lookups",
		Up: func(tx *sql.Tx) error {
			return execAll(tx,
				`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
				`CREATE INDEX IF NOT EXISTS idx_run_listings_status ON run_listings(run_id, status)`,
				`CREATE UNIQUE INDEX IF NOT EXISTS idx_identities_position ON identities(position)`,
			)
		},
	},
}

func execAll(tx *sql.Tx, queries ...string) error {
	for _, query := range queries {
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query '%s': %w", query, err)
		}
	}
	return nil
}

// SchemaVersion returns the current PRAGMA user_version.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	currentVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Debug("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	finalVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
