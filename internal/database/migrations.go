package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents one versioned schema change
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations are applied in order; never edit an applied entry, append a new one
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_measurements",
		SQL: `
			CREATE TABLE IF NOT EXISTS measurements (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				geohash TEXT NOT NULL,
				district TEXT NOT NULL,
				carrier TEXT NOT NULL,
				latitude REAL NOT NULL,
				longitude REAL NOT NULL,
				rsrp REAL NOT NULL,
				population REAL NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_measurements_carrier ON measurements(carrier);
			CREATE INDEX IF NOT EXISTS idx_measurements_geohash ON measurements(geohash);
		`,
	},
	{
		Version: 2,
		Name:    "create_cells",
		SQL: `
			CREATE TABLE IF NOT EXISTS cells (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				geohash TEXT NOT NULL,
				carrier TEXT NOT NULL,
				district TEXT NOT NULL,
				rsrp REAL NOT NULL,
				population REAL NOT NULL,
				signal_strength TEXT NOT NULL,
				p_value REAL DEFAULT 0,
				z_value REAL DEFAULT 0,
				spot TEXT DEFAULT '',
				desired_area INTEGER DEFAULT 0,
				rank_desired_area INTEGER DEFAULT 0,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				UNIQUE(geohash, carrier)
			);
			CREATE INDEX IF NOT EXISTS idx_cells_carrier ON cells(carrier);
			CREATE INDEX IF NOT EXISTS idx_cells_spot ON cells(spot);
		`,
	},
	{
		Version: 3,
		Name:    "create_analysis_tasks",
		SQL: `
			CREATE TABLE IF NOT EXISTS analysis_tasks (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				task_type TEXT NOT NULL,
				carrier TEXT NOT NULL,
				status TEXT NOT NULL DEFAULT 'pending',
				result_summary TEXT DEFAULT '',
				error_message TEXT DEFAULT '',
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				started_at INTEGER DEFAULT 0,
				completed_at INTEGER DEFAULT 0
			);
		`,
	},
}

// Migrate applies any pending migrations in version order
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := apply(db, m); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
		log.Printf("[Database] Applied migration %d: %s", m.Version, m.Name)
	}
	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func apply(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(m.SQL); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
		return err
	}
	return tx.Commit()
}
