package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// "duplicate column name" errors from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS resources (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		capacity   REAL NOT NULL CHECK(capacity > 0),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		owner       TEXT NOT NULL DEFAULT 'Unassigned',
		size        TEXT NOT NULL
		            CHECK(size IN ('XS','S','M','L','XL')),
		start_date  TEXT NOT NULL,
		due_date    TEXT,
		hours       INTEGER NOT NULL DEFAULT 0,
		cost        REAL NOT NULL DEFAULT 0,
		resource_id TEXT REFERENCES resources(id) ON DELETE SET NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_resource ON tasks(resource_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_start ON tasks(start_date)`,

	`CREATE TABLE IF NOT EXISTS task_dependencies (
		task_id       TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		depends_on_id TEXT NOT NULL REFERENCES tasks(id),
		position      INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (task_id, depends_on_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_task_dependencies_target ON task_dependencies(depends_on_id)`,

	`CREATE TABLE IF NOT EXISTS size_costs (
		size TEXT PRIMARY KEY
		     CHECK(size IN ('XS','S','M','L','XL')),
		cost REAL NOT NULL CHECK(cost >= 0)
	)`,

	// Seed the canonical cost table; user edits overwrite these rows.
	`INSERT OR IGNORE INTO size_costs (size, cost) VALUES
		('XS', 100), ('S', 200), ('M', 400), ('L', 600), ('XL', 800)`,

	`CREATE TABLE IF NOT EXISTS holidays (
		day  TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT ''
	)`,

	// Seed the default holiday calendar.
	`INSERT OR IGNORE INTO holidays (day, name) VALUES
		('2025-01-01', 'New Year''s Day'),
		('2025-01-20', 'Martin Luther King Jr. Day'),
		('2025-02-17', 'Presidents'' Day'),
		('2025-05-26', 'Memorial Day'),
		('2025-07-04', 'Independence Day'),
		('2025-09-01', 'Labor Day'),
		('2025-11-11', 'Veterans Day'),
		('2025-11-27', 'Thanksgiving'),
		('2025-12-25', 'Christmas')`,
}
