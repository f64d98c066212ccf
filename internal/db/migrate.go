package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations in order.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration list re-runs on every startup.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS founders (
		id         TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		goal_text  TEXT NOT NULL,
		level      INTEGER NOT NULL DEFAULT 1,
		xp         INTEGER NOT NULL DEFAULT 0,
		streak     INTEGER NOT NULL DEFAULT 0,
		debt       INTEGER NOT NULL DEFAULT 0,
		difficulty INTEGER NOT NULL DEFAULT 1
		           CHECK(difficulty BETWEEN 1 AND 5)
	)`,

	`CREATE TABLE IF NOT EXISTS actions (
		id             TEXT PRIMARY KEY,
		founder_id     TEXT NOT NULL REFERENCES founders(id) ON DELETE CASCADE,
		day            TEXT NOT NULL,
		seq            INTEGER NOT NULL DEFAULT 0,
		text           TEXT NOT NULL,
		impact_weight  REAL NOT NULL,
		difficulty     INTEGER NOT NULL,
		non_negotiable INTEGER NOT NULL DEFAULT 1,
		completed      INTEGER,
		completed_at   TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_actions_founder_day ON actions(founder_id, day)`,

	`CREATE TABLE IF NOT EXISTS daily_results (
		id           TEXT PRIMARY KEY,
		founder_id   TEXT NOT NULL REFERENCES founders(id) ON DELETE CASCADE,
		day          TEXT NOT NULL,
		xp_delta     INTEGER NOT NULL,
		penalty      INTEGER NOT NULL CHECK(penalty >= 0),
		verdict_text TEXT NOT NULL,
		created_at   TEXT NOT NULL,
		UNIQUE(founder_id, day)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_results_founder_day ON daily_results(founder_id, day)`,
}
