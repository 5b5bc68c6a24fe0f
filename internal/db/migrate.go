package db

import (
	"database/sql"
	"fmt"
	"strings"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schedule_meta (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		created_at TEXT NOT NULL,
		last_updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS week_buckets (
		number INTEGER PRIMARY KEY CHECK (number BETWEEN 1 AND 30),
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS scheduled_topics (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		color TEXT NOT NULL CHECK (color IN ('green','yellow','red','purple')),
		original_week INTEGER NOT NULL,
		current_week INTEGER NOT NULL REFERENCES week_buckets(number),
		position INTEGER NOT NULL,
		studied INTEGER NOT NULL DEFAULT 0,
		first_seen_at TEXT,
		lecture_only INTEGER NOT NULL DEFAULT 0,
		lecture_and_review INTEGER NOT NULL DEFAULT 0,
		review_only INTEGER NOT NULL DEFAULT 0,
		study_dates TEXT NOT NULL DEFAULT '[]',
		reviews_total INTEGER NOT NULL DEFAULT 0,
		reviews_completed INTEGER NOT NULL DEFAULT 0,
		review_dates TEXT NOT NULL DEFAULT '[]',
		questions_attempted INTEGER NOT NULL DEFAULT 0,
		questions_correct INTEGER NOT NULL DEFAULT 0,
		questions_wrong INTEGER NOT NULL DEFAULT 0,
		difficulty INTEGER,
		migration_log TEXT NOT NULL DEFAULT '[]',
		composite INTEGER NOT NULL DEFAULT 0,
		source_topic_ids TEXT NOT NULL DEFAULT '[]'
	)`,

	`CREATE INDEX IF NOT EXISTS idx_scheduled_topics_week
		ON scheduled_topics(current_week, position)`,

	`CREATE TABLE IF NOT EXISTS composite_topics (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		color TEXT NOT NULL,
		source_ids TEXT NOT NULL DEFAULT '[]',
		source_names TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS planned_entries (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		topic TEXT NOT NULL,
		action TEXT NOT NULL,
		week INTEGER,
		position INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_planned_entries_date ON planned_entries(date)`,

	`CREATE TABLE IF NOT EXISTS actual_entries (
		id TEXT PRIMARY KEY,
		topic TEXT NOT NULL,
		attended_lecture INTEGER NOT NULL,
		timestamp TEXT NOT NULL,
		questions_attempted INTEGER NOT NULL DEFAULT 0,
		questions_correct INTEGER NOT NULL DEFAULT 0,
		position INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sync_meta (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		last_synced_at TEXT NOT NULL
	)`,
}

// Migrate applies all schema statements. Statements are idempotent; repeated
// ALTERs are tolerated the same way re-runs are.
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
