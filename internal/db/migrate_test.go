package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Running migrations again must succeed without error.
	err := Migrate(db)
	require.NoError(t, err)

	// Third time for good measure.
	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"schedule_meta", "week_buckets", "scheduled_topics",
		"composite_topics", "planned_entries", "actual_entries", "sync_meta",
	}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_scheduled_topics_week",
		"idx_planned_entries_date",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_ColorCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO week_buckets (number, start_date, end_date) VALUES (1, '2026-03-02', '2026-03-08')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO scheduled_topics (id, name, color, original_week, current_week, position)
		VALUES ('t1', 'Cardiologia', 'magenta', 1, 1, 0)`)
	assert.Error(t, err, "unknown color should be rejected by CHECK constraint")

	_, err = db.Exec(`INSERT INTO scheduled_topics (id, name, color, original_week, current_week, position)
		VALUES ('t1', 'Cardiologia', 'red', 1, 1, 0)`)
	assert.NoError(t, err)
}

func TestMigrate_WeekNumberBounds(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO week_buckets (number, start_date, end_date) VALUES (0, '2026-03-02', '2026-03-08')`)
	assert.Error(t, err, "week 0 should be rejected")
	_, err = db.Exec(`INSERT INTO week_buckets (number, start_date, end_date) VALUES (31, '2026-03-02', '2026-03-08')`)
	assert.Error(t, err, "week 31 should be rejected")
	_, err = db.Exec(`INSERT INTO week_buckets (number, start_date, end_date) VALUES (30, '2026-03-02', '2026-03-08')`)
	assert.NoError(t, err)
}

func TestMigrate_TopicWeekForeignKey(t *testing.T) {
	db := openTestDB(t)

	// No bucket 5 yet: the topic row must be rejected.
	_, err := db.Exec(`INSERT INTO scheduled_topics (id, name, color, original_week, current_week, position)
		VALUES ('t1', 'Cardiologia', 'red', 5, 5, 0)`)
	assert.Error(t, err, "topic referencing a missing week bucket should be rejected")
}

func TestMigrate_SingletonMetaRows(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO schedule_meta (id, created_at, last_updated_at) VALUES (2, 'x', 'y')`)
	assert.Error(t, err, "schedule_meta only admits id 1")
	_, err = db.Exec(`INSERT INTO sync_meta (id, last_synced_at) VALUES (2, 'x')`)
	assert.Error(t, err, "sync_meta only admits id 1")
}

func TestMigrate_TopicDefaults(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO week_buckets (number, start_date, end_date) VALUES (1, '2026-03-02', '2026-03-08')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO scheduled_topics (id, name, color, original_week, current_week, position)
		VALUES ('t1', 'Cardiologia', 'green', 1, 1, 0)`)
	require.NoError(t, err)

	var studied, composite int
	var studyDates, migrationLog string
	err = db.QueryRow(`SELECT studied, composite, study_dates, migration_log FROM scheduled_topics WHERE id = 't1'`).
		Scan(&studied, &composite, &studyDates, &migrationLog)
	require.NoError(t, err)
	assert.Zero(t, studied)
	assert.Zero(t, composite)
	assert.Equal(t, "[]", studyDates)
	assert.Equal(t, "[]", migrationLog)
}
