package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/drgmb/revisa/internal/db"
	"github.com/drgmb/revisa/internal/domain"
	"github.com/google/uuid"
)

// SQLiteLogCacheRepo implements LogCacheRepo, caching the last-fetched
// planned and actual logs so classification works offline.
type SQLiteLogCacheRepo struct {
	db db.DBTX
}

func NewSQLiteLogCacheRepo(db db.DBTX) *SQLiteLogCacheRepo {
	return &SQLiteLogCacheRepo{db: db}
}

func (r *SQLiteLogCacheRepo) ReplacePlanned(ctx context.Context, entries []domain.PlannedEntry) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM planned_entries`); err != nil {
		return fmt.Errorf("clearing planned entries: %w", err)
	}
	for i, e := range entries {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO planned_entries (id, date, topic, action, week, position)
			VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), e.Date.Format(dateLayout), e.TopicName, e.Action,
			nullableIntToValue(e.Week), i)
		if err != nil {
			return fmt.Errorf("inserting planned entry: %w", err)
		}
	}
	return nil
}

func (r *SQLiteLogCacheRepo) ReplaceActual(ctx context.Context, entries []domain.ActualEntry) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM actual_entries`); err != nil {
		return fmt.Errorf("clearing actual entries: %w", err)
	}
	for i, e := range entries {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO actual_entries (id, topic, attended_lecture, timestamp, questions_attempted, questions_correct, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), e.TopicName, boolToInt(e.AttendedLecture),
			e.Timestamp.Format(time.RFC3339), e.QuestionsAttempted, e.QuestionsCorrect, i)
		if err != nil {
			return fmt.Errorf("inserting actual entry: %w", err)
		}
	}
	return nil
}

func (r *SQLiteLogCacheRepo) ListPlanned(ctx context.Context) ([]domain.PlannedEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, topic, action, week FROM planned_entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing planned entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.PlannedEntry
	for rows.Next() {
		var e domain.PlannedEntry
		var dateStr string
		var week sql.NullInt64
		if err := rows.Scan(&dateStr, &e.TopicName, &e.Action, &week); err != nil {
			return nil, fmt.Errorf("scanning planned entry: %w", err)
		}
		if e.Date, err = time.Parse(dateLayout, dateStr); err != nil {
			return nil, fmt.Errorf("parsing planned entry date: %w", err)
		}
		e.Week = nullableIntFromColumn(week)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *SQLiteLogCacheRepo) ListActual(ctx context.Context) ([]domain.ActualEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT topic, attended_lecture, timestamp, questions_attempted, questions_correct
		FROM actual_entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing actual entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.ActualEntry
	for rows.Next() {
		var e domain.ActualEntry
		var attended int
		var tsStr string
		if err := rows.Scan(&e.TopicName, &attended, &tsStr, &e.QuestionsAttempted, &e.QuestionsCorrect); err != nil {
			return nil, fmt.Errorf("scanning actual entry: %w", err)
		}
		if e.Timestamp, err = time.Parse(time.RFC3339, tsStr); err != nil {
			return nil, fmt.Errorf("parsing actual entry timestamp: %w", err)
		}
		e.AttendedLecture = attended != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *SQLiteLogCacheRepo) SetLastSynced(ctx context.Context, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sync_meta (id, last_synced_at) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET last_synced_at = excluded.last_synced_at`,
		at.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording sync time: %w", err)
	}
	return nil
}

func (r *SQLiteLogCacheRepo) LastSynced(ctx context.Context) (*time.Time, error) {
	var s string
	err := r.db.QueryRowContext(ctx, `SELECT last_synced_at FROM sync_meta WHERE id = 1`).Scan(&s)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading sync time: %w", err)
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("parsing sync time: %w", err)
	}
	return &t, nil
}
