package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/drgmb/revisa/internal/db"
	"github.com/drgmb/revisa/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo over a SQLite snapshot store.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

func NewSQLiteScheduleRepo(db db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: db}
}

// migrationRow is the JSON shape of one migration log entry in the
// migration_log column.
type migrationRow struct {
	From int    `json:"from"`
	To   int    `json:"to"`
	At   string `json:"at"`
}

func (r *SQLiteScheduleRepo) Save(ctx context.Context, s *domain.ScheduleState) error {
	for _, table := range []string{"scheduled_topics", "week_buckets", "composite_topics", "schedule_meta"} {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO schedule_meta (id, created_at, last_updated_at) VALUES (1, ?, ?)`,
		s.CreatedAt.Format(time.RFC3339), s.LastUpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting schedule meta: %w", err)
	}

	for i := range s.Weeks {
		w := &s.Weeks[i]
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO week_buckets (number, start_date, end_date) VALUES (?, ?, ?)`,
			w.Number, w.StartDate.Format(dateLayout), w.EndDate.Format(dateLayout))
		if err != nil {
			return fmt.Errorf("inserting week bucket %d: %w", w.Number, err)
		}
		for pos, t := range w.Topics {
			if err := r.insertTopic(ctx, t, pos); err != nil {
				return err
			}
		}
	}

	for _, comp := range s.Composites {
		sourceIDs, err := encodeJSON(comp.SourceIDs)
		if err != nil {
			return err
		}
		sourceNames, err := encodeJSON(comp.SourceNames)
		if err != nil {
			return err
		}
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO composite_topics (id, name, color, source_ids, source_names, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			comp.ID, comp.Name, string(comp.Color), sourceIDs, sourceNames,
			comp.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("inserting composite topic: %w", err)
		}
	}
	return nil
}

func (r *SQLiteScheduleRepo) insertTopic(ctx context.Context, t *domain.ScheduledTopic, position int) error {
	studyDates, err := encodeTimes(t.StudyDates)
	if err != nil {
		return err
	}
	reviewDates, err := encodeTimes(t.ReviewDates)
	if err != nil {
		return err
	}
	migrationLog, err := encodeMigrations(t.MigrationLog)
	if err != nil {
		return err
	}
	sourceIDs, err := encodeJSON(t.SourceTopicIDs)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO scheduled_topics (
			id, name, color, original_week, current_week, position,
			studied, first_seen_at, lecture_only, lecture_and_review, review_only,
			study_dates, reviews_total, reviews_completed, review_dates,
			questions_attempted, questions_correct, questions_wrong,
			difficulty, migration_log, composite, source_topic_ids
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, string(t.Color), t.OriginalWeek, t.CurrentWeek, position,
		boolToInt(t.Studied), nullableTimeToString(t.FirstSeenAt, time.RFC3339),
		boolToInt(t.LectureOnly), boolToInt(t.LectureAndReview), boolToInt(t.ReviewOnly),
		studyDates, t.ReviewsTotal, t.ReviewsCompleted, reviewDates,
		t.QuestionsAttempted, t.QuestionsCorrect, t.QuestionsWrong,
		nullableIntToValue(t.Difficulty), migrationLog, boolToInt(t.Composite), sourceIDs,
	)
	if err != nil {
		return fmt.Errorf("inserting scheduled topic %q: %w", t.Name, err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) SaveTopic(ctx context.Context, t *domain.ScheduledTopic) error {
	studyDates, err := encodeTimes(t.StudyDates)
	if err != nil {
		return err
	}
	reviewDates, err := encodeTimes(t.ReviewDates)
	if err != nil {
		return err
	}
	migrationLog, err := encodeMigrations(t.MigrationLog)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE scheduled_topics SET
			current_week = ?, studied = ?, first_seen_at = ?,
			lecture_only = ?, lecture_and_review = ?, review_only = ?,
			study_dates = ?, reviews_total = ?, reviews_completed = ?, review_dates = ?,
			questions_attempted = ?, questions_correct = ?, questions_wrong = ?,
			difficulty = ?, migration_log = ?
		WHERE id = ?`,
		t.CurrentWeek, boolToInt(t.Studied), nullableTimeToString(t.FirstSeenAt, time.RFC3339),
		boolToInt(t.LectureOnly), boolToInt(t.LectureAndReview), boolToInt(t.ReviewOnly),
		studyDates, t.ReviewsTotal, t.ReviewsCompleted, reviewDates,
		t.QuestionsAttempted, t.QuestionsCorrect, t.QuestionsWrong,
		nullableIntToValue(t.Difficulty), migrationLog,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating scheduled topic: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating scheduled topic: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("scheduled topic %q: %w", t.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteScheduleRepo) Load(ctx context.Context) (*domain.ScheduleState, error) {
	var createdAt, updatedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT created_at, last_updated_at FROM schedule_meta WHERE id = 1`,
	).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("schedule snapshot: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading schedule meta: %w", err)
	}

	state := &domain.ScheduleState{}
	if state.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing schedule created_at: %w", err)
	}
	if state.LastUpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing schedule last_updated_at: %w", err)
	}

	if err := r.loadBuckets(ctx, state); err != nil {
		return nil, err
	}
	if err := r.loadTopics(ctx, state); err != nil {
		return nil, err
	}
	if err := r.loadComposites(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (r *SQLiteScheduleRepo) loadBuckets(ctx context.Context, state *domain.ScheduleState) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT number, start_date, end_date FROM week_buckets ORDER BY number`)
	if err != nil {
		return fmt.Errorf("loading week buckets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b domain.WeekBucket
		var start, end string
		if err := rows.Scan(&b.Number, &start, &end); err != nil {
			return fmt.Errorf("scanning week bucket: %w", err)
		}
		if b.StartDate, err = time.Parse(dateLayout, start); err != nil {
			return fmt.Errorf("parsing bucket start date: %w", err)
		}
		if b.EndDate, err = time.Parse(dateLayout, end); err != nil {
			return fmt.Errorf("parsing bucket end date: %w", err)
		}
		state.Weeks = append(state.Weeks, b)
	}
	return rows.Err()
}

func (r *SQLiteScheduleRepo) loadTopics(ctx context.Context, state *domain.ScheduleState) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, color, original_week, current_week,
			studied, first_seen_at, lecture_only, lecture_and_review, review_only,
			study_dates, reviews_total, reviews_completed, review_dates,
			questions_attempted, questions_correct, questions_wrong,
			difficulty, migration_log, composite, source_topic_ids
		FROM scheduled_topics ORDER BY current_week, position`)
	if err != nil {
		return fmt.Errorf("loading scheduled topics: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return err
		}
		if t.CurrentWeek < 1 || t.CurrentWeek > len(state.Weeks) {
			return fmt.Errorf("topic %q references unknown week %d", t.Name, t.CurrentWeek)
		}
		bucket := &state.Weeks[t.CurrentWeek-1]
		bucket.Topics = append(bucket.Topics, t)
	}
	return rows.Err()
}

func scanTopic(rows *sql.Rows) (*domain.ScheduledTopic, error) {
	var t domain.ScheduledTopic
	var colorStr, studyDates, reviewDates, migrationLog, sourceIDs string
	var firstSeenAt sql.NullString
	var difficulty sql.NullInt64
	var studied, lectureOnly, lectureAndReview, reviewOnly, composite int

	err := rows.Scan(
		&t.ID, &t.Name, &colorStr, &t.OriginalWeek, &t.CurrentWeek,
		&studied, &firstSeenAt, &lectureOnly, &lectureAndReview, &reviewOnly,
		&studyDates, &t.ReviewsTotal, &t.ReviewsCompleted, &reviewDates,
		&t.QuestionsAttempted, &t.QuestionsCorrect, &t.QuestionsWrong,
		&difficulty, &migrationLog, &composite, &sourceIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning scheduled topic: %w", err)
	}

	t.Color = domain.Color(colorStr)
	t.Studied = studied != 0
	t.LectureOnly = lectureOnly != 0
	t.LectureAndReview = lectureAndReview != 0
	t.ReviewOnly = reviewOnly != 0
	t.Composite = composite != 0
	t.FirstSeenAt = parseNullableTime(firstSeenAt, time.RFC3339)
	t.Difficulty = nullableIntFromColumn(difficulty)

	if t.StudyDates, err = decodeTimes(studyDates); err != nil {
		return nil, err
	}
	if t.ReviewDates, err = decodeTimes(reviewDates); err != nil {
		return nil, err
	}
	if t.MigrationLog, err = decodeMigrations(migrationLog); err != nil {
		return nil, err
	}
	if t.SourceTopicIDs, err = decodeStrings(sourceIDs); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SQLiteScheduleRepo) loadComposites(ctx context.Context, state *domain.ScheduleState) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, color, source_ids, source_names, created_at
		FROM composite_topics ORDER BY created_at`)
	if err != nil {
		return fmt.Errorf("loading composite topics: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var comp domain.CompositeTopic
		var colorStr, sourceIDs, sourceNames, createdAt string
		if err := rows.Scan(&comp.ID, &comp.Name, &colorStr, &sourceIDs, &sourceNames, &createdAt); err != nil {
			return fmt.Errorf("scanning composite topic: %w", err)
		}
		comp.Color = domain.Color(colorStr)
		if comp.SourceIDs, err = decodeStrings(sourceIDs); err != nil {
			return err
		}
		if comp.SourceNames, err = decodeStrings(sourceNames); err != nil {
			return err
		}
		if comp.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return fmt.Errorf("parsing composite created_at: %w", err)
		}
		state.Composites = append(state.Composites, comp)
	}
	return rows.Err()
}

func encodeMigrations(log []domain.Migration) (string, error) {
	rows := make([]migrationRow, len(log))
	for i, m := range log {
		rows[i] = migrationRow{From: m.FromWeek, To: m.ToWeek, At: m.At.Format(time.RFC3339)}
	}
	return encodeJSON(rows)
}

func decodeMigrations(data string) ([]domain.Migration, error) {
	if data == "" {
		return nil, nil
	}
	var rows []migrationRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("decoding migration log: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	log := make([]domain.Migration, len(rows))
	for i, row := range rows {
		at, err := time.Parse(time.RFC3339, row.At)
		if err != nil {
			return nil, fmt.Errorf("decoding migration log entry %d: %w", i, err)
		}
		log[i] = domain.Migration{FromWeek: row.From, ToWeek: row.To, At: at}
	}
	return log, nil
}
