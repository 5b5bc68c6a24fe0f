package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/drgmb/revisa/internal/domain"
	"github.com/drgmb/revisa/internal/repository"
	"github.com/drgmb/revisa/internal/sheet"
	"github.com/drgmb/revisa/internal/testutil"
)

// fakeSheet records every call and serves canned log snapshots, standing in
// for the spreadsheet backend.
type fakeSheet struct {
	planned []domain.PlannedEntry
	actual  []domain.ActualEntry

	fetchErr error
	saveErr  error

	savedTopics    []*domain.ScheduledTopic
	savedSchedules []*domain.ScheduleState
	appended       []domain.PlannedEntry
	edited         []string
	removed        []string
}

var _ sheet.Client = (*fakeSheet)(nil)

func (f *fakeSheet) FetchPlanned(ctx context.Context) ([]domain.PlannedEntry, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.planned, nil
}

func (f *fakeSheet) FetchActual(ctx context.Context) ([]domain.ActualEntry, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.actual, nil
}

func (f *fakeSheet) SaveTopic(ctx context.Context, t *domain.ScheduledTopic) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedTopics = append(f.savedTopics, t)
	return nil
}

func (f *fakeSheet) SaveSchedule(ctx context.Context, s *domain.ScheduleState) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedSchedules = append(f.savedSchedules, s)
	return nil
}

func (f *fakeSheet) AppendPlanned(ctx context.Context, e domain.PlannedEntry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.appended = append(f.appended, e)
	return nil
}

func (f *fakeSheet) EditPlanned(ctx context.Context, topic, action string, oldDate, newDate time.Time) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.edited = append(f.edited, topic)
	return nil
}

func (f *fakeSheet) RemovePlanned(ctx context.Context, topic, action string, date time.Time) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.removed = append(f.removed, topic)
	return nil
}

// testEnv wires the services over an in-memory database and a fake backend.
type testEnv struct {
	db       *sql.DB
	sheet    *fakeSheet
	schedule ScheduleService
	study    StudyService
	plan     PlanService
	activity ActivityService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	fake := &fakeSheet{}
	schedules := repository.NewSQLiteScheduleRepo(database)
	logs := repository.NewSQLiteLogCacheRepo(database)
	return &testEnv{
		db:       database,
		sheet:    fake,
		schedule: NewScheduleService(schedules, fake, uow),
		study:    NewStudyService(schedules, fake, uow),
		plan:     NewPlanService(fake),
		activity: NewActivityService(logs, schedules, fake, uow),
	}
}
