package service

import (
	"context"
	"time"

	"github.com/drgmb/revisa/internal/activity"
	"github.com/drgmb/revisa/internal/domain"
	"github.com/drgmb/revisa/internal/schedule"
)

type ScheduleService interface {
	// Init builds the initial 30-week schedule from the catalog, stores the
	// snapshot locally and pushes it to the backend.
	Init(ctx context.Context, catalog domain.Catalog, startDate time.Time) (*domain.ScheduleState, error)
	Get(ctx context.Context) (*domain.ScheduleState, error)
	Statistics(ctx context.Context) (schedule.Statistics, error)
	// Migrate moves a topic (referenced by id or name) to another week.
	Migrate(ctx context.Context, topicRef string, targetWeek int) (*domain.ScheduleState, error)
	// Merge combines two or more topics into one composite record.
	Merge(ctx context.Context, topicRefs []string, name string, targetWeek int) (*domain.ScheduleState, error)
}

type StudyService interface {
	MarkStudied(ctx context.Context, topicRef string) (*domain.ScheduledTopic, error)
	AddReview(ctx context.Context, topicRef string) (*domain.ScheduledTopic, error)
	AddQuestions(ctx context.Context, topicRef string, attempted, correct int) (*domain.ScheduledTopic, error)
	SetDifficulty(ctx context.Context, topicRef string, rating int) (*domain.ScheduledTopic, error)
}

type PlanService interface {
	Append(ctx context.Context, e domain.PlannedEntry) error
	Move(ctx context.Context, topic, action string, oldDate, newDate time.Time) error
	Remove(ctx context.Context, topic, action string, date time.Time) error
}

// SyncResult summarizes one fetch of both logs from the backend.
type SyncResult struct {
	PlannedCount int
	ActualCount  int
	SyncedAt     time.Time
}

type ActivityService interface {
	// Sync fetches both logs from the backend and replaces the local cache.
	Sync(ctx context.Context) (*SyncResult, error)
	// ClassifyDay reconciles the cached logs for the given day. With refresh
	// set, or when the logs were never fetched, it syncs first.
	ClassifyDay(ctx context.Context, ref time.Time, refresh bool) (*activity.DayClassification, error)
	Calendar(ctx context.Context, refresh bool) (map[string]activity.DayCounts, error)
	LastSynced(ctx context.Context) (*time.Time, error)
}
