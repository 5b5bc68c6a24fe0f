package repository

import (
	"context"
	"errors"
	"time"

	"github.com/drgmb/revisa/internal/domain"
)

// ErrNotFound indicates the requested record does not exist locally.
var ErrNotFound = errors.New("not found")

// ScheduleRepo persists the local snapshot of the 30-week schedule. The
// spreadsheet backend stays the system of record; this snapshot keeps the
// schedule readable offline and mutations durable between syncs.
type ScheduleRepo interface {
	// Save replaces the whole stored schedule. Must run inside a
	// transaction when combined with other writes.
	Save(ctx context.Context, s *domain.ScheduleState) error
	Load(ctx context.Context) (*domain.ScheduleState, error)
	// SaveTopic updates one topic record in place.
	SaveTopic(ctx context.Context, t *domain.ScheduledTopic) error
}

// LogCacheRepo caches the last-fetched planned and actual logs.
type LogCacheRepo interface {
	ReplacePlanned(ctx context.Context, entries []domain.PlannedEntry) error
	ReplaceActual(ctx context.Context, entries []domain.ActualEntry) error
	ListPlanned(ctx context.Context) ([]domain.PlannedEntry, error)
	ListActual(ctx context.Context) ([]domain.ActualEntry, error)
	SetLastSynced(ctx context.Context, at time.Time) error
	// LastSynced returns nil when the logs were never fetched.
	LastSynced(ctx context.Context) (*time.Time, error)
}
