package service

import (
	"context"
	"time"

	"github.com/drgmb/revisa/internal/activity"
	"github.com/drgmb/revisa/internal/db"
	"github.com/drgmb/revisa/internal/domain"
	"github.com/drgmb/revisa/internal/repository"
	"github.com/drgmb/revisa/internal/sheet"
)

type activityService struct {
	logs      repository.LogCacheRepo
	schedules repository.ScheduleRepo
	sheet     sheet.Client
	uow       db.UnitOfWork
}

func NewActivityService(logs repository.LogCacheRepo, schedules repository.ScheduleRepo, client sheet.Client, uow db.UnitOfWork) ActivityService {
	return &activityService{logs: logs, schedules: schedules, sheet: client, uow: uow}
}

func (s *activityService) Sync(ctx context.Context) (*SyncResult, error) {
	planned, err := s.sheet.FetchPlanned(ctx)
	if err != nil {
		return nil, err
	}
	actual, err := s.sheet.FetchActual(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		cache := repository.NewSQLiteLogCacheRepo(tx)
		if err := cache.ReplacePlanned(ctx, planned); err != nil {
			return err
		}
		if err := cache.ReplaceActual(ctx, actual); err != nil {
			return err
		}
		return cache.SetLastSynced(ctx, now)
	})
	if err != nil {
		return nil, err
	}
	return &SyncResult{PlannedCount: len(planned), ActualCount: len(actual), SyncedAt: now}, nil
}

func (s *activityService) ClassifyDay(ctx context.Context, ref time.Time, refresh bool) (*activity.DayClassification, error) {
	planned, actual, err := s.loadLogs(ctx, refresh)
	if err != nil {
		return nil, err
	}
	result := activity.ClassifyDay(planned, actual, ref, s.catalog(ctx))
	return &result, nil
}

func (s *activityService) Calendar(ctx context.Context, refresh bool) (map[string]activity.DayCounts, error) {
	planned, _, err := s.loadLogs(ctx, refresh)
	if err != nil {
		return nil, err
	}
	return activity.CountsByDate(planned), nil
}

func (s *activityService) LastSynced(ctx context.Context) (*time.Time, error) {
	return s.logs.LastSynced(ctx)
}

func (s *activityService) loadLogs(ctx context.Context, refresh bool) ([]domain.PlannedEntry, []domain.ActualEntry, error) {
	if !refresh {
		synced, err := s.logs.LastSynced(ctx)
		if err != nil {
			return nil, nil, err
		}
		refresh = synced == nil
	}
	if refresh {
		if _, err := s.Sync(ctx); err != nil {
			return nil, nil, err
		}
	}
	planned, err := s.logs.ListPlanned(ctx)
	if err != nil {
		return nil, nil, err
	}
	actual, err := s.logs.ListActual(ctx)
	if err != nil {
		return nil, nil, err
	}
	return planned, actual, nil
}

// catalog derives topic colors from the stored schedule. Classification does
// not need a schedule, so a missing snapshot just means uncolored records.
func (s *activityService) catalog(ctx context.Context) domain.Catalog {
	state, err := s.schedules.Load(ctx)
	if err != nil {
		return nil
	}
	return state.Catalog()
}
