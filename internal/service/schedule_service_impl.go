package service

import (
	"context"
	"fmt"
	"time"

	"github.com/drgmb/revisa/internal/db"
	"github.com/drgmb/revisa/internal/domain"
	"github.com/drgmb/revisa/internal/repository"
	"github.com/drgmb/revisa/internal/schedule"
	"github.com/drgmb/revisa/internal/sheet"
)

type scheduleService struct {
	schedules repository.ScheduleRepo
	sheet     sheet.Client
	uow       db.UnitOfWork
}

func NewScheduleService(schedules repository.ScheduleRepo, client sheet.Client, uow db.UnitOfWork) ScheduleService {
	return &scheduleService{schedules: schedules, sheet: client, uow: uow}
}

func (s *scheduleService) Init(ctx context.Context, catalog domain.Catalog, startDate time.Time) (*domain.ScheduleState, error) {
	state := schedule.BuildInitialSchedule(catalog, startDate, time.Now())
	if err := s.persist(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *scheduleService) Get(ctx context.Context) (*domain.ScheduleState, error) {
	return s.schedules.Load(ctx)
}

func (s *scheduleService) Statistics(ctx context.Context) (schedule.Statistics, error) {
	state, err := s.schedules.Load(ctx)
	if err != nil {
		return schedule.Statistics{}, err
	}
	return schedule.ComputeStatistics(state), nil
}

func (s *scheduleService) Migrate(ctx context.Context, topicRef string, targetWeek int) (*domain.ScheduleState, error) {
	state, err := s.schedules.Load(ctx)
	if err != nil {
		return nil, err
	}
	topic, err := resolveTopic(state, topicRef)
	if err != nil {
		return nil, err
	}
	next, err := schedule.Migrate(state, topic.ID, targetWeek, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *scheduleService) Merge(ctx context.Context, topicRefs []string, name string, targetWeek int) (*domain.ScheduleState, error) {
	state, err := s.schedules.Load(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(topicRefs))
	for i, ref := range topicRefs {
		topic, err := resolveTopic(state, ref)
		if err != nil {
			return nil, err
		}
		ids[i] = topic.ID
	}
	next, err := schedule.MergeTopics(state, ids, name, targetWeek, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// persist stores the snapshot locally in one transaction, then pushes the
// whole state to the backend. The local snapshot is kept even when the push
// fails so the user can retry without losing the mutation.
func (s *scheduleService) persist(ctx context.Context, state *domain.ScheduleState) error {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteScheduleRepo(tx).Save(ctx, state)
	})
	if err != nil {
		return err
	}
	if err := s.sheet.SaveSchedule(ctx, state); err != nil {
		return fmt.Errorf("schedule saved locally, but pushing to the backend failed: %w", err)
	}
	return nil
}
