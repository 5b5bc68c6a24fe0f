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

type studyService struct {
	schedules repository.ScheduleRepo
	sheet     sheet.Client
	uow       db.UnitOfWork
}

func NewStudyService(schedules repository.ScheduleRepo, client sheet.Client, uow db.UnitOfWork) StudyService {
	return &studyService{schedules: schedules, sheet: client, uow: uow}
}

func (s *studyService) MarkStudied(ctx context.Context, topicRef string) (*domain.ScheduledTopic, error) {
	return s.mutate(ctx, topicRef, func(t *domain.ScheduledTopic) (*domain.ScheduledTopic, error) {
		return schedule.MarkStudied(t, time.Now()), nil
	})
}

func (s *studyService) AddReview(ctx context.Context, topicRef string) (*domain.ScheduledTopic, error) {
	return s.mutate(ctx, topicRef, func(t *domain.ScheduledTopic) (*domain.ScheduledTopic, error) {
		return schedule.AddReview(t, time.Now()), nil
	})
}

func (s *studyService) AddQuestions(ctx context.Context, topicRef string, attempted, correct int) (*domain.ScheduledTopic, error) {
	return s.mutate(ctx, topicRef, func(t *domain.ScheduledTopic) (*domain.ScheduledTopic, error) {
		return schedule.AddQuestions(t, attempted, correct)
	})
}

func (s *studyService) SetDifficulty(ctx context.Context, topicRef string, rating int) (*domain.ScheduledTopic, error) {
	return s.mutate(ctx, topicRef, func(t *domain.ScheduledTopic) (*domain.ScheduledTopic, error) {
		return schedule.SetDifficulty(t, rating)
	})
}

// mutate applies one single-topic engine operation, saves the updated record
// locally and pushes it to the backend keyed by its stable id.
func (s *studyService) mutate(ctx context.Context, topicRef string, op func(*domain.ScheduledTopic) (*domain.ScheduledTopic, error)) (*domain.ScheduledTopic, error) {
	state, err := s.schedules.Load(ctx)
	if err != nil {
		return nil, err
	}
	topic, err := resolveTopic(state, topicRef)
	if err != nil {
		return nil, err
	}
	updated, err := op(topic)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteScheduleRepo(tx).SaveTopic(ctx, updated)
	})
	if err != nil {
		return nil, err
	}
	if err := s.sheet.SaveTopic(ctx, updated); err != nil {
		return nil, fmt.Errorf("topic saved locally, but pushing to the backend failed: %w", err)
	}
	return updated, nil
}
