package service

import (
	"context"
	"time"

	"github.com/drgmb/revisa/internal/domain"
	"github.com/drgmb/revisa/internal/sheet"
)

// planService forwards planned-log edits to the backend, which owns the
// planned log. The local cache catches up on the next sync.
type planService struct {
	sheet sheet.Client
}

func NewPlanService(client sheet.Client) PlanService {
	return &planService{sheet: client}
}

func (s *planService) Append(ctx context.Context, e domain.PlannedEntry) error {
	if e.TopicName == "" {
		return domain.Validationf("planned entry needs a topic")
	}
	if e.Action == "" {
		return domain.Validationf("planned entry needs an action")
	}
	if e.Date.IsZero() {
		return domain.Validationf("planned entry needs a date")
	}
	return s.sheet.AppendPlanned(ctx, e)
}

func (s *planService) Move(ctx context.Context, topic, action string, oldDate, newDate time.Time) error {
	if topic == "" {
		return domain.Validationf("planned entry needs a topic")
	}
	if oldDate.IsZero() || newDate.IsZero() {
		return domain.Validationf("moving a planned entry needs both dates")
	}
	return s.sheet.EditPlanned(ctx, topic, action, oldDate, newDate)
}

func (s *planService) Remove(ctx context.Context, topic, action string, date time.Time) error {
	if topic == "" {
		return domain.Validationf("planned entry needs a topic")
	}
	if date.IsZero() {
		return domain.Validationf("removing a planned entry needs a date")
	}
	return s.sheet.RemovePlanned(ctx, topic, action, date)
}
