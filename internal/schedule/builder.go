package schedule

import (
	"time"

	"github.com/drgmb/revisa/internal/domain"
	"github.com/google/uuid"
)

// BuildInitialSchedule partitions the catalog into 30 ordered week buckets
// starting at startDate. Topics are sliced strictly by perWeek = ceil(T/30)
// in catalog order; whatever remains past the 29th bucket is clamped into
// week 30, so the last bucket may be under-full but never over-full.
// An empty catalog yields 30 empty buckets.
func BuildInitialSchedule(catalog domain.Catalog, startDate time.Time, now time.Time) *domain.ScheduleState {
	state := &domain.ScheduleState{
		Weeks:         make([]domain.WeekBucket, domain.WeekCount),
		CreatedAt:     now,
		LastUpdatedAt: now,
	}

	start := midnight(startDate)
	for i := range state.Weeks {
		ws := start.AddDate(0, 0, 7*i)
		state.Weeks[i] = domain.WeekBucket{
			Number:    i + 1,
			StartDate: ws,
			EndDate:   ws.AddDate(0, 0, 6),
		}
	}

	perWeek := (len(catalog) + domain.WeekCount - 1) / domain.WeekCount
	for i, topic := range catalog {
		week := i/perWeek + 1
		if week > domain.WeekCount {
			week = domain.WeekCount
		}
		bucket := &state.Weeks[week-1]
		bucket.Topics = append(bucket.Topics, newScheduledTopic(topic, week))
	}

	return state
}

func newScheduledTopic(t domain.Topic, week int) *domain.ScheduledTopic {
	return &domain.ScheduledTopic{
		ID:           uuid.New().String(),
		Name:         t.Name,
		Color:        t.Color,
		OriginalWeek: week,
		CurrentWeek:  week,
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
