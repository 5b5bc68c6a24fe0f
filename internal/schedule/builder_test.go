package schedule

import (
	"testing"
	"time"

	"github.com/drgmb/revisa/internal/domain"
	"github.com/drgmb/revisa/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testStart = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday
	testNow   = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func TestBuildInitialSchedule_EveryTopicInExactlyOneBucket(t *testing.T) {
	catalog := testutil.Catalog(61)
	state := BuildInitialSchedule(catalog, testStart, testNow)

	require.Len(t, state.Weeks, domain.WeekCount)

	seen := make(map[string]int)
	total := 0
	for _, w := range state.Weeks {
		for _, topic := range w.Topics {
			seen[topic.Name]++
			total++
			assert.Equal(t, w.Number, topic.CurrentWeek)
			assert.Equal(t, w.Number, topic.OriginalWeek)
		}
	}
	assert.Equal(t, len(catalog), total)
	for name, n := range seen {
		assert.Equal(t, 1, n, "topic %s appears %d times", name, n)
	}
}

func TestBuildInitialSchedule_StrictSlicing(t *testing.T) {
	// 61 topics over 30 weeks: perWeek = 3, so weeks 1..20 hold 3 topics,
	// week 21 holds the remainder of 1, the rest stay empty.
	state := BuildInitialSchedule(testutil.Catalog(61), testStart, testNow)

	for i := 0; i < 20; i++ {
		assert.Len(t, state.Weeks[i].Topics, 3, "week %d", i+1)
	}
	assert.Len(t, state.Weeks[20].Topics, 1)
	for i := 21; i < domain.WeekCount; i++ {
		assert.Empty(t, state.Weeks[i].Topics, "week %d", i+1)
	}

	// Catalog order is preserved within and across buckets.
	assert.Equal(t, "Topic 1", state.Weeks[0].Topics[0].Name)
	assert.Equal(t, "Topic 4", state.Weeks[1].Topics[0].Name)
	assert.Equal(t, "Topic 61", state.Weeks[20].Topics[0].Name)
}

func TestBuildInitialSchedule_ContiguousWeeks(t *testing.T) {
	state := BuildInitialSchedule(testutil.Catalog(10), testStart, testNow)

	for i, w := range state.Weeks {
		assert.Equal(t, i+1, w.Number)
		assert.Equal(t, w.StartDate.AddDate(0, 0, 6), w.EndDate, "week %d span", w.Number)
		if i > 0 {
			prev := state.Weeks[i-1]
			assert.Equal(t, prev.StartDate.AddDate(0, 0, 7), w.StartDate,
				"week %d should start 7 days after week %d", w.Number, prev.Number)
		}
	}
	assert.Equal(t, testStart, state.Weeks[0].StartDate)
}

func TestBuildInitialSchedule_EmptyCatalog(t *testing.T) {
	state := BuildInitialSchedule(nil, testStart, testNow)

	require.Len(t, state.Weeks, domain.WeekCount)
	for _, w := range state.Weeks {
		assert.Empty(t, w.Topics)
	}
	assert.Equal(t, testNow, state.CreatedAt)
	assert.Equal(t, testNow, state.LastUpdatedAt)
}

func TestBuildInitialSchedule_ZeroedCounters(t *testing.T) {
	state := BuildInitialSchedule(testutil.Catalog(3), testStart, testNow)

	topic := state.Weeks[0].Topics[0]
	assert.NotEmpty(t, topic.ID)
	assert.False(t, topic.Studied)
	assert.Nil(t, topic.FirstSeenAt)
	assert.Zero(t, topic.ReviewsCompleted)
	assert.Zero(t, topic.QuestionsAttempted)
	assert.Empty(t, topic.StudyDates)
	assert.Empty(t, topic.MigrationLog)
}
