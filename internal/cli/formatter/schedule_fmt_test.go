package formatter

import (
	"testing"
	"time"

	"github.com/drgmb/revisa/internal/domain"
	"github.com/drgmb/revisa/internal/schedule"
	"github.com/drgmb/revisa/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildState(t *testing.T, topics int) *domain.ScheduleState {
	t.Helper()
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return schedule.BuildInitialSchedule(testutil.Catalog(topics), start, start)
}

func TestRenderSchedule_SkipsEmptyWeeks(t *testing.T) {
	state := buildState(t, 3)

	out := RenderSchedule(state, 0)
	assert.Contains(t, out, "Week 1")
	assert.Contains(t, out, "Week 3")
	assert.NotContains(t, out, "Week 4")
	assert.Contains(t, out, "Topic 1")
	assert.Contains(t, out, "02 Mar")
}

func TestRenderSchedule_SingleWeek(t *testing.T) {
	state := buildState(t, 3)

	out := RenderSchedule(state, 2)
	assert.Contains(t, out, "Week 2")
	assert.Contains(t, out, "Topic 2")
	assert.NotContains(t, out, "Week 1")
	assert.NotContains(t, out, "Topic 1")
}

func TestRenderSchedule_Empty(t *testing.T) {
	state := buildState(t, 0)
	assert.Contains(t, RenderSchedule(state, 0), "No topics scheduled")
}

func TestTopicLine_Decorations(t *testing.T) {
	state := buildState(t, 3)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	topic := schedule.MarkStudied(state.Weeks[0].Topics[0], now)
	topic, err := schedule.AddQuestions(topic, 10, 7)
	require.NoError(t, err)
	topic, err = schedule.SetDifficulty(topic, 4)
	require.NoError(t, err)
	topic = schedule.AddReview(topic, now)
	topic.MigrationLog = []domain.Migration{{FromWeek: 1, ToWeek: 2, At: now}}
	topic.CurrentWeek = 2

	line := TopicLine(topic)
	assert.Contains(t, line, "Topic 1")
	assert.Contains(t, line, "studied")
	assert.Contains(t, line, "1 review(s)")
	assert.Contains(t, line, "7/10 q (70.0%)")
	assert.Contains(t, line, "difficulty 4/5")
	assert.Contains(t, line, "moved from week 1")
}

func TestTopicLine_Composite(t *testing.T) {
	line := TopicLine(&domain.ScheduledTopic{
		Name:           "Bloco Fundido",
		Color:          domain.ColorRed,
		Composite:      true,
		SourceTopicIDs: []string{"a", "b"},
	})
	assert.Contains(t, line, "Bloco Fundido")
	assert.Contains(t, line, "merged ×2")
}

func TestRenderStatistics(t *testing.T) {
	out := RenderStatistics(schedule.Statistics{
		TotalTopics:       10,
		StudiedCount:      4,
		CompletionPercent: 40.0,
		MigratedCount:     2,
	})
	assert.Contains(t, out, "Schedule progress")
	assert.Contains(t, out, "10")
	assert.Contains(t, out, "4 (40.0%)")
	assert.Contains(t, out, "Migrated:  2")
}
