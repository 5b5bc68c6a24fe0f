package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func TestScheduledTopic_Clone_DeepCopies(t *testing.T) {
	seen := testNow.Add(-time.Hour)
	difficulty := 4
	orig := &ScheduledTopic{
		ID:           "t1",
		Name:         "Cardiologia",
		Color:        ColorRed,
		OriginalWeek: 3,
		CurrentWeek:  5,
		Studied:      true,
		FirstSeenAt:  &seen,
		StudyDates:   []time.Time{seen},
		ReviewDates:  []time.Time{testNow},
		Difficulty:   &difficulty,
		MigrationLog: []Migration{{FromWeek: 3, ToWeek: 5, At: testNow}},
	}

	clone := orig.Clone()
	clone.StudyDates = append(clone.StudyDates, testNow)
	clone.MigrationLog[0].ToWeek = 7
	*clone.Difficulty = 1
	*clone.FirstSeenAt = testNow

	assert.Len(t, orig.StudyDates, 1, "study dates should not leak into the original")
	assert.Equal(t, 5, orig.MigrationLog[0].ToWeek)
	assert.Equal(t, 4, *orig.Difficulty)
	assert.Equal(t, seen, *orig.FirstSeenAt)
}

func TestScheduledTopic_Migrated(t *testing.T) {
	topic := &ScheduledTopic{OriginalWeek: 3, CurrentWeek: 3}
	assert.False(t, topic.Migrated())
	topic.CurrentWeek = 8
	assert.True(t, topic.Migrated())
}

func TestScheduleState_FindTopic(t *testing.T) {
	state := &ScheduleState{
		Weeks: []WeekBucket{
			{Number: 1, Topics: []*ScheduledTopic{{ID: "a"}}},
			{Number: 2, Topics: []*ScheduledTopic{{ID: "b"}, {ID: "c"}}},
		},
	}

	topic, bucket, ok := state.FindTopic("c")
	require.True(t, ok)
	assert.Equal(t, "c", topic.ID)
	assert.Equal(t, 1, bucket)

	_, _, ok = state.FindTopic("missing")
	assert.False(t, ok)
}

func TestActualEntry_Kind(t *testing.T) {
	assert.Equal(t, KindFirstContact, ActualEntry{AttendedLecture: true}.Kind())
	assert.Equal(t, KindReview, ActualEntry{AttendedLecture: false}.Kind())
}
