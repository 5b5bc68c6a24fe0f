package repository

import (
	"context"
	"testing"
	"time"

	"github.com/drgmb/revisa/internal/domain"
	"github.com/drgmb/revisa/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogCacheRepo(t *testing.T) *SQLiteLogCacheRepo {
	t.Helper()
	return NewSQLiteLogCacheRepo(testutil.NewTestDB(t))
}

func TestLogCache_PlannedRoundtrip(t *testing.T) {
	ctx := context.Background()
	repo := newLogCacheRepo(t)

	week := 3
	entries := []domain.PlannedEntry{
		{Date: testStart, TopicName: "Cardiologia", Action: "Primeira vez", Week: &week},
		{Date: testStart.AddDate(0, 0, 1), TopicName: "Pediatria", Action: "2ª revisão"},
	}
	require.NoError(t, repo.ReplacePlanned(ctx, entries))

	got, err := repo.ListPlanned(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Cardiologia", got[0].TopicName)
	assert.Equal(t, "Primeira vez", got[0].Action)
	assert.Equal(t, testStart, got[0].Date)
	require.NotNil(t, got[0].Week)
	assert.Equal(t, 3, *got[0].Week)
	assert.Nil(t, got[1].Week)
}

func TestLogCache_ActualRoundtrip(t *testing.T) {
	ctx := context.Background()
	repo := newLogCacheRepo(t)

	ts := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	entries := []domain.ActualEntry{
		testutil.PerformedWithQuestions("Cardiologia", true, ts, 10, 7),
		testutil.Performed("Pediatria", false, ts.Add(2*time.Hour)),
	}
	require.NoError(t, repo.ReplaceActual(ctx, entries))

	got, err := repo.ListActual(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Cardiologia", got[0].TopicName)
	assert.True(t, got[0].AttendedLecture)
	assert.True(t, got[0].Timestamp.Equal(ts))
	assert.Equal(t, 10, got[0].QuestionsAttempted)
	assert.Equal(t, 7, got[0].QuestionsCorrect)
	assert.False(t, got[1].AttendedLecture)
}

func TestLogCache_ReplaceDiscardsPrevious(t *testing.T) {
	ctx := context.Background()
	repo := newLogCacheRepo(t)

	require.NoError(t, repo.ReplacePlanned(ctx, []domain.PlannedEntry{
		testutil.Planned("Cardiologia", "Revisão", testStart),
		testutil.Planned("Pediatria", "Revisão", testStart),
	}))
	require.NoError(t, repo.ReplacePlanned(ctx, []domain.PlannedEntry{
		testutil.Planned("Dermatologia", "Primeira vez", testStart),
	}))

	got, err := repo.ListPlanned(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Dermatologia", got[0].TopicName)
}

func TestLogCache_PreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := newLogCacheRepo(t)

	var entries []domain.PlannedEntry
	for i := 0; i < 5; i++ {
		entries = append(entries, testutil.Planned("Topic", "Revisão", testStart.AddDate(0, 0, 4-i)))
	}
	require.NoError(t, repo.ReplacePlanned(ctx, entries))

	got, err := repo.ListPlanned(ctx)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i, e := range entries {
		assert.Equal(t, e.Date, got[i].Date, "row %d", i)
	}
}

func TestLogCache_LastSynced(t *testing.T) {
	ctx := context.Background()
	repo := newLogCacheRepo(t)

	got, err := repo.LastSynced(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	first := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SetLastSynced(ctx, first))
	got, err = repo.LastSynced(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(first))

	// Upsert: a later sync overwrites.
	second := first.Add(6 * time.Hour)
	require.NoError(t, repo.SetLastSynced(ctx, second))
	got, err = repo.LastSynced(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(second))
}
