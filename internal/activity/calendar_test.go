package activity

import (
	"testing"
	"time"

	"github.com/drgmb/revisa/internal/domain"
	"github.com/drgmb/revisa/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountsByDate(t *testing.T) {
	day1 := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	counts := CountsByDate([]domain.PlannedEntry{
		testutil.Planned("Cardiologia", "Primeira vez", day1),
		testutil.Planned("Dermatologia", "Primeira vez", day1),
		testutil.Planned("Pediatria", "2ª revisão", day1),
		testutil.Planned("Cardiologia", "Revisão", day2),
	})

	require.Len(t, counts, 2)
	assert.Equal(t, DayCounts{FirstContact: 2, Reviews: 1}, counts["2026-03-09"])
	assert.Equal(t, DayCounts{Reviews: 1}, counts["2026-03-10"])
}

func TestCountsByDate_GroupsByCalendarDayNotTime(t *testing.T) {
	morning := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 9, 22, 0, 0, 0, time.UTC)

	counts := CountsByDate([]domain.PlannedEntry{
		testutil.Planned("Cardiologia", "Revisão", morning),
		testutil.Planned("Cardiologia", "Revisão", evening),
	})

	require.Len(t, counts, 1)
	assert.Equal(t, DayCounts{Reviews: 2}, counts["2026-03-09"])
}

func TestCountsByDate_Empty(t *testing.T) {
	assert.Empty(t, CountsByDate(nil))
}
