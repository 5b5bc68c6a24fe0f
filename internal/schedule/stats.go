package schedule

import (
	"math"

	"github.com/drgmb/revisa/internal/domain"
)

// Statistics summarizes aggregate progress over the whole schedule.
type Statistics struct {
	TotalTopics       int
	StudiedCount      int
	CompletionPercent float64
	MigratedCount     int
}

// ComputeStatistics walks all buckets once. An empty schedule yields zeroes.
func ComputeStatistics(state *domain.ScheduleState) Statistics {
	var s Statistics
	for i := range state.Weeks {
		for _, t := range state.Weeks[i].Topics {
			s.TotalTopics++
			if t.Studied {
				s.StudiedCount++
			}
			if t.Migrated() {
				s.MigratedCount++
			}
		}
	}
	if s.TotalTopics > 0 {
		s.CompletionPercent = 100 * float64(s.StudiedCount) / float64(s.TotalTopics)
	}
	return s
}

// PercentCorrect returns the correct-answer rate rounded to one decimal
// place, or 0 when nothing was attempted.
func PercentCorrect(correct, attempted int) float64 {
	if attempted == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(attempted)*1000) / 10
}
