package activity

import "github.com/drgmb/revisa/internal/domain"

// DayCounts is the per-date density marker used by calendar rendering.
type DayCounts struct {
	FirstContact int
	Reviews      int
}

// CountsByDate folds the planned log into a per-ISO-date activity count
// index, grouping by calendar day and classifying each entry's action text
// with the shared classifier.
func CountsByDate(planned []domain.PlannedEntry) map[string]DayCounts {
	counts := make(map[string]DayCounts, len(planned))
	for _, p := range planned {
		key := p.Date.Format("2006-01-02")
		c := counts[key]
		if ClassifyAction(p.Action) == domain.KindFirstContact {
			c.FirstContact++
		} else {
			c.Reviews++
		}
		counts[key] = c
	}
	return counts
}
