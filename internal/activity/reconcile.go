package activity

import (
	"time"

	"github.com/drgmb/revisa/internal/domain"
	"github.com/drgmb/revisa/internal/schedule"
	"github.com/google/uuid"
)

// OffPlanDetail qualifies an off-plan record: how far from its planned date
// the activity happened, if it was planned at all.
type OffPlanDetail struct {
	Kind        domain.OffPlanKind
	DaysDiff    int
	PlannedDate *time.Time
}

// Record is one classified activity event, ephemeral engine output.
type Record struct {
	ID           string
	TopicName    string
	TopicColor   domain.Color
	Kind         domain.ActivityKind
	ReviewNumber *int
	Status       domain.ActivityStatus

	ScheduledDate *time.Time
	PerformedAt   *time.Time
	PerformedTime string

	// DaysOffset is positive when performed late, negative when early.
	// Present only when a planned counterpart exists.
	DaysOffset *int

	QuestionsAttempted int
	QuestionsCorrect   int
	PercentCorrect     float64

	OffPlan *OffPlanDetail

	FromPlanned bool
	FromActual  bool
}

// Stats aggregates one day's classification.
type Stats struct {
	TotalPlanned       int
	TotalDone          int
	CompletionRate     float64
	AveragePerformance float64

	// Per-kind breakdown, computed from the classified records rather than
	// re-derived from the raw logs.
	PlannedFirstContact int
	DoneFirstContact    int
	PlannedReviews      int
	DoneReviews         int
}

// DayClassification is the result of reconciling the planned and actual logs
// for one reference day. Completed/Pending/Overdue/OffPlan are disjoint;
// FirstContactToday overlaps them (it is the subset of performed-today
// records whose kind is first contact).
type DayClassification struct {
	Completed         []Record
	Pending           []Record
	Overdue           []Record
	OffPlan           []Record
	FirstContactToday []Record
	Stats             Stats
}

// ClassifyDay cross-references a planned-log snapshot and an actual-log
// snapshot for the given reference day. The reference date is compared by
// calendar day only. catalog supplies topic colors; topics missing from it
// get an empty color. Inputs are assumed well-formed; empty logs produce an
// empty classification, never an error.
func ClassifyDay(planned []domain.PlannedEntry, actual []domain.ActualEntry, ref time.Time, catalog domain.Catalog) DayClassification {
	var out DayClassification

	var scheduledToday []domain.PlannedEntry
	for _, p := range planned {
		if sameDay(p.Date, ref) {
			scheduledToday = append(scheduledToday, p)
		}
	}
	var performedToday []domain.ActualEntry
	for _, a := range actual {
		if sameDay(a.Timestamp, ref) {
			performedToday = append(performedToday, a)
		}
	}

	// Planned-for-today entries become completed when a performed-today
	// entry with the same topic and kind exists, pending otherwise.
	matched := make([]bool, len(performedToday))
	for _, p := range scheduledToday {
		kind := ClassifyAction(p.Action)
		rec := plannedRecord(p, kind, catalog)

		found := -1
		for i, a := range performedToday {
			if !matched[i] && a.TopicName == p.TopicName && a.Kind() == kind {
				found = i
				break
			}
		}
		if found < 0 {
			rec.Status = domain.StatusPending
			out.Pending = append(out.Pending, rec)
			continue
		}
		matched[found] = true
		attachActual(&rec, performedToday[found])
		rec.Status = domain.StatusCompleted
		zero := 0
		rec.DaysOffset = &zero
		out.Completed = append(out.Completed, rec)
	}

	// Performed-today entries with no same-day planned counterpart of the
	// same topic+kind are off-plan: early, late-but-done, or extra.
	for _, a := range performedToday {
		if hasPlannedKind(scheduledToday, a.TopicName, a.Kind()) {
			continue
		}
		rec := actualRecord(a, catalog)
		rec.Status = domain.StatusOffPlan

		counterpart, ok := nearestPlanned(planned, a.TopicName, a.Kind(), ref)
		if !ok {
			rec.OffPlan = &OffPlanDetail{Kind: domain.OffPlanExtra}
			out.OffPlan = append(out.OffPlan, rec)
			continue
		}

		d := midnight(counterpart.Date)
		diff := daysBetween(ref, counterpart.Date)
		offset := diff
		rec.DaysOffset = &offset
		rec.ScheduledDate = &d
		if diff < 0 {
			rec.OffPlan = &OffPlanDetail{Kind: domain.OffPlanEarly, DaysDiff: -diff, PlannedDate: &d}
		} else {
			rec.OffPlan = &OffPlanDetail{Kind: domain.OffPlanLateButDone, DaysDiff: diff, PlannedDate: &d}
		}
		out.OffPlan = append(out.OffPlan, rec)
	}

	// Overdue is a standing condition: planned before the reference day and
	// never performed, whatever the reference day is.
	for _, p := range planned {
		if daysBetween(p.Date, ref) >= 0 {
			continue
		}
		kind := ClassifyAction(p.Action)
		if hasActualKind(actual, p.TopicName, kind) {
			continue
		}
		rec := plannedRecord(p, kind, catalog)
		rec.Status = domain.StatusOverdue
		out.Overdue = append(out.Overdue, rec)
	}

	for _, rec := range out.Completed {
		if rec.Kind == domain.KindFirstContact {
			out.FirstContactToday = append(out.FirstContactToday, rec)
		}
	}
	for _, rec := range out.OffPlan {
		if rec.Kind == domain.KindFirstContact {
			out.FirstContactToday = append(out.FirstContactToday, rec)
		}
	}

	out.Stats = computeStats(scheduledToday, out)
	return out
}

func computeStats(scheduledToday []domain.PlannedEntry, c DayClassification) Stats {
	s := Stats{
		TotalPlanned: len(scheduledToday),
		TotalDone:    len(c.Completed),
	}
	if s.TotalPlanned > 0 {
		s.CompletionRate = 100 * float64(s.TotalDone) / float64(s.TotalPlanned)
	}

	var perfSum float64
	var perfN int
	for _, rec := range c.Completed {
		if rec.QuestionsAttempted > 0 {
			perfSum += rec.PercentCorrect
			perfN++
		}
	}
	if perfN > 0 {
		s.AveragePerformance = perfSum / float64(perfN)
	}

	for _, rec := range c.Pending {
		countKind(&s, rec.Kind, false)
	}
	for _, rec := range c.Completed {
		countKind(&s, rec.Kind, true)
	}
	return s
}

func countKind(s *Stats, kind domain.ActivityKind, done bool) {
	if kind == domain.KindFirstContact {
		s.PlannedFirstContact++
		if done {
			s.DoneFirstContact++
		}
	} else {
		s.PlannedReviews++
		if done {
			s.DoneReviews++
		}
	}
}

func plannedRecord(p domain.PlannedEntry, kind domain.ActivityKind, catalog domain.Catalog) Record {
	d := midnight(p.Date)
	color, _ := catalog.ColorOf(p.TopicName)
	return Record{
		ID:            uuid.New().String(),
		TopicName:     p.TopicName,
		TopicColor:    color,
		Kind:          kind,
		ReviewNumber:  ReviewNumber(p.Action),
		ScheduledDate: &d,
		FromPlanned:   true,
	}
}

func actualRecord(a domain.ActualEntry, catalog domain.Catalog) Record {
	color, _ := catalog.ColorOf(a.TopicName)
	rec := Record{
		ID:         uuid.New().String(),
		TopicName:  a.TopicName,
		TopicColor: color,
		Kind:       a.Kind(),
		FromActual: true,
	}
	attachActual(&rec, a)
	return rec
}

func attachActual(rec *Record, a domain.ActualEntry) {
	at := a.Timestamp
	rec.PerformedAt = &at
	rec.PerformedTime = at.Format("15:04")
	rec.QuestionsAttempted = a.QuestionsAttempted
	rec.QuestionsCorrect = a.QuestionsCorrect
	rec.PercentCorrect = schedule.PercentCorrect(a.QuestionsCorrect, a.QuestionsAttempted)
	rec.FromActual = true
}

func hasPlannedKind(entries []domain.PlannedEntry, topic string, kind domain.ActivityKind) bool {
	for _, p := range entries {
		if p.TopicName == topic && ClassifyAction(p.Action) == kind {
			return true
		}
	}
	return false
}

func hasActualKind(entries []domain.ActualEntry, topic string, kind domain.ActivityKind) bool {
	for _, a := range entries {
		if a.TopicName == topic && a.Kind() == kind {
			return true
		}
	}
	return false
}

// nearestPlanned picks the planned counterpart closest to the reference day;
// ties go to the earlier date.
func nearestPlanned(planned []domain.PlannedEntry, topic string, kind domain.ActivityKind, ref time.Time) (domain.PlannedEntry, bool) {
	var best domain.PlannedEntry
	bestDist := -1
	for _, p := range planned {
		if p.TopicName != topic || ClassifyAction(p.Action) != kind {
			continue
		}
		dist := daysBetween(ref, p.Date)
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && p.Date.Before(best.Date)) {
			best = p
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}
