package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/drgmb/revisa/internal/activity"
	"github.com/drgmb/revisa/internal/domain"
)

// RenderDay formats one day's reconciliation for the terminal.
func RenderDay(day time.Time, c *activity.DayClassification) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n", Header("Activity for"), StyleBold.Render(day.Format("Mon 02 Jan 2006")))

	renderBucket(&b, "Completed", c.Completed)
	renderBucket(&b, "Pending", c.Pending)
	renderBucket(&b, "Overdue", c.Overdue)
	renderBucket(&b, "Off-plan", c.OffPlan)

	if len(c.FirstContactToday) > 0 {
		fmt.Fprintf(&b, "%s %d topic(s) seen for the first time today\n\n",
			StyleBlue.Render("★"), len(c.FirstContactToday))
	}

	b.WriteString(renderDayStats(c.Stats))
	return b.String()
}

func renderBucket(b *strings.Builder, title string, records []activity.Record) {
	if len(records) == 0 {
		return
	}
	fmt.Fprintf(b, "%s\n", Header(title))
	for _, rec := range records {
		b.WriteString("  " + RecordLine(rec) + "\n")
	}
	b.WriteString("\n")
}

// RecordLine formats one classified record as a single line.
func RecordLine(rec activity.Record) string {
	var parts []string
	parts = append(parts, RelevanceDot(rec.TopicColor), StatusLabel(rec.Status), rec.TopicName)

	if rec.Kind == domain.KindFirstContact {
		parts = append(parts, Dim("first contact"))
	} else if rec.ReviewNumber != nil {
		parts = append(parts, Dim(fmt.Sprintf("review #%d", *rec.ReviewNumber)))
	} else {
		parts = append(parts, Dim("review"))
	}

	if rec.PerformedTime != "" {
		parts = append(parts, Dim("at "+rec.PerformedTime))
	}
	if rec.QuestionsAttempted > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d (%.1f%%)",
			rec.QuestionsCorrect, rec.QuestionsAttempted, rec.PercentCorrect))
	}
	if rec.OffPlan != nil {
		parts = append(parts, offPlanNote(rec.OffPlan))
	}
	return strings.Join(parts, " ")
}

func offPlanNote(d *activity.OffPlanDetail) string {
	switch d.Kind {
	case domain.OffPlanEarly:
		return StyleBlue.Render(fmt.Sprintf("%d day(s) early", d.DaysDiff))
	case domain.OffPlanLateButDone:
		return StyleYellow.Render(fmt.Sprintf("%d day(s) late, done", d.DaysDiff))
	default:
		return StylePurple.Render("not planned")
	}
}

func renderDayStats(s activity.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d/%d done (%.0f%%)",
		Header("Today:"), s.TotalDone, s.TotalPlanned, s.CompletionRate)
	if s.AveragePerformance > 0 {
		fmt.Fprintf(&b, ", avg performance %.1f%%", s.AveragePerformance)
	}
	fmt.Fprintf(&b, "\n%s first contact %d/%d, reviews %d/%d\n",
		Dim("By kind:"), s.DoneFirstContact, s.PlannedFirstContact, s.DoneReviews, s.PlannedReviews)
	return b.String()
}
