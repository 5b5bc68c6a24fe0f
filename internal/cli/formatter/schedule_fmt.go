package formatter

import (
	"fmt"
	"strings"

	"github.com/drgmb/revisa/internal/domain"
	"github.com/drgmb/revisa/internal/schedule"
)

// RenderSchedule formats the 30-week grid. week = 0 renders every non-empty
// bucket; otherwise only the requested one.
func RenderSchedule(state *domain.ScheduleState, week int) string {
	var b strings.Builder
	for i := range state.Weeks {
		bucket := &state.Weeks[i]
		if week != 0 && bucket.Number != week {
			continue
		}
		if week == 0 && len(bucket.Topics) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s %s\n",
			Header(fmt.Sprintf("Week %d", bucket.Number)),
			Dim(fmt.Sprintf("%s – %s", bucket.StartDate.Format("02 Jan"), bucket.EndDate.Format("02 Jan"))))
		for _, t := range bucket.Topics {
			b.WriteString("  " + TopicLine(t) + "\n")
		}
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return Dim("No topics scheduled.") + "\n"
	}
	return b.String()
}

// TopicLine formats one scheduled topic as a single line.
func TopicLine(t *domain.ScheduledTopic) string {
	parts := []string{RelevanceDot(t.Color), t.Name}
	if t.Composite {
		parts = append(parts, StylePurple.Render(fmt.Sprintf("[merged ×%d]", len(t.SourceTopicIDs))))
	}
	if t.Studied {
		parts = append(parts, StyleGreen.Render("✓ studied"))
	}
	if t.ReviewsCompleted > 0 {
		parts = append(parts, Dim(fmt.Sprintf("%d review(s)", t.ReviewsCompleted)))
	}
	if t.QuestionsAttempted > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d q (%.1f%%)",
			t.QuestionsCorrect, t.QuestionsAttempted,
			schedule.PercentCorrect(t.QuestionsCorrect, t.QuestionsAttempted)))
	}
	if t.Difficulty != nil {
		parts = append(parts, Dim(fmt.Sprintf("difficulty %d/5", *t.Difficulty)))
	}
	if t.Migrated() {
		parts = append(parts, StyleYellow.Render(fmt.Sprintf("moved from week %d", t.OriginalWeek)))
	}
	return strings.Join(parts, " ")
}

// RenderStatistics formats aggregate schedule progress.
func RenderStatistics(s schedule.Statistics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", Header("Schedule progress"))
	fmt.Fprintf(&b, "  Topics:    %d\n", s.TotalTopics)
	fmt.Fprintf(&b, "  Studied:   %d (%.1f%%)\n", s.StudiedCount, s.CompletionPercent)
	fmt.Fprintf(&b, "  Migrated:  %d\n", s.MigratedCount)
	return b.String()
}
