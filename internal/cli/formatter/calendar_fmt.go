package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/drgmb/revisa/internal/activity"
)

// RenderCalendar formats one month as a grid with per-day planned-activity
// density markers: first-contact count in blue, review count dimmed.
func RenderCalendar(month time.Time, counts map[string]activity.DayCounts) string {
	var b strings.Builder
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())

	fmt.Fprintf(&b, "%s\n", Header(first.Format("January 2006")))
	b.WriteString(Dim(" Mon  Tue  Wed  Thu  Fri  Sat  Sun") + "\n")

	// Monday-first column offset.
	offset := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("     ", offset))

	col := offset
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		c := counts[day.Format("2006-01-02")]
		b.WriteString(dayCell(day.Day(), c))
		col++
		if col%7 == 0 {
			b.WriteString("\n")
		}
	}
	if col%7 != 0 {
		b.WriteString("\n")
	}
	b.WriteString("\n" + Dim("first contact ") + StyleBlue.Render("▪") + Dim("  review ") + StyleYellow.Render("▪") + "\n")
	return b.String()
}

func dayCell(day int, c activity.DayCounts) string {
	cell := fmt.Sprintf("%3d", day)
	switch {
	case c.FirstContact > 0 && c.Reviews > 0:
		return cell + StyleBlue.Render("▪") + StyleYellow.Render("▪")
	case c.FirstContact > 0:
		return cell + StyleBlue.Render("▪") + " "
	case c.Reviews > 0:
		return cell + StyleYellow.Render("▪") + " "
	default:
		return cell + "  "
	}
}
