package activity

import "time"

// midnight truncates a timestamp to its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// daysBetween returns a-b in whole calendar days, ignoring time of day.
func daysBetween(a, b time.Time) int {
	return int(midnight(a).Sub(midnight(b)).Hours() / 24)
}
