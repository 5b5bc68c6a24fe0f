package testutil

import (
	"fmt"
	"time"

	"github.com/drgmb/revisa/internal/domain"
)

// Catalog builds a test catalog of n topics named "Topic 1".."Topic n" with
// colors cycling through the relevance palette.
func Catalog(n int) domain.Catalog {
	colors := []domain.Color{domain.ColorGreen, domain.ColorYellow, domain.ColorRed, domain.ColorPurple}
	catalog := make(domain.Catalog, n)
	for i := 0; i < n; i++ {
		catalog[i] = domain.Topic{
			Name:  fmt.Sprintf("Topic %d", i+1),
			Color: colors[i%len(colors)],
		}
	}
	return catalog
}

// Planned builds a planned-log entry for the given day.
func Planned(topic, action string, date time.Time) domain.PlannedEntry {
	return domain.PlannedEntry{Date: date, TopicName: topic, Action: action}
}

// Performed builds an actual-log entry performed at the given time.
func Performed(topic string, attendedLecture bool, at time.Time) domain.ActualEntry {
	return domain.ActualEntry{TopicName: topic, AttendedLecture: attendedLecture, Timestamp: at}
}

// PerformedWithQuestions builds an actual-log entry carrying question data.
func PerformedWithQuestions(topic string, attendedLecture bool, at time.Time, attempted, correct int) domain.ActualEntry {
	e := Performed(topic, attendedLecture, at)
	e.QuestionsAttempted = attempted
	e.QuestionsCorrect = correct
	return e
}
