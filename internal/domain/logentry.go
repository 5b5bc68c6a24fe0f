package domain

import "time"

// PlannedEntry is one row of the planned log: what was scheduled for a given
// calendar date. The record comes from the external backend and is read-only
// here. Action is free text; its study kind is derived by the activity
// classifier, never stored.
type PlannedEntry struct {
	Date      time.Time
	TopicName string
	Action    string
	Week      *int
}

// ActualEntry is one row of the actual log: a study event that really
// happened, with a full timestamp and optional question results.
type ActualEntry struct {
	TopicName          string
	AttendedLecture    bool
	Timestamp          time.Time
	QuestionsAttempted int
	QuestionsCorrect   int
}

// Kind maps the attended-lecture flag to a study kind. Unlike planned
// entries, actual entries carry a structured flag rather than free text.
func (e ActualEntry) Kind() ActivityKind {
	if e.AttendedLecture {
		return KindFirstContact
	}
	return KindReview
}
