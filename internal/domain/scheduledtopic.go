package domain

import "time"

// Migration records one move of a topic between week buckets.
type Migration struct {
	FromWeek int
	ToWeek   int
	At       time.Time
}

// ScheduledTopic is the mutable study-progress record for one syllabus topic.
// OriginalWeek is set at creation and never changes; CurrentWeek moves via
// migration. The record belongs to exactly one week bucket at a time.
type ScheduledTopic struct {
	ID           string
	Name         string
	Color        Color
	OriginalWeek int
	CurrentWeek  int

	Studied     bool
	FirstSeenAt *time.Time

	// Study-mode flags, non-exclusive.
	LectureOnly      bool
	LectureAndReview bool
	ReviewOnly       bool

	StudyDates []time.Time

	ReviewsTotal     int
	ReviewsCompleted int
	ReviewDates      []time.Time

	QuestionsAttempted int
	QuestionsCorrect   int
	QuestionsWrong     int

	Difficulty *int

	MigrationLog []Migration

	// Composite marks a record that merges two or more original topics.
	Composite      bool
	SourceTopicIDs []string
}

// Migrated reports whether the topic has ever left its original week.
func (t *ScheduledTopic) Migrated() bool {
	return t.OriginalWeek != t.CurrentWeek
}

// Clone returns a deep copy. Engine operations mutate clones only, so callers
// holding the previous state never observe partial updates.
func (t *ScheduledTopic) Clone() *ScheduledTopic {
	c := *t
	c.StudyDates = append([]time.Time(nil), t.StudyDates...)
	c.ReviewDates = append([]time.Time(nil), t.ReviewDates...)
	c.MigrationLog = append([]Migration(nil), t.MigrationLog...)
	c.SourceTopicIDs = append([]string(nil), t.SourceTopicIDs...)
	if t.FirstSeenAt != nil {
		at := *t.FirstSeenAt
		c.FirstSeenAt = &at
	}
	if t.Difficulty != nil {
		d := *t.Difficulty
		c.Difficulty = &d
	}
	return &c
}
