package schedule

import (
	"sort"
	"time"

	"github.com/drgmb/revisa/internal/domain"
	"github.com/google/uuid"
)

// The engine operations return updated copies. Callers are expected to
// persist the returned value; the input topic/state is never mutated.

// MarkStudied records the first study of a topic: sets the studied flag,
// stamps FirstSeenAt on first call and appends to the study-date trail.
// Repeated calls are a guarded no-op so the trail records only real
// first-study events.
func MarkStudied(t *domain.ScheduledTopic, now time.Time) *domain.ScheduledTopic {
	c := t.Clone()
	if c.Studied {
		return c
	}
	c.Studied = true
	if c.FirstSeenAt == nil {
		at := now
		c.FirstSeenAt = &at
	}
	c.StudyDates = append(c.StudyDates, now)
	return c
}

// AddReview counts one completed review. There is no upper bound against
// ReviewsTotal: a topic may accumulate more reviews than were scheduled.
func AddReview(t *domain.ScheduledTopic, now time.Time) *domain.ScheduledTopic {
	c := t.Clone()
	c.ReviewsCompleted++
	c.ReviewDates = append(c.ReviewDates, now)
	return c
}

// AddQuestions adds one batch of question results to the topic's running
// totals. Requires attempted > 0 and 0 <= correct <= attempted.
func AddQuestions(t *domain.ScheduledTopic, attempted, correct int) (*domain.ScheduledTopic, error) {
	if attempted <= 0 {
		return nil, domain.Validationf("attempted must be positive, got %d", attempted)
	}
	if correct < 0 || correct > attempted {
		return nil, domain.Validationf("correct must be between 0 and %d, got %d", attempted, correct)
	}
	c := t.Clone()
	c.QuestionsAttempted += attempted
	c.QuestionsCorrect += correct
	c.QuestionsWrong += attempted - correct
	return c, nil
}

// SetDifficulty replaces the topic's difficulty rating (1..5).
func SetDifficulty(t *domain.ScheduledTopic, rating int) (*domain.ScheduledTopic, error) {
	if rating < 1 || rating > 5 {
		return nil, domain.Validationf("difficulty rating must be 1..5, got %d", rating)
	}
	c := t.Clone()
	c.Difficulty = &rating
	return c, nil
}

// Migrate moves a topic to another week bucket in a single state transition:
// the migration log entry, the CurrentWeek update and the bucket move are
// applied together on the returned copy. OriginalWeek is never touched.
func Migrate(state *domain.ScheduleState, topicID string, targetWeek int, now time.Time) (*domain.ScheduleState, error) {
	if targetWeek < 1 || targetWeek > domain.WeekCount {
		return nil, domain.Validationf("target week %d is outside 1..%d", targetWeek, domain.WeekCount)
	}

	next := state.Clone()
	topic, from, ok := next.FindTopic(topicID)
	if !ok {
		return nil, domain.Validationf("topic %q is not in the schedule", topicID)
	}
	if topic.CurrentWeek == targetWeek {
		return nil, domain.Validationf("topic %q is already in week %d", topic.Name, targetWeek)
	}

	topic.MigrationLog = append(topic.MigrationLog, domain.Migration{
		FromWeek: topic.CurrentWeek,
		ToWeek:   targetWeek,
		At:       now,
	})
	topic.CurrentWeek = targetWeek

	next.Weeks[from].Topics = removeTopic(next.Weeks[from].Topics, topicID)
	next.Weeks[targetWeek-1].Topics = append(next.Weeks[targetWeek-1].Topics, topic)
	next.LastUpdatedAt = now
	return next, nil
}

// MergeTopics replaces two or more topics with one composite record placed in
// targetWeek (0 means the earliest current week among the sources). Counters
// and dates are summed, the studied flag is OR-ed and an audit entry is kept
// in state.Composites.
func MergeTopics(state *domain.ScheduleState, topicIDs []string, name string, targetWeek int, now time.Time) (*domain.ScheduleState, error) {
	if len(topicIDs) < 2 {
		return nil, domain.Validationf("merging requires at least 2 topics, got %d", len(topicIDs))
	}
	if name == "" {
		return nil, domain.Validationf("composite name must not be empty")
	}
	if targetWeek != 0 && (targetWeek < 1 || targetWeek > domain.WeekCount) {
		return nil, domain.Validationf("target week %d is outside 1..%d", targetWeek, domain.WeekCount)
	}

	next := state.Clone()
	sources := make([]*domain.ScheduledTopic, 0, len(topicIDs))
	seen := make(map[string]bool, len(topicIDs))
	for _, id := range topicIDs {
		if seen[id] {
			return nil, domain.Validationf("topic %q listed twice in merge", id)
		}
		seen[id] = true
		t, _, ok := next.FindTopic(id)
		if !ok {
			return nil, domain.Validationf("topic %q is not in the schedule", id)
		}
		if t.Composite {
			return nil, domain.Validationf("topic %q is already a composite", t.Name)
		}
		sources = append(sources, t)
	}

	composite := buildComposite(sources, name, now)
	if targetWeek == 0 {
		targetWeek = sources[0].CurrentWeek
		for _, s := range sources[1:] {
			if s.CurrentWeek < targetWeek {
				targetWeek = s.CurrentWeek
			}
		}
	}
	composite.OriginalWeek = targetWeek
	composite.CurrentWeek = targetWeek

	for _, s := range sources {
		_, idx, _ := next.FindTopic(s.ID)
		next.Weeks[idx].Topics = removeTopic(next.Weeks[idx].Topics, s.ID)
	}
	next.Weeks[targetWeek-1].Topics = append(next.Weeks[targetWeek-1].Topics, composite)

	audit := domain.CompositeTopic{
		ID:        composite.ID,
		Name:      name,
		Color:     composite.Color,
		CreatedAt: now,
	}
	for _, s := range sources {
		audit.SourceIDs = append(audit.SourceIDs, s.ID)
		audit.SourceNames = append(audit.SourceNames, s.Name)
	}
	next.Composites = append(next.Composites, audit)
	next.LastUpdatedAt = now
	return next, nil
}

// UpdateTopic swaps one topic record into the state copy, keeping it in its
// current bucket. Used by callers applying a single-topic engine operation.
func UpdateTopic(state *domain.ScheduleState, topic *domain.ScheduledTopic, now time.Time) (*domain.ScheduleState, error) {
	next := state.Clone()
	_, idx, ok := next.FindTopic(topic.ID)
	if !ok {
		return nil, domain.Validationf("topic %q is not in the schedule", topic.ID)
	}
	bucket := next.Weeks[idx].Topics
	for i, t := range bucket {
		if t.ID == topic.ID {
			bucket[i] = topic.Clone()
			break
		}
	}
	next.LastUpdatedAt = now
	return next, nil
}

// buildComposite aggregates source records into one. Color precedence follows
// relevance: red over purple over yellow over green.
func buildComposite(sources []*domain.ScheduledTopic, name string, now time.Time) *domain.ScheduledTopic {
	c := &domain.ScheduledTopic{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     sources[0].Color,
		Composite: true,
	}
	for _, s := range sources {
		c.SourceTopicIDs = append(c.SourceTopicIDs, s.ID)
		if colorRank(s.Color) > colorRank(c.Color) {
			c.Color = s.Color
		}
		c.Studied = c.Studied || s.Studied
		c.LectureOnly = c.LectureOnly || s.LectureOnly
		c.LectureAndReview = c.LectureAndReview || s.LectureAndReview
		c.ReviewOnly = c.ReviewOnly || s.ReviewOnly
		c.StudyDates = append(c.StudyDates, s.StudyDates...)
		c.ReviewsTotal += s.ReviewsTotal
		c.ReviewsCompleted += s.ReviewsCompleted
		c.ReviewDates = append(c.ReviewDates, s.ReviewDates...)
		c.QuestionsAttempted += s.QuestionsAttempted
		c.QuestionsCorrect += s.QuestionsCorrect
		c.QuestionsWrong += s.QuestionsWrong
		if s.FirstSeenAt != nil && (c.FirstSeenAt == nil || s.FirstSeenAt.Before(*c.FirstSeenAt)) {
			at := *s.FirstSeenAt
			c.FirstSeenAt = &at
		}
	}
	sortTimes(c.StudyDates)
	sortTimes(c.ReviewDates)
	return c
}

func colorRank(c domain.Color) int {
	switch c {
	case domain.ColorRed:
		return 3
	case domain.ColorPurple:
		return 2
	case domain.ColorYellow:
		return 1
	default:
		return 0
	}
}

func removeTopic(topics []*domain.ScheduledTopic, id string) []*domain.ScheduledTopic {
	out := topics[:0]
	for _, t := range topics {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

func sortTimes(ts []time.Time) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].Before(ts[j]) })
}
