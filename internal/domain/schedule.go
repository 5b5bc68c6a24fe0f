package domain

import "time"

// WeekCount is the fixed length of the study plan in weeks.
const WeekCount = 30

// WeekBucket holds the topics assigned to one 7-day span of the plan.
// Buckets are contiguous and non-overlapping: EndDate = StartDate + 6 days
// and the next bucket starts the day after.
type WeekBucket struct {
	Number    int
	StartDate time.Time
	EndDate   time.Time
	Topics    []*ScheduledTopic
}

// CompositeTopic is the audit record kept when several original topics are
// merged into one composite ScheduledTopic. It references its sources so the
// merge can be inspected or reversed later.
type CompositeTopic struct {
	ID          string
	Name        string
	Color       Color
	SourceIDs   []string
	SourceNames []string
	CreatedAt   time.Time
}

// ScheduleState is the full 30-week assignment of topics.
type ScheduleState struct {
	Weeks         []WeekBucket
	CreatedAt     time.Time
	LastUpdatedAt time.Time
	Composites    []CompositeTopic
}

// Clone returns a deep copy of the state, including every topic record.
func (s *ScheduleState) Clone() *ScheduleState {
	c := &ScheduleState{
		CreatedAt:     s.CreatedAt,
		LastUpdatedAt: s.LastUpdatedAt,
		Weeks:         make([]WeekBucket, len(s.Weeks)),
	}
	for i, w := range s.Weeks {
		bucket := w
		bucket.Topics = make([]*ScheduledTopic, len(w.Topics))
		for j, t := range w.Topics {
			bucket.Topics[j] = t.Clone()
		}
		c.Weeks[i] = bucket
	}
	for _, comp := range s.Composites {
		cp := comp
		cp.SourceIDs = append([]string(nil), comp.SourceIDs...)
		cp.SourceNames = append([]string(nil), comp.SourceNames...)
		c.Composites = append(c.Composites, cp)
	}
	return c
}

// FindTopic locates a topic by ID, returning the record and the index of the
// bucket holding it.
func (s *ScheduleState) FindTopic(id string) (*ScheduledTopic, int, bool) {
	for i := range s.Weeks {
		for _, t := range s.Weeks[i].Topics {
			if t.ID == id {
				return t, i, true
			}
		}
	}
	return nil, 0, false
}

// AllTopics returns every topic in week order, bucket order preserved.
func (s *ScheduleState) AllTopics() []*ScheduledTopic {
	var topics []*ScheduledTopic
	for i := range s.Weeks {
		topics = append(topics, s.Weeks[i].Topics...)
	}
	return topics
}

// Catalog derives a topic→color catalog view from the scheduled topics,
// used by the activity engine for color lookup.
func (s *ScheduleState) Catalog() Catalog {
	var catalog Catalog
	for _, t := range s.AllTopics() {
		catalog = append(catalog, Topic{Name: t.Name, Color: t.Color})
	}
	return catalog
}
