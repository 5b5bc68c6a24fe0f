package service

import (
	"strings"

	"github.com/drgmb/revisa/internal/domain"
)

// resolveTopic locates a topic by exact id, exact name (case-insensitive) or
// unique case-insensitive name prefix.
func resolveTopic(state *domain.ScheduleState, ref string) (*domain.ScheduledTopic, error) {
	topics := state.AllTopics()
	for _, t := range topics {
		if t.ID == ref {
			return t, nil
		}
	}

	lower := strings.ToLower(ref)
	for _, t := range topics {
		if strings.ToLower(t.Name) == lower {
			return t, nil
		}
	}

	var matches []*domain.ScheduledTopic
	for _, t := range topics {
		if strings.HasPrefix(strings.ToLower(t.Name), lower) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, domain.Validationf("no topic matches %q", ref)
	default:
		names := make([]string, len(matches))
		for i, t := range matches {
			names[i] = t.Name
		}
		return nil, domain.Validationf("topic %q is ambiguous: %s", ref, strings.Join(names, ", "))
	}
}
