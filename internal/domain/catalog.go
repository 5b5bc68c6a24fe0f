package domain

import (
	"encoding/json"
	"fmt"
)

// Topic is one syllabus unit with a fixed relevance color. Catalog entries
// are loaded once at startup and never mutated.
type Topic struct {
	Name  string `json:"name"`
	Color Color  `json:"color"`
}

// Catalog is the ordered, immutable list of syllabus topics. Iteration order
// is the order topics were declared in, which the schedule builder relies on.
type Catalog []Topic

// ColorOf looks up the relevance color for a topic name.
func (c Catalog) ColorOf(name string) (Color, bool) {
	for _, t := range c {
		if t.Name == name {
			return t.Color, true
		}
	}
	return "", false
}

// ParseCatalog decodes a JSON topic list and validates names and colors.
func ParseCatalog(data []byte) (Catalog, error) {
	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	seen := make(map[string]bool, len(catalog))
	for i, t := range catalog {
		if t.Name == "" {
			return nil, Validationf("catalog entry %d has an empty name", i)
		}
		if seen[t.Name] {
			return nil, Validationf("duplicate catalog topic %q", t.Name)
		}
		seen[t.Name] = true
		if !ValidColors[t.Color] {
			return nil, Validationf("topic %q has unknown color %q", t.Name, t.Color)
		}
	}
	return catalog, nil
}
