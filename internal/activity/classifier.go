package activity

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/drgmb/revisa/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// The planned log stores its action as free text ("Primeira vez",
// "2ª revisão", ...). This is the single authoritative classifier for that
// text; every consumer (reconciliation, calendar aggregation, diary
// grouping) must go through it rather than re-implement the matching.

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeAction strips diacritics, folds case and trims the action text.
func NormalizeAction(s string) string {
	stripped, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		stripped = s
	}
	return strings.ToLower(strings.TrimSpace(stripped))
}

// ClassifyAction derives the study kind from planned-log action text:
// text containing "primeira"/"primeiro" or equal to "1" means first contact,
// anything else is a review.
func ClassifyAction(s string) domain.ActivityKind {
	n := NormalizeAction(s)
	if n == "1" || strings.Contains(n, "primeira") || strings.Contains(n, "primeiro") {
		return domain.KindFirstContact
	}
	return domain.KindReview
}

// ReviewNumber extracts the ordinal from review action text such as
// "2ª revisão", or nil when the text carries no number or names a first
// contact.
func ReviewNumber(s string) *int {
	if ClassifyAction(s) != domain.KindReview {
		return nil
	}
	n := NormalizeAction(s)
	start := -1
	for i, r := range n {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return parseNumber(n[start:i])
		}
	}
	if start >= 0 {
		return parseNumber(n[start:])
	}
	return nil
}

func parseNumber(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
