package activity

import (
	"testing"

	"github.com/drgmb/revisa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyAction(t *testing.T) {
	tests := []struct {
		action string
		want   domain.ActivityKind
	}{
		{"Primeira vez", domain.KindFirstContact},
		{"primeira", domain.KindFirstContact},
		{"PRIMEIRO contato", domain.KindFirstContact},
		{"Primeiro Contato", domain.KindFirstContact},
		{"1", domain.KindFirstContact},
		{"  1  ", domain.KindFirstContact},
		{"1ª revisão", domain.KindReview},
		{"2ª revisão", domain.KindReview},
		{"Revisão", domain.KindReview},
		{"revisao", domain.KindReview},
		{"", domain.KindReview},
		{"anything else", domain.KindReview},
	}
	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyAction(tt.action))
		})
	}
}

func TestNormalizeAction_StripsDiacritics(t *testing.T) {
	assert.Equal(t, "revisao", NormalizeAction("Revisão"))
	assert.Equal(t, "primeira vez", NormalizeAction("  PRIMEIRA Vez "))
	assert.Equal(t, "3ª revisao", NormalizeAction("3ª Revisão"))
}

func TestReviewNumber(t *testing.T) {
	num := func(s string) *int { return ReviewNumber(s) }

	got := num("2ª revisão")
	require.NotNil(t, got)
	assert.Equal(t, 2, *got)

	got = num("Revisão 12")
	require.NotNil(t, got)
	assert.Equal(t, 12, *got)

	assert.Nil(t, num("Revisão"))
	assert.Nil(t, num("Primeira vez"))
	// "1" alone is a first contact, not review number 1.
	assert.Nil(t, num("1"))
}
