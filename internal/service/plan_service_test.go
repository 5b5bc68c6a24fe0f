package service

import (
	"context"
	"testing"
	"time"

	"github.com/drgmb/revisa/internal/domain"
	"github.com/drgmb/revisa/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanService_Append(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	entry := testutil.Planned("Cardiologia", "1ª revisão", refDay)
	require.NoError(t, env.plan.Append(ctx, entry))

	require.Len(t, env.sheet.appended, 1)
	assert.Equal(t, "Cardiologia", env.sheet.appended[0].TopicName)
}

func TestPlanService_AppendValidation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	tests := []struct {
		name  string
		entry domain.PlannedEntry
	}{
		{"missing topic", testutil.Planned("", "Revisão", refDay)},
		{"missing action", testutil.Planned("Cardiologia", "", refDay)},
		{"missing date", domain.PlannedEntry{TopicName: "Cardiologia", Action: "Revisão"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := env.plan.Append(ctx, tt.entry)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	assert.Empty(t, env.sheet.appended)
}

func TestPlanService_MoveAndRemove(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.plan.Move(ctx, "Pediatria", "Revisão", refDay, refDay.AddDate(0, 0, 2)))
	require.NoError(t, env.plan.Remove(ctx, "Pediatria", "Revisão", refDay))
	assert.Equal(t, []string{"Pediatria"}, env.sheet.edited)
	assert.Equal(t, []string{"Pediatria"}, env.sheet.removed)

	err := env.plan.Move(ctx, "", "Revisão", refDay, refDay)
	assert.ErrorIs(t, err, domain.ErrValidation)
	err = env.plan.Remove(ctx, "Pediatria", "Revisão", time.Time{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
