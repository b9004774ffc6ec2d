package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sabeel_backend/internals/features/mosques/model"
)

func TestScoreClampsComponentsAndTotal(t *testing.T) {
	// Component above its max counts only up to the max.
	got := Score([]WeightedComponent{
		{Name: "a", Points: 80, Max: 50},
		{Name: "b", Points: 10, Max: 30},
	})
	assert.Equal(t, 60, got)

	// Negative components count as zero.
	got = Score([]WeightedComponent{
		{Name: "a", Points: -10, Max: 50},
		{Name: "b", Points: 20, Max: 30},
	})
	assert.Equal(t, 20, got)

	// Total never exceeds 100.
	got = Score([]WeightedComponent{
		{Name: "a", Points: 60, Max: 60},
		{Name: "b", Points: 60, Max: 60},
	})
	assert.Equal(t, 100, got)

	assert.Equal(t, 0, Score(nil))
}

func TestTierForBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  model.NeedLevel
	}{
		{0, model.NeedLevelLow},
		{39, model.NeedLevelLow},
		{40, model.NeedLevelMedium},
		{69, model.NeedLevelMedium},
		{70, model.NeedLevelHigh},
		{100, model.NeedLevelHigh},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, TierFor(tc.score), "score=%d", tc.score)
	}
}
