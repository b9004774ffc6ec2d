package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sabeel_backend/internals/features/mosques/model"
)

func TestQuantityDeficitPoints(t *testing.T) {
	cases := []struct {
		name              string
		current, required int
		want              int
	}{
		{"zero required contributes nothing", 0, 0, 0},
		{"negative required contributes nothing", 10, -5, 0},
		{"under 20 percent", 10, 100, 60},
		{"exactly 20 percent", 20, 100, 40},
		{"under 50 percent", 49, 100, 40},
		{"exactly 50 percent", 50, 100, 20},
		{"under 80 percent", 79, 100, 20},
		{"exactly 80 percent", 80, 100, 0},
		{"fully stocked", 100, 100, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, quantityDeficitPoints(tc.current, tc.required))
		})
	}
}

func TestStalenessPoints(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	at := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo) }

	assert.Equal(t, 0, stalenessPoints(at(0), now))
	assert.Equal(t, 0, stalenessPoints(at(6), now))
	assert.Equal(t, 5, stalenessPoints(at(7), now))
	assert.Equal(t, 5, stalenessPoints(at(13), now))
	assert.Equal(t, 15, stalenessPoints(at(14), now))
	assert.Equal(t, 15, stalenessPoints(at(29), now))
	assert.Equal(t, 25, stalenessPoints(at(30), now))
	assert.Equal(t, 25, stalenessPoints(at(90), now))
}

func TestActiveFlagPoints(t *testing.T) {
	assert.Equal(t, 15, activeFlagPoints(true))
	assert.Equal(t, 0, activeFlagPoints(false))
}

// Near-empty line untouched for a month on an active product: the three
// components max out and the clamp holds the total at 100.
func TestCalculateSupplyNeedScoreMaxSeverity(t *testing.T) {
	svc := &SupplyNeedScoreService{}
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	sup := &model.MosqueSupplyModel{
		MosqueSupplyProductType:      model.ProductQuran,
		MosqueSupplyCurrentQuantity:  10,
		MosqueSupplyRequiredQuantity: 100,
		MosqueSupplyIsActive:         true,
		MosqueSupplyUpdatedAt:        now.AddDate(0, 0, -31),
	}

	score := svc.CalculateNeedScore(sup, now)
	require.Equal(t, 100, score)
	assert.Equal(t, model.NeedLevelHigh, TierFor(score))
}

func TestCalculateSupplyNeedScoreFreshAndStocked(t *testing.T) {
	svc := &SupplyNeedScoreService{}
	now := time.Now()

	sup := &model.MosqueSupplyModel{
		MosqueSupplyProductType:      model.ProductTissues,
		MosqueSupplyCurrentQuantity:  100,
		MosqueSupplyRequiredQuantity: 100,
		MosqueSupplyIsActive:         false,
		MosqueSupplyUpdatedAt:        now,
	}

	score := svc.CalculateNeedScore(sup, now)
	assert.Equal(t, 0, score)
	assert.Equal(t, model.NeedLevelLow, TierFor(score))
}

func TestCalculateSupplyNeedScoreBounded(t *testing.T) {
	svc := &SupplyNeedScoreService{}
	now := time.Now()

	for _, current := range []int{0, 5, 20, 50, 80, 100, 500} {
		for _, daysAgo := range []int{0, 7, 14, 30} {
			sup := &model.MosqueSupplyModel{
				MosqueSupplyCurrentQuantity:  current,
				MosqueSupplyRequiredQuantity: 100,
				MosqueSupplyIsActive:         true,
				MosqueSupplyUpdatedAt:        now.AddDate(0, 0, -daysAgo),
			}
			score := svc.CalculateNeedScore(sup, now)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}
