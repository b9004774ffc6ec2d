package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sabeel_backend/internals/features/mosques/model"
)

func newScoringMosque(current, required int, active bool) *model.MosqueModel {
	return &model.MosqueModel{
		MosqueCurrentWaterLevel:  current,
		MosqueRequiredWaterLevel: required,
		MosqueIsActive:           active,
	}
}

func TestWaterLevelPoints(t *testing.T) {
	cases := []struct {
		name              string
		current, required int
		want              int
	}{
		{"zero required never contributes", 0, 0, 0},
		{"zero required with stock", 500, 0, 0},
		{"below 20 percent is max severity", 100, 1000, 50},
		{"just under 20 percent", 199, 1000, 50},
		{"exactly 20 percent leaves the max band", 200, 1000, 40},
		{"half full", 500, 1000, 25},
		{"full", 1000, 1000, 0},
		{"overfull", 1500, 1000, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, waterLevelPoints(tc.current, tc.required))
		})
	}
}

func TestTimeSinceDeliveryPoints(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 30, timeSinceDeliveryPoints(nil, now), "no delivered delivery ever")

	at := func(daysAgo int) *time.Time {
		ts := now.AddDate(0, 0, -daysAgo)
		return &ts
	}
	assert.Equal(t, 0, timeSinceDeliveryPoints(at(0), now))
	assert.Equal(t, 0, timeSinceDeliveryPoints(at(6), now))
	assert.Equal(t, 0, timeSinceDeliveryPoints(at(7), now))
	assert.Equal(t, 13, timeSinceDeliveryPoints(at(17), now))
	assert.Equal(t, 28, timeSinceDeliveryPoints(at(29), now))
	assert.Equal(t, 30, timeSinceDeliveryPoints(at(30), now))
	assert.Equal(t, 30, timeSinceDeliveryPoints(at(365), now))
}

func TestHistoricalUsagePoints(t *testing.T) {
	// avg/month over 3 months as a percentage of required.
	assert.Equal(t, 0, historicalUsagePoints(0, 1000))
	assert.Equal(t, 0, historicalUsagePoints(600, 1000))   // 20% -> not above
	assert.Equal(t, 5, historicalUsagePoints(900, 1000))   // 30%
	assert.Equal(t, 10, historicalUsagePoints(1800, 1000)) // 60%
	assert.Equal(t, 15, historicalUsagePoints(2700, 1000)) // 90%
	assert.Equal(t, 0, historicalUsagePoints(5000, 0), "required 0 contributes nothing")
}

func TestGeographicBasePoints(t *testing.T) {
	assert.Equal(t, 2, geographicBasePoints(true))
	assert.Equal(t, 0, geographicBasePoints(false))
}

// Half-full tank, a month since the last delivery, no recent usage:
// 25 + 30 + 0 + 2 = 57 -> Medium.
func TestCalculateNeedScoreHalfFullStaleDelivery(t *testing.T) {
	svc := &NeedScoreService{}
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	last := now.AddDate(0, 0, -30)

	mosque := newScoringMosque(500, 1000, true)
	hist := DeliveryHistory{LastDeliveredAt: &last, LitersLastThreeMonths: 0}

	score := svc.CalculateNeedScore(mosque, hist, now)
	require.Equal(t, 57, score)
	assert.Equal(t, model.NeedLevelMedium, TierFor(score))
}

func TestCalculateNeedScoreWorstCase(t *testing.T) {
	svc := &NeedScoreService{}
	now := time.Now()

	mosque := newScoringMosque(0, 1000, true)
	hist := DeliveryHistory{LastDeliveredAt: nil, LitersLastThreeMonths: 2700}

	// 50 + 30 + 15 + 2, clamped nowhere: 97.
	score := svc.CalculateNeedScore(mosque, hist, now)
	assert.Equal(t, 97, score)
	assert.Equal(t, model.NeedLevelHigh, TierFor(score))
}

func TestCalculateNeedScoreIsDeterministicAndBounded(t *testing.T) {
	svc := &NeedScoreService{}
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	last := now.AddDate(0, 0, -12)

	for _, current := range []int{0, 100, 250, 500, 999, 1000, 2000} {
		mosque := newScoringMosque(current, 1000, true)
		hist := DeliveryHistory{LastDeliveredAt: &last, LitersLastThreeMonths: 1500}

		first := svc.CalculateNeedScore(mosque, hist, now)
		second := svc.CalculateNeedScore(mosque, hist, now)
		assert.Equal(t, first, second)
		assert.GreaterOrEqual(t, first, 0)
		assert.LessOrEqual(t, first, 100)
	}
}

// More water on hand never raises the score, all else equal.
func TestCalculateNeedScoreMonotoneInWaterLevel(t *testing.T) {
	svc := &NeedScoreService{}
	now := time.Now()
	hist := DeliveryHistory{}

	prev := 101
	for current := 0; current <= 1200; current += 50 {
		score := svc.CalculateNeedScore(newScoringMosque(current, 1000, true), hist, now)
		assert.LessOrEqualf(t, score, prev, "current=%d", current)
		prev = score
	}
}
