package service

import (
	"sabeel_backend/internals/features/mosques/model"
)

// WeightedComponent is one contribution to a need score. The formula
// itself carries no domain knowledge; each scorer builds its own set.
type WeightedComponent struct {
	Name   string
	Points int
	Max    int
}

// Score sums component contributions (each saturated at its own max,
// floored at 0) and clamps the total to [0,100]. Deterministic:
// identical inputs always yield the same output.
func Score(components []WeightedComponent) int {
	total := 0
	for _, comp := range components {
		p := comp.Points
		if p < 0 {
			p = 0
		}
		if comp.Max > 0 && p > comp.Max {
			p = comp.Max
		}
		total += p
	}
	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return total
}

// TierFor maps a need score onto its tier. Boundaries are fixed at 40
// and 70 and shared by the water and supply scorers.
func TierFor(score int) model.NeedLevel {
	switch {
	case score >= 70:
		return model.NeedLevelHigh
	case score >= 40:
		return model.NeedLevelMedium
	default:
		return model.NeedLevelLow
	}
}
