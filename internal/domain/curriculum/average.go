package curriculum

import "math"

// WeightedAverage returns the credit-weighted mean score of the passed
// modules among mods, rounded to two decimals, or 0.0 if none passed.
//
// A passed module without an examination still adds its credits to the
// denominator. That state can only arise through SetStatus.
func WeightedAverage(mods []*Module) float64 {
	var weighted float64
	var credits int

	for _, m := range mods {
		if !m.IsPassed() {
			continue
		}
		credits += m.Credits()
		if score, ok := m.Grade(); ok {
			weighted += score * float64(m.Credits())
		}
	}

	if credits == 0 {
		return 0.0
	}
	return round2(weighted / float64(credits))
}

// EarnedCredits sums the credits of the passed modules.
func EarnedCredits(mods []*Module) int {
	total := 0
	for _, m := range mods {
		if m.IsPassed() {
			total += m.Credits()
		}
	}
	return total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
