package rating

import "math"

// Normalize rescales value into an integer 0-100 score over the domain
// [min, max]. Values at or below min score 0, values at or above max score
// 100. A degenerate domain (max <= min) returns 0 rather than dividing by
// zero.
func Normalize(value, min, max float64) int {
	if max <= min {
		return 0
	}
	if value <= min {
		return 0
	}
	if value >= max {
		return 100
	}
	return int(math.Round((value - min) / (max - min) * 100))
}

// clampScore truncates a raw score into the displayable 0-100 integer range.
func clampScore(v float64) int {
	return int(math.Max(float64(MinScore), math.Min(float64(MaxScore), v)))
}
