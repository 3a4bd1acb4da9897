// Package predict holds hand-written logistic models for round-win and
// player-impact forecasting. The coefficients are explicit constants
// rather than fitted parameters, and every prediction reports the
// per-factor contributions that produced it.
package predict

import "math"

// sigmoid maps log-odds to probability, clamping the exponent so extreme
// feature values cannot overflow.
func sigmoid(x float64) float64 {
	x = math.Max(-20, math.Min(20, x))
	return 1.0 / (1.0 + math.Exp(-x))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
