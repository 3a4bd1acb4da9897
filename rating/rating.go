package rating

import "frag-rating/model"

// ComputePlayerRating runs the four category scorers and the rating
// pipeline over one player's match stats. cal must be non-nil; use
// calibration.Default() for the production tables.
func ComputePlayerRating(p *model.PlayerMatchStats, cal CalibrationProvider) *model.RatingResult {
	counterStrafe := p.CounterStrafePercentage
	if counterStrafe == 0 {
		// 0 means the tracker had no movement samples for this player.
		counterStrafe = DefaultCounterStrafe
	}
	rawAim, effectiveAim := ComputeAimScore(p.HeadshotPercentage, p.KillsPerRound, p.DamagePerRound, counterStrafe)

	positioning := ComputePositioningScore(p.UntradeableDeathRatio, p.TradeSuccessRate, p.SurvivalRate)
	utility := ComputeUtilityScore(p.EnemiesBlinded, p.UtilityDamage, p.FlashesThrown)
	trueRaw, impact := ComputeImpactScore(p)

	scores := model.ScoreBundle{
		RawAim:      rawAim,
		Aim:         effectiveAim,
		Positioning: positioning,
		Utility:     utility,
		Impact:      impact,
		RawImpact:   trueRaw,
	}

	final := NewPipeline(cal).Compute(scores, p)
	return &model.RatingResult{Scores: scores, FinalRating: final}
}
