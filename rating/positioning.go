package rating

// ComputePositioningScore converts death context into a 0-100 score. The
// baseline of 70 assumes acceptable positioning; untradeable deaths erode it
// at full weight while trading and survival partially restore it.
func ComputePositioningScore(untradeableRatio, tradeSuccess, survivalRate float64) int {
	score := PositioningBase -
		UntradeablePenaltyWeight*untradeableRatio +
		TradeSuccessWeight*tradeSuccess +
		SurvivalWeight*survivalRate
	return clampScore(score)
}
