package rating

import "frag-rating/model"

// ComputeUtilityScore converts flash and utility usage into a 0-100 score.
// When all three inputs are zero there is no utility data at all and the
// unavailable sentinel is returned instead of a zero score.
func ComputeUtilityScore(enemiesBlinded, utilityDamage, flashesThrown int) model.UtilityScore {
	if enemiesBlinded == 0 && utilityDamage == 0 && flashesThrown == 0 {
		return model.UtilityUnavailable()
	}

	blindScore := Normalize(float64(enemiesBlinded), 0, UtilityBlindTarget)
	damageScore := Normalize(float64(utilityDamage), 0, UtilityDamageTarget)
	usageScore := Normalize(float64(flashesThrown), 0, UtilityFlashesTarget)

	score := float64(blindScore)*UtilityBlindWeight +
		float64(damageScore)*UtilityDamageWeight +
		float64(usageScore)*UtilityFlashesWeight
	return model.UtilityValue(clampScore(score))
}
