package rating

// CounterStrafeCurve maps counter-strafe quality (0-100) to an aim
// multiplier. Sloppy movement while shooting costs up to 40% of the raw
// aim score.
var CounterStrafeCurve = NewBreakpointCurve([]Breakpoint{
	{Threshold: 95, Multiplier: 1.00},
	{Threshold: 85, Multiplier: 0.92},
	{Threshold: 75, Multiplier: 0.82},
	{Threshold: 65, Multiplier: 0.72},
	{Threshold: 60, Multiplier: 0.60},
})

// ComputeAimScore combines headshot percentage, kills per round and damage
// per round into a raw 0-100 aim score, then applies the counter-strafe
// penalty curve for the effective score.
func ComputeAimScore(hsPercent, kpr, adr, counterStrafe float64) (rawAim, effectiveAim int) {
	hsScore := Normalize(hsPercent, AimHSMin, AimHSMax)
	kprScore := Normalize(kpr, AimKPRMin, AimKPRMax)
	adrScore := Normalize(adr, AimADRMin, AimADRMax)

	raw := float64(hsScore)*AimHSWeight + float64(kprScore)*AimKPRWeight + float64(adrScore)*AimADRWeight
	rawAim = clampScore(raw)

	multiplier := CounterStrafeCurve.Eval(counterStrafe)
	effectiveAim = clampScore(raw * multiplier)
	return rawAim, effectiveAim
}
