// Package rating implements the player performance rating system.
// This file defines all constants used in score calculations, including:
// - Normalization domains for the category scorers
// - Component weights for aim and utility
// - Impact point values and caps
// - Rating bounds
package rating

// Aim normalization domains. Values outside a domain saturate at 0 or 100.
const (
	AimHSMin  = 0.35 // Headshot percentage scoring 0
	AimHSMax  = 0.65 // Headshot percentage scoring 100
	AimKPRMin = 0.5  // Kills per round scoring 0
	AimKPRMax = 1.0  // Kills per round scoring 100
	AimADRMin = 60.0 // Damage per round scoring 0
	AimADRMax = 120.0
)

// Aim component weights - headshots and volume matter equally, damage slightly less.
const (
	AimHSWeight  = 0.35
	AimKPRWeight = 0.35
	AimADRWeight = 0.30
)

// DefaultCounterStrafe substitutes for players whose movement was not sampled.
const DefaultCounterStrafe = 80.0

// Positioning formula weights. Bad positioning erodes the baseline at full
// weight; trading and survival only partially restore it.
const (
	PositioningBase          = 70.0 // Default-good starting score
	UntradeablePenaltyWeight = 70.0
	TradeSuccessWeight       = 25.0
	SurvivalWeight           = 15.0
)

// Utility normalization targets and weights.
const (
	UtilityBlindTarget   = 10.0  // Enemies blinded scoring 100
	UtilityDamageTarget  = 200.0 // Utility damage scoring 100
	UtilityFlashesTarget = 15.0  // Flashes thrown scoring 100

	UtilityBlindWeight   = 0.4
	UtilityDamageWeight  = 0.3
	UtilityFlashesWeight = 0.3
)

// Impact point values - per-event contributions before capping.
const (
	WonRoundKillPoints  = 8.0 // Kills in won rounds carry the round
	LostRoundKillPoints = 0.5 // Kills in lost rounds barely count
	ExitFragKillCost    = 2.0 // Exit frags subtract from kill points

	OpeningKillPoints = 14.0 // Winning the opening duel
	OpeningLossPoints = 1.0  // Taking the duel still beats passivity
	EntryDeathCost    = 3.0

	Clutch1v1Points = 15.0
	Clutch1vNPoints = 35.0
	MultikillPoints = 8.0

	TradeableDeathCost   = 0.5
	UntradeableDeathCost = 4.0

	WPAPointValue = 15.0 // Rating points per unit of win probability added
)

// Impact caps - sub-scores are capped on the upper bound only; negative
// values flow through uncapped.
const (
	KillPointsCap   = 40.0
	EntryPointsCap  = 30.0
	ClutchPointsCap = 40.0

	ImpactSoftCap       = 120.0 // Raw impact above this is compressed
	ImpactSoftCapFactor = 0.3   // Fraction of the excess retained
)

// Death volume thresholds - high death counts attract escalating penalties.
const (
	OverDeathThreshold = 20  // Total deaths triggering the progressive surcharge
	OverDeathSurcharge = 3.0 // Extra penalty per death past the threshold

	DeathTaxHeavyDeaths  = 24
	DeathTaxHeavyMult    = 0.50
	DeathTaxMediumDeaths = 21
	DeathTaxMediumMult   = 0.60
	DeathTaxLightDeaths  = 18
	DeathTaxLightMult    = 0.80
)

// Rating pipeline constants.
const (
	RatingCenter = 50.0 // Rating at exactly the role's baseline mean
	RatingZScale = 25.0 // Rating points per standard deviation

	RatingFloor = 15.0 // No performance rates below this
	MinScore    = 0
	MaxScore    = 100
)
