package predict

import (
	"math"

	"frag-rating/model"
)

// Impact probabilities are bounded harder than win probabilities since a
// single player's influence is noisier.
const (
	MinImpactProbability = 0.10
	MaxImpactProbability = 0.90
)

// PlayerCoefficients are the log-odds weights of the player-impact
// model.
type PlayerCoefficients struct {
	// Historical performance.
	AvgRating   float64
	Consistency float64

	// Role fit. Effectiveness needs the per-role scouting feed and is
	// not read yet.
	RoleExperience    float64
	RoleEffectiveness float64

	// Round context.
	EconomyComfort float64
	ManAdvantage   float64

	// Recent errors.
	RecentMistakes float64

	// Lineup chemistry. Waits on duo-pairing data.
	TeamSynergy float64

	Intercept float64
}

// DefaultPlayerCoefficients returns the hand-calibrated weights.
func DefaultPlayerCoefficients() *PlayerCoefficients {
	return &PlayerCoefficients{
		AvgRating:         0.30,
		Consistency:       0.15,
		RoleExperience:    0.10,
		RoleEffectiveness: 0.12,
		EconomyComfort:    0.08,
		ManAdvantage:      0.10,
		RecentMistakes:    -0.15,
		TeamSynergy:       0.05,
		Intercept:         0.0,
	}
}

// PlayerFeatures describes one player's situation going into a round.
// AvgRating lives on the 1.0-centred historical match scale; divide a
// 0-100 rating by 50 before feeding it in.
type PlayerFeatures struct {
	AvgRating      float64
	RatingVariance float64

	CurrentRole   model.Role
	PrimaryRole   model.Role
	RoleFrequency float64 // share of rounds played in CurrentRole

	EquipmentValue int
	PreferredValue int // typical full-buy value

	TeamAlive  int
	EnemyAlive int

	RecentMistakeCount int
	RecentKills        int
}

// DefaultPlayerFeatures returns an average player in a neutral 5v5.
func DefaultPlayerFeatures() PlayerFeatures {
	return PlayerFeatures{
		AvgRating:      1.0,
		RatingVariance: 0.1,
		PreferredValue: 4000,
		TeamAlive:      5,
		EnemyAlive:     5,
	}
}

// PlayerPrediction is the forecast for one player.
type PlayerPrediction struct {
	ImpactProbability float64            `json:"impact_probability"`
	ExpectedRating    float64            `json:"expected_rating"`
	Confidence        float64            `json:"confidence"`
	KeyFactors        map[string]float64 `json:"key_factors"`
}

// playerFactorOrder fixes the summation order of contributions.
var playerFactorOrder = []string{"historical", "consistency", "role_fit", "economy", "numbers", "mistakes"}

// ImpactPredictor scores the chance a player contributes positively to
// the coming round.
type ImpactPredictor struct {
	coef PlayerCoefficients
}

// NewImpactPredictor builds a predictor. A nil coefficients argument
// uses the default tuned set.
func NewImpactPredictor(coef *PlayerCoefficients) *ImpactPredictor {
	if coef == nil {
		coef = DefaultPlayerCoefficients()
	}
	return &ImpactPredictor{coef: *coef}
}

// Predict returns the impact probability and the projected rating on the
// historical match scale, where a 0.5 impact maps to a 1.0 rating.
func (ip *ImpactPredictor) Predict(f PlayerFeatures) PlayerPrediction {
	factors := make(map[string]float64, len(playerFactorOrder))

	factors["historical"] = round3((f.AvgRating - 1.0) * ip.coef.AvgRating)

	// Low variance reads as reliability.
	factors["consistency"] = round3((0.2 - f.RatingVariance) * ip.coef.Consistency)

	roleMatch := 0.0
	if f.CurrentRole == f.PrimaryRole {
		roleMatch = 1.0
	}
	factors["role_fit"] = round3(roleMatch * f.RoleFrequency * ip.coef.RoleExperience)

	econContrib := 0.0
	if f.PreferredValue > 0 {
		econRatio := float64(f.EquipmentValue) / float64(f.PreferredValue)
		econContrib = (econRatio - 0.5) * ip.coef.EconomyComfort
	}
	factors["economy"] = round3(econContrib)

	manDiff := float64(f.TeamAlive - f.EnemyAlive)
	factors["numbers"] = round3(manDiff * ip.coef.ManAdvantage / 5)

	factors["mistakes"] = round3(float64(f.RecentMistakeCount) * ip.coef.RecentMistakes)

	logOdds := ip.coef.Intercept
	for _, name := range playerFactorOrder {
		logOdds += factors[name]
	}
	bounded := math.Max(MinImpactProbability, math.Min(MaxImpactProbability, sigmoid(logOdds)))

	hasHistory := 0
	if f.AvgRating != 1.0 {
		hasHistory = 1
	}
	hasRole := 0
	if f.CurrentRole != "" {
		hasRole = 1
	}
	hasEcon := 0
	if f.EquipmentValue > 0 {
		hasEcon = 1
	}
	confidence := float64(hasHistory+hasRole+hasEcon) / 3

	return PlayerPrediction{
		ImpactProbability: round3(bounded),
		ExpectedRating:    round2(0.5 + bounded),
		Confidence:        round2(confidence),
		KeyFactors:        factors,
	}
}

// PredictPlayerImpact runs the default model over f.
func PredictPlayerImpact(f PlayerFeatures) PlayerPrediction {
	return NewImpactPredictor(nil).Predict(f)
}
