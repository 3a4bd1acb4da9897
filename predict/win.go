package predict

import (
	"math"
	"strings"
)

// Round-win probabilities are bounded away from certainty.
const (
	MinWinProbability = 0.05
	MaxWinProbability = 0.95
)

// WinCoefficients are the log-odds weights of the round-win model. The
// zero value contributes nothing; DefaultWinCoefficients returns the
// tuned set.
type WinCoefficients struct {
	// Economy, normalized to $1000 units.
	EconomyDiff float64

	// Players alive.
	ManAdvantage float64

	// Role composition.
	HasEntry      float64
	HasSupport    float64
	RoleDiversity float64

	// Mistakes.
	MistakeCount         float64
	HighSeverityMistakes float64

	// Strategy calls.
	ExecuteStrat float64
	RushStrat    float64
	DefaultStrat float64

	Intercept float64
}

// DefaultWinCoefficients returns the hand-calibrated weights.
func DefaultWinCoefficients() *WinCoefficients {
	return &WinCoefficients{
		EconomyDiff:          0.15,
		ManAdvantage:         0.20,
		HasEntry:             0.05,
		HasSupport:           0.03,
		RoleDiversity:        0.02,
		MistakeCount:         -0.08,
		HighSeverityMistakes: -0.12,
		ExecuteStrat:         0.05,
		RushStrat:            -0.03,
		DefaultStrat:         0.02,
		Intercept:            0.0,
	}
}

// RoundFeatures is the evidence available before a round. Start from
// DefaultRoundFeatures and fill in what is known; features left at their
// defaults contribute nothing and do not count toward confidence.
type RoundFeatures struct {
	TeamEconomy  int // average equipment value
	EnemyEconomy int

	TeamAlive  int
	EnemyAlive int

	EntryCount   int
	SupportCount int
	LurkCount    int
	AnchorCount  int

	MistakeCount      int
	HighSeverityCount int

	Strategy string // EXECUTE_A, RUSH_B, DEFAULT_MID, ...

	TSide bool
}

// DefaultRoundFeatures returns a neutral 5v5 round.
func DefaultRoundFeatures() RoundFeatures {
	return RoundFeatures{
		TeamAlive:  5,
		EnemyAlive: 5,
		TSide:      true,
	}
}

// RoundPrediction is a bounded win probability plus the factor breakdown
// that produced it.
type RoundPrediction struct {
	Probability    float64            `json:"probability"`
	Confidence     float64            `json:"confidence"`
	FeaturesUsed   int                `json:"features_used"`
	DominantFactor string             `json:"dominant_factor"`
	Factors        map[string]float64 `json:"factors"`
}

// winFactorOrder fixes the summation order of contributions and breaks
// ties when two factors are equally dominant.
var winFactorOrder = []string{"economy", "man_advantage", "roles", "mistakes", "strategy"}

// WinPredictor scores round-win chances from lineup and round context.
type WinPredictor struct {
	coef WinCoefficients
}

// NewWinPredictor builds a predictor. A nil coefficients argument uses
// the default tuned set.
func NewWinPredictor(coef *WinCoefficients) *WinPredictor {
	if coef == nil {
		coef = DefaultWinCoefficients()
	}
	return &WinPredictor{coef: *coef}
}

// Predict returns the win probability for the team described by f.
// Each contribution is rounded to three decimals before summing so the
// reported factors add up to the log-odds exactly.
func (w *WinPredictor) Predict(f RoundFeatures) RoundPrediction {
	factors := make(map[string]float64, len(winFactorOrder))
	featuresUsed := 0

	econDiff := float64(f.TeamEconomy-f.EnemyEconomy) / 1000
	factors["economy"] = round3(econDiff * w.coef.EconomyDiff)
	if f.TeamEconomy > 0 || f.EnemyEconomy > 0 {
		featuresUsed++
	}

	manDiff := float64(f.TeamAlive - f.EnemyAlive)
	factors["man_advantage"] = round3(manDiff * w.coef.ManAdvantage)
	if f.TeamAlive != 5 || f.EnemyAlive != 5 {
		featuresUsed++
	}

	roleContrib := 0.0
	if f.EntryCount > 0 {
		roleContrib += w.coef.HasEntry
		featuresUsed++
	}
	if f.SupportCount > 0 || f.AnchorCount > 0 {
		roleContrib += w.coef.HasSupport
		featuresUsed++
	}
	distinctRoles := 0
	for _, count := range []int{f.EntryCount, f.SupportCount, f.LurkCount, f.AnchorCount} {
		if count > 0 {
			distinctRoles++
		}
	}
	roleContrib += float64(distinctRoles) * w.coef.RoleDiversity
	factors["roles"] = round3(roleContrib)

	mistakeContrib := float64(f.MistakeCount)*w.coef.MistakeCount +
		float64(f.HighSeverityCount)*w.coef.HighSeverityMistakes
	factors["mistakes"] = round3(mistakeContrib)
	if f.MistakeCount > 0 {
		featuresUsed++
	}

	strat := strings.ToUpper(f.Strategy)
	stratContrib := 0.0
	switch {
	case strings.Contains(strat, "EXECUTE"):
		stratContrib = w.coef.ExecuteStrat
	case strings.Contains(strat, "RUSH"):
		stratContrib = w.coef.RushStrat
	case strings.Contains(strat, "DEFAULT"):
		stratContrib = w.coef.DefaultStrat
	}
	factors["strategy"] = round3(stratContrib)
	if f.Strategy != "" {
		featuresUsed++
	}

	logOdds := w.coef.Intercept
	for _, name := range winFactorOrder {
		logOdds += factors[name]
	}
	bounded := math.Max(MinWinProbability, math.Min(MaxWinProbability, sigmoid(logOdds)))

	dominant := winFactorOrder[0]
	for _, name := range winFactorOrder[1:] {
		if math.Abs(factors[name]) > math.Abs(factors[dominant]) {
			dominant = name
		}
	}

	// Full confidence needs five populated feature groups.
	confidence := math.Min(1.0, float64(featuresUsed)/5)

	return RoundPrediction{
		Probability:    round3(bounded),
		Confidence:     round2(confidence),
		FeaturesUsed:   featuresUsed,
		DominantFactor: dominant,
		Factors:        factors,
	}
}

// PredictRoundWin runs the default model over f.
func PredictRoundWin(f RoundFeatures) RoundPrediction {
	return NewWinPredictor(nil).Predict(f)
}
