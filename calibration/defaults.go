package calibration

import (
	"math"

	"frag-rating/model"
	"frag-rating/rating"
)

// Smurf detection thresholds. All three must hold to flag a player.
const (
	SmurfKDRThreshold    = 1.6  // Kill/death ratio above this
	SmurfImpactThreshold = 80.0 // Raw impact above this
	SmurfRoundsGate      = 18   // Only matches at or under this many rounds
	SmurfMultiplier      = 0.92 // Rating multiplier when flagged
)

// DefaultRoleCap bounds ratings for roles with no baseline data.
const DefaultRoleCap = 90.0

// Default returns the production calibration tables, fitted from league
// match data. The returned table owns its maps; mutating overrides applied
// by Load never leak between tables.
func Default() *Table {
	return &Table{
		roles: map[model.Role]rating.RoleBaseline{
			model.RoleEntry:      {Mean: 42.6, Std: 22.6, Max: 92},
			model.RoleAWPer:      {Mean: 46.4, Std: 22.3, Max: 95},
			model.RoleSupport:    {Mean: 35.0, Std: 23.0, Max: 90},
			model.RoleLurker:     {Mean: 35.0, Std: 23.0, Max: 90},
			model.RoleRotator:    {Mean: 38.0, Std: 21.0, Max: 90},
			model.RoleTrader:     {Mean: 32.0, Std: 20.0, Max: 88}, // Close-mid distance
			model.RoleSiteAnchor: {Mean: 28.6, Std: 19.3, Max: 86}, // Site holder, tightest cap
			model.RoleAnchor:     {Mean: 28.6, Std: 19.3, Max: 88},
		},
		// Map difficulty weights per role. Anchors are rewarded on
		// CT-sided maps where entries suffer, and vice versa.
		mapWeights: map[string]map[model.Role]float64{
			"de_nuke": {
				model.RoleEntry:  0.85,
				model.RoleAnchor: 1.15,
				model.RoleAWPer:  1.00,
			},
			"de_dust2": {
				model.RoleEntry:  1.10,
				model.RoleAnchor: 0.95,
				model.RoleAWPer:  1.05,
			},
			"de_ancient": {
				model.RoleEntry:  1.00,
				model.RoleAnchor: 1.05,
				model.RoleAWPer:  0.90,
			},
			"de_train": {
				model.RoleEntry:  0.95,
				model.RoleAnchor: 1.05,
				model.RoleAWPer:  1.00,
			},
			"de_mirage": {
				model.RoleEntry:  1.05,
				model.RoleAnchor: 0.95,
				model.RoleAWPer:  1.00,
			},
			"de_overpass": {
				model.RoleEntry:  1.00,
				model.RoleAnchor: 1.00,
				model.RoleAWPer:  1.00,
			},
			"de_inferno": {
				model.RoleEntry:  1.00,
				model.RoleAnchor: 1.05,
				model.RoleAWPer:  0.95,
			},
		},
		// Map-specific ceilings where the default role caps misfire.
		mapRoleCaps: map[string]map[model.Role]float64{
			"de_nuke": {
				model.RoleAnchor: 92,
				model.RoleEntry:  88,
				model.RoleAWPer:  95,
			},
			"de_dust2": {
				model.RoleEntry:  94,
				model.RoleAWPer:  95,
				model.RoleAnchor: 85,
			},
		},
		// KAST bonus: zero at 75%, +25 rating points per unit above,
		// -40 per unit below. Low KAST is punished far harder.
		kast: rating.NewBreakpointCurve([]rating.Breakpoint{
			{Threshold: 1.00, Multiplier: 6.25},
			{Threshold: 0.75, Multiplier: 0.0},
			{Threshold: 0.00, Multiplier: -30.0},
		}),
	}
}

// OpponentMultiplier scales a rating by opposition strength: 0.6% per
// rating point the opposing lobby averages above or below 50, capped to
// [0.75, 1.25].
func OpponentMultiplier(opponentAvg float64) float64 {
	mult := 1 + (opponentAvg-50)*0.006
	return math.Max(0.75, math.Min(1.25, mult))
}

// ConsistencyPenalty converts the spread of a player's match ratings into
// a deduction: nothing at or under a standard deviation of 20, then 0.4
// points per unit of spread up to -10. Fewer than two scores carry no
// spread information.
func ConsistencyPenalty(rawScores []float64) float64 {
	if len(rawScores) < 2 {
		return 0
	}
	std := sampleStdDev(rawScores)
	if std <= 20 {
		return 0
	}
	return -math.Min(10, (std-20)*0.4)
}

// roleSaturation lists the tolerated count and per-extra-player penalty for
// roles that tend to cluster in top standings.
var roleSaturation = map[model.Role]struct {
	limit   int
	penalty int
}{
	model.RoleAnchor: {limit: 3, penalty: 3},
	model.RoleAWPer:  {limit: 3, penalty: 2},
	model.RoleEntry:  {limit: 4, penalty: 1},
}

// RoleSaturationPenalty deducts points when a role is over-represented in
// roleCounts: each player past the tolerated count costs the role's
// per-player penalty. Roles without a threshold never attract one.
func RoleSaturationPenalty(role model.Role, roleCounts map[model.Role]int) float64 {
	t, ok := roleSaturation[role]
	if !ok {
		return 0
	}
	count := roleCounts[role]
	if count > t.limit {
		return -float64((count - t.limit) * t.penalty)
	}
	return 0
}

func sampleStdDev(values []float64) float64 {
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values) - 1)
	return math.Sqrt(variance)
}
