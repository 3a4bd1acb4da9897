package rating

import (
	"math"

	"frag-rating/model"
)

// RoleBaseline is the historical raw-impact distribution for a role, used
// to z-score a match's raw impact onto the rating scale.
type RoleBaseline struct {
	Mean float64
	Std  float64
	Max  float64
}

// DefaultRoleBaseline covers roles with no calibration data.
var DefaultRoleBaseline = RoleBaseline{Mean: 35.6, Std: 22.9, Max: 90}

// CalibrationProvider supplies the role- and map-aware tuning the pipeline
// depends on. Implementations are read-only after construction and must be
// safe for concurrent readers.
type CalibrationProvider interface {
	// RoleBaseline returns the impact distribution for a role. Unknown
	// roles fall back to a default rather than erroring.
	RoleBaseline(role model.Role) RoleBaseline

	// MapWeight returns the rating multiplier for a role on a map, 1.0
	// when either is unknown.
	MapWeight(mapName string, role model.Role) float64

	// RoleCap returns the rating ceiling for a role on a map.
	RoleCap(role model.Role, mapName string) float64

	// KASTBonus converts KAST percentage into an additive rating bonus.
	// Higher KAST never yields a smaller bonus.
	KASTBonus(kast float64) float64

	// DetectSmurf reports whether the performance pattern looks like a
	// smurf account, and the rating multiplier to apply when it does.
	DetectSmurf(kdr, rawImpact float64, roundsPlayed int) (bool, float64)
}

// stage is one named step of the rating pipeline. Stages run in slice
// order, each mutating the running state; the order is part of the
// contract and is covered by tests.
type stage struct {
	name  string
	apply func(s *pipelineState)
}

type pipelineState struct {
	rating    float64
	rawImpact float64
	roleCap   float64

	scores model.ScoreBundle
	stats  *model.PlayerMatchStats
	cal    CalibrationProvider
}

// Pipeline converts a score bundle plus match context into the final 0-100
// rating. Construct once with a non-nil provider and share freely; Compute
// is pure.
type Pipeline struct {
	cal    CalibrationProvider
	stages []stage
}

// NewPipeline builds the pipeline with its stages in their mandatory order.
func NewPipeline(cal CalibrationProvider) *Pipeline {
	return &Pipeline{cal: cal, stages: ratingStages()}
}

func ratingStages() []stage {
	return []stage{
		{"resolve_raw_impact", resolveRawImpact},
		{"baseline_z_score", baselineZScore},
		{"map_weight", applyMapWeight},
		{"kast_bonus", applyKASTBonus},
		{"role_kdr_penalty", applyRoleKDRPenalty},
		{"trader_ceiling", applyTraderCeiling},
		{"rotator_guard", applyRotatorGuard},
		{"kill_gated_cap", applyKillGatedCap},
		{"dynamic_role_cap", lookupRoleCap},
		{"role_cap_breakout", applyRoleCapBreakout},
		{"role_cap", applyRoleCap},
		{"smurf_penalty", applySmurfPenalty},
		{"low_kill_cap", applyLowKillCap},
		{"rating_floor", applyRatingFloor},
	}
}

// StageNames lists the pipeline steps in execution order.
func (p *Pipeline) StageNames() []string {
	names := make([]string, len(p.stages))
	for i, st := range p.stages {
		names[i] = st.name
	}
	return names
}

// Compute runs every stage in order and truncates the result into 0-100.
// stats must be non-nil.
func (p *Pipeline) Compute(scores model.ScoreBundle, stats *model.PlayerMatchStats) int {
	s := &pipelineState{scores: scores, stats: stats, cal: p.cal}
	for _, st := range p.stages {
		st.apply(s)
	}
	return clampScore(s.rating)
}

// resolveRawImpact picks the calibration input: the unbounded raw impact
// when finite, otherwise the clamped impact score.
func resolveRawImpact(s *pipelineState) {
	raw := s.scores.RawImpact
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		raw = float64(s.scores.Impact)
	}
	s.rawImpact = raw
}

// baselineZScore converts raw impact into a rating centered at 50 using
// the role's historical distribution. A zero-std baseline yields z = 0.
func baselineZScore(s *pipelineState) {
	b := s.cal.RoleBaseline(s.stats.Role)
	z := 0.0
	if b.Std != 0 {
		z = (s.rawImpact - b.Mean) / b.Std
	}
	s.rating = RatingCenter + z*RatingZScale
}

func applyMapWeight(s *pipelineState) {
	s.rating *= s.cal.MapWeight(s.stats.MapName, s.stats.Role)
}

func applyKASTBonus(s *pipelineState) {
	s.rating += s.cal.KASTBonus(s.stats.KASTPercentage)
}

// applyRoleKDRPenalty punishes roles that died more than the job allows.
func applyRoleKDRPenalty(s *pipelineState) {
	kdr := s.stats.KDR
	switch s.stats.Role {
	case model.RoleEntry:
		// TODO: both Entry tiers apply the same 0.90 multiplier; decide
		// whether the sub-1.0 tier should be softer than the sub-0.7 one.
		if kdr < 0.7 {
			s.rating *= 0.90
		} else if kdr < 1.0 {
			s.rating *= 0.90
		}
	case model.RoleAWPer:
		if kdr < 0.8 {
			s.rating *= 0.85
		} else if kdr < 0.9 {
			s.rating *= 0.88
		}
	case model.RoleAnchor:
		if kdr < 0.6 {
			s.rating *= 0.80
		}
	}
}

// applyTraderCeiling keeps low-KDR traders from riding teammate swing.
func applyTraderCeiling(s *pipelineState) {
	if s.stats.Role == model.RoleTrader && s.stats.KDR < 1.2 {
		s.rating *= 0.90
	}
}

// applyRotatorGuard trims rotator ratings not backed by a standout impact
// number.
func applyRotatorGuard(s *pipelineState) {
	if s.stats.Role == model.RoleRotator && s.rawImpact < 100 {
		s.rating *= 0.95
	}
}

// applyKillGatedCap distrusts huge impact numbers on thin kill volume.
func applyKillGatedCap(s *pipelineState) {
	if s.rawImpact > 105 && s.stats.TotalKills < 18 {
		s.rating *= 0.90
	}
}

func lookupRoleCap(s *pipelineState) {
	s.roleCap = s.cal.RoleCap(s.stats.Role, s.stats.MapName)
}

// applyRoleCapBreakout lifts the ceiling for defensive and supportive roles
// having an exceptional match: impact far past the cap, backed by a winning
// KDR and round presence.
func applyRoleCapBreakout(s *pipelineState) {
	switch s.stats.Role {
	case model.RoleAnchor, model.RoleRotator, model.RoleSiteAnchor, model.RoleTrader:
		if s.rawImpact > s.roleCap+15 && s.stats.KDR > 1.1 && s.stats.KASTPercentage > 0.65 {
			s.roleCap += 10
		}
	}
}

func applyRoleCap(s *pipelineState) {
	s.rating = math.Min(s.rating, s.roleCap)
}

func applySmurfPenalty(s *pipelineState) {
	if isSmurf, mult := s.cal.DetectSmurf(s.stats.KDR, s.rawImpact, s.stats.RoundsPlayed); isSmurf {
		s.rating *= mult
	}
}

// applyLowKillCap keeps sub-12-kill matches out of elite territory.
func applyLowKillCap(s *pipelineState) {
	if s.stats.TotalKills < 12 {
		s.rating = math.Min(s.rating, 75)
	}
}

func applyRatingFloor(s *pipelineState) {
	s.rating = math.Max(RatingFloor, s.rating)
}
