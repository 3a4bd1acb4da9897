// Package calibration holds the production tuning tables for the rating
// pipeline: per-role impact baselines, per-map role weights and ceilings,
// the KAST bonus curve and smurf detection. Tables are read-only after
// construction and safe to share across concurrent rating computations.
package calibration

import (
	"frag-rating/model"
	"frag-rating/rating"
)

// Table implements rating.CalibrationProvider from in-memory lookup maps.
type Table struct {
	roles       map[model.Role]rating.RoleBaseline
	mapWeights  map[string]map[model.Role]float64
	mapRoleCaps map[string]map[model.Role]float64
	kast        *rating.BreakpointCurve
}

// RoleBaseline returns the impact distribution for a role, or the global
// default for roles missing from the table.
func (t *Table) RoleBaseline(role model.Role) rating.RoleBaseline {
	if b, ok := t.roles[role]; ok {
		return b
	}
	return rating.DefaultRoleBaseline
}

// MapWeight returns the rating multiplier for a role on a map. Missing maps
// and roles weigh 1.0.
func (t *Table) MapWeight(mapName string, role model.Role) float64 {
	if weights, ok := t.mapWeights[mapName]; ok {
		if w, ok := weights[role]; ok {
			return w
		}
	}
	return 1.0
}

// RoleCap returns the rating ceiling for a role on a map: the map-specific
// cap when one exists, otherwise the role baseline's max, otherwise the
// global default cap.
func (t *Table) RoleCap(role model.Role, mapName string) float64 {
	if caps, ok := t.mapRoleCaps[mapName]; ok {
		if c, ok := caps[role]; ok {
			return c
		}
	}
	if b, ok := t.roles[role]; ok {
		return b.Max
	}
	return DefaultRoleCap
}

// KASTBonus converts KAST percentage into an additive rating bonus. The
// curve punishes low KAST far harder than it rewards high KAST.
func (t *Table) KASTBonus(kast float64) float64 {
	return t.kast.Eval(kast)
}

// DetectSmurf flags suspiciously dominant performances in short matches.
// Sustained dominance over a full match is earned; the same numbers inside
// a truncated one are a ranked-account tell.
func (t *Table) DetectSmurf(kdr, rawImpact float64, roundsPlayed int) (bool, float64) {
	if kdr > SmurfKDRThreshold && rawImpact > SmurfImpactThreshold && roundsPlayed <= SmurfRoundsGate {
		return true, SmurfMultiplier
	}
	return false, 1.0
}
