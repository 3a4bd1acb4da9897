package calibration_test

import (
	"math"
	"testing"

	"frag-rating/calibration"
	"frag-rating/model"
	"frag-rating/rating"
)

func TestTableRoleBaseline(t *testing.T) {
	cal := calibration.Default()

	b := cal.RoleBaseline(model.RoleEntry)
	if b.Mean != 42.6 || b.Std != 22.6 || b.Max != 92 {
		t.Errorf("RoleBaseline(Entry) = %+v, want {42.6 22.6 92}", b)
	}

	unknown := cal.RoleBaseline(model.Role("igl"))
	if unknown != rating.DefaultRoleBaseline {
		t.Errorf("RoleBaseline(igl) = %+v, want the default %+v", unknown, rating.DefaultRoleBaseline)
	}
}

func TestTableMapWeight(t *testing.T) {
	cal := calibration.Default()
	tests := []struct {
		mapName string
		role    model.Role
		want    float64
	}{
		{"de_nuke", model.RoleEntry, 0.85},
		{"de_nuke", model.RoleAnchor, 1.15},
		{"de_dust2", model.RoleEntry, 1.10},
		{"de_nuke", model.RoleSupport, 1.0},
		{"de_cache", model.RoleEntry, 1.0},
	}
	for _, tt := range tests {
		if got := cal.MapWeight(tt.mapName, tt.role); got != tt.want {
			t.Errorf("MapWeight(%s, %s) = %v, want %v", tt.mapName, tt.role, got, tt.want)
		}
	}
}

func TestTableRoleCap(t *testing.T) {
	cal := calibration.Default()
	tests := []struct {
		role    model.Role
		mapName string
		want    float64
	}{
		{model.RoleAnchor, "de_nuke", 92},
		{model.RoleEntry, "de_dust2", 94},
		{model.RoleAWPer, "de_mirage", 95},
		{model.RoleTrader, "de_train", 88},
		{model.Role("igl"), "de_cache", calibration.DefaultRoleCap},
	}
	for _, tt := range tests {
		if got := cal.RoleCap(tt.role, tt.mapName); got != tt.want {
			t.Errorf("RoleCap(%s, %s) = %v, want %v", tt.role, tt.mapName, got, tt.want)
		}
	}
}

func TestTableKASTBonus(t *testing.T) {
	cal := calibration.Default()
	tests := []struct {
		kast float64
		want float64
	}{
		{1.00, 6.25},
		{0.80, 1.25},
		{0.75, 0},
		{0.50, -10},
		{0.00, -30},
	}
	for _, tt := range tests {
		if got := cal.KASTBonus(tt.kast); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("KASTBonus(%v) = %v, want %v", tt.kast, got, tt.want)
		}
	}
}

func TestTableDetectSmurf(t *testing.T) {
	cal := calibration.Default()
	tests := []struct {
		kdr    float64
		raw    float64
		rounds int
		flag   bool
		mult   float64
	}{
		{1.7, 85, 16, true, calibration.SmurfMultiplier},
		{1.6, 85, 16, false, 1.0},
		{1.7, 80, 16, false, 1.0},
		{1.7, 85, 18, true, calibration.SmurfMultiplier},
		{1.7, 85, 19, false, 1.0},
	}
	for _, tt := range tests {
		flag, mult := cal.DetectSmurf(tt.kdr, tt.raw, tt.rounds)
		if flag != tt.flag || mult != tt.mult {
			t.Errorf("DetectSmurf(%v, %v, %d) = (%t, %v), want (%t, %v)",
				tt.kdr, tt.raw, tt.rounds, flag, mult, tt.flag, tt.mult)
		}
	}
}

func TestOpponentMultiplier(t *testing.T) {
	tests := []struct {
		opponentAvg float64
		want        float64
	}{
		{50, 1.0},
		{60, 1.06},
		{40, 0.94},
		{0, 0.75},
		{200, 1.25},
	}
	for _, tt := range tests {
		if got := calibration.OpponentMultiplier(tt.opponentAvg); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("OpponentMultiplier(%v) = %v, want %v", tt.opponentAvg, got, tt.want)
		}
	}
}

func TestConsistencyPenalty(t *testing.T) {
	if got := calibration.ConsistencyPenalty(nil); got != 0 {
		t.Errorf("ConsistencyPenalty(nil) = %v, want 0", got)
	}
	if got := calibration.ConsistencyPenalty([]float64{80}); got != 0 {
		t.Errorf("ConsistencyPenalty(single score) = %v, want 0", got)
	}
	if got := calibration.ConsistencyPenalty([]float64{50, 52, 48, 51}); got != 0 {
		t.Errorf("ConsistencyPenalty(tight spread) = %v, want 0", got)
	}
	if got := calibration.ConsistencyPenalty([]float64{10, 90}); got != -10 {
		t.Errorf("ConsistencyPenalty(wild spread) = %v, want the cap -10", got)
	}
	got := calibration.ConsistencyPenalty([]float64{20, 80})
	if want := -8.970562748477141; math.Abs(got-want) > 1e-9 {
		t.Errorf("ConsistencyPenalty(20, 80) = %v, want %v", got, want)
	}
}

func TestRoleSaturationPenalty(t *testing.T) {
	tests := []struct {
		name  string
		role  model.Role
		count int
		want  float64
	}{
		{"anchors at the limit", model.RoleAnchor, 3, 0},
		{"fourth anchor pays", model.RoleAnchor, 4, -3},
		{"sixth anchor pays triple", model.RoleAnchor, 6, -9},
		{"awpers over the limit", model.RoleAWPer, 5, -4},
		{"entries over the limit", model.RoleEntry, 5, -1},
		{"entries at the limit", model.RoleEntry, 4, 0},
		{"supports never pay", model.RoleSupport, 9, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := map[model.Role]int{tt.role: tt.count}
			if got := calibration.RoleSaturationPenalty(tt.role, counts); got != tt.want {
				t.Errorf("RoleSaturationPenalty(%s, %d) = %v, want %v", tt.role, tt.count, got, tt.want)
			}
		})
	}
}
