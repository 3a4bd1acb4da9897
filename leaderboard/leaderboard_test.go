package leaderboard_test

import (
	"math"
	"reflect"
	"testing"

	"frag-rating/leaderboard"
	"frag-rating/model"
)

func seasonTable() *leaderboard.Table {
	t := leaderboard.New()
	t.Add("m1", "de_mirage", []leaderboard.PlayerResult{
		{Name: "ava", Role: model.RoleEntry, RawImpact: 60, Rating: 80},
		{Name: "ben", Role: model.RoleAnchor, RawImpact: 40, Rating: 60},
		{Name: "cam", Role: model.RoleSupport, RawImpact: 45, Rating: 20},
	})
	t.Add("m2", "de_nuke", []leaderboard.PlayerResult{
		{Name: "ava", Role: model.RoleEntry, RawImpact: 70, Rating: 90},
		{Name: "ben", Role: model.RoleAnchor, RawImpact: 50, Rating: 70},
		{Name: "cam", Role: model.RoleSupport, RawImpact: 55, Rating: 80},
	})
	return t
}

func TestStandings(t *testing.T) {
	rows := seasonTable().Standings()
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	// Raw impact orders the board, not the displayed rating.
	for i, name := range []string{"ava", "cam", "ben"} {
		if rows[i].Name != name {
			t.Fatalf("rows[%d].Name = %s, want %s", i, rows[i].Name, name)
		}
	}

	ava := rows[0]
	if ava.Games != 2 || ava.AvgRawImpact != 65 || ava.AvgRating != 85 {
		t.Errorf("ava = %+v, want 2 games, raw 65, rating 85", ava)
	}
	if ava.ConsistencyPenalty != 0 || ava.AdjustedRating != 85 {
		t.Errorf("ava penalties = (%v, %v), want none", ava.ConsistencyPenalty, ava.SaturationPenalty)
	}
	if ava.MapRatings["de_mirage"] != 80 || ava.MapRatings["de_nuke"] != 90 {
		t.Errorf("ava.MapRatings = %v, want de_mirage 80, de_nuke 90", ava.MapRatings)
	}
	if ava.MapGames["de_mirage"] != 1 {
		t.Errorf("ava.MapGames = %v, want 1 on de_mirage", ava.MapGames)
	}

	// cam's 20/80 swing trips the consistency penalty.
	cam := rows[1]
	if cam.AvgRating != 50 {
		t.Errorf("cam.AvgRating = %v, want 50", cam.AvgRating)
	}
	if want := -8.970562748477141; math.Abs(cam.ConsistencyPenalty-want) > 1e-9 {
		t.Errorf("cam.ConsistencyPenalty = %v, want %v", cam.ConsistencyPenalty, want)
	}
	if want := 41.029437251522859; math.Abs(cam.AdjustedRating-want) > 1e-9 {
		t.Errorf("cam.AdjustedRating = %v, want %v", cam.AdjustedRating, want)
	}

	if rows[2].AvgRawImpact != 45 {
		t.Errorf("ben.AvgRawImpact = %v, want 45", rows[2].AvgRawImpact)
	}
}

func TestStandingsTieBreaksByName(t *testing.T) {
	tab := leaderboard.New()
	tab.Add("m1", "de_train", []leaderboard.PlayerResult{
		{Name: "zed", Role: model.RoleEntry, RawImpact: 50, Rating: 70},
		{Name: "amy", Role: model.RoleLurker, RawImpact: 50, Rating: 70},
	})
	rows := tab.Standings()
	if rows[0].Name != "amy" || rows[1].Name != "zed" {
		t.Errorf("tie order = %s, %s, want amy, zed", rows[0].Name, rows[1].Name)
	}
}

func TestRoleCounts(t *testing.T) {
	want := map[model.Role]int{
		model.RoleEntry:   1,
		model.RoleAnchor:  1,
		model.RoleSupport: 1,
	}
	if got := seasonTable().RoleCounts(); !reflect.DeepEqual(got, want) {
		t.Errorf("RoleCounts() = %v, want %v", got, want)
	}
}

func TestAddKeepsLastKnownRole(t *testing.T) {
	tab := leaderboard.New()
	tab.Add("m1", "de_mirage", []leaderboard.PlayerResult{
		{Name: "dex", Role: model.RoleSupport, RawImpact: 50, Rating: 60},
	})
	tab.Add("m2", "de_nuke", []leaderboard.PlayerResult{
		{Name: "dex", RawImpact: 50, Rating: 60},
	})
	rows := tab.Standings()
	if len(rows) != 1 || rows[0].Games != 2 {
		t.Fatalf("rows = %+v, want one player with 2 games", rows)
	}
	if rows[0].Role != model.RoleSupport {
		t.Errorf("Role = %s, an empty update overwrote it", rows[0].Role)
	}
}

func TestStandingsSaturationPenalty(t *testing.T) {
	tab := leaderboard.New()
	tab.Add("m1", "de_train", []leaderboard.PlayerResult{
		{Name: "w", Role: model.RoleAnchor, RawImpact: 50, Rating: 60},
		{Name: "x", Role: model.RoleAnchor, RawImpact: 50, Rating: 60},
		{Name: "y", Role: model.RoleAnchor, RawImpact: 50, Rating: 60},
		{Name: "z", Role: model.RoleAnchor, RawImpact: 50, Rating: 60},
	})
	for _, row := range tab.Standings() {
		if row.SaturationPenalty != -3 {
			t.Errorf("%s.SaturationPenalty = %v, want -3", row.Name, row.SaturationPenalty)
		}
		if row.AdjustedRating != 57 {
			t.Errorf("%s.AdjustedRating = %v, want 57", row.Name, row.AdjustedRating)
		}
	}
}

func TestEmptyTable(t *testing.T) {
	if rows := leaderboard.New().Standings(); len(rows) != 0 {
		t.Errorf("Standings() on empty table = %v, want none", rows)
	}
}
