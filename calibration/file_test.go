package calibration_test

import (
	"os"
	"path/filepath"
	"testing"

	"frag-rating/calibration"
	"frag-rating/model"
)

func TestLoadMissingFile(t *testing.T) {
	table, err := calibration.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if b := table.RoleBaseline(model.RoleEntry); b.Mean != 42.6 {
		t.Errorf("RoleBaseline(Entry).Mean = %v, want the default 42.6", b.Mean)
	}
	if w := table.MapWeight("de_nuke", model.RoleEntry); w != 0.85 {
		t.Errorf("MapWeight(de_nuke, Entry) = %v, want the default 0.85", w)
	}
}

func TestLoadOverrides(t *testing.T) {
	const overrides = `role_baselines:
  AWPer:
    mean: 48.0
    std: 21.0
    max: 96
map_weights:
  de_nuke:
    Support: 1.08
  de_cache:
    Entry: 1.02
map_role_caps:
  de_mirage:
    AWPer: 93
`
	path := filepath.Join(t.TempDir(), "calibration.yaml")
	if err := os.WriteFile(path, []byte(overrides), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := calibration.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if b := table.RoleBaseline(model.RoleAWPer); b.Mean != 48 || b.Std != 21 || b.Max != 96 {
		t.Errorf("RoleBaseline(AWPer) = %+v, want {48 21 96}", b)
	}
	if w := table.MapWeight("de_nuke", model.RoleSupport); w != 1.08 {
		t.Errorf("MapWeight(de_nuke, Support) = %v, want 1.08", w)
	}
	if w := table.MapWeight("de_nuke", model.RoleEntry); w != 0.85 {
		t.Errorf("MapWeight(de_nuke, Entry) = %v, default not preserved", w)
	}
	if w := table.MapWeight("de_cache", model.RoleEntry); w != 1.02 {
		t.Errorf("MapWeight(de_cache, Entry) = %v, want 1.02", w)
	}
	if c := table.RoleCap(model.RoleAWPer, "de_mirage"); c != 93 {
		t.Errorf("RoleCap(AWPer, de_mirage) = %v, want 93", c)
	}
	if c := table.RoleCap(model.RoleAnchor, "de_nuke"); c != 92 {
		t.Errorf("RoleCap(Anchor, de_nuke) = %v, default not preserved", c)
	}

	// Loading overrides must never leak into fresh default tables.
	if b := calibration.Default().RoleBaseline(model.RoleAWPer); b.Mean != 46.4 {
		t.Errorf("Default RoleBaseline(AWPer).Mean = %v after Load, want 46.4", b.Mean)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calibration.yaml")
	if err := os.WriteFile(path, []byte("{{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := calibration.Load(path); err == nil {
		t.Fatal("Load accepted malformed YAML")
	}
}
