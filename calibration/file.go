package calibration

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"frag-rating/model"
	"frag-rating/rating"
)

type yamlBaseline struct {
	Mean float64 `yaml:"mean"`
	Std  float64 `yaml:"std"`
	Max  float64 `yaml:"max"`
}

type yamlConfig struct {
	RoleBaselines map[string]yamlBaseline       `yaml:"role_baselines"`
	MapWeights    map[string]map[string]float64 `yaml:"map_weights"`
	MapRoleCaps   map[string]map[string]float64 `yaml:"map_role_caps"`
}

// Load reads calibration overrides from a YAML file and overlays them on
// the defaults. A missing file is not an error: the defaults are returned
// as-is. Overrides replace individual keys; everything not mentioned in
// the file keeps its default value.
func Load(path string) (*Table, error) {
	t := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return t, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading calibration file %s", path)
	}

	var cfg yamlConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing calibration file %s", path)
	}

	for name, b := range cfg.RoleBaselines {
		t.roles[model.Role(name)] = rating.RoleBaseline{Mean: b.Mean, Std: b.Std, Max: b.Max}
	}
	for mapName, weights := range cfg.MapWeights {
		if t.mapWeights[mapName] == nil {
			t.mapWeights[mapName] = make(map[model.Role]float64, len(weights))
		}
		for role, w := range weights {
			t.mapWeights[mapName][model.Role(role)] = w
		}
	}
	for mapName, caps := range cfg.MapRoleCaps {
		if t.mapRoleCaps[mapName] == nil {
			t.mapRoleCaps[mapName] = make(map[model.Role]float64, len(caps))
		}
		for role, c := range caps {
			t.mapRoleCaps[mapName][model.Role(role)] = c
		}
	}

	log.WithFields(log.Fields{
		"path":           path,
		"role_baselines": len(cfg.RoleBaselines),
		"map_weights":    len(cfg.MapWeights),
		"map_role_caps":  len(cfg.MapRoleCaps),
	}).Debug("Applied calibration overrides")

	return t, nil
}
