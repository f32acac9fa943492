// Package config loads the two configuration surfaces the service needs:
// service settings (listen address, map directory, cache TTLs, downstream
// navigation URL — env/flag driven via viper, mirroring
// original_source/src/config.py's pydantic Settings) and domain constants
// (STRUCTURE_IDS, REFERENCE, RISK_MAP — yaml-file driven, mirroring
// original_source/src/risks.py's Risk._get_constants loading constants.yaml).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ReferencePoint is one map's known world-position anchor, used to derive
// cell 0's world-cm position (spec.md §4.3).
type ReferencePoint struct {
	CellID int     `yaml:"cell_id"`
	H      float64 `yaml:"h"`
	V      float64 `yaml:"v"`
}

// Constants holds the domain constants that original_source/src/risks.py
// loads from constants.yaml at Risk construction time.
type Constants struct {
	// StructureIDs marks which inventory component ids are structural
	// rather than non-structural/ambient (spec.md §4.5).
	StructureIDs map[string]struct{} `yaml:"-"`

	// Reference maps a scene/map name to its known world-position anchor.
	Reference map[string]ReferencePoint `yaml:"reference"`

	// RiskMap is carried over from original_source/src/risks.py's RISK_MAP
	// dict for fidelity with the upstream constants file format. It is not
	// consulted anywhere in internal/stamper or internal/fragility: the
	// live halo computation always derives halo risk as max(0, core-3)
	// directly, never via a lookup table (see DESIGN.md's Open Question
	// decision on this field). Kept so that an existing constants.yaml
	// from the original deployment still parses without error.
	RiskMap map[int]int `yaml:"risk_map"`
}

type rawConstants struct {
	StructureIDs []string                  `yaml:"STRUCTURE_IDS"`
	Reference    map[string]ReferencePoint `yaml:"REFERENCE"`
	RiskMap      map[int]int               `yaml:"RISK_MAP"`
}

// DefaultConstants returns the hard-coded fallback values baked into
// original_source/src/risks.py's Risk class body, used whenever
// constants.yaml omits a key or is absent entirely.
func DefaultConstants() Constants {
	return Constants{
		StructureIDs: map[string]struct{}{
			"622204f35ed4ed1b0bb72c18": {},
			"622204ff5ed4ed1b0bb72c1a": {},
			"6222051d5ed4ed1b0bb72c1c": {},
			"622205335ed4ed1b0bb72c1e": {},
		},
		Reference: map[string]ReferencePoint{
			"2-Navigation_map_v1.0": {CellID: 3227, H: 26.0, V: 24.0},
			"2-NavigationFile":      {CellID: 5895, H: 8.5, V: 8.5},
		},
		RiskMap: map[int]int{0: 0, 1: 0, 2: 0, 3: 0, 4: 1, 5: 2, 6: 3, 7: 4, 8: 5, 9: 6},
	}
}

// LoadConstants reads path as YAML and overlays it onto DefaultConstants,
// matching _get_constants's "constants.get(key, self.<default>)" merge
// semantics: a key absent from the file keeps its hard-coded default.
func LoadConstants(path string) (Constants, error) {
	c := DefaultConstants()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var raw rawConstants
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return c, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if raw.StructureIDs != nil {
		ids := make(map[string]struct{}, len(raw.StructureIDs))
		for _, id := range raw.StructureIDs {
			ids[id] = struct{}{}
		}
		c.StructureIDs = ids
	}
	if raw.Reference != nil {
		c.Reference = raw.Reference
	}
	if raw.RiskMap != nil {
		c.RiskMap = raw.RiskMap
	}

	return c, nil
}

// IsStructural reports whether componentID is tracked as a structural
// component (spec.md §4.5's structural-vs-ambient split).
func (c Constants) IsStructural(componentID string) bool {
	_, ok := c.StructureIDs[componentID]
	return ok
}
