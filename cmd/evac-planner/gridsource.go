package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rossini/evac-planner/internal/config"
	"github.com/rossini/evac-planner/internal/gridmodel"
	"github.com/rossini/evac-planner/internal/riskengine"
)

// loadedGrid pairs a parsed Grid with the Engine built over it, so each
// canonical map name is parsed and anchored at most once.
type loadedGrid struct {
	grid   *gridmodel.Grid
	engine *riskengine.Engine
}

// fileGridSource implements httpapi.GridSource by reading
// "<mapDir>/<mapName>.json" map files, matching
// original_source/src/utils.py's read_map(path, filename).
type fileGridSource struct {
	mapDir    string
	constants config.Constants

	mu    sync.Mutex
	cache map[string]*loadedGrid
}

func newFileGridSource(mapDir string, constants config.Constants) *fileGridSource {
	return &fileGridSource{mapDir: mapDir, constants: constants, cache: make(map[string]*loadedGrid)}
}

// Engine resolves mapName to its Grid and Engine, loading and anchoring the
// map file on first use.
func (s *fileGridSource) Engine(mapName string) (*riskengine.Engine, *gridmodel.Grid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lg, ok := s.cache[mapName]; ok {
		return lg.engine, lg.grid, nil
	}

	path := filepath.Join(s.mapDir, mapName+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("gridsource: reading map file %s: %w", path, err)
	}

	var spec gridmodel.Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, nil, fmt.Errorf("gridsource: parsing map file %s: %w", path, err)
	}

	anchor := gridmodel.Anchor{}
	if ref, ok := s.constants.Reference[mapName]; ok {
		// original_source/src/risks.py's _identify_cell_0_position scales
		// the reference point's pixel position into cm before anchoring.
		h := ref.H * spec.MillimeterPerPixel / 10
		v := ref.V * spec.MillimeterPerPixel / 10
		anchor = gridmodel.ComputeAnchor(ref.CellID, spec.Columns, h, v, spec.CellSizeCm)
	}

	grid, err := gridmodel.NewGrid(spec, anchor)
	if err != nil {
		return nil, nil, fmt.Errorf("gridsource: building grid for %s: %w", mapName, err)
	}

	engine := riskengine.New(grid, s.constants)
	s.cache[mapName] = &loadedGrid{grid: grid, engine: engine}
	return engine, grid, nil
}
