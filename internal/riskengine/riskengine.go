// Package riskengine orchestrates the Risk Map Builder subsystem
// (spec.md §4.7): per-component nearest-sensor selection, spectral
// response, fragility evaluation, and spatial stamping into a dense
// per-cell risk vector, plus the structural-index bookkeeping and
// cold/warm snapshot paths. Grounded end to end on
// original_source/src/risks.py's Risk class (compute_risks,
// compute_risks_from_cached_db, combine_structural_risks_with_cached),
// with the "exported entry point, functional options" shape adapted from
// github.com/katalvlaran/lvlath/dijkstra.
package riskengine

import (
	"context"
	"fmt"
	"math"

	"github.com/rossini/evac-planner/internal/config"
	"github.com/rossini/evac-planner/internal/fragility"
	"github.com/rossini/evac-planner/internal/gridmodel"
	"github.com/rossini/evac-planner/internal/spectral"
	"github.com/rossini/evac-planner/internal/stamper"
	"github.com/rossini/evac-planner/internal/store"
	"github.com/rossini/evac-planner/internal/telemetry"
)

// Engine computes risk vectors for one grid across multiple requests. It
// holds no per-request mutable state; Compute* methods keep each request's
// risk vector and structural set in local variables.
type Engine struct {
	grid      *gridmodel.Grid
	constants config.Constants
	log       *telemetry.Logger
}

// Option configures an Engine, matching the functional-options style used
// throughout this module (internal/planner.Option, the teacher's
// dijkstra.Option).
type Option func(*Engine)

// WithLogger attaches a structured logger; the default Engine logs nothing.
func WithLogger(l *telemetry.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New builds an Engine over grid using constants for structural-id lookup
// and per-map reference points.
func New(grid *gridmodel.Grid, constants config.Constants, opts ...Option) *Engine {
	e := &Engine{grid: grid, constants: constants}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ComputeCold loads components from inventory for mapName, computes the
// risk vector from sensors, merges cachedStructural if non-nil, and
// returns both the Result and a Snapshot suitable for caching (spec.md
// §4.7's cold path).
func (e *Engine) ComputeCold(ctx context.Context, inventory store.Inventory, mapName string, sensors []Sensor, cachedStructural []int) (Result, Snapshot, error) {
	components, err := inventory.Components(ctx, mapName)
	if err != nil {
		return Result{}, Snapshot{}, fmt.Errorf("riskengine: loading inventory: %w", err)
	}

	snapshot := NewSnapshot(components)
	result, err := e.stampAll(components, sensors, cachedStructural)
	if err != nil {
		return Result{}, Snapshot{}, err
	}
	return result, snapshot, nil
}

// ComputeWarm proceeds directly from a previously cached Snapshot, skipping
// the inventory load (spec.md §4.7's warm path). Identical post-stamping
// behaviour to ComputeCold.
func (e *Engine) ComputeWarm(snapshot Snapshot, sensors []Sensor, cachedStructural []int) (Result, error) {
	components := make([]store.Component, 0, len(snapshot.Components))
	for _, c := range snapshot.Components {
		components = append(components, c)
	}
	return e.stampAll(components, sensors, cachedStructural)
}

func (e *Engine) stampAll(components []store.Component, sensors []Sensor, cachedStructural []int) (Result, error) {
	if len(sensors) == 0 {
		return Result{}, ErrNoSensors
	}
	if len(sensors) > 1 {
		for _, s := range sensors {
			if !s.HasLocation {
				return Result{}, ErrSensorLocationRequired
			}
		}
	}

	risk := make([]int, e.grid.CellCount())
	structural := make(map[int]struct{})

	for _, c := range components {
		core, halo, err := e.stampComponent(c, sensors, risk)
		if err != nil {
			return Result{}, fmt.Errorf("riskengine: component %s: %w", c.ID, err)
		}

		if e.constants.IsStructural(c.ID) {
			for _, id := range core {
				structural[id] = struct{}{}
			}
		}
		_ = halo // halo ids already folded into risk by stampComponent
	}

	if cachedStructural != nil {
		stamper.MergeMax(risk, cachedStructural)
	}

	if e.log != nil {
		e.log.Info("risk vector computed", "components", len(components), "structural_cells", len(structural))
	}

	return Result{Risk: risk, Structural: structural}, nil
}

// stampComponent computes one component's contribution and writes it into
// risk in place, returning the core/halo cell sets it touched.
func (e *Engine) stampComponent(c store.Component, sensors []Sensor, risk []int) (core, halo []int, err error) {
	damage, ok := c.MostSevereDamage()
	if !ok {
		return nil, nil, fmt.Errorf("component has no damage states")
	}

	sensor, err := e.nearestSensor(c, sensors)
	if err != nil {
		return nil, nil, err
	}

	period, damping, err := fragility.ParseIM(c.Fragility.IMName)
	if err != nil {
		return nil, nil, err
	}

	ia, err := spectral.Sa(sensor.Acceleration, sensor.Time, period, damping)
	if err != nil {
		return nil, nil, err
	}

	level, err := fragility.Evaluate(damage.Mean, damage.Dispersion, ia)
	if err != nil {
		return nil, nil, err
	}

	for _, loc := range c.Locations {
		cc, hh := stamper.CellSets(e.grid, stamper.Location{
			TopLeftH: loc.TopLeftH, TopLeftV: loc.TopLeftV,
			BottomRightH: loc.BottomRightH, BottomRightV: loc.BottomRightV,
			InfluenceRadiusCm: loc.InfluenceRadiusCm,
		})
		stamper.Apply(risk, cc, hh, level)
		core = append(core, cc...)
		halo = append(halo, hh...)
	}

	return core, halo, nil
}

// nearestSensor selects the sensor whose location is closest to c's
// centroid by Euclidean distance, short-circuiting to the single sensor
// present when only one is supplied (spec.md §4.7, §4.9).
func (e *Engine) nearestSensor(c store.Component, sensors []Sensor) (Sensor, error) {
	if len(sensors) == 1 {
		return sensors[0], nil
	}

	ch, cv, ok := c.Centroid()
	if !ok {
		return Sensor{}, ErrComponentNoCentroid
	}

	best := sensors[0]
	bestDist := math.Inf(1)
	for _, s := range sensors {
		d := math.Hypot(s.H-ch, s.V-cv)
		if d < bestDist {
			bestDist = d
			best = s
		}
	}
	return best, nil
}
