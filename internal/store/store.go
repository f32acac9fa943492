// Package store defines the persisted-inventory shape (spec.md §6's
// MongoDB-shaped collections: components, damages, fragilities,
// coordinates/realcoordinates) as Go interfaces plus an in-memory
// reference implementation. A real MongoDB driver is explicitly out of
// scope (spec.md §1 names persistence as "interfaces only"); this package
// exists so internal/riskengine has something concrete to depend on.
package store

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrComponentNotFound indicates a requested component id has no record.
var ErrComponentNotFound = errors.New("store: component not found")

// Damage is one damage-state lognormal parameter pair for a component
// (spec.md §3's Component Record: "damages... at least one damage-state
// with lognormal parameters mean>0, dispersion>0").
type Damage struct {
	Mean       float64 `json:"mean"`
	Dispersion float64 `json:"dispersion"`
}

// Fragility names the intensity measure a component's fragility curve is
// defined against (spec.md §3's fragilities.imName).
type Fragility struct {
	IMName string `json:"imName"`
}

// Location is one axis-aligned rectangular footprint of a component in
// world centimetres, plus its influence radius (spec.md §3).
type Location struct {
	TopLeftH          float64 `json:"topLeftH"`
	TopLeftV          float64 `json:"topLeftV"`
	BottomRightH      float64 `json:"bottomRightH"`
	BottomRightV      float64 `json:"bottomRightV"`
	InfluenceRadiusCm float64 `json:"influenceRadiusCm"`
}

// Component is one physical, located, fragility-rated inventory item.
type Component struct {
	ID        string     `json:"id"`
	Locations []Location `json:"locations"`
	Damages   []Damage   `json:"damages"`
	Fragility Fragility  `json:"fragility"`
}

// MostSevereDamage returns the damage-state with the largest mean, per
// spec.md §3: "if multiple, the most severe - largest mean - is used".
func (c Component) MostSevereDamage() (Damage, bool) {
	if len(c.Damages) == 0 {
		return Damage{}, false
	}
	worst := c.Damages[0]
	for _, d := range c.Damages[1:] {
		if d.Mean > worst.Mean {
			worst = d
		}
	}
	return worst, true
}

// Centroid returns the mean of all of a component's location centres, used
// to select the nearest sensor (spec.md §4.7). Summed with
// gonum.org/v1/gonum/floats.Sum, matching mkelp-inmap/vargrid.go's
// `floats.Sum(c.Cf)` reduction.
func (c Component) Centroid() (h, v float64, ok bool) {
	if len(c.Locations) == 0 {
		return 0, 0, false
	}
	hs := make([]float64, len(c.Locations))
	vs := make([]float64, len(c.Locations))
	for i, loc := range c.Locations {
		hs[i] = (loc.TopLeftH + loc.BottomRightH) / 2
		vs[i] = (loc.TopLeftV + loc.BottomRightV) / 2
	}
	n := float64(len(c.Locations))
	return floats.Sum(hs) / n, floats.Sum(vs) / n, true
}

// Inventory is the persisted-component read surface the Risk Engine
// consumes, grounded on original_source/src/get_db.py's collection joins
// (components + damages + fragilities + coordinates/realcoordinates, all
// joined by component id).
type Inventory interface {
	// Components returns every component record for mapName.
	Components(ctx context.Context, mapName string) ([]Component, error)
}

// MemoryInventory is an in-memory Inventory keyed by map name, standing in
// for the real MongoDB-backed store (non-goal per spec.md §1).
type MemoryInventory struct {
	byMap map[string][]Component
}

// NewMemoryInventory builds an empty MemoryInventory.
func NewMemoryInventory() *MemoryInventory {
	return &MemoryInventory{byMap: make(map[string][]Component)}
}

// Seed registers components for mapName, replacing any prior contents.
func (m *MemoryInventory) Seed(mapName string, components []Component) {
	cp := make([]Component, len(components))
	copy(cp, components)
	m.byMap[mapName] = cp
}

// Components implements Inventory.
func (m *MemoryInventory) Components(_ context.Context, mapName string) ([]Component, error) {
	cs, ok := m.byMap[mapName]
	if !ok {
		return nil, fmt.Errorf("store: no components seeded for map %q", mapName)
	}
	out := make([]Component, len(cs))
	copy(out, cs)
	return out, nil
}
