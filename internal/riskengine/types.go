package riskengine

import "github.com/rossini/evac-planner/internal/store"

// Sensor is one acceleration time-history record as supplied on a planning
// request (spec.md §3's Sensor Record).
type Sensor struct {
	Name string
	Type string

	Acceleration []float64
	Time         []float64

	HasLocation bool
	H, V        float64 // world cm; only meaningful if HasLocation
}

// Snapshot is the re-usable, cacheable view of an inventory's geometry and
// fragility data, independent of any sensor reading (spec.md §4.7: "Build
// an inventory snapshot keyed by component id, holding {locations,
// damages, fragilities}, suitable for re-use by a cached path that skips
// the database layer").
type Snapshot struct {
	Components map[string]store.Component
}

// NewSnapshot builds a Snapshot from a freshly loaded component list, as
// the cold path does right before caching it.
func NewSnapshot(components []store.Component) Snapshot {
	s := Snapshot{Components: make(map[string]store.Component, len(components))}
	for _, c := range components {
		s.Components[c.ID] = c
	}
	return s
}

// Result is what a single Compute* call produces: the dense per-cell risk
// vector plus the set of cells belonging to structural components
// (spec.md §3's Structural Index Set).
type Result struct {
	Risk       []int
	Structural map[int]struct{}
}

// IsStructural reports whether cell id belongs to a structural component.
func (r Result) IsStructural(id int) bool {
	_, ok := r.Structural[id]
	return ok
}
