// Package gridmodel represents the rasterised floorplan: a fixed
// rows×columns lattice indexed row-major by integers 0..rows*columns-1,
// immutable after load, carrying per-cell adjacency, the safe-zone set, the
// pixel-to-centimetre scale, and the anchor that locates cell 0 in world
// coordinates.
//
// The package mirrors the construction and validation style of
// github.com/katalvlaran/lvlath/gridgraph: a plain data struct built once by
// a validating constructor and never mutated afterward.
package gridmodel

import "sort"

// CellSpec is the wire shape of one entry in the map file's "cells" array:
// an id and its set of traversable neighbor ids. An empty Connections slice
// marks a non-traversable obstacle cell.
type CellSpec struct {
	ID          int   `json:"id" yaml:"id"`
	Connections []int `json:"connections" yaml:"connections"`
}

// Spec is the wire shape of a map file (spec.md §6 "Map file (JSON)").
type Spec struct {
	Rows               int        `json:"rows" yaml:"rows"`
	Columns            int        `json:"columns" yaml:"columns"`
	CellSizeCm         float64    `json:"cell_size_cm" yaml:"cell_size_cm"`
	MillimeterPerPixel float64    `json:"millimeter_per_pixel" yaml:"millimeter_per_pixel"`
	SafeZones          []int      `json:"safe_zones" yaml:"safe_zones"`
	Cells              []CellSpec `json:"cells" yaml:"cells"`
	SceneName          string     `json:"scene_name" yaml:"scene_name"`
}

// Anchor locates the centre of cell 0 in world centimetres, derived from a
// reference cell id and its known world-cm position (spec.md §4.3).
type Anchor struct {
	// H, V are the world-cm coordinates of the centre of cell 0, in the
	// (horizontal, vertical) = (x, y) convention used by component
	// rectangles.
	H, V float64
}

// Grid is the immutable rasterised floorplan consumed by the risk engine
// and the planner. Construct with NewGrid; it is never mutated afterward.
type Grid struct {
	rows, columns      int
	cellSizeCm         float64
	millimeterPerPixel float64
	safeZones          map[int]struct{}
	connections        [][]int // indexed by cell id
	anchor             Anchor
	sceneName          string
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of grid columns.
func (g *Grid) Columns() int { return g.columns }

// CellCount returns rows*columns.
func (g *Grid) CellCount() int { return g.rows * g.columns }

// CellSizeCm returns the edge length of one square cell, in centimetres.
func (g *Grid) CellSizeCm() float64 { return g.cellSizeCm }

// MillimeterPerPixel returns the map's pixel-to-millimetre scale.
func (g *Grid) MillimeterPerPixel() float64 { return g.millimeterPerPixel }

// Anchor returns the world-cm location of the centre of cell 0.
func (g *Grid) Anchor() Anchor { return g.anchor }

// SceneName returns the optional scene name carried by the map file.
func (g *Grid) SceneName() string { return g.sceneName }

// IsSafeZone reports whether id is one of the configured safe-zone cells.
func (g *Grid) IsSafeZone(id int) bool {
	_, ok := g.safeZones[id]
	return ok
}

// SafeZones returns the set of safe-zone cell ids, sorted ascending.
func (g *Grid) SafeZones() []int {
	ids := make([]int, 0, len(g.safeZones))
	for id := range g.safeZones {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Connections returns the traversable neighbor ids of cell id. An empty
// slice means id is a non-traversable obstacle (or out of range).
func (g *Grid) Connections(id int) []int {
	if id < 0 || id >= len(g.connections) {
		return nil
	}
	return g.connections[id]
}

// InRange reports whether id is a valid cell index for this grid.
func (g *Grid) InRange(id int) bool {
	return id >= 0 && id < g.CellCount()
}

