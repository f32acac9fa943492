// Package stamper translates a component's rectangular footprint plus an
// influence radius into two disjoint cell-id sets (core, halo) and writes
// risk levels into a dense risk vector under a max-merge rule
// (spec.md §4.6), a direct port of original_source/src/risks.py's
// _get_cell_id plus the stamping loop in compute_risks.
package stamper

import "github.com/rossini/evac-planner/internal/gridmodel"

// Location is one axis-aligned rectangular footprint of a component, in
// world centimetres, plus its influence radius (also cm).
type Location struct {
	TopLeftH, TopLeftV         float64
	BottomRightH, BottomRightV float64
	InfluenceRadiusCm          float64
}

// CellSets computes the core footprint cell ids and the halo (influence,
// excluding core) cell ids for loc against grid. Core cells are those whose
// centre falls within [TopLeft, BottomRight); halo cells are those in the
// radius-expanded rectangle minus the core, with the expanded rectangle's
// lower-bound coordinates clamped at 0.
func CellSets(grid *gridmodel.Grid, loc Location) (core, halo []int) {
	rowStart, rowEnd, colStart, colEnd := grid.WorldToCellRange(
		loc.TopLeftH, loc.TopLeftV, loc.BottomRightH, loc.BottomRightV)

	coreSet := make(map[int]struct{})
	for row := rowStart; row < rowEnd; row++ {
		for col := colStart; col < colEnd; col++ {
			id := grid.CoordCell(row, col)
			if grid.InRange(id) {
				coreSet[id] = struct{}{}
				core = append(core, id)
			}
		}
	}

	r := loc.InfluenceRadiusCm
	hRowStart, hRowEnd, hColStart, hColEnd := grid.WorldToCellRange(
		loc.TopLeftH-r, loc.TopLeftV-r, loc.BottomRightH+r, loc.BottomRightV+r)
	if hRowStart < 0 {
		hRowStart = 0
	}
	if hColStart < 0 {
		hColStart = 0
	}

	for row := hRowStart; row < hRowEnd; row++ {
		for col := hColStart; col < hColEnd; col++ {
			id := grid.CoordCell(row, col)
			if !grid.InRange(id) {
				continue
			}
			if _, inCore := coreSet[id]; inCore {
				continue
			}
			halo = append(halo, id)
		}
	}

	return core, halo
}

// Apply writes risk into riskVec at the core cells and max(0, risk-3) at
// the halo cells, under the max-merge rule: a cell's value only ever
// increases (spec.md §4.6). riskVec is mutated in place and also returned
// for convenience. core and halo are as produced by CellSets.
func Apply(riskVec []int, core, halo []int, risk int) []int {
	for _, id := range core {
		if riskVec[id] < risk {
			riskVec[id] = risk
		}
	}

	haloRisk := risk - 3
	if haloRisk < 0 {
		haloRisk = 0
	}
	for _, id := range halo {
		if riskVec[id] < haloRisk {
			riskVec[id] = haloRisk
		}
	}

	return riskVec
}

// MergeMax combines two risk vectors of equal length cell-wise under
// max-merge, matching the cache-merge step in spec.md §4.7 ("if a prior
// structural risk vector is present in the cache, max-merge it cell-wise
// into the current vector"). dst is mutated in place.
func MergeMax(dst, other []int) []int {
	n := len(dst)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if other[i] > dst[i] {
			dst[i] = other[i]
		}
	}
	return dst
}
