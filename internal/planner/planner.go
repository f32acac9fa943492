// Package planner implements the risk-aware A* search of spec.md §4.8:
// best-first search from a worker's current cell to the nearest element of
// a set of safe zones, where the ranking function can be weighted by
// per-cell hazard; the accumulated path cost is plain step distance.
//
// The control-flow shape (a private "runner" struct whose process loop
// relaxes each neighbour inline, a lazy-decrease-key heap, a visited set
// guarding re-expansion) is
// adapted directly from github.com/katalvlaran/lvlath/dijkstra, generalized
// from "shortest distance to every vertex" to "best-first to the nearest of
// a goal set under a possibly inadmissible heuristic" — matching
// original_source/navigation/astar.py's Astar class exactly in ranking
// behavior (spec.md §9 Open Question: the risk-weighted heuristic is
// deliberately inadmissible; the exact ranking rule is preserved rather
// than "fixed").
package planner

import (
	"fmt"
	"math"

	"github.com/rossini/evac-planner/internal/frontier"
	"github.com/rossini/evac-planner/internal/gridmodel"
	"github.com/rossini/evac-planner/internal/heuristics"
)

// Plan searches grid from start to the nearest reachable safe zone and
// returns the ordered list of cell ids from that safe zone back to start
// (safe zone first, start last, inclusive on both ends). Returns ErrNoPath
// if no safe zone is reachable.
//
// Preconditions (validated in order):
//  1. opts parse cleanly (a bad heuristic name surfaces its parse error).
//  2. start is in range and traversable (gridmodel.ErrStartNotTraversable).
//  3. if AccountRisk, len(Risk) == grid.CellCount().
func Plan(grid *gridmodel.Grid, start int, opts ...Option) ([]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.heuristicErr != nil {
		return nil, cfg.heuristicErr
	}

	if err := grid.ValidateStart(start); err != nil {
		return nil, err
	}
	if cfg.AccountRisk && len(cfg.Risk) != grid.CellCount() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrRiskVectorLength, len(cfg.Risk), grid.CellCount())
	}

	safeZones := grid.SafeZones()
	n := grid.CellCount()

	r := &runner{
		grid:      grid,
		opts:      cfg,
		safeZones: safeZones,
		costSoFar: make([]float64, n),
		cameFrom:  make([]int, n),
		visited:   make([]bool, n),
		frontier:  frontier.New(n),
	}
	for i := range r.costSoFar {
		r.costSoFar[i] = math.Inf(1)
		r.cameFrom[i] = -1
	}

	r.costSoFar[start] = 0
	r.cameFrom[start] = start
	r.frontier.Insert(start, 0)

	reached, err := r.process()
	if err != nil {
		return nil, err
	}

	return reconstructPath(r.cameFrom, start, reached), nil
}

// runner holds the mutable state for a single Plan invocation.
type runner struct {
	grid      *gridmodel.Grid
	opts      Options
	safeZones []int
	costSoFar []float64 // dense array; missing entries are +Inf
	cameFrom  []int     // dense array; -1 means "unseen", start maps to itself
	visited   []bool
	frontier  *frontier.Frontier
}

// process runs the main best-first loop (spec.md §4.8 steps 2-5) and
// returns the safe-zone cell id first popped from the frontier.
func (r *runner) process() (int, error) {
	for r.frontier.Len() > 0 {
		u, _ := r.frontier.PopMin()

		if r.grid.IsSafeZone(u) {
			return u, nil
		}

		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		for _, v := range r.grid.Connections(u) {
			w, err := r.moveCost(u, v)
			if err != nil {
				return 0, err
			}
			candidate := r.costSoFar[u] + w

			if candidate < r.costSoFar[v] && !r.visited[v] {
				r.costSoFar[v] = candidate
				r.cameFrom[v] = u
				f, err := r.priority(v)
				if err != nil {
					return 0, err
				}
				r.frontier.Insert(v, f)
			}
		}
	}

	return 0, ErrNoPath
}

// moveCost is w(u,v) = h_dist(coord(u), coord(v)) under the configured
// heuristic (spec.md §4.8; matches astar.py's _get_cost_of_movement using
// the same self.heuristic for both movement cost and the goal heuristic).
func (r *runner) moveCost(u, v int) (float64, error) {
	ur, uc := r.grid.CellCoord(u)
	vr, vc := r.grid.CellCoord(v)
	return heuristics.Distance(r.opts.Heuristic, heuristics.Coord{Row: ur, Col: uc}, heuristics.Coord{Row: vr, Col: vc})
}

// goalHeuristic is h(v) = min over z in safe_zones of h_dist(coord(v), coord(z)).
func (r *runner) goalHeuristic(v int) (float64, error) {
	vr, vc := r.grid.CellCoord(v)
	vCoord := heuristics.Coord{Row: vr, Col: vc}

	best := math.Inf(1)
	for _, z := range r.safeZones {
		zr, zc := r.grid.CellCoord(z)
		d, err := heuristics.Distance(r.opts.Heuristic, vCoord, heuristics.Coord{Row: zr, Col: zc})
		if err != nil {
			return 0, err
		}
		if d < best {
			best = d
		}
	}
	return best, nil
}

// priority is f(v) = g(v) + k(v)*h(v), k(v) = risk[v] when AccountRisk,
// else 1 (spec.md §4.8). Multiplying the heuristic by risk[v] renders this
// search inadmissible by design: it biases toward low-risk corridors rather
// than guaranteeing the shortest path.
func (r *runner) priority(v int) (float64, error) {
	h, err := r.goalHeuristic(v)
	if err != nil {
		return 0, err
	}

	k := 1.0
	if r.opts.AccountRisk {
		k = float64(r.opts.Risk[v])
	}

	return r.costSoFar[v] + k*h, nil
}

// reconstructPath walks cameFrom from the reached safe cell back to start,
// emitting ids in reverse-reached order (safe-zone first, start last).
// Termination is guaranteed because cameFrom[start] == start is the cycle
// sentinel (spec.md §4.8, design notes §9).
func reconstructPath(cameFrom []int, start, reached int) []int {
	path := []int{reached}
	current := reached
	for current != start {
		current = cameFrom[current]
		path = append(path, current)
	}
	return path
}
