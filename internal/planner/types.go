package planner

import "github.com/rossini/evac-planner/internal/heuristics"

// Options configures a single Plan invocation.
type Options struct {
	Heuristic   heuristics.Kind
	AccountRisk bool
	Risk        []int // per-cell risk vector; consulted only if AccountRisk
	heuristicErr error
}

// Option is a functional option mutating Options, matching the style of
// github.com/katalvlaran/lvlath/dijkstra's Option type.
type Option func(*Options)

// DefaultOptions returns Options with Heuristic=Euclidean and
// AccountRisk=false, matching original_source/navigation/astar.py's
// defaults (heuristic="euclidean", account_risk=False).
func DefaultOptions() Options {
	return Options{Heuristic: heuristics.Euclidean}
}

// WithHeuristic selects the named heuristic Kind directly.
func WithHeuristic(k heuristics.Kind) Option {
	return func(o *Options) { o.Heuristic = k }
}

// WithHeuristicName parses name via heuristics.Parse; an invalid name is
// surfaced as an error from Plan rather than panicking, since heuristic
// names typically arrive from an external request body.
func WithHeuristicName(name string) Option {
	return func(o *Options) {
		k, err := heuristics.Parse(name)
		if err != nil {
			o.heuristicErr = err
			return
		}
		o.Heuristic = k
	}
}

// WithRisk enables risk-weighted search using the given dense per-cell
// risk vector (spec.md §4.8: k(v) = risk[v] when account_risk).
func WithRisk(risk []int) Option {
	return func(o *Options) {
		o.AccountRisk = true
		o.Risk = risk
	}
}
