package planner

import "errors"

// Sentinel errors for the risk-aware A* planner.
var (
	// ErrNoPath indicates the frontier was exhausted without reaching any
	// safe zone. Per spec.md §7, NoPath is a normal search outcome, not a
	// fatal condition — callers may treat it as "no route currently
	// exists" rather than raising it further.
	ErrNoPath = errors.New("planner: no path to any safe zone")

	// ErrRiskVectorLength indicates a supplied risk vector's length does
	// not match the grid's cell count.
	ErrRiskVectorLength = errors.New("planner: risk vector length mismatch")
)
