package gridmodel

import "errors"

// Sentinel errors for gridmodel operations, matching spec.md's InvalidGrid
// taxonomy (dimension mismatch, unknown safe-zone id, non-traversable start).
var (
	// ErrInvalidGrid indicates a structural problem with the grid itself:
	// dimension mismatch between rows*columns and len(cells), an
	// out-of-range or asymmetric connection, or an out-of-range safe zone.
	ErrInvalidGrid = errors.New("gridmodel: invalid grid")

	// ErrEmptyGrid indicates rows or columns is non-positive.
	ErrEmptyGrid = errors.New("gridmodel: grid must have at least one row and one column")

	// ErrNoSafeZones indicates the grid declares zero safe zones.
	ErrNoSafeZones = errors.New("gridmodel: grid must declare at least one safe zone")

	// ErrStartNotTraversable indicates the planner's requested start cell
	// has an empty connection set.
	ErrStartNotTraversable = errors.New("gridmodel: start cell is not traversable")

	// ErrCellOutOfRange indicates a cell id outside [0, rows*columns).
	ErrCellOutOfRange = errors.New("gridmodel: cell id out of range")
)
