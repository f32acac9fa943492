package riskengine

import "errors"

// Sentinel errors for riskengine, matching original_source/src/risks.py's
// implicit preconditions (a KeyError on missing sensors, a shape mismatch
// on an unlocated multi-sensor input) made explicit.
var (
	// ErrNoSensors indicates an empty sensor list (spec.md §7).
	ErrNoSensors = errors.New("riskengine: no sensors supplied")

	// ErrSensorLocationRequired indicates more than one sensor was
	// supplied but at least one lacks a location, so nearest-sensor
	// selection cannot proceed (spec.md §4.9).
	ErrSensorLocationRequired = errors.New("riskengine: sensor location required when multiple sensors are supplied")

	// ErrComponentNoCentroid indicates a component has no locations to
	// derive a centroid from, so nearest-sensor selection cannot proceed.
	ErrComponentNoCentroid = errors.New("riskengine: component has no locations")
)
