// Package fragility maps a component's damage-state lognormal parameters
// and local shaking intensity to an integer risk level in [0,9]
// (spec.md §4.5), a direct port of original_source/src/risks.py's
// derive_fragility.
package fragility

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// Risk0 is the exceedance-probability floor below which risk is 0.
	Risk0 = 0.04
	// RiskInterval buckets exceedance probability above Risk0 into integer
	// risk levels.
	RiskInterval = 0.16
	// pgaRangeMin and pgaRangeMax bound the 200-point PGA tabulation.
	pgaRangeMin = 0.01
	pgaRangeMax = 10.0
	pgaRangeN   = 200
)

// PGARange returns the 200 linearly spaced points in [0.01, 10.0] used to
// tabulate the lognormal exceedance curve (spec.md §4.5).
func PGARange() []float64 {
	out := make([]float64, pgaRangeN)
	step := (pgaRangeMax - pgaRangeMin) / float64(pgaRangeN-1)
	for i := range out {
		out[i] = pgaRangeMin + float64(i)*step
	}
	return out
}

var imNumberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ParseIM parses a component's fragilities.imName into (period, damping).
// "pga" (case-insensitive) maps to (T=0, ζ=0.02). Any other string is
// expected to embed two decimal numbers — period and damping-percent — in
// order, e.g. "Sa(T=0.7, ζ=2%)" -> (0.7, 0.02).
func ParseIM(imName string) (period, damping float64, err error) {
	if strings.ToLower(imName) == "pga" {
		return 0, 0.02, nil
	}

	nums := imNumberRe.FindAllString(imName, -1)
	if len(nums) < 2 {
		return 0, 0, fmt.Errorf("%w: cannot extract period and damping from imName %q", ErrInvalidFragility, imName)
	}

	period, err = strconv.ParseFloat(nums[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidFragility, err)
	}
	percent, err := strconv.ParseFloat(nums[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidFragility, err)
	}

	return period, percent / 100, nil
}

// Evaluate computes the integer risk level [0,9] for a component whose
// most-severe damage state has the given lognormal mean and dispersion,
// given the intensity ia = Sa(T,ζ) at the component's location
// (spec.md §4.5 steps 2-6).
func Evaluate(mean, dispersion, ia float64) (int, error) {
	if mean == 0 {
		return 0, nil
	}
	if dispersion <= 0 {
		return 0, fmt.Errorf("%w: dispersion must be positive, got %v", ErrInvalidFragility, dispersion)
	}

	pgaRange := PGARange()
	probabilities := make([]float64, len(pgaRange))
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	for i, x := range pgaRange {
		probabilities[i] = norm.CDF(math.Log(x/mean) / dispersion)
	}

	maxPGA := pgaRange[len(pgaRange)-1]
	minPGA := pgaRange[0]

	if ia > maxPGA {
		return 9, nil
	}
	if ia == 0 || ia < minPGA {
		return 0, nil
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(pgaRange, probabilities); err != nil {
		return 0, fmt.Errorf("%w: interpolation setup failed: %v", ErrInvalidFragility, err)
	}
	p := pl.Predict(ia)

	if p-Risk0 <= 0 {
		return 0, nil
	}

	level := int(math.Ceil((p-Risk0)/RiskInterval)) + 3
	if level < 0 {
		level = 0
	}
	if level > 9 {
		level = 9
	}
	return level, nil
}
