// Package spectral computes the pseudo-spectral-acceleration response
// Sa(T,ζ) of a damped single-degree-of-freedom oscillator driven by a
// recorded ground-acceleration time history, via an FFT-domain transfer
// function (spec.md §4.4).
//
// This is a direct port of original_source/src/get_sat.py: zero-pad the
// acceleration series to the next power of two, build a per-frequency-bin
// SDOF transfer function, apply it in the frequency domain, and take the
// peak absolute value of the real part of the inverse transform.
package spectral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// PGAPeriod is the infinitesimal period used to represent T=0 (peak ground
// acceleration) without dividing by zero in the natural-frequency term,
// matching get_sat.py's `period = 1e-20` substitution.
const PGAPeriod = 1e-20

// Sa computes the pseudo-spectral acceleration at a single period T (in
// seconds) and damping ratio zeta (fraction of critical), for the uniformly
// sampled acceleration series acc and matching time series timeSeries (both
// length N, same units as the accelerations returned: "g" in the original
// inventory, cm/s² if the caller scales accordingly).
//
// dt is taken as timeSeries[2]-timeSeries[1], matching the original
// implementation's (slightly unusual) choice of samples 1 and 2 rather than
// 0 and 1 — preserved for fidelity since downstream fragility constants
// were tuned against it.
func Sa(acc, timeSeries []float64, period, zeta float64) (float64, error) {
	out, err := SaBatch(acc, timeSeries, []float64{period}, zeta)
	if err != nil {
		return 0, err
	}
	return out[0], nil
}

// SaBatch computes Sa(T,ζ) for each period in periods independently,
// sharing a single FFT of acc across all periods (spec.md §4.4 point 6:
// "Vectorised T ... each period produces its own Sa independently").
func SaBatch(acc, timeSeries []float64, periods []float64, zeta float64) ([]float64, error) {
	if len(acc) == 0 || len(timeSeries) == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrInvalidSignal)
	}
	if len(acc) != len(timeSeries) {
		return nil, fmt.Errorf("%w: acceleration and time series length mismatch (%d vs %d)", ErrInvalidSignal, len(acc), len(timeSeries))
	}
	if len(timeSeries) < 3 {
		return nil, fmt.Errorf("%w: time series too short to derive dt from samples 1 and 2", ErrInvalidSignal)
	}

	dt := timeSeries[2] - timeSeries[1]
	if dt == 0 {
		for _, p := range periods {
			if p != 0 {
				return nil, fmt.Errorf("%w: dt=0 with non-zero period %v", ErrInvalidSignal, p)
			}
		}
		dt = 1e-20 // PGA-only batch: preserve numerical stability.
	}

	// Zero-pad to the next power of two, M = 2^ceil(log2 N).
	m := nextPowerOfTwo(len(acc))

	fft := fourier.NewCmplxFFT(m)
	seq := make([]complex128, m)
	for i, v := range acc {
		seq[i] = complex(v, 0)
	}
	F := fft.Coefficients(nil, seq)

	// sym_idx: S = ceil(M/2) for odd M, S = M/2+1 for even M.
	var sym int
	if m%2 != 0 {
		sym = (m + 1) / 2
	} else {
		sym = m/2 + 1
	}

	dFreq := 1.0 / (dt * float64(m-1))

	results := make([]float64, len(periods))
	H := make([]complex128, m)
	out := make([]complex128, m)

	for pi, period := range periods {
		p := period
		if p == 0 {
			p = PGAPeriod
		}

		omega := 1.0 / p

		H[0] = complex(1, 0)
		for k := 1; k < sym; k++ {
			fk := dFreq * float64(k)
			denom := complex(omega*omega-fk*fk, 2*zeta*fk*omega)
			H[k] = complex(omega*omega, 0) / denom
		}
		// Mirror the negative-frequency half as the conjugate of the
		// positive half; the Nyquist bin (even M) is real.
		if m%2 != 0 {
			for k := sym; k < m; k++ {
				H[k] = conjugate(H[m-k])
			}
		} else {
			H[sym-1] = complex(real(H[sym-1]), 0) // Nyquist bin forced real
			for k := sym; k < m; k++ {
				H[k] = conjugate(H[m-k])
			}
		}

		for i := 0; i < m; i++ {
			out[i] = H[i] * F[i]
		}

		ifftSeq := fft.Sequence(nil, out)
		// gonum's fourier.CmplxFFT.Sequence is an unnormalized inverse
		// transform (matching FFTW convention); normalize by 1/M to match
		// numpy.fft.ifft's convention that get_sat.py relies on.
		maxAbs := 0.0
		for i := 0; i < m; i++ {
			re := real(ifftSeq[i]) / float64(m)
			abs := math.Abs(re)
			if abs > maxAbs {
				maxAbs = abs
			}
		}
		results[pi] = maxAbs
	}

	return results, nil
}

func nextPowerOfTwo(n int) int {
	power := 1
	for (1 << power) < n {
		power++
	}
	return 1 << power
}

func conjugate(c complex128) complex128 {
	return complex(real(c), -imag(c))
}
