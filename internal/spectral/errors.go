package spectral

import "errors"

// ErrInvalidSignal indicates the acceleration/time series cannot produce a
// meaningful spectral response: zero sample spacing (dt=0) with a non-zero
// period, or mismatched series lengths.
var ErrInvalidSignal = errors.New("spectral: invalid acceleration/time signal")
