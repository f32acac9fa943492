package fragility

import "errors"

// ErrInvalidFragility indicates a fragility curve or intensity-measure name
// could not be parsed or evaluated: a malformed imName, or a non-positive
// dispersion.
var ErrInvalidFragility = errors.New("fragility: invalid fragility specification")
