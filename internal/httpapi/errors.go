package httpapi

import "errors"

// ErrInvalidRequest covers the client-error validation cases spec.md §6
// names explicitly: empty sensor list, multi-sensor input missing
// locations, and a structural/environmental risk-vector length mismatch.
var ErrInvalidRequest = errors.New("httpapi: invalid request")
