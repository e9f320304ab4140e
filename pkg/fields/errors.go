package fields

import "errors"

// ErrInvalidLimits is returned by LoadLimits and Limits.Validate when the
// configured thresholds cannot accept any value.
var ErrInvalidLimits = errors.New("invalid field limits")
