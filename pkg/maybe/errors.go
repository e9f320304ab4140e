package maybe

import "errors"

// ErrNilHandler is the panic value raised when Match gets a nil handler or
// Bind, Map or Filter gets a nil function.
var ErrNilHandler = errors.New("maybe: handler or step function must not be nil")
