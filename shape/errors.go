package shape

import "errors"

// ErrDirectionNotSet is returned by operations that require a direction to
// already be recorded for the given incidence.
var ErrDirectionNotSet = errors.New("shape: direction not set for incidence")
