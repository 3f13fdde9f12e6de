package graphgen

import "errors"

// ErrTooFewVertices is returned when a constructor's size parameter is
// smaller than the minimum that constructor requires.
var ErrTooFewVertices = errors.New("graphgen: parameter too small")
