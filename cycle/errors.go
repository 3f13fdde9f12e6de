package cycle

import "errors"

// ErrNodeNotInCycle is returned by operations that require the given node id
// to already be a member of the cycle.
var ErrNodeNotInCycle = errors.New("cycle: node not in cycle")
