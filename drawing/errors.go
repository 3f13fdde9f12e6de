package drawing

import "errors"

var (
	// errUnexpectedLeftEdge/errUnexpectedDownEdge guard an invariant of
	// findEdgesToFix: a degree>4 node's horizontal fan-out edges must all
	// point RIGHT and its vertical fan-out edges must all point UP, since
	// addGreenBlueNodes only ever attaches helper nodes in those two
	// directions.
	errUnexpectedLeftEdge = errors.New("drawing: degree>4 node has an unexpected LEFT fan-out edge")
	errUnexpectedDownEdge = errors.New("drawing: degree>4 node has an unexpected DOWN fan-out edge")
	// errNoOtherNeighbor is returned by getOtherNeighborID when nodeID has
	// no neighbor besides neighborID, which should never happen for the
	// degree-2 bend and helper nodes it is called on.
	errNoOtherNeighbor = errors.New("drawing: node has no other neighbor")
)
