package ioformat

import "errors"

// Sentinel errors for package ioformat. Callers should branch with
// errors.Is; messages are stable but not part of the API contract.
var (
	// ErrMalformedTXT is returned when a TXT graph file does not follow the
	// nodes:/edges: line format.
	ErrMalformedTXT = errors.New("ioformat: malformed txt graph")

	// ErrDuplicateNode is returned when a TXT or JSON file declares the same
	// node id twice.
	ErrDuplicateNode = errors.New("ioformat: duplicate node id")

	// ErrDuplicateEdge is returned when a TXT or JSON file declares the same
	// edge twice.
	ErrDuplicateEdge = errors.New("ioformat: duplicate edge")

	// ErrUnknownColor is returned when a color string doesn't name one of
	// the colors in package attrs.
	ErrUnknownColor = errors.New("ioformat: unknown color name")

	// ErrUnknownDirection is returned when a direction string doesn't name
	// one of the four compass directions in package shape.
	ErrUnknownDirection = errors.New("ioformat: unknown direction name")

	// ErrDirectionNotSet is returned when saving a drawing whose shape is
	// missing a direction for one of the graph's edges.
	ErrDirectionNotSet = errors.New("ioformat: direction not set for edge")
)
