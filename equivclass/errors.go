package equivclass

import "errors"

var (
	// ErrElemAlreadyClassed is returned by SetClass when elem already
	// belongs to a different class.
	ErrElemAlreadyClassed = errors.New("equivclass: element already has a class")
	// ErrElemNotClassed is returned by GetClassOfElem when elem has no
	// recorded class.
	ErrElemNotClassed = errors.New("equivclass: element has no class")
	// ErrClassNotFound is returned by GetElemsOfClass when classID was
	// never assigned to any element.
	ErrClassNotFound = errors.New("equivclass: class not found")
)
