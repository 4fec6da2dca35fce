package physics

import "errors"

var (
	// ErrTableFull is returned when an entity table has no free slot
	ErrTableFull = errors.New("entity table full")

	// ErrInvalidPoint is returned when a point index is out of range or inactive
	ErrInvalidPoint = errors.New("invalid point index")

	// ErrInvalidIndex is returned when a non-point index is out of range
	ErrInvalidIndex = errors.New("index out of range")
)
