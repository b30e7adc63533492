package bsp

import "errors"

// Sentinel errors for bsp operations.
var (
	// ErrInvalidRange indicates New was given an empty or inverted range.
	ErrInvalidRange = errors.New("bsp: invalid range")
	// ErrRangeNotCollapsed indicates Evaluate was called before the space
	// was narrowed down to a single value.
	ErrRangeNotCollapsed = errors.New("bsp: range of binary space is still too broad")
	// ErrOutOfRange indicates a value lies outside the space passed to Path.
	ErrOutOfRange = errors.New("bsp: value out of range")
	// ErrUnreachable indicates a value sits on an odd-width midpoint and no
	// directive sequence can select it.
	ErrUnreachable = errors.New("bsp: value not reachable by bisection")
)

// Partition selects which half of a Space survives a bisection.
type Partition uint8

const (
	// Lower keeps the floor half; start is unchanged.
	Lower Partition = iota
	// Upper keeps the ceiling half; start moves forward by ceil(width/2).
	Upper
)

// String returns "lower" or "upper".
func (p Partition) String() string {
	switch p {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the declared directives.
func (p Partition) Valid() bool {
	return p == Lower || p == Upper
}
