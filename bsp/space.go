package bsp

import "fmt"

// Space is the half-open integer range [start, start+width).
// The zero value is not a valid Space; use New.
type Space struct {
	start int
	width int
}

// New returns the Space [inclusiveStart, exclusiveEnd).
// Returns ErrInvalidRange if exclusiveEnd <= inclusiveStart or if the width
// does not fit in an int.
func New(inclusiveStart, exclusiveEnd int) (Space, error) {
	if exclusiveEnd <= inclusiveStart {
		return Space{}, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, inclusiveStart, exclusiveEnd)
	}
	width := exclusiveEnd - inclusiveStart
	if width <= 0 {
		return Space{}, fmt.Errorf("%w: [%d, %d) width overflows int", ErrInvalidRange, inclusiveStart, exclusiveEnd)
	}

	return Space{start: inclusiveStart, width: width}, nil
}

// Start returns the inclusive lower bound of the current range.
func (s Space) Start() int { return s.start }

// Width returns the number of integers still covered by s.
func (s Space) Width() int { return s.width }

// End returns the exclusive upper bound of the current range.
func (s Space) End() int { return s.start + s.width }

// Collapsed reports whether s covers exactly one integer.
func (s Space) Collapsed() bool { return s.width == 1 }

// Partition applies each directive in order and returns the resulting Space.
// Processing stops as soon as the width drops below 2, so surplus directives
// are harmless. Directives that are not Lower or Upper leave the space as is.
// Complexity: O(len(parts)).
func (s Space) Partition(parts ...Partition) Space {
	for _, p := range parts {
		if s.width < 2 {
			break
		}
		s = s.bisect(p)
	}

	return s
}

// bisect halves s once. For positive widths, integer division is floor(w/2)
// and w-w/2 is ceil(w/2).
func (s Space) bisect(p Partition) Space {
	switch p {
	case Lower:
		s.width /= 2
	case Upper:
		delta := s.width - s.width/2
		s.start += delta
		s.width -= delta
	}

	return s
}

// Evaluate returns the single value covered by s.
// Returns ErrRangeNotCollapsed (with the current width) if Width() != 1.
func (s Space) Evaluate() (int, error) {
	if s.width != 1 {
		return 0, fmt.Errorf("%w (%d)", ErrRangeNotCollapsed, s.width)
	}

	return s.start, nil
}

// String renders s as a half-open interval, e.g. "[0, 128)".
func (s Space) String() string {
	return fmt.Sprintf("[%d, %d)", s.start, s.End())
}

// Path returns the directives that narrow s down to v, most significant
// first. Partition(Path(v)...) evaluates to v for every reachable v.
// Returns ErrOutOfRange if v is not in s and ErrUnreachable if v is skipped
// as the midpoint of an odd-width split.
func (s Space) Path(v int) ([]Partition, error) {
	if v < s.start || v >= s.End() {
		return nil, fmt.Errorf("%w: %d not in %s", ErrOutOfRange, v, s)
	}
	var parts []Partition
	for s.width > 1 {
		lo, hi := s.bisect(Lower), s.bisect(Upper)
		switch {
		case v < lo.End():
			parts = append(parts, Lower)
			s = lo
		case v >= hi.start:
			parts = append(parts, Upper)
			s = hi
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnreachable, v)
		}
	}

	return parts, nil
}
