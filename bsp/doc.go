// Package bsp implements a one-dimensional binary space: a half-open
// integer range [start, start+width) that is repeatedly halved until a
// single value remains.
//
// What:
//
//   - Space is a small value type. Partition never mutates its receiver;
//     it returns a new Space, so intermediate states are never shared.
//   - Partition is a closed two-valued directive: Lower keeps the floor half,
//     Upper keeps the ceiling half and moves start forward.
//   - Evaluate collapses a Space of width 1 into its only value.
//   - Path is the inverse: the directives that narrow a Space down to a value.
//
// Why:
//
//   - Decoding binary-partitioned identifiers (boarding-pass seats, bit
//     strings spelled with letters) without converting them to integers by hand.
//   - The range is caller-supplied; Space knows nothing about rows or columns.
//
// Odd widths:
//
//	For a width w ≥ 2, Lower yields floor(w/2) and Upper yields w-ceil(w/2)
//	starting at start+ceil(w/2). Even widths split into two adjacent halves
//	with nothing lost. On odd widths the midpoint start+floor(w/2) falls into
//	neither half. Power-of-two widths only ever split evenly.
//
// Overrun:
//
//	Directives that arrive once the width is already 1 are ignored.
//
// Complexity:
//
//   - New, Evaluate: O(1).
//   - Partition:     O(k) for k directives, no allocation.
//   - Path:          O(log w) time and memory.
//
// Errors:
//
//   - ErrInvalidRange:      exclusive end is not greater than inclusive start,
//     or end-start exceeds math.MaxInt (e.g. [math.MinInt, math.MaxInt)).
//   - ErrRangeNotCollapsed: Evaluate called while width != 1.
//   - ErrOutOfRange:        Path asked for a value outside the space.
//   - ErrUnreachable:       Path asked for a dropped odd-width midpoint.
package bsp
