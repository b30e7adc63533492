package seatmap

import "errors"

// Sentinel errors for seatmap operations.
var (
	// ErrOutOfBounds indicates a pass whose row or column lies outside the layout.
	ErrOutOfBounds = errors.New("seatmap: seat outside cabin layout")
	// ErrSeatTaken indicates a seat was boarded twice.
	ErrSeatTaken = errors.New("seatmap: seat already taken")
	// ErrNoVacancy indicates OwnSeat found no enclosed empty seat.
	ErrNoVacancy = errors.New("seatmap: no vacant seat between two taken seats")
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: front, right, back, left.
	Conn4 Connectivity = iota
	// Conn8 also links diagonal seats.
	Conn8
)

// Options contains tunable parameters for seat analysis.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity for VacantBlocks.
	Conn Connectivity
}

// DefaultOptions returns Options with Conn=Conn4.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

const (
	vacant   = 0
	occupied = 1
)
