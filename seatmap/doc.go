// Package seatmap treats a cabin as a 2D grid of seats, one row per cabin
// row and one column per seat letter, and answers occupancy questions over
// a set of decoded boarding passes.
//
// What:
//
//   - SeatMap is built from a boarding.Layout; Board marks a pass's seat.
//   - Vacancies lists empty seat ids in ascending order.
//   - VacantBlocks groups empty seats into contiguous regions (Conn4 or Conn8).
//   - OwnSeat finds the empty seat whose neighbours by id (id-1 and id+1)
//     are both taken: the one gap left in an otherwise full flight.
//
// Complexity:
//
//   - Board, Occupied:   O(1).
//   - Vacancies, OwnSeat: O(R×C).
//   - VacantBlocks:      O(R×C×d), Memory: O(R×C)   (d = 4 or 8).
//
// Errors:
//
//   - ErrOutOfBounds: pass coordinates outside the layout.
//   - ErrSeatTaken:   two passes claim the same seat.
//   - ErrNoVacancy:   no seat satisfies OwnSeat.
//
// A SeatMap is not safe for concurrent Board calls; build it from one
// goroutine and share it read-only afterwards.
package seatmap
