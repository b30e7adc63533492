package seatmap

import (
	"fmt"

	"github.com/katalvlaran/boarding/boarding"
)

// SeatMap is the occupancy grid of one cabin.
// height is the number of rows and width the number of seats per row;
// cells[row][column] is 1 when the seat is taken.
type SeatMap struct {
	width, height   int
	layout          boarding.Layout
	cells           [][]int
	taken           int
	neighborOffsets [][2]int
}

// New returns an empty SeatMap for layout.
// Returns boarding.ErrInvalidLayout if the layout has no rows or columns.
func New(layout boarding.Layout, opts Options) (*SeatMap, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	cells := make([][]int, layout.Rows)
	for y := range cells {
		cells[y] = make([]int, layout.Columns)
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &SeatMap{
		width:           layout.Columns,
		height:          layout.Rows,
		layout:          layout,
		cells:           cells,
		neighborOffsets: offsets,
	}, nil
}

// FromPasses builds a SeatMap and boards every pass in order.
// The first ErrOutOfBounds or ErrSeatTaken aborts construction.
func FromPasses(layout boarding.Layout, passes []boarding.Pass, opts Options) (*SeatMap, error) {
	sm, err := New(layout, opts)
	if err != nil {
		return nil, err
	}
	for _, p := range passes {
		if err := sm.Board(p); err != nil {
			return nil, err
		}
	}

	return sm, nil
}

// Width returns the number of seats per row.
func (sm *SeatMap) Width() int { return sm.width }

// Height returns the number of rows.
func (sm *SeatMap) Height() int { return sm.height }

// Layout returns the cabin dimensions.
func (sm *SeatMap) Layout() boarding.Layout { return sm.layout }

// InBounds reports whether (column,row) lies within the cabin.
func (sm *SeatMap) InBounds(x, y int) bool {
	return x >= 0 && x < sm.width && y >= 0 && y < sm.height
}

// Board marks the seat of p as taken.
func (sm *SeatMap) Board(p boarding.Pass) error {
	x, y := p.Column(), p.Row()
	if !sm.InBounds(x, y) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	if sm.cells[y][x] == occupied {
		return fmt.Errorf("%w: seat ID %d (%s)", ErrSeatTaken, p.ID(), p.Seat())
	}
	sm.cells[y][x] = occupied
	sm.taken++

	return nil
}

// Occupied reports whether the seat at (row, column) is taken.
// Seats outside the cabin are reported as not taken.
func (sm *SeatMap) Occupied(row, column int) bool {
	return sm.InBounds(column, row) && sm.cells[row][column] == occupied
}

// Taken returns the number of boarded seats.
func (sm *SeatMap) Taken() int { return sm.taken }

// index maps (x,y) to the seat id y*Width + x.
func (sm *SeatMap) index(x, y int) int {
	return y*sm.width + x
}

// Coordinate converts a seat id back to (x,y) = (column,row).
func (sm *SeatMap) Coordinate(id int) (x, y int) {
	return id % sm.width, id / sm.width
}

func (sm *SeatMap) occupiedID(id int) bool {
	if id < 0 || id >= sm.width*sm.height {
		return false
	}
	x, y := sm.Coordinate(id)
	return sm.cells[y][x] == occupied
}

// Vacancies returns the ids of all empty seats in ascending order.
func (sm *SeatMap) Vacancies() []int {
	ids := make([]int, 0, sm.width*sm.height-sm.taken)
	for y := 0; y < sm.height; y++ {
		for x := 0; x < sm.width; x++ {
			if sm.cells[y][x] == vacant {
				ids = append(ids, sm.index(x, y))
			}
		}
	}

	return ids
}

// OwnSeat returns the lowest empty seat id whose ids id-1 and id+1 are both
// taken. Seats at the very front and back of the cabin never qualify.
// Returns ErrNoVacancy if no such seat exists.
func (sm *SeatMap) OwnSeat() (int, error) {
	for _, id := range sm.Vacancies() {
		if sm.occupiedID(id-1) && sm.occupiedID(id+1) {
			return id, nil
		}
	}

	return 0, ErrNoVacancy
}
