package boarding

import (
	"errors"
	"fmt"
	"math/bits"
)

// Sentinel errors for boarding operations.
var (
	// ErrMalformedInput indicates a seat string too short to hold the row
	// segment and at least one column character.
	ErrMalformedInput = errors.New("boarding: malformed seat string")
	// ErrInvalidDirectiveChar indicates a character outside the alphabet of
	// the segment it appears in.
	ErrInvalidDirectiveChar = errors.New("boarding: invalid directive char")
	// ErrInvalidLayout indicates a layout with fewer than one row or column.
	ErrInvalidLayout = errors.New("boarding: layout must have at least one row and one column")
	// ErrInvalidAlphabet indicates an alphabet whose Lower and Upper runes coincide.
	ErrInvalidAlphabet = errors.New("boarding: alphabet needs two distinct characters")
	// ErrSeatOutOfRange indicates Encode was asked for coordinates outside the layout.
	ErrSeatOutOfRange = errors.New("boarding: seat out of range")
)

// Default cabin dimensions.
const (
	DefaultRows    = 128
	DefaultColumns = 8
)

// Layout describes the seat grid of a cabin.
type Layout struct {
	Rows    int `yaml:"rows" json:"rows"`
	Columns int `yaml:"columns" json:"columns"`
}

// DefaultLayout returns the 128-row, 8-column layout.
func DefaultLayout() Layout {
	return Layout{Rows: DefaultRows, Columns: DefaultColumns}
}

// Validate returns ErrInvalidLayout if Rows or Columns is below 1.
func (l Layout) Validate() error {
	if l.Rows < 1 || l.Columns < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidLayout, l.Rows, l.Columns)
	}

	return nil
}

// RowDirectives is the length of the row segment: ceil(log2(Rows)).
func (l Layout) RowDirectives() int {
	return bits.Len(uint(l.Rows - 1))
}

// ColumnDirectives is the length of the column segment: ceil(log2(Columns)).
func (l Layout) ColumnDirectives() int {
	return bits.Len(uint(l.Columns - 1))
}

// Seats returns Rows*Columns, one past the largest seat id.
func (l Layout) Seats() int {
	return l.Rows * l.Columns
}

// SeatID combines row and column into a single identifier.
func (l Layout) SeatID(row, column int) int {
	return row*l.Columns + column
}

// Coordinates is the inverse of SeatID.
func (l Layout) Coordinates(id int) (row, column int) {
	return id / l.Columns, id % l.Columns
}

// Pass is a decoded boarding pass. It is immutable; the id is derived from
// row and column at decode time.
type Pass struct {
	seat   string
	row    int
	column int
	id     int
}

// Seat returns the original seat string.
func (p Pass) Seat() string { return p.seat }

// Row returns the decoded row index.
func (p Pass) Row() int { return p.row }

// Column returns the decoded column index.
func (p Pass) Column() int { return p.column }

// ID returns the seat identifier.
func (p Pass) ID() int { return p.id }

// String renders p as "FBFBBFFRLR: row 44, column 5, seat ID 357".
func (p Pass) String() string {
	return fmt.Sprintf("%s: row %d, column %d, seat ID %d", p.seat, p.row, p.column, p.id)
}

// SeatID returns row*8 + column, the identifier under the default layout.
func SeatID(row, column int) int {
	return DefaultLayout().SeatID(row, column)
}
