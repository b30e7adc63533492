package boarding

import (
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/boarding/bsp"
)

// Decoder turns seat strings into Passes for one Layout.
// It holds no mutable state and is safe for concurrent use.
type Decoder struct {
	opts    Options
	rowLen  int
	rows    bsp.Space
	columns bsp.Space
}

var defaultDecoder = func() *Decoder {
	d, err := NewDecoder()
	if err != nil {
		panic(err)
	}
	return d
}()

// NewDecoder builds a Decoder from DefaultOptions overridden by opts.
// Returns ErrInvalidLayout if the layout has no rows or no columns and
// ErrInvalidAlphabet if either alphabet maps both halves to one character.
func NewDecoder(opts ...Option) (*Decoder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Layout.Validate(); err != nil {
		return nil, err
	}
	if err := o.RowAlphabet.Validate(); err != nil {
		return nil, err
	}
	if err := o.ColumnAlphabet.Validate(); err != nil {
		return nil, err
	}
	rows, err := bsp.New(0, o.Layout.Rows)
	if err != nil {
		return nil, fmt.Errorf("boarding: row space: %w", err)
	}
	columns, err := bsp.New(0, o.Layout.Columns)
	if err != nil {
		return nil, fmt.Errorf("boarding: column space: %w", err)
	}

	return &Decoder{
		opts:    o,
		rowLen:  o.Layout.RowDirectives(),
		rows:    rows,
		columns: columns,
	}, nil
}

// Layout returns the decoder's cabin dimensions.
func (d *Decoder) Layout() Layout { return d.opts.Layout }

// Decode parses line into a Pass.
//
// The first Layout().RowDirectives() characters form the row segment and the
// rest the column segment; line must contain at least one character past the
// row segment, else ErrMalformedInput. Each segment is parsed with its
// alphabet and folded through its space. A failure in either stage is
// wrapped with the stage name and no Pass is produced.
func (d *Decoder) Decode(line string) (Pass, error) {
	split, ok := runeOffset(line, d.rowLen)
	if !ok {
		return Pass{}, fmt.Errorf("%w: %q", ErrMalformedInput, line)
	}

	row, err := d.fold(d.rows, d.opts.RowAlphabet, line[:split])
	if err != nil {
		return Pass{}, fmt.Errorf("failed to partition row binary space: %w", err)
	}
	column, err := d.fold(d.columns, d.opts.ColumnAlphabet, line[split:])
	if err != nil {
		return Pass{}, fmt.Errorf("failed to partition column binary space: %w", err)
	}

	return Pass{
		seat:   line,
		row:    row,
		column: column,
		id:     d.opts.Layout.SeatID(row, column),
	}, nil
}

func (d *Decoder) fold(space bsp.Space, a Alphabet, segment string) (int, error) {
	parts, err := a.Parse(segment)
	if err != nil {
		return 0, err
	}

	return space.Partition(parts...).Evaluate()
}

// Encode returns the seat string that decodes to (row, column).
// Segments are padded to full length with the Lower character, which
// Decode ignores once a space has collapsed.
// Returns ErrSeatOutOfRange outside the layout, or bsp.ErrUnreachable for
// coordinates that an odd-width split can never select.
func (d *Decoder) Encode(row, column int) (string, error) {
	l := d.opts.Layout
	if row < 0 || row >= l.Rows || column < 0 || column >= l.Columns {
		return "", fmt.Errorf("%w: row %d, column %d in %dx%d", ErrSeatOutOfRange, row, column, l.Rows, l.Columns)
	}
	rowPath, err := d.rows.Path(row)
	if err != nil {
		return "", fmt.Errorf("boarding: encode row: %w", err)
	}
	colPath, err := d.columns.Path(column)
	if err != nil {
		return "", fmt.Errorf("boarding: encode column: %w", err)
	}
	rowPath = pad(rowPath, l.RowDirectives())
	// At least one column character so the string splits.
	colPath = pad(colPath, max(1, l.ColumnDirectives()))

	return d.opts.RowAlphabet.Format(rowPath) + d.opts.ColumnAlphabet.Format(colPath), nil
}

func pad(parts []bsp.Partition, n int) []bsp.Partition {
	for len(parts) < n {
		parts = append(parts, bsp.Lower)
	}
	return parts
}

// runeOffset returns the byte offset of the n-th rune of s and whether s has
// a rune at that position.
func runeOffset(s string, n int) (int, bool) {
	off := 0
	for i := 0; i < n; i++ {
		if off >= len(s) {
			return 0, false
		}
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}

	return off, off < len(s)
}

// DefaultDecoder returns the shared decoder for the 128×8 layout with the
// F/B and L/R alphabets.
func DefaultDecoder() *Decoder {
	return defaultDecoder
}

// Decode parses a seat string with the default 128×8 layout.
func Decode(line string) (Pass, error) {
	return defaultDecoder.Decode(line)
}

// Encode returns the default-layout seat string for (row, column).
func Encode(row, column int) (string, error) {
	return defaultDecoder.Encode(row, column)
}
