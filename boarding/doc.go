// Package boarding decodes boarding-pass seat strings such as "FBFBBFFRLR"
// into a row, a column and a dense seat identifier.
//
// What:
//
//   - The first characters of a seat string are row directives drawn from
//     {F, B}; the rest are column directives drawn from {L, R}.
//   - Each directive sequence is folded through a bsp.Space: [0,Rows) for the
//     row and [0,Columns) for the column.
//   - Seat id = row*Columns + column. With the default 128×8 layout the row
//     segment is 7 characters long and id = row*8 + column.
//
// Key Types:
//
//   - Pass:      immutable decoded seat (string, row, column, id).
//   - Alphabet:  the two characters that spell Lower and Upper.
//   - Layout:    cabin dimensions; the segment lengths follow from them.
//   - Decoder:   a Layout bound to the row and column alphabets.
//
// Concurrency:
//
//	Decode is a pure function. A Decoder is read-only after construction and
//	may be shared by any number of goroutines.
//
// Errors:
//
//   - ErrMalformedInput:       line too short to split at the row boundary.
//   - ErrInvalidDirectiveChar: character outside the segment's alphabet
//     (see DirectiveError for the character, position and alphabet).
//   - ErrInvalidLayout:        Rows or Columns < 1.
//   - ErrInvalidAlphabet:      an alphabet uses one character for both halves.
//   - bsp.ErrRangeNotCollapsed: a segment is too short to reach one seat;
//     wrapped with the failing stage.
//
// Example:
//
//	p, err := boarding.Decode("FBFBBFFRLR")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.Row(), p.Column(), p.ID()) // 44 5 357
package boarding
