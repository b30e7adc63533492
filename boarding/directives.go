package boarding

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/boarding/bsp"
)

// Alphabet maps two characters onto the bsp directives.
type Alphabet struct {
	Name  string // "row" or "column"; used in error messages
	Lower rune
	Upper rune
}

// RowAlphabet returns the row alphabet: F(ront) keeps the lower half,
// B(ack) the upper half.
func RowAlphabet() Alphabet {
	return Alphabet{Name: "row", Lower: 'F', Upper: 'B'}
}

// ColumnAlphabet returns the column alphabet: L(eft) keeps the lower half,
// R(ight) the upper half.
func ColumnAlphabet() Alphabet {
	return Alphabet{Name: "column", Lower: 'L', Upper: 'R'}
}

// Validate returns ErrInvalidAlphabet if Lower and Upper are the same rune.
func (a Alphabet) Validate() error {
	if a.Lower == a.Upper {
		return fmt.Errorf("%w: %s alphabet uses %q for both halves", ErrInvalidAlphabet, a.Name, a.Lower)
	}

	return nil
}

// DirectiveError reports a character that is not part of an Alphabet.
// It unwraps to ErrInvalidDirectiveChar.
type DirectiveError struct {
	Char     rune   // offending character
	Pos      int    // rune index within the parsed segment
	Alphabet string // name of the alphabet in use
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("boarding: %q is not a valid %s binary space char (position %d)", e.Char, e.Alphabet, e.Pos)
}

// Unwrap lets errors.Is match ErrInvalidDirectiveChar.
func (e *DirectiveError) Unwrap() error { return ErrInvalidDirectiveChar }

// Parse maps every character of text to a directive. A single unknown
// character fails the whole segment; no partial result is returned.
func (a Alphabet) Parse(text string) ([]bsp.Partition, error) {
	parts := make([]bsp.Partition, 0, len(text))
	pos := 0
	for _, r := range text {
		switch r {
		case a.Lower:
			parts = append(parts, bsp.Lower)
		case a.Upper:
			parts = append(parts, bsp.Upper)
		default:
			return nil, &DirectiveError{Char: r, Pos: pos, Alphabet: a.Name}
		}
		pos++
	}

	return parts, nil
}

// Format is the inverse of Parse.
func (a Alphabet) Format(parts []bsp.Partition) string {
	var b strings.Builder
	b.Grow(len(parts))
	for _, p := range parts {
		if p == bsp.Upper {
			b.WriteRune(a.Upper)
		} else {
			b.WriteRune(a.Lower)
		}
	}

	return b.String()
}

// ParseRowDirectives parses a row segment over {F, B}.
func ParseRowDirectives(text string) ([]bsp.Partition, error) {
	return RowAlphabet().Parse(text)
}

// ParseColumnDirectives parses a column segment over {L, R}.
func ParseColumnDirectives(text string) ([]bsp.Partition, error) {
	return ColumnAlphabet().Parse(text)
}
