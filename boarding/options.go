package boarding

// Options configures a Decoder.
//
// Layout         – cabin dimensions. Default 128×8.
// RowAlphabet    – characters of the row segment. Default {F, B}.
// ColumnAlphabet – characters of the column segment. Default {L, R}.
type Options struct {
	Layout         Layout
	RowAlphabet    Alphabet
	ColumnAlphabet Alphabet
}

// Option represents a functional option for configuring a Decoder.
type Option func(*Options)

// WithLayout sets the cabin dimensions. Validated by NewDecoder.
func WithLayout(l Layout) Option {
	return func(o *Options) {
		o.Layout = l
	}
}

// WithAlphabets replaces the row and column alphabets. Validated by
// NewDecoder.
func WithAlphabets(row, column Alphabet) Option {
	return func(o *Options) {
		o.RowAlphabet = row
		o.ColumnAlphabet = column
	}
}

// DefaultOptions returns the 128×8 layout with the F/B and L/R alphabets.
func DefaultOptions() Options {
	return Options{
		Layout:         DefaultLayout(),
		RowAlphabet:    RowAlphabet(),
		ColumnAlphabet: ColumnAlphabet(),
	}
}
