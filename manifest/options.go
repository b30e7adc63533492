package manifest

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/katalvlaran/boarding/boarding"
)

// Policy selects how Read reacts to a line that fails to decode.
type Policy int

const (
	// Abort stops the batch at the first bad line.
	Abort Policy = iota
	// Skip records bad lines and keeps going.
	Skip
)

// String returns "abort" or "skip".
func (p Policy) String() string {
	if p == Skip {
		return "skip"
	}
	return "abort"
}

// ParsePolicy accepts "abort" or "skip" (case-insensitive).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "abort", "":
		return Abort, nil
	case "skip":
		return Skip, nil
	default:
		return Abort, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Options configures Read.
//
// Decoder – decoder for every line. Default: the 128×8 decoder.
// Workers – number of decoding goroutines. Default: GOMAXPROCS.
// Policy  – Abort or Skip. Default: Abort.
// Logger  – receives skipped lines (Warn) and a batch summary (Debug).
type Options struct {
	Decoder *boarding.Decoder
	Workers int
	Policy  Policy
	Logger  *slog.Logger
}

// Option represents a functional option for configuring Read.
type Option func(*Options)

// WithDecoder sets the decoder used for every line. A nil decoder keeps
// the default.
func WithDecoder(d *boarding.Decoder) Option {
	return func(o *Options) {
		if d != nil {
			o.Decoder = d
		}
	}
}

// WithWorkers sets the number of decoding goroutines. Values below 1 keep
// the default.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithPolicy sets the on-error policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with the default decoder, GOMAXPROCS
// workers, Abort policy and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Decoder: boarding.DefaultDecoder(),
		Workers: runtime.GOMAXPROCS(0),
		Policy:  Abort,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
