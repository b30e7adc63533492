package manifest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/boarding/boarding"
	"github.com/katalvlaran/boarding/seatmap"
)

// Sentinel errors for manifest operations.
var (
	// ErrDecode indicates Read aborted on a line that failed to decode.
	ErrDecode = errors.New("manifest: failed to decode boarding pass")
	// ErrEmptyManifest indicates an aggregate was requested from no passes.
	ErrEmptyManifest = errors.New("manifest: no boarding passes")
	// ErrUnknownPolicy indicates ParsePolicy got an unrecognised name.
	ErrUnknownPolicy = errors.New("manifest: unknown error policy")
)

// LineError is a decode failure tied to its 1-based source line.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *LineError) Unwrap() error { return e.Err }

// Manifest is the decoded content of one batch.
type Manifest struct {
	layout   boarding.Layout
	passes   []boarding.Pass
	failures []LineError
}

type record struct {
	line int
	text string
	pass boarding.Pass
	err  error
}

// Read decodes every non-blank line of r.
//
// Lines are decoded concurrently but reported in input order. Under Abort
// the first bad line is returned as a *LineError wrapped in ErrDecode; under
// Skip bad lines end up in Failures. Cancelling ctx stops the batch and
// returns ctx.Err(). Errors reading r are returned as is.
func Read(ctx context.Context, r io.Reader, opts ...Option) (*Manifest, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	recs, err := scan(r)
	if err != nil {
		return nil, fmt.Errorf("manifest: read: %w", err)
	}
	if err := decode(ctx, o, recs); err != nil {
		return nil, err
	}

	m := &Manifest{
		layout: o.Decoder.Layout(),
		passes: make([]boarding.Pass, 0, len(recs)),
	}
	for _, rec := range recs {
		if rec.err == nil {
			m.passes = append(m.passes, rec.pass)
			continue
		}
		le := LineError{Line: rec.line, Text: rec.text, Err: rec.err}
		if o.Policy == Abort {
			return nil, fmt.Errorf("%w: %w", ErrDecode, &le)
		}
		o.Logger.Warn("skipping boarding pass", "line", rec.line, "seat", rec.text, "error", rec.err)
		m.failures = append(m.failures, le)
	}
	o.Logger.Debug("manifest decoded",
		"lines", len(recs),
		"passes", len(m.passes),
		"failures", len(m.failures),
		"workers", o.Workers,
	)

	return m, nil
}

func scan(r io.Reader) ([]record, error) {
	var recs []record
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		recs = append(recs, record{line: n, text: text})
	}

	return recs, sc.Err()
}

// decode fills pass/err of every record, splitting recs into one
// contiguous chunk per worker.
func decode(ctx context.Context, o Options, recs []record) error {
	workers := min(o.Workers, len(recs))
	if workers < 1 {
		return ctx.Err()
	}
	chunk := (len(recs) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(recs); lo += chunk {
		part := recs[lo:min(lo+chunk, len(recs))]
		g.Go(func() error {
			for i := range part {
				if err := ctx.Err(); err != nil {
					return err
				}
				part[i].pass, part[i].err = o.Decoder.Decode(part[i].text)
			}
			return nil
		})
	}

	return g.Wait()
}

// Passes returns the decoded passes in input order.
func (m *Manifest) Passes() []boarding.Pass {
	return append([]boarding.Pass(nil), m.passes...)
}

// Failures returns the skipped lines in input order.
func (m *Manifest) Failures() []LineError {
	return append([]LineError(nil), m.failures...)
}

// Len returns the number of decoded passes.
func (m *Manifest) Len() int { return len(m.passes) }

// Layout returns the layout the passes were decoded with.
func (m *Manifest) Layout() boarding.Layout { return m.layout }

// Highest returns the pass with the largest seat id.
// Ties keep the earliest pass. Returns ErrEmptyManifest when empty.
func (m *Manifest) Highest() (boarding.Pass, error) {
	return m.pick(func(a, b boarding.Pass) bool { return a.ID() > b.ID() })
}

// Lowest returns the pass with the smallest seat id.
func (m *Manifest) Lowest() (boarding.Pass, error) {
	return m.pick(func(a, b boarding.Pass) bool { return a.ID() < b.ID() })
}

func (m *Manifest) pick(better func(a, b boarding.Pass) bool) (boarding.Pass, error) {
	if len(m.passes) == 0 {
		return boarding.Pass{}, ErrEmptyManifest
	}
	best := m.passes[0]
	for _, p := range m.passes[1:] {
		if better(p, best) {
			best = p
		}
	}

	return best, nil
}

// SeatMap boards every pass onto a new seat map.
func (m *Manifest) SeatMap(opts seatmap.Options) (*seatmap.SeatMap, error) {
	return seatmap.FromPasses(m.layout, m.passes, opts)
}

// OwnSeat returns the free seat id enclosed by two taken ids.
func (m *Manifest) OwnSeat() (int, error) {
	if len(m.passes) == 0 {
		return 0, ErrEmptyManifest
	}
	sm, err := m.SeatMap(seatmap.DefaultOptions())
	if err != nil {
		return 0, err
	}

	return sm.OwnSeat()
}
