package manifest_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/boarding/boarding"
	"github.com/katalvlaran/boarding/manifest"
	"github.com/katalvlaran/boarding/seatmap"
)

const sample = `FBFBBFFRLR
BFFFBBFRRR

  FFFBBBFRRR
BBFFBBFRLL
`

// ManifestSuite exercises Read and the aggregates.
type ManifestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *ManifestSuite) SetupTest() {
	s.ctx = context.Background()
}

// TestReadOrder keeps input order whatever the worker count.
func (s *ManifestSuite) TestReadOrder() {
	for _, workers := range []int{1, 2, 3, 16} {
		m, err := manifest.Read(s.ctx, strings.NewReader(sample), manifest.WithWorkers(workers))
		require.NoError(s.T(), err)

		var ids []int
		for _, p := range m.Passes() {
			ids = append(ids, p.ID())
		}
		s.Equal([]int{357, 567, 119, 820}, ids, "workers=%d", workers)
		s.Equal(4, m.Len())
		s.Empty(m.Failures())
	}
}

func (s *ManifestSuite) TestHighestLowest() {
	m, err := manifest.Read(s.ctx, strings.NewReader(sample))
	require.NoError(s.T(), err)

	hi, err := m.Highest()
	require.NoError(s.T(), err)
	s.Equal(820, hi.ID())
	s.Equal("BBFFBBFRLL", hi.Seat())

	lo, err := m.Lowest()
	require.NoError(s.T(), err)
	s.Equal(119, lo.ID())
}

// TestAbort returns the first bad line by position.
func (s *ManifestSuite) TestAbort() {
	in := "FBFBBFFRLR\nFBFBB\nXBFBBFFRLR\n"
	_, err := manifest.Read(s.ctx, strings.NewReader(in), manifest.WithWorkers(3))
	require.ErrorIs(s.T(), err, manifest.ErrDecode)
	require.ErrorIs(s.T(), err, boarding.ErrMalformedInput)

	var le *manifest.LineError
	require.True(s.T(), errors.As(err, &le))
	s.Equal(2, le.Line)
	s.Equal("FBFBB", le.Text)
}

// TestSkip records failures and logs each one.
func (s *ManifestSuite) TestSkip() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	in := "FBFBBFFRLR\nFBFBB\nXBFBBFFRLR\nBFFFBBFRRR\n"
	m, err := manifest.Read(s.ctx, strings.NewReader(in),
		manifest.WithPolicy(manifest.Skip),
		manifest.WithLogger(logger),
	)
	require.NoError(s.T(), err)
	s.Equal(2, m.Len())

	fails := m.Failures()
	require.Len(s.T(), fails, 2)
	s.Equal(2, fails[0].Line)
	s.ErrorIs(&fails[0], boarding.ErrMalformedInput)
	s.Equal(3, fails[1].Line)
	s.ErrorIs(&fails[1], boarding.ErrInvalidDirectiveChar)
	s.Contains(fails[1].Error(), "line 3:")

	out := buf.String()
	s.Equal(2, strings.Count(out, "skipping boarding pass"))
	s.Contains(out, "manifest decoded")
	s.Contains(out, "failures=2")
}

func (s *ManifestSuite) TestEmpty() {
	m, err := manifest.Read(s.ctx, strings.NewReader("\n  \n"))
	require.NoError(s.T(), err)
	s.Equal(0, m.Len())

	_, err = m.Highest()
	s.ErrorIs(err, manifest.ErrEmptyManifest)
	_, err = m.Lowest()
	s.ErrorIs(err, manifest.ErrEmptyManifest)
	_, err = m.OwnSeat()
	s.ErrorIs(err, manifest.ErrEmptyManifest)
}

func (s *ManifestSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := manifest.Read(ctx, strings.NewReader(sample))
	s.ErrorIs(err, context.Canceled)
}

func (s *ManifestSuite) TestReaderError() {
	boom := errors.New("boom")
	_, err := manifest.Read(s.ctx, failingReader{boom})
	s.ErrorIs(err, boom)
}

// TestOwnSeat fills a whole cabin except one seat.
func (s *ManifestSuite) TestOwnSeat() {
	var b strings.Builder
	for id := 0; id < 1024; id++ {
		if id == 600 {
			continue
		}
		seat, err := boarding.Encode(id/8, id%8)
		require.NoError(s.T(), err)
		b.WriteString(seat)
		b.WriteByte('\n')
	}

	m, err := manifest.Read(s.ctx, strings.NewReader(b.String()), manifest.WithWorkers(4))
	require.NoError(s.T(), err)
	s.Equal(1023, m.Len())

	id, err := m.OwnSeat()
	require.NoError(s.T(), err)
	s.Equal(600, id)

	sm, err := m.SeatMap(seatmap.DefaultOptions())
	require.NoError(s.T(), err)
	s.Equal([]int{600}, sm.Vacancies())
}

// TestDuplicateSeat surfaces seat map conflicts.
func (s *ManifestSuite) TestDuplicateSeat() {
	m, err := manifest.Read(s.ctx, strings.NewReader("FBFBBFFRLR\nFBFBBFFRLR\n"))
	require.NoError(s.T(), err)
	_, err = m.OwnSeat()
	s.ErrorIs(err, seatmap.ErrSeatTaken)
}

// TestCustomDecoder decodes a 4×2 cabin.
func (s *ManifestSuite) TestCustomDecoder() {
	d, err := boarding.NewDecoder(boarding.WithLayout(boarding.Layout{Rows: 4, Columns: 2}))
	require.NoError(s.T(), err)

	m, err := manifest.Read(s.ctx, strings.NewReader("BFR\nFFL\n"), manifest.WithDecoder(d))
	require.NoError(s.T(), err)
	s.Equal(boarding.Layout{Rows: 4, Columns: 2}, m.Layout())
	hi, err := m.Highest()
	require.NoError(s.T(), err)
	s.Equal(5, hi.ID())
}

func TestManifestSuite(t *testing.T) {
	suite.Run(t, new(ManifestSuite))
}

func TestParsePolicy(t *testing.T) {
	p, err := manifest.ParsePolicy("SKIP")
	require.NoError(t, err)
	assert.Equal(t, manifest.Skip, p)
	assert.Equal(t, "skip", p.String())

	p, err = manifest.ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, manifest.Abort, p)
	assert.Equal(t, "abort", p.String())

	_, err = manifest.ParsePolicy("ignore")
	require.ErrorIs(t, err, manifest.ErrUnknownPolicy)
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

// TestDefaultOptions shares the package-level default decoder.
func TestDefaultOptions(t *testing.T) {
	o := manifest.DefaultOptions()
	require.NotNil(t, o.Decoder)
	assert.Same(t, boarding.DefaultDecoder(), o.Decoder)
	assert.Equal(t, manifest.Abort, o.Policy)
	assert.Positive(t, o.Workers)
	require.NotNil(t, o.Logger)
}
