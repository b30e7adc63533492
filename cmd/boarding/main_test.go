package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boarding/boarding"
	"github.com/katalvlaran/boarding/manifest"
)

// newTestCmd returns a bare command wired to in-memory streams.
func newTestCmd(stdin string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	return cmd, &out, &errOut
}

// writeFile writes content into a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// useConfig points --config at a YAML file for the duration of the test.
func useConfig(t *testing.T, yml string) {
	t.Helper()
	configPath = writeFile(t, "boarding.yaml", yml)
	t.Cleanup(func() { configPath = "" })
}

func TestRunVersion(t *testing.T) {
	cmd, out, _ := newTestCmd("")
	require.NoError(t, runVersion(cmd, nil))
	assert.Contains(t, out.String(), "boarding v")
	assert.Contains(t, out.String(), "Go version:")
}

func TestRunDecode_HumanFromFile(t *testing.T) {
	useConfig(t, "color: never\n")
	path := writeFile(t, "passes.txt", "FBFBBFFRLR\nBBFFBBFRLL\n")

	cmd, out, _ := newTestCmd("")
	require.NoError(t, runDecode(cmd, []string{path}))

	got := out.String()
	assert.Contains(t, got, "FBFBBFFRLR  row  44  column 5  seat ID  357")
	assert.Contains(t, got, "BBFFBBFRLL  row 102  column 4  seat ID  820")
	assert.Contains(t, got, "Highest seat ID: 820")
}

func TestRunDecode_JSONFromStdin(t *testing.T) {
	useConfig(t, "format: json\non_error: skip\n")

	cmd, out, errOut := newTestCmd("FBFBBFFRLR\nnope\n")
	require.NoError(t, runDecode(cmd, []string{"-"}))

	var rep decodeReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	require.Len(t, rep.Passes, 1)
	assert.Equal(t, passJSON{Seat: "FBFBBFFRLR", Row: 44, Column: 5, ID: 357}, rep.Passes[0])
	require.Len(t, rep.Failures, 1)
	assert.Equal(t, 2, rep.Failures[0].Line)
	require.NotNil(t, rep.Highest)
	assert.Equal(t, 357, *rep.Highest)
	assert.Contains(t, errOut.String(), "skipping boarding pass")
}

func TestRunDecode_AbortOnBadLine(t *testing.T) {
	cmd, _, _ := newTestCmd("FBFBBFFRLR\nFBF\n")
	err := runDecode(cmd, nil)
	require.ErrorIs(t, err, manifest.ErrDecode)
	assert.Contains(t, err.Error(), "line 2")
}

func TestRunDecode_UnknownFormat(t *testing.T) {
	useConfig(t, "format: xml\n")
	cmd, _, _ := newTestCmd("FBFBBFFRLR\n")
	require.ErrorContains(t, runDecode(cmd, nil), "unknown format")
}

func TestRunDecode_MissingFile(t *testing.T) {
	cmd, _, _ := newTestCmd("")
	err := runDecode(cmd, []string{filepath.Join(t.TempDir(), "absent.txt")})
	require.ErrorContains(t, err, "opening input")
}

func TestRunSeat(t *testing.T) {
	useConfig(t, "rows: 4\ncolumns: 2\ncolor: never\n")
	// ids 0..7 on a 4×2 cabin, seat 3 (row 1, column 1) missing.
	cmd, out, _ := newTestCmd("FFL\nFFR\nFBL\nBFL\nBFR\nBBL\nBBR\n")
	require.NoError(t, runSeat(cmd, nil))

	assert.Contains(t, out.String(), "Highest seat ID: 7")
	assert.Contains(t, out.String(), "Own seat ID: 3 FBR (row 1, column 1)")
}

func TestRunSeat_NoVacancy(t *testing.T) {
	useConfig(t, "color: never\n")
	cmd, _, _ := newTestCmd("FBFBBFFRLR\n")
	require.ErrorContains(t, runSeat(cmd, nil), "finding own seat")
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "c.yaml", "rows: 64\nworkers: 3\non_error: skip\n")
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Rows)
	assert.Equal(t, 8, cfg.Columns)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "skip", cfg.OnError)
	assert.Equal(t, "human", cfg.Format)
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	path := writeFile(t, "c.yaml", "rowz: 64\n")
	_, err := loadConfig(path)
	require.ErrorContains(t, err, "parsing config")
}

func TestRunDecode_BadLayout(t *testing.T) {
	useConfig(t, "rows: 0\n")
	cmd, _, _ := newTestCmd("F\n")
	require.ErrorContains(t, runDecode(cmd, nil), "layout must have at least one row")
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, colorEnabled("always", &buf))
	assert.False(t, colorEnabled("never", &buf))
	assert.False(t, colorEnabled("auto", &buf))
}

// TestRunSeat_DefaultLayout prints the seat string of the free seat on a
// full 128×8 cabin.
func TestRunSeat_DefaultLayout(t *testing.T) {
	useConfig(t, "color: never\n")
	var b strings.Builder
	for id := 0; id < 1024; id++ {
		if id == 357 {
			continue
		}
		fmt.Fprintf(&b, "%s\n", mustEncode(t, id/8, id%8))
	}

	cmd, out, _ := newTestCmd(b.String())
	require.NoError(t, runSeat(cmd, nil))
	assert.Contains(t, out.String(), "Highest seat ID: 1023")
	assert.Contains(t, out.String(), "Own seat ID: 357 FBFBBFFRLR (row 44, column 5)")
}

func mustEncode(t *testing.T, row, col int) string {
	t.Helper()
	seat, err := boarding.Encode(row, col)
	require.NoError(t, err)
	return seat
}
