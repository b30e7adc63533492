package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boarding/boarding"
	"github.com/katalvlaran/boarding/manifest"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode every seat string and print row, column and seat ID",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&flagConfig.Format, "format", flagConfig.Format, "Output format: human, json")
}

// passJSON is the wire form of a boarding.Pass.
type passJSON struct {
	Seat   string `json:"seat"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
	ID     int    `json:"seat_id"`
}

type failureJSON struct {
	Line  int    `json:"line"`
	Text  string `json:"text"`
	Error string `json:"error"`
}

type decodeReport struct {
	Passes   []passJSON    `json:"passes"`
	Failures []failureJSON `json:"failures,omitempty"`
	Highest  *int          `json:"highest_seat_id,omitempty"`
}

func runDecode(cmd *cobra.Command, args []string) error {
	m, cfg, err := readManifest(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch cfg.Format {
	case "json":
		return writeDecodeJSON(out, m)
	case "human", "":
		st := newStyles(colorEnabled(cfg.Color, out))
		writeDecodeHuman(out, cmd.ErrOrStderr(), st, m)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want human or json)", cfg.Format)
	}
}

func toPassJSON(p boarding.Pass) passJSON {
	return passJSON{Seat: p.Seat(), Row: p.Row(), Column: p.Column(), ID: p.ID()}
}

func writeDecodeJSON(w io.Writer, m *manifest.Manifest) error {
	rep := decodeReport{Passes: make([]passJSON, 0, m.Len())}
	for _, p := range m.Passes() {
		rep.Passes = append(rep.Passes, toPassJSON(p))
	}
	for _, f := range m.Failures() {
		rep.Failures = append(rep.Failures, failureJSON{Line: f.Line, Text: f.Text, Error: f.Err.Error()})
	}
	if hi, err := m.Highest(); err == nil {
		id := hi.ID()
		rep.Highest = &id
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func writeDecodeHuman(w, errw io.Writer, st *styles, m *manifest.Manifest) {
	for _, p := range m.Passes() {
		fmt.Fprintf(w, "%s  row %s  column %s  seat ID %s\n",
			st.seat.Sprint(p.Seat()),
			st.value.Sprintf("%3d", p.Row()),
			st.value.Sprint(p.Column()),
			st.value.Sprintf("%4d", p.ID()),
		)
	}
	for _, f := range m.Failures() {
		fmt.Fprintln(errw, st.failure.Sprint(f.Error()))
	}

	hi, err := m.Highest()
	if errors.Is(err, manifest.ErrEmptyManifest) {
		fmt.Fprintln(w, st.heading.Sprint("no boarding passes"))
		return
	}
	fmt.Fprintf(w, "%s %s\n", st.heading.Sprint("Highest seat ID:"), st.value.Sprint(hi.ID()))
}
