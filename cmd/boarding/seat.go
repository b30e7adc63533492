package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boarding/boarding"
)

var seatCmd = &cobra.Command{
	Use:   "seat [file]",
	Short: "Report the highest seat ID and the one free seat between taken ones",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSeat,
}

func runSeat(cmd *cobra.Command, args []string) error {
	m, cfg, err := readManifest(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	st := newStyles(colorEnabled(cfg.Color, out))

	hi, err := m.Highest()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s\n", st.heading.Sprint("Highest seat ID:"), st.value.Sprint(hi.ID()))

	id, err := m.OwnSeat()
	if err != nil {
		return fmt.Errorf("finding own seat: %w", err)
	}
	dec, err := boarding.NewDecoder(boarding.WithLayout(m.Layout()))
	if err != nil {
		return err
	}
	row, col := m.Layout().Coordinates(id)
	seat, err := dec.Encode(row, col)
	if err != nil {
		return fmt.Errorf("encoding own seat: %w", err)
	}
	fmt.Fprintf(out, "%s %s %s (row %d, column %d)\n",
		st.heading.Sprint("Own seat ID:"), st.value.Sprint(id), st.seat.Sprint(seat), row, col)
	return nil
}
