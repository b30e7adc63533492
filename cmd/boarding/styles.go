package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// styles holds color formatters for human output.
type styles struct {
	seat    *color.Color
	value   *color.Color
	heading *color.Color
	failure *color.Color
}

// newStyles creates color formatters; enabled=false strips all color.
func newStyles(enabled bool) *styles {
	s := &styles{
		seat:    color.New(color.Bold, color.FgHiWhite),
		value:   color.New(color.FgHiGreen),
		heading: color.New(color.Bold),
		failure: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{s.seat, s.value, s.heading, s.failure} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// colorEnabled resolves --color against the output writer.
// "auto" enables color only for a terminal with NO_COLOR unset.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
