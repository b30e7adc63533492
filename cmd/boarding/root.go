package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boarding/boarding"
	"github.com/katalvlaran/boarding/manifest"
)

var (
	verbose    bool
	quiet      bool
	configPath string
	flagConfig = defaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "boarding",
	Short: "Decode binary-partitioned boarding pass seat strings",
	Long: `boarding decodes seat strings such as FBFBBFFRLR into a row, a column and
a seat ID (row * columns + column), one pass per input line.

Input is read from a file argument, or from stdin when the argument is
absent or "-".`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	pf.BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")
	pf.StringVar(&configPath, "config", "", "Path to a YAML config file")
	pf.IntVar(&flagConfig.Rows, "rows", flagConfig.Rows, "Number of cabin rows")
	pf.IntVar(&flagConfig.Columns, "columns", flagConfig.Columns, "Number of seats per row")
	pf.IntVar(&flagConfig.Workers, "workers", flagConfig.Workers, "Decoding goroutines (0 = GOMAXPROCS)")
	pf.StringVar(&flagConfig.OnError, "on-error", flagConfig.OnError, "Bad line policy: abort, skip")
	pf.StringVar(&flagConfig.Color, "color", flagConfig.Color, "Color output: auto, always, never")

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(seatCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger writes text logs to w at a level picked by --verbose / --quiet.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// readManifest resolves the effective config, opens the input named by
// args and decodes it.
func readManifest(cmd *cobra.Command, args []string) (*manifest.Manifest, Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, cfg, err
	}
	policy, err := manifest.ParsePolicy(cfg.OnError)
	if err != nil {
		return nil, cfg, err
	}
	dec, err := boarding.NewDecoder(boarding.WithLayout(cfg.Layout()))
	if err != nil {
		return nil, cfg, err
	}

	in, closeIn, err := openInput(cmd, args)
	if err != nil {
		return nil, cfg, err
	}
	defer closeIn()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(cmd.ErrOrStderr())
	m, err := manifest.Read(ctx, in,
		manifest.WithDecoder(dec),
		manifest.WithWorkers(cfg.Workers),
		manifest.WithPolicy(policy),
		manifest.WithLogger(logger),
	)
	if err != nil {
		return nil, cfg, err
	}

	return m, cfg, nil
}

func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
