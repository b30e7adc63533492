package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/boarding/boarding"
)

// Config is the CLI configuration. Values come from defaults, then the
// --config file, then explicitly set flags.
type Config struct {
	Rows    int    `yaml:"rows"`
	Columns int    `yaml:"columns"`
	Workers int    `yaml:"workers"`
	OnError string `yaml:"on_error"`
	Format  string `yaml:"format"`
	Color   string `yaml:"color"`
}

func defaultConfig() Config {
	return Config{
		Rows:    boarding.DefaultRows,
		Columns: boarding.DefaultColumns,
		OnError: "abort",
		Format:  "human",
		Color:   "auto",
	}
}

// Layout returns the cabin layout described by c.
func (c Config) Layout() boarding.Layout {
	return boarding.Layout{Rows: c.Rows, Columns: c.Columns}
}

// loadConfig parses a YAML config on top of the defaults.
// Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveConfig merges the config file (if any) with flags the user set.
func resolveConfig(cmd *cobra.Command) (Config, error) {
	cfg := defaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = loadConfig(configPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Rows = flagConfig.Rows
	}
	if flags.Changed("columns") {
		cfg.Columns = flagConfig.Columns
	}
	if flags.Changed("workers") {
		cfg.Workers = flagConfig.Workers
	}
	if flags.Changed("on-error") {
		cfg.OnError = flagConfig.OnError
	}
	if flags.Changed("color") {
		cfg.Color = flagConfig.Color
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		cfg.Format = flagConfig.Format
	}

	return cfg, nil
}
