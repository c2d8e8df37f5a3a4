package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wormlab/connectome/internal/config"
	"github.com/wormlab/connectome/internal/graph"
	"github.com/wormlab/connectome/internal/ingest"
	"github.com/wormlab/connectome/internal/logging"
)

// loadConfig resolves the effective configuration for a command: config
// file (explicit path or the default locations), then flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if cmd.Flags().Changed("delimiter") {
		delim, _ := cmd.Flags().GetString("delimiter")
		cfg.Ingest.Delimiter = delim
	}
	if cmd.Flags().Changed("no-header") {
		noHeader, _ := cmd.Flags().GetBool("no-header")
		cfg.Ingest.Header = !noHeader
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// addIngestFlags registers the flags shared by every file-reading command.
func addIngestFlags(cmd *cobra.Command) {
	cmd.Flags().String("delimiter", "", "Field delimiter (overrides config)")
	cmd.Flags().Bool("no-header", false, "Input has no header row")
}

// buildGraph opens path and loads it into a graph using the configured row
// source. It returns the graph together with the loader's report.
func buildGraph(cfg *config.Config, path string) (*graph.Graph, ingest.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ingest.Report{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src := ingest.NewCSVSource(f, ingest.CSVOptions{
		Comma:  cfg.DelimiterRune(),
		Header: cfg.Ingest.Header,
	})

	logger := logging.NewLogger(cfg.Logging.Level, os.Stderr)
	loader := ingest.NewLoader(logger)

	g, err := loader.Load(src)
	if err != nil {
		return nil, ingest.Report{}, err
	}
	return g, loader.Report(), nil
}
