package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wormlab/connectome/internal/export"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph <file>",
		Short: "Export the connectome graph",
		Long: `Load a connectivity table and write the graph in DOT (Graphviz) or JSON
format to stdout.

Examples:
  connectome graph NeuronConnect.csv > connectome.dot
  connectome graph --format json NeuronConnect.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			g, _, err := buildGraph(cfg, args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}

			switch export.Format(format) {
			case export.FormatDOT:
				fmt.Fprint(cmd.OutOrStdout(), export.RenderDOT(g))

			case export.FormatJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(export.BuildDocument(g)); err != nil {
					return fmt.Errorf("encode JSON: %w", err)
				}

			default:
				return fmt.Errorf("unsupported format %q (use 'dot' or 'json')", format)
			}
			return nil
		},
	}

	addIngestFlags(cmd)
	cmd.Flags().String("format", "dot", "Output format: dot or json")

	return cmd
}
