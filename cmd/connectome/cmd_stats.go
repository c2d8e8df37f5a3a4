package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/wormlab/connectome/internal/graph"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show connectome statistics",
		Long: `Display aggregate statistics for a loaded connectivity table: counts per
synapse kind, rows that fell back to defaults, and the neurons with the
highest out-degree.

Examples:
  connectome stats NeuronConnect.csv
  connectome stats --top 20 NeuronConnect.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			topN, _ := cmd.Flags().GetInt("top")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			g, report, err := buildGraph(cfg, args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}

			summary := graph.Summarize(g)
			top := graph.TopOutDegree(g, topN)

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"summary":    summary,
					"report":     report,
					"top_degree": top,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Neurons:     %d\n", summary.Neurons)
			fmt.Fprintf(out, "Connections: %d\n", summary.Connections)

			kinds := make([]string, 0, len(summary.ByKind))
			for kind := range summary.ByKind {
				kinds = append(kinds, kind)
			}
			sort.Strings(kinds)
			for _, kind := range kinds {
				fmt.Fprintf(out, "  %-30s %d\n", kind, summary.ByKind[kind])
			}

			fmt.Fprintf(out, "Defaulted codes:   %d\n", report.DefaultedCodes)
			fmt.Fprintf(out, "Defaulted weights: %d\n", report.DefaultedWghts)

			if len(top) > 0 {
				fmt.Fprintln(out, "Top out-degree:")
				for _, entry := range top {
					fmt.Fprintf(out, "  %-12s %d\n", entry.Neuron.Name, entry.OutDegree)
				}
			}
			return nil
		},
	}

	addIngestFlags(cmd)
	cmd.Flags().Int("top", 10, "Number of top out-degree neurons to show")

	return cmd
}
