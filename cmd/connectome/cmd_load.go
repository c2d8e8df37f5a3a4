package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wormlab/connectome/internal/graph"
)

func newLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Load a connectivity table and report the resulting graph",
		Long: `Load a delimited connectivity table and print neuron and connection
counts plus a preview of the first connections with endpoint names resolved.

Examples:
  connectome load NeuronConnect.csv
  connectome load --delimiter $'\t' --preview 20 edges.tsv
  connectome load --json NeuronConnect.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			preview, _ := cmd.Flags().GetInt("preview")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			g, report, err := buildGraph(cfg, args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"neurons":     g.NeuronCount(),
					"connections": g.ConnectionCount(),
					"report":      report,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Loaded %d neurons\n", g.NeuronCount())
			fmt.Fprintf(out, "Loaded %d connections\n", g.ConnectionCount())
			if report.DefaultedCodes > 0 {
				fmt.Fprintf(out, "%d rows used the default synapse kind\n", report.DefaultedCodes)
			}
			if report.DefaultedWghts > 0 {
				fmt.Fprintf(out, "%d rows used the default weight\n", report.DefaultedWghts)
			}

			printPreview(cmd, g, preview)
			return nil
		},
	}

	addIngestFlags(cmd)
	cmd.Flags().Int("preview", 10, "Number of connections to preview (0 disables)")

	return cmd
}

func printPreview(cmd *cobra.Command, g *graph.Graph, n int) {
	out := cmd.OutOrStdout()
	for _, c := range g.Connections() {
		if c.ID >= n {
			break
		}
		source, _ := g.Neuron(c.Source)
		target, _ := g.Neuron(c.Target)
		fmt.Fprintf(out, "Conn %d: %s -> %s (type=%s, weight=%g)\n",
			c.ID, source.Name, target.Name, c.Kind, c.Weight)
	}
}
