package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := newRootCmd()

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoadCmd(),
		newStatsCmd(),
		newGraphCmd(),
		newSimulateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "connectome",
		Short: "Connectome - load and inspect neural connectivity tables",
		Long: `connectome materializes a tabular connectome edge list as an in-memory
directed multigraph.

It reads delimited rows of (source neuron, target neuron, synapse code,
weight), interns neuron names to stable ids, classifies synapse codes, and
builds an adjacency-indexed graph for inspection, export, or simulation.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default ~/.connectome/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log verbosity: info, debug, or trace")

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "connectome version %s\n", version)
			return err
		},
	}
}
