package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wormlab/connectome/internal/config"
	"github.com/wormlab/connectome/internal/graph"
	"github.com/wormlab/connectome/internal/simulation"
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate <file>",
		Short: "Run a leaky integrate-and-fire simulation over the connectome",
		Long: `Load a connectivity table and run leaky integrate-and-fire dynamics for a
number of synchronous ticks. Stimuli inject external input into named
neurons on the first tick.

Examples:
  connectome simulate --steps 20 --stimulus AVAL=2.0 NeuronConnect.csv
  connectome simulate --stimulus AVAL=2.0 --stimulus AVAR=2.0 NeuronConnect.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			stimSpecs, _ := cmd.Flags().GetStringArray("stimulus")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			steps := cfg.Simulation.Steps
			if cmd.Flags().Changed("steps") {
				steps, _ = cmd.Flags().GetInt("steps")
			}

			g, _, err := buildGraph(cfg, args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}

			stimuli, err := parseStimuli(g, stimSpecs)
			if err != nil {
				return err
			}

			runner := simulation.NewRunner(g, simParams(cfg))
			result, err := runner.Run(steps, stimuli)
			if err != nil {
				return fmt.Errorf("simulation: %w", err)
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Ran %d steps, %d firings total\n", result.Steps, result.TotalFired())
			for step, fired := range result.FiredPerStep {
				fmt.Fprintf(out, "  step %d: %d fired\n", step+1, fired)
			}
			for id, count := range result.FireCounts {
				if count == 0 {
					continue
				}
				n, _ := g.Neuron(id)
				fmt.Fprintf(out, "  %s fired %d time(s)\n", n.Name, count)
			}
			return nil
		},
	}

	addIngestFlags(cmd)
	cmd.Flags().Int("steps", 0, "Number of ticks to run (overrides config)")
	cmd.Flags().StringArray("stimulus", nil, "Initial stimulus as NAME=AMOUNT (repeatable)")

	return cmd
}

// simParams maps the simulation config block to engine parameters.
func simParams(cfg *config.Config) simulation.Params {
	return simulation.Params{
		RestPotential:  cfg.Simulation.RestPotential,
		Threshold:      cfg.Simulation.Threshold,
		ResetPotential: cfg.Simulation.ResetPotential,
		LeakRate:       cfg.Simulation.LeakRate,
		GapCoupling:    cfg.Simulation.GapCoupling,
		SynapticGain:   cfg.Simulation.SynapticGain,
	}
}

// parseStimuli resolves NAME=AMOUNT specs against the loaded graph.
func parseStimuli(g *graph.Graph, specs []string) ([]simulation.Stimulus, error) {
	stimuli := make([]simulation.Stimulus, 0, len(specs))
	for _, spec := range specs {
		name, amountText, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid stimulus %q, want NAME=AMOUNT", spec)
		}
		amount, err := strconv.ParseFloat(amountText, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid stimulus amount in %q: %w", spec, err)
		}

		id := -1
		for _, n := range g.Neurons() {
			if n.Name == name {
				id = n.ID
				break
			}
		}
		if id < 0 {
			return nil, fmt.Errorf("stimulus names unknown neuron %q", name)
		}

		stimuli = append(stimuli, simulation.Stimulus{NeuronID: id, Amount: amount})
	}
	return stimuli, nil
}
