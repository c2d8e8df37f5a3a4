package simulation

import (
	"fmt"

	"github.com/wormlab/connectome/internal/graph"
)

// Stimulus is external input delivered to one neuron on the first tick.
type Stimulus struct {
	NeuronID int
	Amount   float64
}

// Result captures a completed run.
type Result struct {
	Steps        int   `json:"steps"`
	FiredPerStep []int `json:"fired_per_step"` // neurons fired on each tick
	FireCounts   []int `json:"fire_counts"`    // per-neuron total firings, index = neuron ID
}

// TotalFired returns the total number of firings across the run.
func (r Result) TotalFired() int {
	total := 0
	for _, n := range r.FiredPerStep {
		total += n
	}
	return total
}

// Runner executes multi-step LIF runs over a fixed graph.
type Runner struct {
	g      *graph.Graph
	params Params
}

// NewRunner creates a runner for g.
func NewRunner(g *graph.Graph, params Params) *Runner {
	return &Runner{g: g, params: params}
}

// Run advances steps ticks from a fresh resting state, applying the stimuli
// on the first tick only, and returns the collected result. It fails if a
// stimulus names a neuron outside the graph.
func (r *Runner) Run(steps int, stimuli []Stimulus) (Result, error) {
	external := make(map[int]float64, len(stimuli))
	for _, st := range stimuli {
		if _, ok := r.g.Neuron(st.NeuronID); !ok {
			return Result{}, fmt.Errorf("stimulus targets unknown neuron id %d", st.NeuronID)
		}
		external[st.NeuronID] += st.Amount
	}

	state := NewState(r.g.NeuronCount(), r.params)
	result := Result{
		Steps:        steps,
		FiredPerStep: make([]int, 0, steps),
		FireCounts:   make([]int, r.g.NeuronCount()),
	}

	for step := 0; step < steps; step++ {
		fired := Step(r.g, state, r.params, external)
		result.FiredPerStep = append(result.FiredPerStep, fired)
		for id := 0; id < state.Size(); id++ {
			if state.Fired(id) {
				result.FireCounts[id]++
			}
		}
		external = nil // stimulus applies to the first tick only
	}

	return result, nil
}
