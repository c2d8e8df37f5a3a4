// Package simulation implements leaky integrate-and-fire (LIF) membrane
// dynamics over a loaded connectome. All simulation state lives here, in a
// State sized to the graph; the graph itself is never mutated. Updates are
// synchronous: every neuron's next potential is computed from the previous
// tick's potentials and firings.
package simulation

import (
	"github.com/wormlab/connectome/internal/graph"
	"github.com/wormlab/connectome/internal/models"
)

// Params holds the tunable LIF parameters.
type Params struct {
	// RestPotential is the potential neurons decay toward. Default: 0.
	RestPotential float64

	// Threshold is the potential at or above which a neuron fires. Default: 1.
	Threshold float64

	// ResetPotential is the potential a neuron is clamped to after firing.
	// Default: 0.
	ResetPotential float64

	// LeakRate is the fraction of the distance to rest removed each tick,
	// in [0, 1]. Default: 0.1.
	LeakRate float64

	// GapCoupling scales the gap-junction current, which is proportional to
	// the potential difference across the junction. Default: 0.2.
	GapCoupling float64

	// SynapticGain scales chemical synaptic input. Default: 1.
	SynapticGain float64
}

// DefaultParams returns the default LIF parameters.
func DefaultParams() Params {
	return Params{
		RestPotential:  0,
		Threshold:      1,
		ResetPotential: 0,
		LeakRate:       0.1,
		GapCoupling:    0.2,
		SynapticGain:   1,
	}
}

// State holds per-neuron membrane potential and the fired flag from the
// most recent tick. Index = neuron ID.
type State struct {
	potential []float64
	fired     []bool
}

// NewState creates a state for n neurons with every potential at rest.
func NewState(n int, p Params) *State {
	s := &State{
		potential: make([]float64, n),
		fired:     make([]bool, n),
	}
	for i := range s.potential {
		s.potential[i] = p.RestPotential
	}
	return s
}

// Size returns the number of neurons the state covers.
func (s *State) Size() int {
	return len(s.potential)
}

// Potential returns the membrane potential of the given neuron.
func (s *State) Potential(id int) float64 {
	return s.potential[id]
}

// Fired reports whether the given neuron fired on the last tick.
func (s *State) Fired(id int) bool {
	return s.fired[id]
}

// polaritySign maps a polarity to the sign of its synaptic current.
// The empty polarity (gap junction, NMJ) counts as excitatory.
func polaritySign(p models.Polarity) float64 {
	if p == models.Inhibitory {
		return -1
	}
	return 1
}

// Step advances the state one tick and returns how many neurons fired.
//
// Per tick: potentials leak toward rest, external input is integrated, then
// synaptic input from neurons that fired on the previous tick is delivered.
// Chemical send and neuromuscular connections drive source -> target;
// chemical receive connections record the reverse orientation and drive
// target -> source; gap junctions pass current both ways, proportional to
// the potential difference. Finally, neurons at or above threshold fire and
// reset.
func Step(g *graph.Graph, s *State, p Params, external map[int]float64) int {
	n := s.Size()
	next := make([]float64, n)
	for i := 0; i < n; i++ {
		next[i] = s.potential[i] + p.LeakRate*(p.RestPotential-s.potential[i])
		next[i] += external[i]
	}

	for _, c := range g.Connections() {
		switch c.Kind.Class {
		case models.SynapseChemicalSend, models.SynapseNeuromuscular:
			if s.fired[c.Source] {
				next[c.Target] += p.SynapticGain * c.Weight * polaritySign(c.Kind.Polarity)
			}
		case models.SynapseChemicalReceive:
			if s.fired[c.Target] {
				next[c.Source] += p.SynapticGain * c.Weight * polaritySign(c.Kind.Polarity)
			}
		case models.SynapseGapJunction:
			current := p.GapCoupling * c.Weight * (s.potential[c.Source] - s.potential[c.Target])
			next[c.Target] += current
			next[c.Source] -= current
		}
	}

	fired := 0
	for i := 0; i < n; i++ {
		if next[i] >= p.Threshold {
			next[i] = p.ResetPotential
			s.fired[i] = true
			fired++
		} else {
			s.fired[i] = false
		}
	}
	s.potential = next
	return fired
}
