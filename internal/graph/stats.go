package graph

import (
	"sort"

	"github.com/wormlab/connectome/internal/models"
)

// Summary aggregates headline counts for a loaded graph.
type Summary struct {
	Neurons     int            `json:"neurons"`
	Connections int            `json:"connections"`
	ByKind      map[string]int `json:"by_kind"` // SynapseKind display form -> count
}

// Summarize computes a Summary for the graph.
func Summarize(g *Graph) Summary {
	s := Summary{
		Neurons:     g.NeuronCount(),
		Connections: g.ConnectionCount(),
		ByKind:      make(map[string]int),
	}
	for _, c := range g.conns {
		s.ByKind[c.Kind.String()]++
	}
	return s
}

// DegreeEntry pairs a neuron with its outgoing connection count.
type DegreeEntry struct {
	Neuron    models.Neuron `json:"neuron"`
	OutDegree int           `json:"out_degree"`
}

// TopOutDegree returns the n neurons with the most outgoing connections,
// ordered by out-degree descending with neuron ID as the tie-breaker. It
// returns fewer entries when the graph has fewer than n neurons; n values
// below zero yield an empty result.
func TopOutDegree(g *Graph, n int) []DegreeEntry {
	if n < 0 {
		n = 0
	}
	entries := make([]DegreeEntry, 0, len(g.neurons))
	for _, neuron := range g.neurons {
		entries = append(entries, DegreeEntry{
			Neuron:    neuron,
			OutDegree: len(g.outgoing[neuron.ID]),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].OutDegree != entries[j].OutDegree {
			return entries[i].OutDegree > entries[j].OutDegree
		}
		return entries[i].Neuron.ID < entries[j].Neuron.ID
	})

	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
