package ingest

import (
	"github.com/wormlab/connectome/internal/graph"
	"github.com/wormlab/connectome/internal/models"
)

// Registry interns neuron names during a single load: the first occurrence
// of a name creates a neuron in the graph with default attributes, and every
// later occurrence resolves to the same ID. Names are exact-match and
// case-sensitive. The registry is discarded after loading; the graph is the
// output.
type Registry struct {
	g   *graph.Graph
	ids map[string]int
}

// NewRegistry creates a registry that grows g.
func NewRegistry(g *graph.Graph) *Registry {
	return &Registry{
		g:   g,
		ids: make(map[string]int),
	}
}

// Resolve returns the ID for name, creating a neuron on first sight. New
// neurons get class Other, region Unknown, and position 0. Resolve never
// fails.
func (r *Registry) Resolve(name string) int {
	if id, ok := r.ids[name]; ok {
		return id
	}
	id := r.g.AddNeuron(name, models.ClassOther, models.RegionUnknown, 0)
	r.ids[name] = id
	return id
}

// Len returns the number of distinct names registered so far.
func (r *Registry) Len() int {
	return len(r.ids)
}
