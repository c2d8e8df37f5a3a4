// Package graph owns the in-memory connectome: dense-id neuron and
// connection sequences plus a derived outgoing-adjacency index. The graph is
// built once by internal/ingest and is read-only afterward; there are no
// delete or update operations. It is not safe for concurrent mutation.
package graph

import (
	"errors"
	"fmt"

	"github.com/wormlab/connectome/internal/models"
)

// ErrInvalidReference reports a connection endpoint that does not name an
// existing neuron. The loader resolves every name through the registry
// before inserting, so hitting this indicates a programming error in the
// caller, not bad input data.
var ErrInvalidReference = errors.New("connection references unknown neuron id")

// Graph is the materialized connectome.
//
// Invariants:
//   - neuron IDs are exactly [0, NeuronCount()) in creation order
//   - connection IDs are exactly [0, ConnectionCount()) in insertion order
//   - outgoing[v] holds exactly the IDs of connections whose Source is v,
//     in insertion order; neurons with no outgoing connections have no entry
type Graph struct {
	neurons  []models.Neuron
	conns    []models.Connection
	outgoing map[int][]int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		neurons:  make([]models.Neuron, 0),
		conns:    make([]models.Connection, 0),
		outgoing: make(map[int][]int),
	}
}

// AddNeuron appends a neuron with the next sequential ID and returns that
// ID. It always succeeds.
func (g *Graph) AddNeuron(name string, class models.NeuronClass, region models.Region, position float64) int {
	id := len(g.neurons)
	g.neurons = append(g.neurons, models.Neuron{
		ID:       id,
		Name:     name,
		Class:    class,
		Region:   region,
		Position: position,
	})
	return id
}

// AddConnection appends a directed connection with the next sequential ID
// and records it in the outgoing index for source. Both endpoints must
// already exist; otherwise the graph is left unchanged and
// ErrInvalidReference is returned.
func (g *Graph) AddConnection(source, target int, kind models.SynapseKind, weight float64) (int, error) {
	if source < 0 || source >= len(g.neurons) {
		return 0, fmt.Errorf("source %d: %w", source, ErrInvalidReference)
	}
	if target < 0 || target >= len(g.neurons) {
		return 0, fmt.Errorf("target %d: %w", target, ErrInvalidReference)
	}

	id := len(g.conns)
	g.conns = append(g.conns, models.Connection{
		ID:     id,
		Source: source,
		Target: target,
		Kind:   kind,
		Weight: weight,
	})
	g.outgoing[source] = append(g.outgoing[source], id)
	return id, nil
}

// Neuron returns the neuron with the given ID. The second result is false
// if no such neuron exists.
func (g *Graph) Neuron(id int) (models.Neuron, bool) {
	if id < 0 || id >= len(g.neurons) {
		return models.Neuron{}, false
	}
	return g.neurons[id], true
}

// Connection returns the connection with the given ID. The second result is
// false if no such connection exists.
func (g *Graph) Connection(id int) (models.Connection, bool) {
	if id < 0 || id >= len(g.conns) {
		return models.Connection{}, false
	}
	return g.conns[id], true
}

// Outgoing returns the IDs of connections whose source is the given neuron,
// in insertion order. The result is a copy and is empty for neurons with no
// outgoing connections or for unknown IDs.
func (g *Graph) Outgoing(id int) []int {
	bucket := g.outgoing[id]
	out := make([]int, len(bucket))
	copy(out, bucket)
	return out
}

// NeuronCount returns the number of neurons.
func (g *Graph) NeuronCount() int {
	return len(g.neurons)
}

// ConnectionCount returns the number of connections.
func (g *Graph) ConnectionCount() int {
	return len(g.conns)
}

// Neurons returns a copy of the neuron sequence in ID order.
func (g *Graph) Neurons() []models.Neuron {
	out := make([]models.Neuron, len(g.neurons))
	copy(out, g.neurons)
	return out
}

// Connections returns a copy of the connection sequence in ID order.
func (g *Graph) Connections() []models.Connection {
	out := make([]models.Connection, len(g.conns))
	copy(out, g.conns)
	return out
}
