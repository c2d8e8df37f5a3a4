package export

import (
	"github.com/wormlab/connectome/internal/graph"
	"github.com/wormlab/connectome/internal/models"
)

// NeuronDoc is the JSON form of one neuron.
type NeuronDoc struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Class    string  `json:"class"`
	Region   string  `json:"region"`
	Position float64 `json:"position"`
}

// ConnectionDoc is the JSON form of one connection, with endpoint names
// resolved for display.
type ConnectionDoc struct {
	ID         int     `json:"id"`
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	Kind       string  `json:"kind"`
	Polarity   string  `json:"polarity,omitempty"`
	Weight     float64 `json:"weight"`
	Undirected bool    `json:"undirected,omitempty"`
}

// Document is the exported form of a whole connectome.
type Document struct {
	Neurons     []NeuronDoc     `json:"neurons"`
	Connections []ConnectionDoc `json:"connections"`
}

// BuildDocument converts a graph into its export Document. Neurons and
// connections appear in ID order.
func BuildDocument(g *graph.Graph) Document {
	doc := Document{
		Neurons:     make([]NeuronDoc, 0, g.NeuronCount()),
		Connections: make([]ConnectionDoc, 0, g.ConnectionCount()),
	}

	for _, n := range g.Neurons() {
		doc.Neurons = append(doc.Neurons, NeuronDoc{
			ID:       n.ID,
			Name:     n.Name,
			Class:    n.Class.String(),
			Region:   n.Region.String(),
			Position: n.Position,
		})
	}

	for _, c := range g.Connections() {
		source, _ := g.Neuron(c.Source)
		target, _ := g.Neuron(c.Target)
		doc.Connections = append(doc.Connections, ConnectionDoc{
			ID:         c.ID,
			Source:     source.Name,
			Target:     target.Name,
			Kind:       c.Kind.Class.String(),
			Polarity:   c.Kind.Polarity.String(),
			Weight:     c.Weight,
			Undirected: c.Kind.Class == models.SynapseGapJunction,
		})
	}

	return doc
}
