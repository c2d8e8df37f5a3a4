// Package export renders a loaded connectome in presentation formats:
// Graphviz DOT and a plain JSON document. Rendering is read-only.
package export

import (
	"fmt"
	"strings"

	"github.com/wormlab/connectome/internal/graph"
	"github.com/wormlab/connectome/internal/models"
)

// Format specifies the output format for graph rendering.
type Format string

const (
	FormatDOT  Format = "dot"
	FormatJSON Format = "json"
)

// nodeColors maps neuron classes to DOT fill colors.
var nodeColors = map[models.NeuronClass]string{
	models.ClassSensory:     "goldenrod",
	models.ClassInterneuron: "steelblue",
	models.ClassMotor:       "mediumseagreen",
	models.ClassOther:       "lightgray",
}

// edgeStyles maps synapse classes to DOT edge styles.
var edgeStyles = map[models.SynapseClass]string{
	models.SynapseChemicalSend:    "solid",
	models.SynapseChemicalReceive: "dashed",
	models.SynapseGapJunction:     "dotted",
	models.SynapseNeuromuscular:   "bold",
}

// RenderDOT produces a Graphviz DOT representation of the connectome.
// Gap junctions render without an arrowhead since their direction carries
// no meaning.
func RenderDOT(g *graph.Graph) string {
	var b strings.Builder
	b.WriteString("digraph connectome {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=ellipse, style=filled, fontname=\"Helvetica\"];\n")
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	for _, n := range g.Neurons() {
		color := nodeColors[n.Class]
		if color == "" {
			color = "lightgray"
		}
		b.WriteString(fmt.Sprintf("  %q [label=%q, fillcolor=%q, tooltip=\"id=%d region=%s\"];\n",
			n.Name, n.Name, color, n.ID, n.Region))
	}
	b.WriteString("\n")

	for _, c := range g.Connections() {
		source, _ := g.Neuron(c.Source)
		target, _ := g.Neuron(c.Target)

		style := edgeStyles[c.Kind.Class]
		if style == "" {
			style = "solid"
		}
		attrs := fmt.Sprintf("style=%q, label=\"%.3g\", tooltip=%q", style, c.Weight, c.Kind.String())
		if c.Kind.Class == models.SynapseGapJunction {
			attrs += ", dir=none"
		}
		b.WriteString(fmt.Sprintf("  %q -> %q [%s];\n", source.Name, target.Name, attrs))
	}

	b.WriteString("}\n")
	return b.String()
}
