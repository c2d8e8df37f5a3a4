package export

import (
	"strings"
	"testing"

	"github.com/wormlab/connectome/internal/graph"
	"github.com/wormlab/connectome/internal/models"
)

func sampleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	g.AddNeuron("ADAL", models.ClassSensory, models.RegionHead, 0.1)
	g.AddNeuron("AVBL", models.ClassInterneuron, models.RegionMidBody, 0.5)

	mustAdd := func(source, target int, kind models.SynapseKind, weight float64) {
		t.Helper()
		if _, err := g.AddConnection(source, target, kind, weight); err != nil {
			t.Fatalf("AddConnection() error = %v", err)
		}
	}
	mustAdd(0, 1, models.GapJunction(), 2.0)
	mustAdd(1, 0, models.ChemicalSend(models.Excitatory), 1.5)
	return g
}

func TestRenderDOT(t *testing.T) {
	dot := RenderDOT(sampleGraph(t))

	for _, want := range []string{
		"digraph connectome {",
		`"ADAL" [label="ADAL", fillcolor="goldenrod"`,
		`"AVBL" [label="AVBL", fillcolor="steelblue"`,
		`"ADAL" -> "AVBL"`,
		`"AVBL" -> "ADAL"`,
		"dir=none", // the gap junction renders undirected
		`style="dotted"`,
		`style="solid"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}

func TestRenderDOT_Empty(t *testing.T) {
	dot := RenderDOT(graph.New())
	if !strings.HasPrefix(dot, "digraph connectome {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("empty graph DOT malformed:\n%s", dot)
	}
}

func TestBuildDocument(t *testing.T) {
	doc := BuildDocument(sampleGraph(t))

	if len(doc.Neurons) != 2 || len(doc.Connections) != 2 {
		t.Fatalf("document = %d neurons, %d connections; want 2, 2", len(doc.Neurons), len(doc.Connections))
	}

	if doc.Neurons[0].Name != "ADAL" || doc.Neurons[0].Class != "sensory" || doc.Neurons[0].Region != "head" {
		t.Errorf("Neurons[0] = %+v", doc.Neurons[0])
	}

	gap := doc.Connections[0]
	if gap.Source != "ADAL" || gap.Target != "AVBL" || gap.Kind != "gap-junction" || !gap.Undirected {
		t.Errorf("Connections[0] = %+v", gap)
	}
	if gap.Polarity != "" {
		t.Errorf("gap junction polarity = %q, want empty", gap.Polarity)
	}

	send := doc.Connections[1]
	if send.Kind != "chemical-send" || send.Polarity != "excitatory" || send.Weight != 1.5 || send.Undirected {
		t.Errorf("Connections[1] = %+v", send)
	}
}
