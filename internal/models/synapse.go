package models

import "fmt"

// Polarity is the chemical sign of a synapse.
type Polarity string

const (
	Excitatory Polarity = "excitatory"
	Inhibitory Polarity = "inhibitory"
)

// Valid returns true if the polarity is a recognized value.
func (p Polarity) Valid() bool {
	switch p {
	case Excitatory, Inhibitory:
		return true
	}
	return false
}

// String returns the string representation of the polarity.
func (p Polarity) String() string {
	return string(p)
}

// SynapseClass is the discriminant of SynapseKind. The set is closed:
// every switch over a SynapseClass must handle all four values.
type SynapseClass string

const (
	SynapseChemicalSend    SynapseClass = "chemical-send"
	SynapseChemicalReceive SynapseClass = "chemical-receive"
	SynapseGapJunction     SynapseClass = "gap-junction"
	SynapseNeuromuscular   SynapseClass = "neuromuscular"
)

// Valid returns true if the class is a recognized value.
func (c SynapseClass) Valid() bool {
	switch c {
	case SynapseChemicalSend, SynapseChemicalReceive, SynapseGapJunction, SynapseNeuromuscular:
		return true
	}
	return false
}

// String returns the string representation of the class.
func (c SynapseClass) String() string {
	return string(c)
}

// SynapseKind is a tagged union over the synapse taxonomy. Polarity is
// meaningful only for the two chemical classes; the constructors below keep
// it empty otherwise, so kinds built through them compare with ==.
type SynapseKind struct {
	Class    SynapseClass `json:"class" yaml:"class"`
	Polarity Polarity     `json:"polarity,omitempty" yaml:"polarity,omitempty"`
}

// ChemicalSend builds a directed chemical synapse kind (sender side).
func ChemicalSend(p Polarity) SynapseKind {
	return SynapseKind{Class: SynapseChemicalSend, Polarity: p}
}

// ChemicalReceive builds a directed chemical synapse kind (receiver side).
func ChemicalReceive(p Polarity) SynapseKind {
	return SynapseKind{Class: SynapseChemicalReceive, Polarity: p}
}

// GapJunction builds an electrical synapse kind. Gap junctions are
// undirected-equivalent: the stored edge direction carries no meaning.
func GapJunction() SynapseKind {
	return SynapseKind{Class: SynapseGapJunction}
}

// NeuromuscularJunction builds a neuron-to-muscle synapse kind.
func NeuromuscularJunction() SynapseKind {
	return SynapseKind{Class: SynapseNeuromuscular}
}

// String returns a compact display form, e.g. "chemical-send(excitatory)".
func (k SynapseKind) String() string {
	switch k.Class {
	case SynapseChemicalSend, SynapseChemicalReceive:
		return fmt.Sprintf("%s(%s)", k.Class, k.Polarity)
	case SynapseGapJunction, SynapseNeuromuscular:
		return string(k.Class)
	}
	return string(k.Class)
}

// Classify maps a coded synapse label from the source table to a
// SynapseKind. It is total: unrecognized codes (including the empty string)
// classify as ChemicalSend(Excitatory). That fallback reproduces the
// behavior of the upstream data pipeline and must not change; use
// ClassifyCode when the caller needs to know a code was defaulted.
func Classify(code string) SynapseKind {
	kind, _ := ClassifyCode(code)
	return kind
}

// ClassifyCode is Classify plus a recognized flag: false means the code was
// not in the table and the fallback kind was returned.
func ClassifyCode(code string) (SynapseKind, bool) {
	switch code {
	case "EJ":
		return GapJunction(), true
	case "Sp":
		return ChemicalSend(Excitatory), true
	case "R":
		return ChemicalReceive(Excitatory), true
	}
	return ChemicalSend(Excitatory), false
}
