// Package models defines the domain types for a connectome: neurons,
// connections, and the synapse taxonomy. All types are plain values with no
// behavior beyond validation and display; graph bookkeeping lives in
// internal/graph.
package models

// NeuronClass categorizes a neuron's functional role.
type NeuronClass string

const (
	ClassSensory     NeuronClass = "sensory"
	ClassInterneuron NeuronClass = "interneuron"
	ClassMotor       NeuronClass = "motor"
	ClassOther       NeuronClass = "other"
)

// Valid returns true if the class is a recognized value.
func (c NeuronClass) Valid() bool {
	switch c {
	case ClassSensory, ClassInterneuron, ClassMotor, ClassOther:
		return true
	}
	return false
}

// String returns the string representation of the class.
func (c NeuronClass) String() string {
	return string(c)
}

// ParseNeuronClass maps a string to a NeuronClass.
// Unrecognized values map to ClassOther.
func ParseNeuronClass(s string) NeuronClass {
	c := NeuronClass(s)
	if !c.Valid() {
		return ClassOther
	}
	return c
}

// Region identifies the body region a neuron's soma lies in.
type Region string

const (
	RegionHead    Region = "head"
	RegionMidBody Region = "mid-body"
	RegionTail    Region = "tail"
	RegionUnknown Region = "unknown"
)

// Valid returns true if the region is a recognized value.
func (r Region) Valid() bool {
	switch r {
	case RegionHead, RegionMidBody, RegionTail, RegionUnknown:
		return true
	}
	return false
}

// String returns the string representation of the region.
func (r Region) String() string {
	return string(r)
}

// ParseRegion maps a string to a Region.
// Unrecognized values map to RegionUnknown.
func ParseRegion(s string) Region {
	r := Region(s)
	if !r.Valid() {
		return RegionUnknown
	}
	return r
}

// Neuron is a single node in the connectome. Identity fields are fixed at
// creation and never change. IDs are dense, 0-based, and assigned in
// creation order; Name is the textual key the neuron was registered under
// during loading.
type Neuron struct {
	ID       int         `json:"id" yaml:"id"`
	Name     string      `json:"name" yaml:"name"`
	Class    NeuronClass `json:"class" yaml:"class"`
	Region   Region      `json:"region" yaml:"region"`
	Position float64     `json:"position" yaml:"position"` // soma position along the body axis
}
