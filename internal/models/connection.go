package models

// Connection is a directed edge between two neurons. IDs are dense, 0-based,
// and assigned in insertion order; Source and Target reference Neuron IDs
// that must exist in the owning graph.
type Connection struct {
	ID     int         `json:"id" yaml:"id"`
	Source int         `json:"source" yaml:"source"`
	Target int         `json:"target" yaml:"target"`
	Kind   SynapseKind `json:"kind" yaml:"kind"`
	Weight float64     `json:"weight" yaml:"weight"` // may be negative or zero
}
