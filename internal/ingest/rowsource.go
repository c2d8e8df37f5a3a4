// Package ingest builds a connectome graph from a tabular edge list. It
// owns the row-source abstraction, the name-to-id registry, and the loader
// that drives row-by-row ingestion into internal/graph.
package ingest

import "fmt"

// Row is one logical record of the connectivity table: source neuron name,
// target neuron name, coded synapse label, and the weight field as raw text.
type Row struct {
	Source string
	Target string
	Code   string
	Weight string
}

// RowSource yields Rows in table order. Next returns io.EOF after the final
// row; any other error is fatal to the load. Implementations own format
// concerns (delimiter, quoting, header handling).
type RowSource interface {
	Next() (Row, error)
}

// RowError reports a row that the source could not produce, carrying the
// 1-based line number of the underlying input.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row source: line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
