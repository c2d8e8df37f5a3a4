package ingest

import (
	"encoding/csv"
	"errors"
	"io"
)

// rowFields is the fixed field count of a connectivity record:
// source name, target name, synapse code, weight.
const rowFields = 4

// CSVOptions configures a CSVSource.
type CSVOptions struct {
	// Comma is the field delimiter.
	Comma rune

	// Header indicates the input begins with a single header row to skip.
	Header bool
}

// DefaultCSVOptions returns the options matching the upstream
// NeuronConnect.csv layout: comma-delimited with one header row.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		Comma:  ',',
		Header: true,
	}
}

// CSVSource reads four-field connectivity rows from delimited text. A
// record with any other field count is a fatal row error, not a skippable
// one.
type CSVSource struct {
	r      *csv.Reader
	opts   CSVOptions
	line   int
	primed bool
}

// NewCSVSource creates a CSVSource over r.
func NewCSVSource(r io.Reader, opts CSVOptions) *CSVSource {
	cr := csv.NewReader(r)
	cr.Comma = opts.Comma
	cr.FieldsPerRecord = rowFields
	return &CSVSource{r: cr, opts: opts}
}

// Next returns the next row, io.EOF at end of input, or a *RowError when
// the stream cannot produce a well-formed record.
func (s *CSVSource) Next() (Row, error) {
	if !s.primed {
		s.primed = true
		if s.opts.Header {
			s.line++
			// The header row is not held to the four-field contract.
			s.r.FieldsPerRecord = -1
			if _, err := s.r.Read(); err != nil {
				if errors.Is(err, io.EOF) {
					return Row{}, io.EOF
				}
				return Row{}, &RowError{Line: s.rowLine(err), Err: err}
			}
			s.r.FieldsPerRecord = rowFields
		}
	}

	s.line++
	record, err := s.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Row{}, io.EOF
		}
		return Row{}, &RowError{Line: s.rowLine(err), Err: err}
	}

	return Row{
		Source: record[0],
		Target: record[1],
		Code:   record[2],
		Weight: record[3],
	}, nil
}

// rowLine prefers the reader's own line accounting, which stays correct
// when a quoted field spans physical lines. The record counter kept here
// only sees logical records.
func (s *CSVSource) rowLine(err error) int {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) && parseErr.Line > 0 {
		return parseErr.Line
	}
	return s.line
}
