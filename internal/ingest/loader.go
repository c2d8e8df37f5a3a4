package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/wormlab/connectome/internal/graph"
	"github.com/wormlab/connectome/internal/logging"
	"github.com/wormlab/connectome/internal/models"
)

// defaultWeight substitutes for weight fields that are absent or do not
// parse as a float. The substitution is silent; it never fails a load.
const defaultWeight = 1.0

// Report summarizes one completed load.
type Report struct {
	Rows           int `json:"rows"`
	DefaultedCodes int `json:"defaulted_codes"`   // rows whose synapse code was not recognized
	DefaultedWghts int `json:"defaulted_weights"` // rows whose weight fell back to 1.0
}

// Loader drives row-by-row ingestion from a RowSource into a fresh graph.
// A Loader performs one load at a time; it is not safe for concurrent use.
type Loader struct {
	logger *slog.Logger
	report Report
}

// NewLoader creates a loader. A nil logger disables diagnostics.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{logger: logger}
}

// Load consumes src to completion and returns the materialized graph.
//
// Per row, in input order: the weight text is parsed with a silent 1.0
// fallback, the source then target names are resolved through the registry
// (creating neurons on first sight), the synapse code is classified, and
// the connection is inserted. Soft fallbacks never fail the load; any error
// from the row source aborts it, and no graph is returned.
func (l *Loader) Load(src RowSource) (*graph.Graph, error) {
	g := graph.New()
	reg := NewRegistry(g)
	l.report = Report{}
	ctx := context.Background()

	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loading connectome: %w", err)
		}

		weight, parsed := ParseWeight(row.Weight)
		if !parsed {
			l.report.DefaultedWghts++
			l.logger.Debug("weight did not parse, using default",
				"weight", row.Weight, "default", defaultWeight)
		}

		sourceID := reg.Resolve(row.Source)
		targetID := reg.Resolve(row.Target)

		kind, recognized := models.ClassifyCode(row.Code)
		if !recognized {
			l.report.DefaultedCodes++
			l.logger.Debug("unrecognized synapse code, using default kind",
				"code", row.Code, "kind", kind.String())
		}

		if _, err := g.AddConnection(sourceID, targetID, kind, weight); err != nil {
			// Unreachable while endpoints come from the registry.
			return nil, fmt.Errorf("inserting connection %s -> %s: %w", row.Source, row.Target, err)
		}

		l.report.Rows++
		l.logger.Log(ctx, logging.LevelTrace, "row loaded",
			"source", row.Source, "target", row.Target,
			"kind", kind.String(), "weight", weight)
	}

	l.logger.Info("connectome loaded",
		"neurons", g.NeuronCount(),
		"connections", g.ConnectionCount(),
		"defaulted_codes", l.report.DefaultedCodes,
		"defaulted_weights", l.report.DefaultedWghts)

	return g, nil
}

// Report returns the summary of the most recent Load.
func (l *Loader) Report() Report {
	return l.report
}

// ParseWeight parses a weight field. The second result is false when the
// field did not parse and the default applied. The field is taken verbatim:
// surrounding whitespace does not parse and falls back, matching the
// upstream pipeline.
func ParseWeight(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return defaultWeight, false
	}
	return f, true
}
