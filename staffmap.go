// Package staffmap consolidates employee records from heterogeneous
// spreadsheet exports into a single canonical directory. It normalizes
// arbitrary source schemas, resolves which rows describe the same person,
// merges conflicting values deterministically, and derives per-person
// employment timelines.
package staffmap

import (
	"context"
	"fmt"

	"github.com/rosterops/staffmap/pkg/consolidate"
	"github.com/rosterops/staffmap/pkg/logging"
	"github.com/rosterops/staffmap/pkg/save"
	"github.com/rosterops/staffmap/pkg/sources"
)

// Staffmap runs consolidations over configured schema and reliability
// tables and writes the results out.
type Staffmap interface {
	// Consolidate runs the full pipeline over the given sources.
	Consolidate(ctx context.Context, srcs ...sources.Source) (*consolidate.Result, error)

	// SaveWorkbook writes a result as one Excel workbook, replacing any
	// previous output at the path.
	SaveWorkbook(ctx context.Context, result *consolidate.Result, path string) error

	// SaveCSV writes the latest view and the history as two CSV files,
	// replacing any previous output at the paths.
	SaveCSV(ctx context.Context, result *consolidate.Result, latestPath, historyPath string) error
}

// staffmap is the internal implementation of the Staffmap interface
type staffmap struct {
	config   *config
	pipeline *consolidate.Pipeline
}

// New creates a new Staffmap instance with the given options
func New(opts ...Option) (Staffmap, error) {
	c := &config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	pipeline, err := consolidate.New(consolidate.Config{
		Mapping:  c.mapping,
		Statuses: c.statuses,
		Weights:  c.weights,
		Cascade:  c.cascade,
	})
	if err != nil {
		return nil, fmt.Errorf("building pipeline: %w", err)
	}

	return &staffmap{config: c, pipeline: pipeline}, nil
}

// Consolidate runs the full pipeline over the given sources.
func (s *staffmap) Consolidate(ctx context.Context, srcs ...sources.Source) (*consolidate.Result, error) {
	ctx = s.runContext(ctx)
	return s.pipeline.Run(ctx, srcs)
}

// SaveWorkbook writes a result as one Excel workbook.
func (s *staffmap) SaveWorkbook(ctx context.Context, result *consolidate.Result, path string) error {
	return save.Workbook(s.runContext(ctx), result, path)
}

// SaveCSV writes the latest view and the history as two CSV files.
func (s *staffmap) SaveCSV(ctx context.Context, result *consolidate.Result, latestPath, historyPath string) error {
	ctx = s.runContext(ctx)
	if err := save.LatestCSV(ctx, result, latestPath); err != nil {
		return err
	}
	return save.HistoryCSV(ctx, result, historyPath)
}

// runContext attaches the configured logger to a context.
func (s *staffmap) runContext(ctx context.Context) context.Context {
	if s.config.logger != nil {
		return logging.WithLogger(ctx, s.config.logger)
	}
	return ctx
}
