// Package sources loads raw sheets from spreadsheet files. Every loader
// returns a tabular.Sheet with cells already parsed into typed values; the
// consolidation pipeline never sees raw strings. A source that cannot be
// read returns a SourceError and the run continues without it.
package sources

import (
	"context"

	"github.com/rosterops/staffmap/pkg/schema"
	"github.com/rosterops/staffmap/pkg/tabular"
)

// Source is one named input to a consolidation run.
type Source interface {
	// Name identifies the source in records, summaries, and logs.
	Name() string

	// DefaultStatus is the sheet-level status default, empty when the
	// source carries no implied status.
	DefaultStatus() schema.Status

	// Load reads the raw sheet.
	Load(ctx context.Context) (*tabular.Sheet, error)
}

// MemorySource serves an in-memory sheet, mainly for tests and embedding.
type MemorySource struct {
	SourceName string
	Status     schema.Status
	Sheet      *tabular.Sheet
	Err        error
}

// Name implements Source.
func (m *MemorySource) Name() string { return m.SourceName }

// DefaultStatus implements Source.
func (m *MemorySource) DefaultStatus() schema.Status { return m.Status }

// Load implements Source.
func (m *MemorySource) Load(ctx context.Context) (*tabular.Sheet, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Sheet, nil
}

// FromStrings builds an in-memory sheet from raw string rows, parsing each
// cell the same way the file loaders do.
func FromStrings(name string, rows [][]string) *tabular.Sheet {
	s := &tabular.Sheet{Name: name}
	for _, raw := range rows {
		row := make(tabular.Row, len(raw))
		for i, v := range raw {
			row[i] = tabular.Parse(v)
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}
