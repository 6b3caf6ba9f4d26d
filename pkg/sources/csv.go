package sources

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/rosterops/staffmap/pkg/errors"
	"github.com/rosterops/staffmap/pkg/schema"
	"github.com/rosterops/staffmap/pkg/tabular"
)

// CSVSource reads a comma-separated file as one sheet.
type CSVSource struct {
	// SourceName identifies the source; when empty the file basename is
	// used.
	SourceName string

	// Path is the file path.
	Path string

	// Status is the sheet-level status default.
	Status schema.Status
}

// Name implements Source.
func (c *CSVSource) Name() string {
	if c.SourceName != "" {
		return c.SourceName
	}
	base := filepath.Base(c.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DefaultStatus implements Source.
func (c *CSVSource) DefaultStatus() schema.Status { return c.Status }

// Load implements Source. Ragged rows are allowed; short rows simply have
// fewer cells.
func (c *CSVSource) Load(ctx context.Context) (*tabular.Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.ErrCanceled
	}

	f, err := os.Open(c.Path)
	if err != nil {
		return nil, errors.NewSourceError(c.Name(), "", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.NewSourceError(c.Name(), "", errors.NewParseError("csv", c.Path, "malformed csv", err))
	}

	out := &tabular.Sheet{Name: c.Name()}
	for _, rawRow := range records {
		row := make(tabular.Row, len(rawRow))
		for i, v := range rawRow {
			row[i] = tabular.Parse(v)
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}
