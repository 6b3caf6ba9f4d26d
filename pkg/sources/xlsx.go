package sources

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/rosterops/staffmap/pkg/errors"
	"github.com/rosterops/staffmap/pkg/schema"
	"github.com/rosterops/staffmap/pkg/tabular"
)

// XLSXSource reads one worksheet from an Excel workbook.
type XLSXSource struct {
	// SourceName identifies the source; when empty the sheet name is used.
	SourceName string

	// Path is the workbook path.
	Path string

	// Sheet names the worksheet to read; empty means the first sheet.
	Sheet string

	// Status is the sheet-level status default.
	Status schema.Status
}

// Name implements Source.
func (x *XLSXSource) Name() string {
	if x.SourceName != "" {
		return x.SourceName
	}
	return x.Sheet
}

// DefaultStatus implements Source.
func (x *XLSXSource) DefaultStatus() schema.Status { return x.Status }

// Load implements Source. Cell values come back via excelize's formatted
// string form and are re-parsed into typed cells.
func (x *XLSXSource) Load(ctx context.Context) (*tabular.Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.ErrCanceled
	}

	f, err := excelize.OpenFile(x.Path)
	if err != nil {
		return nil, errors.NewSourceError(x.Name(), x.Sheet, err)
	}
	defer f.Close()

	sheet := x.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewSourceError(x.Name(), sheet, err)
	}

	out := &tabular.Sheet{Name: sheet}
	for _, rawRow := range raw {
		row := make(tabular.Row, len(rawRow))
		for i, v := range rawRow {
			row[i] = tabular.Parse(v)
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// SheetNames lists the worksheets of a workbook, used by source discovery
// when a workbook should contribute every sheet it has.
func SheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewSourceError(path, "", err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}
