// Package save writes consolidation results to disk. Output replaces any
// previous run's files wholesale: writers stage into a temp file in the
// target directory and rename over the destination, so readers never see a
// half-written file.
package save

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/rosterops/staffmap/pkg/consolidate"
	"github.com/rosterops/staffmap/pkg/errors"
	"github.com/rosterops/staffmap/pkg/logging"
	"github.com/rosterops/staffmap/pkg/schema"
	"github.com/rosterops/staffmap/pkg/tabular"
)

// Workbook sheet names.
const (
	SheetLatest      = "Latest"
	SheetHistory     = "History"
	SheetPendingID   = "Pending_ID"
	SheetDataQuality = "Data_Quality"
)

// historyColumns are the extra lifecycle columns of the History sheet.
var historyColumns = []string{"Rejoin_Sequence", "Is_Current", "Record_UID"}

// Workbook writes the full result as one Excel workbook: the latest view
// of every person, the stint-level history, rows still pending a real
// identifier, and a data-quality sheet of warnings and counters.
func Workbook(ctx context.Context, result *consolidate.Result, path string) error {
	if err := ctx.Err(); err != nil {
		return errors.ErrCanceled
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetLatest); err != nil {
		return errors.NewIOError("write", path, err)
	}
	if err := writeLatest(f, result); err != nil {
		return errors.NewIOError("write", path, err)
	}
	if err := writeHistory(f, result); err != nil {
		return errors.NewIOError("write", path, err)
	}
	if err := writePendingID(f, result); err != nil {
		return errors.NewIOError("write", path, err)
	}
	if err := writeDataQuality(f, result); err != nil {
		return errors.NewIOError("write", path, err)
	}

	if err := atomically(path, func(tmp string) error { return f.SaveAs(tmp) }); err != nil {
		return err
	}

	logging.Ctx(ctx).Info().
		Str("path", path).
		Int("profiles", len(result.Profiles)).
		Int("stints", len(result.Timeline)).
		Msg("workbook written")
	return nil
}

func writeLatest(f *excelize.File, result *consolidate.Result) error {
	fields := schema.DefaultFields()
	header := make([]any, 0, len(fields))
	for _, field := range fields {
		header = append(header, string(field))
	}
	if err := f.SetSheetRow(SheetLatest, "A1", &header); err != nil {
		return err
	}

	for i, p := range result.Profiles {
		row := make([]any, 0, len(fields))
		for _, field := range fields {
			row = append(row, cellValue(p.Record.Get(field)))
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetLatest, addr, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeHistory(f *excelize.File, result *consolidate.Result) error {
	if _, err := f.NewSheet(SheetHistory); err != nil {
		return err
	}

	fields := schema.DefaultFields()
	header := make([]any, 0, len(fields)+len(historyColumns))
	for _, field := range fields {
		header = append(header, string(field))
	}
	for _, c := range historyColumns {
		header = append(header, c)
	}
	if err := f.SetSheetRow(SheetHistory, "A1", &header); err != nil {
		return err
	}

	for i, e := range result.Timeline {
		row := make([]any, 0, len(header))
		for _, field := range fields {
			switch field {
			case schema.FieldEmployeeID:
				row = append(row, e.EmployeeID)
			case schema.FieldEmploymentStatus:
				row = append(row, string(e.Record.Status))
			default:
				row = append(row, cellValue(e.Record.Get(field)))
			}
		}
		row = append(row, e.RejoinSequence, e.IsCurrent, e.RecordUID)

		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetHistory, addr, &row); err != nil {
			return err
		}
	}
	return nil
}

func writePendingID(f *excelize.File, result *consolidate.Result) error {
	if _, err := f.NewSheet(SheetPendingID); err != nil {
		return err
	}

	header := []any{
		string(schema.FieldEmployeeID),
		string(schema.FieldFullName),
		string(schema.FieldOfficialEmail),
		"Sources",
	}
	if err := f.SetSheetRow(SheetPendingID, "A1", &header); err != nil {
		return err
	}

	rowNum := 2
	for _, p := range result.Profiles {
		if !p.NeedsEmployeeID {
			continue
		}
		row := []any{
			p.Record.EmployeeID(),
			p.Record.Get(schema.FieldFullName).Text(),
			p.Record.Get(schema.FieldOfficialEmail).Text(),
			joinSources(p.Sources),
		}
		addr, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetPendingID, addr, &row); err != nil {
			return err
		}
		rowNum++
	}
	return nil
}

func writeDataQuality(f *excelize.File, result *consolidate.Result) error {
	if _, err := f.NewSheet(SheetDataQuality); err != nil {
		return err
	}

	s := result.Summary
	rows := [][]any{
		{"Metric", "Value"},
		{"Run_ID", result.RunID.String()},
		{"Sources_Loaded", s.SourcesLoaded},
		{"Sources_Failed", s.SourcesFailed},
		{"Records_In", s.RecordsIn},
		{"Dropped_Empty_Rows", s.DroppedEmptyRows},
		{"Dropped_Empty_Columns", s.DroppedEmptyColumns},
		{"Exact_Duplicates", s.ExactDuplicates},
		{"Status_Fallbacks", s.StatusFallbacks},
		{"Temp_IDs_Issued", s.TempIDsIssued},
		{"Headers_Guessed", s.HeadersGuessed},
		{"Clusters", s.Clusters},
		{"Duplicate_IDs", s.DuplicateIDs},
		{"Merged_By_Name_Only", s.MergedByNameOnly},
		{"Field_Conflicts", s.Conflicts},
		{"Active_Profiles", s.ActiveProfiles},
		{"Resigned_Profiles", s.ResignedProfiles},
		{"Pending_ID", s.PendingID},
	}
	perSource := make([]string, 0, len(result.Summary.RecordsPerSource))
	for source := range result.Summary.RecordsPerSource {
		perSource = append(perSource, source)
	}
	sort.Strings(perSource)
	for _, source := range perSource {
		rows = append(rows, []any{"Records_From_" + source, result.Summary.RecordsPerSource[source]})
	}
	for _, w := range result.Warnings {
		rows = append(rows, []any{"Warning", w})
	}

	// Per-column completeness over the latest view.
	rows = append(rows, []any{"", ""}, []any{"Column", "Non_Empty"})
	for _, field := range schema.DefaultFields() {
		n := 0
		for _, p := range result.Profiles {
			if p.Record.Has(field) {
				n++
			}
		}
		rows = append(rows, []any{string(field), n})
	}

	for i := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetDataQuality, addr, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

// LatestCSV writes just the latest view as a CSV file.
func LatestCSV(ctx context.Context, result *consolidate.Result, path string) error {
	if err := ctx.Err(); err != nil {
		return errors.ErrCanceled
	}

	fields := schema.DefaultFields()
	records := make([][]string, 0, len(result.Profiles)+1)

	header := make([]string, 0, len(fields))
	for _, field := range fields {
		header = append(header, string(field))
	}
	records = append(records, header)

	for _, p := range result.Profiles {
		row := make([]string, 0, len(fields))
		for _, field := range fields {
			row = append(row, p.Record.Get(field).Text())
		}
		records = append(records, row)
	}

	return atomically(path, func(tmp string) error {
		f, err := os.Create(tmp)
		if err != nil {
			return err
		}
		w := csv.NewWriter(f)
		if err := w.WriteAll(records); err != nil {
			f.Close()
			return err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	})
}

// HistoryCSV writes the stint-level history as a CSV file.
func HistoryCSV(ctx context.Context, result *consolidate.Result, path string) error {
	if err := ctx.Err(); err != nil {
		return errors.ErrCanceled
	}

	fields := schema.DefaultFields()
	records := make([][]string, 0, len(result.Timeline)+1)

	header := make([]string, 0, len(fields)+len(historyColumns))
	for _, field := range fields {
		header = append(header, string(field))
	}
	header = append(header, historyColumns...)
	records = append(records, header)

	for _, e := range result.Timeline {
		row := make([]string, 0, len(header))
		for _, field := range fields {
			switch field {
			case schema.FieldEmployeeID:
				row = append(row, e.EmployeeID)
			case schema.FieldEmploymentStatus:
				row = append(row, string(e.Record.Status))
			default:
				row = append(row, e.Record.Get(field).Text())
			}
		}
		row = append(row,
			fmt.Sprintf("%d", e.RejoinSequence),
			fmt.Sprintf("%t", e.IsCurrent),
			e.RecordUID,
		)
		records = append(records, row)
	}

	return atomically(path, func(tmp string) error {
		f, err := os.Create(tmp)
		if err != nil {
			return err
		}
		w := csv.NewWriter(f)
		if err := w.WriteAll(records); err != nil {
			f.Close()
			return err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	})
}

// atomically writes through a temp file in the destination directory and
// renames it over the target.
func atomically(path string, write func(tmp string) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewIOError("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".staffmap-*")
	if err != nil {
		return errors.NewIOError("create", dir, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := write(tmpPath); err != nil {
		os.Remove(tmpPath)
		return errors.NewIOError("write", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.NewIOError("rename", path, err)
	}
	return nil
}

// cellValue renders a cell for a worksheet, keeping numbers numeric.
func cellValue(c tabular.Cell) any {
	if n, ok := c.Number(); ok {
		return n
	}
	return c.Text()
}

func joinSources(sources []string) string {
	out := ""
	for i, s := range sources {
		if i > 0 {
			out += "; "
		}
		out += s
	}
	return out
}
