// Package normalizer rewrites raw sheets into canonical records. It applies
// the field mapping table to column labels, resolves duplicate canonical
// columns, drops empty rows and empty unmapped columns, cleans values at the
// boundary, canonicalizes employment status, and stamps every surviving row
// with its originating source.
package normalizer

import (
	"fmt"
	"strings"

	"github.com/rosterops/staffmap/pkg/schema"
	"github.com/rosterops/staffmap/pkg/tabular"
)

// dateFields are canonical fields coerced to date cells during cleanup.
var dateFields = []schema.Field{
	schema.FieldDateOfBirth,
	schema.FieldJoiningDate,
	schema.FieldEmploymentEnd,
	schema.FieldProbationEnd,
	schema.FieldSubmissionTime,
}

// phoneFields are canonical fields cleaned as phone numbers.
var phoneFields = []schema.Field{
	schema.FieldContactNumber,
	schema.FieldEmergencyContact,
}

// emailFields are canonical fields cleaned as email addresses.
var emailFields = []schema.Field{
	schema.FieldOfficialEmail,
	schema.FieldPersonalEmail,
}

// TempIDAllocator hands out deterministic temporary employee identifiers.
// IDs are unique per missing-ID row across a whole consolidation run and
// never reused once assigned.
type TempIDAllocator struct {
	next int
}

// NewTempIDAllocator returns an allocator starting at 1.
func NewTempIDAllocator() *TempIDAllocator {
	return &TempIDAllocator{next: 1}
}

// Next returns the next temporary identifier, e.g. "TEMP-0001".
func (a *TempIDAllocator) Next() string {
	id := fmt.Sprintf("%s%04d", schema.TempIDPrefix, a.next)
	a.next++
	return id
}

// Issued returns how many identifiers have been handed out.
func (a *TempIDAllocator) Issued() int {
	return a.next - 1
}

// SheetInfo describes the source a sheet was read from.
type SheetInfo struct {
	// Source is the source identifier stamped onto every record.
	Source string

	// DefaultStatus is applied to blank or unrecognized status values,
	// e.g. StatusResigned for a dedicated resigned sheet. Empty means no
	// sheet default.
	DefaultStatus schema.Status

	// HeaderGuessed marks that the header location was not confidently
	// detected; records carry the flag so downstream auditing can see it.
	HeaderGuessed bool
}

// Result is the outcome of normalizing one sheet.
type Result struct {
	Records []*schema.Record

	// DroppedEmptyRows counts rows dropped for being entirely empty.
	DroppedEmptyRows int

	// DroppedEmptyColumns counts columns dropped for being entirely
	// empty and unmapped.
	DroppedEmptyColumns int

	// UnmappedKept lists unmapped labels retained verbatim.
	UnmappedKept []string

	// RenamedDuplicates lists canonical columns that occurred more than
	// once and were suffixed instead of silently overwritten.
	RenamedDuplicates []string

	// StatusFallbacks counts records whose status came from the
	// default-to-Active fallback branch.
	StatusFallbacks int
}

// column is one resolved source column.
type column struct {
	index    int
	label    string       // trimmed raw label
	field    schema.Field // zero when unmapped
	extraKey string       // Extras key when unmapped or a renamed duplicate
	isStatus bool
}

// Normalizer applies the mapping and status configuration to raw sheets.
type Normalizer struct {
	mapping  schema.Mapping
	statuses schema.StatusMap
}

// New creates a Normalizer from immutable schema configuration.
func New(mapping schema.Mapping, statuses schema.StatusMap) *Normalizer {
	return &Normalizer{mapping: mapping, statuses: statuses}
}

// Normalize rewrites a raw sheet into canonical records using the given
// header location. The sheet itself is never modified.
func (n *Normalizer) Normalize(sheet *tabular.Sheet, header tabular.HeaderLocation, info SheetInfo, temp *TempIDAllocator) *Result {
	res := &Result{}

	if len(sheet.Rows) == 0 {
		return res
	}

	columns := n.resolveColumns(sheet, header, res)

	statusColumns := make([]column, 0, 2)
	for _, col := range columns {
		if col.isStatus {
			statusColumns = append(statusColumns, col)
		}
	}

	for rowIdx := header.Index + 1; rowIdx < len(sheet.Rows); rowIdx++ {
		row := sheet.Rows[rowIdx]
		if row.IsEmpty() {
			res.DroppedEmptyRows++
			continue
		}

		rec := schema.NewRecord(info.Source, rowIdx-header.Index-1)
		rec.HeaderGuessed = info.HeaderGuessed

		for _, col := range columns {
			cell := sheet.Cell(rowIdx, col.index)
			if cell.IsNull() {
				continue
			}
			switch {
			case col.isStatus:
				// Raw status handled below across duplicates.
			case col.field != "":
				if rec.Has(col.field) {
					// Second occurrence of the same canonical
					// column keeps its value under a suffix.
					rec.Extras[col.extraKey] = cell
				} else {
					rec.Set(col.field, cell)
				}
			default:
				rec.Extras[col.extraKey] = cell
			}
		}

		rawStatus := firstStatusValue(sheet, rowIdx, statusColumns)
		status, fellBack := n.statuses.Canonicalize(rawStatus, info.DefaultStatus)
		rec.Status = status
		rec.StatusFellBack = fellBack
		rec.Set(schema.FieldEmploymentStatus, tabular.String(string(status)))
		if fellBack {
			res.StatusFallbacks++
		}

		n.cleanRecord(rec)

		if rec.EmployeeID() == "" {
			rec.Set(schema.FieldEmployeeID, tabular.String(temp.Next()))
			rec.NeedsEmployeeID = true
		}

		res.Records = append(res.Records, rec)
	}

	return res
}

// resolveColumns maps the header row's labels through the mapping table and
// decides the fate of every column.
func (n *Normalizer) resolveColumns(sheet *tabular.Sheet, header tabular.HeaderLocation, res *Result) []column {
	width := sheet.Width()
	columns := make([]column, 0, width)
	seen := make(map[schema.Field]int, width)

	for colIdx := 0; colIdx < width; colIdx++ {
		label := strings.TrimSpace(sheet.Cell(header.Index, colIdx).Text())
		if label == "" {
			label = fmt.Sprintf("Unnamed: %d", colIdx)
		}

		col := column{index: colIdx, label: label}

		if field, ok := n.mapping.Resolve(label); ok {
			col.field = field
			col.isStatus = field == schema.FieldEmploymentStatus
			seen[field]++
			if seen[field] > 1 && !col.isStatus {
				col.extraKey = fmt.Sprintf("%s_%d", field, seen[field])
				res.RenamedDuplicates = append(res.RenamedDuplicates, col.extraKey)
			}
		} else {
			if n.columnIsEmpty(sheet, header.Index+1, colIdx) {
				res.DroppedEmptyColumns++
				continue
			}
			col.extraKey = label
			res.UnmappedKept = append(res.UnmappedKept, label)
		}

		columns = append(columns, col)
	}

	return columns
}

// columnIsEmpty reports whether every data cell of a column is null.
func (n *Normalizer) columnIsEmpty(sheet *tabular.Sheet, firstDataRow, colIdx int) bool {
	for rowIdx := firstDataRow; rowIdx < len(sheet.Rows); rowIdx++ {
		if !sheet.Cell(rowIdx, colIdx).IsNull() {
			return false
		}
	}
	return true
}

// firstStatusValue picks the first non-empty raw value across the (possibly
// duplicated) status columns of a row.
func firstStatusValue(sheet *tabular.Sheet, rowIdx int, statusColumns []column) string {
	for _, col := range statusColumns {
		if v := strings.TrimSpace(sheet.Cell(rowIdx, col.index).Text()); v != "" {
			return v
		}
	}
	return ""
}

// cleanRecord applies boundary cleaning to the well-known fields.
func (n *Normalizer) cleanRecord(rec *schema.Record) {
	for _, f := range emailFields {
		if rec.Has(f) {
			rec.Set(f, tabular.String(CleanEmail(rec.Get(f).Text())))
		}
	}
	for _, f := range phoneFields {
		if rec.Has(f) {
			rec.Set(f, tabular.String(CleanPhone(rec.Get(f).Text())))
		}
	}
	for _, f := range dateFields {
		if rec.Has(f) {
			rec.Set(f, coerceDate(rec.Get(f)))
		}
	}
	if rec.Has(schema.FieldEmployeeID) {
		rec.Set(schema.FieldEmployeeID, tabular.String(CleanEmployeeID(rec.Get(schema.FieldEmployeeID))))
	}
}
