package schema

import (
	"strings"

	"github.com/rosterops/staffmap/pkg/tabular"
)

// Record is one source row rewritten into canonical fields. It carries the
// derived canonical status, its originating source, and the sheet-internal
// row index of the raw row it came from.
type Record struct {
	// Fields holds the canonical field values.
	Fields map[Field]tabular.Cell

	// Extras keeps unmapped, non-empty columns verbatim.
	Extras map[string]tabular.Cell

	// Source names the originating source.
	Source string

	// RowIndex is the zero-based data row index within the source sheet.
	RowIndex int

	// Status is the canonical employment status.
	Status Status

	// StatusFellBack records that Status came from the default-to-Active
	// fallback rather than a recognized synonym or sheet default.
	StatusFellBack bool

	// NeedsEmployeeID marks a record whose identifier was synthesized
	// because no stable ID was present in the source row.
	NeedsEmployeeID bool

	// HeaderGuessed marks records from a sheet whose header row could not
	// be confidently detected.
	HeaderGuessed bool
}

// NewRecord returns an empty record for the given source row.
func NewRecord(source string, rowIndex int) *Record {
	return &Record{
		Fields:   make(map[Field]tabular.Cell),
		Extras:   make(map[string]tabular.Cell),
		Source:   source,
		RowIndex: rowIndex,
	}
}

// Get returns the value of a canonical field, or a null cell.
func (r *Record) Get(f Field) tabular.Cell {
	return r.Fields[f]
}

// Set assigns a canonical field value. Null cells clear the field.
func (r *Record) Set(f Field, c tabular.Cell) {
	if c.IsNull() {
		delete(r.Fields, f)
		return
	}
	r.Fields[f] = c
}

// Has reports whether the record carries a non-null value for the field.
func (r *Record) Has(f Field) bool {
	c, ok := r.Fields[f]
	return ok && !c.IsNull()
}

// EmployeeID returns the employee identifier as text, empty when missing.
func (r *Record) EmployeeID() string {
	return r.Get(FieldEmployeeID).Text()
}

// HasTempID reports whether the record carries a synthesized identifier.
func (r *Record) HasTempID() bool {
	return strings.HasPrefix(r.EmployeeID(), TempIDPrefix)
}

// NonNullCount returns the number of non-null canonical fields, the
// completeness measure used by merge priority scoring.
func (r *Record) NonNullCount() int {
	n := 0
	for _, c := range r.Fields {
		if !c.IsNull() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	out := &Record{
		Fields:          make(map[Field]tabular.Cell, len(r.Fields)),
		Extras:          make(map[string]tabular.Cell, len(r.Extras)),
		Source:          r.Source,
		RowIndex:        r.RowIndex,
		Status:          r.Status,
		StatusFellBack:  r.StatusFellBack,
		NeedsEmployeeID: r.NeedsEmployeeID,
		HeaderGuessed:   r.HeaderGuessed,
	}
	for f, c := range r.Fields {
		out.Fields[f] = c
	}
	for k, c := range r.Extras {
		out.Extras[k] = c
	}
	return out
}
