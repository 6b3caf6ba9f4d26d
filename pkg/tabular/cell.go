// Package tabular models raw spreadsheet data as typed cells and sheets.
// Every cell is normalized at the boundary into a small closed set of value
// kinds (string, number, date, null) so that typing ambiguity from mixed
// spreadsheet columns never reaches the consolidation logic.
package tabular

import (
	"strconv"
	"strings"
	"time"
)

// Kind identifies the value kind held by a Cell.
type Kind int

const (
	// KindNull represents an empty cell.
	KindNull Kind = iota
	// KindString represents a text cell.
	KindString
	// KindNumber represents a numeric cell.
	KindNumber
	// KindDate represents a date cell.
	KindDate
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	default:
		return "null"
	}
}

// Cell is one typed spreadsheet value. The zero value is a null cell.
type Cell struct {
	kind Kind
	str  string
	num  float64
	date time.Time
}

// Null returns an empty cell.
func Null() Cell {
	return Cell{}
}

// String returns a text cell. An empty or whitespace-only value yields null.
func String(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Cell{}
	}
	return Cell{kind: KindString, str: s}
}

// Number returns a numeric cell.
func Number(f float64) Cell {
	return Cell{kind: KindNumber, num: f}
}

// Date returns a date cell. A zero time yields null.
func Date(t time.Time) Cell {
	if t.IsZero() {
		return Cell{}
	}
	return Cell{kind: KindDate, date: t}
}

// Kind returns the value kind of the cell.
func (c Cell) Kind() Kind {
	return c.kind
}

// IsNull reports whether the cell is empty.
func (c Cell) IsNull() bool {
	return c.kind == KindNull
}

// Text returns the cell rendered as a string. Null cells render empty.
func (c Cell) Text() string {
	switch c.kind {
	case KindString:
		return c.str
	case KindNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case KindDate:
		return c.date.Format("2006-01-02")
	default:
		return ""
	}
}

// Number returns the numeric value and whether the cell holds one.
func (c Cell) Number() (float64, bool) {
	if c.kind != KindNumber {
		return 0, false
	}
	return c.num, true
}

// Date returns the date value and whether the cell holds one.
func (c Cell) Date() (time.Time, bool) {
	if c.kind != KindDate {
		return time.Time{}, false
	}
	return c.date, true
}

// Equal reports whether two cells hold the same kind and value.
func (c Cell) Equal(other Cell) bool {
	if c.kind != other.kind {
		return false
	}
	switch c.kind {
	case KindString:
		return c.str == other.str
	case KindNumber:
		return c.num == other.num
	case KindDate:
		return c.date.Equal(other.date)
	default:
		return true
	}
}

// dateLayouts are the layouts tried when parsing a raw value into a date,
// most specific first. These cover the formats seen in directory exports.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"1/2/2006",
	"01-02-2006",
	"2-Jan-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// Parse converts a raw string value into a typed cell. It tries, in order:
// empty/placeholder text to null, a numeric literal, a date in one of the
// known layouts, and finally a plain string.
func Parse(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{}
	}
	switch strings.ToLower(trimmed) {
	case "nan", "none", "null", "n/a", "nat", "-":
		return Cell{}
	}

	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Number(f)
	}

	if t, ok := ParseDate(trimmed); ok {
		return Date(t)
	}

	return Cell{kind: KindString, str: trimmed}
}

// ParseDate parses a raw value against the known date layouts.
func ParseDate(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
