package normalizer

import (
	"strings"

	"github.com/rosterops/staffmap/pkg/tabular"
)

// CleanEmail lowercases and trims an email value. Values without an "@" or
// matching a known placeholder are treated as missing.
func CleanEmail(raw string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "", "nan", "none", "n/a":
		return ""
	}
	if !strings.Contains(v, "@") {
		return ""
	}
	return v
}

// CleanPhone strips a phone value down to digits and a leading "+".
func CleanPhone(raw string) string {
	v := strings.TrimSpace(raw)
	switch strings.ToLower(v) {
	case "", "nan", "none", "nat":
		return ""
	}
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DigitsOnly strips everything but digits, the normal form for national
// identifiers that sources punctuate inconsistently.
func DigitsOnly(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CleanEmployeeID normalizes an identifier value. Numeric cells that round-
// tripped through a spreadsheet as floats lose their ".0" suffix.
func CleanEmployeeID(c tabular.Cell) string {
	text := strings.TrimSpace(c.Text())
	text = strings.TrimSuffix(text, ".0")
	return text
}

// coerceDate upgrades a string cell holding a recognizable date into a date
// cell. Other kinds pass through unchanged.
func coerceDate(c tabular.Cell) tabular.Cell {
	if c.Kind() != tabular.KindString {
		return c
	}
	if t, ok := tabular.ParseDate(c.Text()); ok {
		return tabular.Date(t)
	}
	return c
}
