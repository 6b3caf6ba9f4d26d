package schema

import "strings"

// Status is a canonical employment state. Every raw status value, including
// blank and unrecognized text, maps to exactly one of the two states.
type Status string

const (
	// StatusActive marks a currently employed record.
	StatusActive Status = "Active"
	// StatusResigned marks a record for an employee who has left.
	StatusResigned Status = "Resigned/Terminated"
)

// StatusMap canonicalizes free-text employment status values. It is
// immutable once built.
type StatusMap struct {
	active []string
	left   []string
}

// NewStatusMap builds a canonicalizer from active and left synonym lists.
// Synonyms match case-insensitively as substrings of the raw value.
func NewStatusMap(active, left []string) StatusMap {
	lower := func(in []string) []string {
		out := make([]string, len(in))
		for i, s := range in {
			out[i] = strings.ToLower(strings.TrimSpace(s))
		}
		return out
	}
	return StatusMap{active: lower(active), left: lower(left)}
}

// Empty reports whether the map carries no synonyms at all.
func (sm StatusMap) Empty() bool {
	return len(sm.active) == 0 && len(sm.left) == 0
}

// DefaultStatusMap returns the synonym sets observed in directory exports.
func DefaultStatusMap() StatusMap {
	return NewStatusMap(
		[]string{"active", "current"},
		[]string{"resigned", "terminated", "inactive", "former", "exit"},
	)
}

// Canonicalize maps a raw status value to a canonical state.
//
// Priority order: active synonyms win over left synonyms; a blank or
// unrecognized value takes the sheet default when one is set; otherwise the
// value defaults to Active. Defaulting to Active is a deliberate business
// rule (a false "left" would cut someone off payroll), so fellBack reports
// when the final default branch was taken and callers count those hits.
func (sm StatusMap) Canonicalize(raw string, sheetDefault Status) (status Status, fellBack bool) {
	key := strings.ToLower(strings.TrimSpace(raw))

	if key != "" {
		// Exact matches first: "inactive" must hit the left list before
		// any substring check could see "active" inside it.
		for _, syn := range sm.active {
			if key == syn {
				return StatusActive, false
			}
		}
		for _, syn := range sm.left {
			if key == syn {
				return StatusResigned, false
			}
		}
		for _, syn := range sm.left {
			if strings.Contains(key, syn) {
				return StatusResigned, false
			}
		}
		for _, syn := range sm.active {
			if strings.Contains(key, syn) {
				return StatusActive, false
			}
		}
	}

	if sheetDefault != "" {
		return sheetDefault, false
	}

	return StatusActive, true
}
