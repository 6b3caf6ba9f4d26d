package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeKnownSynonyms(t *testing.T) {
	sm := DefaultStatusMap()

	tests := []struct {
		name string
		raw  string
		want Status
	}{
		{name: "active", raw: "Active", want: StatusActive},
		{name: "current", raw: "current", want: StatusActive},
		{name: "resigned", raw: "Resigned", want: StatusResigned},
		{name: "terminated", raw: "TERMINATED", want: StatusResigned},
		{name: "inactive", raw: "Inactive", want: StatusResigned},
		{name: "former", raw: "former", want: StatusResigned},
		{name: "exit", raw: "Exit", want: StatusResigned},
		{name: "compound left", raw: "Resigned/Terminated", want: StatusResigned},
		{name: "padded", raw: "  active  ", want: StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fellBack := sm.Canonicalize(tt.raw, "")
			assert.Equal(t, tt.want, got)
			assert.False(t, fellBack)
		})
	}
}

func TestCanonicalizeSheetDefault(t *testing.T) {
	sm := DefaultStatusMap()

	// Blank or unrecognized values on a dedicated resigned sheet.
	got, fellBack := sm.Canonicalize("", StatusResigned)
	assert.Equal(t, StatusResigned, got)
	assert.False(t, fellBack)

	got, fellBack = sm.Canonicalize("???", StatusResigned)
	assert.Equal(t, StatusResigned, got)
	assert.False(t, fellBack)

	// A recognized synonym overrides the sheet default.
	got, fellBack = sm.Canonicalize("Active", StatusResigned)
	assert.Equal(t, StatusActive, got)
	assert.False(t, fellBack)
}

func TestCanonicalizeDefaultsToActive(t *testing.T) {
	sm := DefaultStatusMap()

	got, fellBack := sm.Canonicalize("", "")
	assert.Equal(t, StatusActive, got)
	assert.True(t, fellBack)

	got, fellBack = sm.Canonicalize("on sabbatical", "")
	assert.Equal(t, StatusActive, got)
	assert.True(t, fellBack)
}

// Canonicalize is total: whatever the input, the result is one of the two
// canonical states.
func TestCanonicalizeTotal(t *testing.T) {
	sm := DefaultStatusMap()

	inputs := []string{"", " ", "Active", "resigned", "garbage", "0", "🤷", "ACTIVE NOW", "left the company"}
	for _, raw := range inputs {
		got, _ := sm.Canonicalize(raw, "")
		assert.Contains(t, []Status{StatusActive, StatusResigned}, got, "input %q", raw)
	}
}
