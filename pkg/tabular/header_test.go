package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func headerRow(labels ...string) Row {
	row := make(Row, len(labels))
	for i, l := range labels {
		row[i] = String(l)
	}
	return row
}

func TestLocateHeaderFirstRow(t *testing.T) {
	rows := []Row{
		headerRow("ID", "Name", "Email Address", "Department", "Status"),
		{String("EMP-0001"), String("Zara Khan"), String("zara@x.com"), String("Engineering"), String("Active")},
	}

	loc := LocateHeader(rows)
	assert.Equal(t, 0, loc.Index)
	assert.True(t, loc.Detected())
	assert.Equal(t, ConfidenceKeyword, loc.Confidence)
}

func TestLocateHeaderSkipsBlankPreamble(t *testing.T) {
	// Three blank rows, real header on row index 3.
	rows := []Row{
		{Null(), Null(), Null()},
		{Null(), Null(), Null()},
		{Null(), Null(), Null()},
		headerRow("ID", "Full Name", "Joining Date"),
		{Number(1), String("Ali Raza"), String("2022-01-01")},
	}

	loc := LocateHeader(rows)
	assert.Equal(t, 3, loc.Index)
	assert.True(t, loc.Detected())
}

func TestLocateHeaderTieKeepsEarliestRow(t *testing.T) {
	rows := []Row{
		headerRow("ID", "Name"),
		headerRow("ID", "Name"),
	}

	loc := LocateHeader(rows)
	assert.Equal(t, 0, loc.Index)
}

func TestLocateHeaderAllZeroScores(t *testing.T) {
	rows := []Row{
		{Number(1), Number(2)},
		{Number(3), Number(4)},
	}

	loc := LocateHeader(rows)
	assert.False(t, loc.Detected())
	assert.Equal(t, ConfidenceNone, loc.Confidence)
	assert.Equal(t, 0, loc.Score)
}

func TestLocateHeaderGuessedWithoutKeywords(t *testing.T) {
	rows := []Row{
		headerRow("Foo", "Bar", "Baz"),
		{Number(1), Number(2), Number(3)},
	}

	loc := LocateHeader(rows)
	assert.True(t, loc.Detected())
	assert.Equal(t, ConfidenceGuessed, loc.Confidence)
}

func TestLocateHeaderIdempotent(t *testing.T) {
	rows := []Row{
		{Null(), String("roster export")},
		headerRow("Employee ID", "Official Email", "Joining Date", "Status"),
		{String("EMP-0007"), String("omar@x.com"), String("2021-05-10"), String("Active")},
	}

	first := LocateHeader(rows)
	second := LocateHeader(rows)
	assert.Equal(t, first, second)
}

func TestLocateHeaderIgnoresRowsBeyondWindow(t *testing.T) {
	// A header past the candidate window is never selected.
	rows := []Row{
		{Number(1)}, {Number(2)}, {Number(3)}, {Number(4)}, {Number(5)},
		headerRow("ID", "Name", "Email"),
	}

	loc := LocateHeader(rows)
	assert.False(t, loc.Detected())
}
