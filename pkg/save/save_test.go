package save

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rosterops/staffmap/pkg/consolidate"
	"github.com/rosterops/staffmap/pkg/history"
	"github.com/rosterops/staffmap/pkg/merger"
	"github.com/rosterops/staffmap/pkg/schema"
	"github.com/rosterops/staffmap/pkg/tabular"
)

func sampleResult() *consolidate.Result {
	zara := schema.NewRecord("Active", 0)
	zara.Status = schema.StatusActive
	zara.Set(schema.FieldEmployeeID, tabular.String("101"))
	zara.Set(schema.FieldFullName, tabular.String("Zara Khan"))
	zara.Set(schema.FieldOfficialEmail, tabular.String("zara@x.com"))
	zara.Set(schema.FieldEmploymentStatus, tabular.String(string(schema.StatusActive)))

	pending := schema.NewRecord("Onboarding_Form", 0)
	pending.Status = schema.StatusActive
	pending.Set(schema.FieldEmployeeID, tabular.String("TEMP-0001"))
	pending.Set(schema.FieldFullName, tabular.String("New Hire"))
	pending.NeedsEmployeeID = true

	return &consolidate.Result{
		RunID: uuid.New(),
		Profiles: []*merger.Profile{
			{Record: zara, Sources: []string{"Active"}, Members: []*schema.Record{zara}},
			{Record: pending, Sources: []string{"Onboarding_Form"}, Members: []*schema.Record{pending}, NeedsEmployeeID: true},
		},
		Timeline: []history.Entry{
			{Record: zara, EmployeeID: "101", RejoinSequence: 1, IsCurrent: true, RecordUID: "101-1"},
			{Record: pending, EmployeeID: "TEMP-0001", RejoinSequence: 1, IsCurrent: true, RecordUID: "TEMP-0001-1"},
		},
		Summary:  consolidate.Summary{SourcesLoaded: 2, RecordsIn: 2, Clusters: 2, PendingID: 1},
		Warnings: []string{"source \"Broken\" skipped"},
	}
}

func TestWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "consolidated.xlsx")
	require.NoError(t, Workbook(context.Background(), sampleResult(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{SheetLatest, SheetHistory, SheetPendingID, SheetDataQuality},
		f.GetSheetList())

	latest, err := f.GetRows(SheetLatest)
	require.NoError(t, err)
	require.Len(t, latest, 3)
	assert.Equal(t, "Employee_ID", latest[0][0])
	assert.Equal(t, "101", latest[1][0])
	assert.Equal(t, "Zara Khan", latest[1][1])

	hist, err := f.GetRows(SheetHistory)
	require.NoError(t, err)
	require.Len(t, hist, 3)
	last := len(hist[0]) - 1
	assert.Equal(t, "Record_UID", hist[0][last])
	assert.Equal(t, "101-1", hist[1][last])

	pend, err := f.GetRows(SheetPendingID)
	require.NoError(t, err)
	require.Len(t, pend, 2)
	assert.Equal(t, "TEMP-0001", pend[1][0])
}

func TestWorkbookReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "consolidated.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, Workbook(context.Background(), sampleResult(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), SheetLatest)

	// No stray temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLatestCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latest.csv")
	require.NoError(t, LatestCSV(context.Background(), sampleResult(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Employee_ID", rows[0][0])
	assert.Equal(t, "zara@x.com", rows[1][2])
}

func TestHistoryCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, HistoryCSV(context.Background(), sampleResult(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	last := len(rows[0]) - 1
	assert.Equal(t, "Record_UID", rows[0][last])
	assert.Equal(t, "true", rows[1][last-1])
}

func TestWorkbookCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Workbook(ctx, sampleResult(), filepath.Join(t.TempDir(), "x.xlsx"))
	assert.Error(t, err)
}
