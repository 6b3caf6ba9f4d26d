package staffmap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rosterops/staffmap/pkg/logging"
	"github.com/rosterops/staffmap/pkg/reliability"
	"github.com/rosterops/staffmap/pkg/schema"
	"github.com/rosterops/staffmap/pkg/sources"
)

func testSources() []sources.Source {
	roster := &sources.MemorySource{
		SourceName: "Active",
		Status:     schema.StatusActive,
		Sheet: sources.FromStrings("Active", [][]string{
			{"ID", "Name", "Email Address", "Department", "Joining Date", "Status"},
			{"101", "Zara Khan", "zara@x.com", "Engineering", "2023-06-01", "Active"},
			{"102", "Ali Raza", "ali@x.com", "Support", "2021-01-15", "Active"},
		}),
	}
	old := &sources.MemorySource{
		SourceName: "Old_Export",
		Status:     schema.StatusResigned,
		Sheet: sources.FromStrings("Old_Export", [][]string{
			{"Employee ID", "Full Name", "Official Email", "Joining Date", "Status"},
			{"101", "Zara Khan", "zara@x.com", "2018-02-01", "Resigned"},
			{"205", "Sana Tariq", "sana@x.com", "2019-09-01", ""},
		}),
	}
	return []sources.Source{roster, old}
}

func TestEndToEnd(t *testing.T) {
	sm, err := New(WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	res, err := sm.Consolidate(context.Background(), testSources()...)
	require.NoError(t, err)

	require.Len(t, res.Profiles, 3)
	assert.Equal(t, 2, res.Summary.ActiveProfiles)
	assert.Equal(t, 1, res.Summary.ResignedProfiles)

	var zaraStints int
	for _, e := range res.Timeline {
		if e.EmployeeID == "101" {
			zaraStints++
		}
	}
	assert.Equal(t, 2, zaraStints)

	dir := t.TempDir()
	xlsxPath := filepath.Join(dir, "consolidated.xlsx")
	require.NoError(t, sm.SaveWorkbook(context.Background(), res, xlsxPath))

	f, err := excelize.OpenFile(xlsxPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Latest")
	require.NoError(t, err)
	assert.Len(t, rows, 4)

	require.NoError(t, sm.SaveCSV(context.Background(), res,
		filepath.Join(dir, "latest.csv"), filepath.Join(dir, "history.csv")))
	assert.FileExists(t, filepath.Join(dir, "latest.csv"))
	assert.FileExists(t, filepath.Join(dir, "history.csv"))
}

func TestNewWithOptions(t *testing.T) {
	sm, err := New(
		WithMapping(schema.DefaultMapping()),
		WithStatusMap(schema.DefaultStatusMap()),
		WithWeights(reliability.New(map[string]int{"Active": 2})),
	)
	require.NoError(t, err)
	assert.NotNil(t, sm)
}

func TestNewWithBadMappingFile(t *testing.T) {
	_, err := New(WithMappingFile(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Error(t, err)
}
