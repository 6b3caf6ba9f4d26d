package sources

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rosterops/staffmap/pkg/errors"
	"github.com/rosterops/staffmap/pkg/schema"
	"github.com/rosterops/staffmap/pkg/tabular"
)

func TestCSVSourceLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "active.csv")
	content := "ID,Name,Status\n101,Zara Khan,Active\n102,Ali Raza,Resigned\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	src := &CSVSource{Path: path, Status: schema.StatusActive}
	assert.Equal(t, "active", src.Name())
	assert.Equal(t, schema.StatusActive, src.DefaultStatus())

	sheet, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "Name", sheet.Cell(0, 1).Text())
	assert.Equal(t, "Zara Khan", sheet.Cell(1, 1).Text())
}

func TestCSVSourceRaggedRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ragged.csv")
	content := "ID,Name,Status\n101,Zara Khan\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	sheet, err := (&CSVSource{Path: path}).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 2)
	assert.Len(t, sheet.Rows[1], 2)
	assert.True(t, sheet.Cell(1, 2).IsNull())
}

func TestCSVSourceMissingFile(t *testing.T) {
	src := &CSVSource{Path: filepath.Join(t.TempDir(), "absent.csv")}
	_, err := src.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsSourceUnavailable(err))
}

func TestXLSXSourceLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "directory.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Active"))
	require.NoError(t, f.SetSheetRow("Active", "A1", &[]any{"ID", "Name", "Status"}))
	require.NoError(t, f.SetSheetRow("Active", "A2", &[]any{"101", "Zara Khan", "Active"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	src := &XLSXSource{Path: path, Sheet: "Active"}
	assert.Equal(t, "Active", src.Name())

	sheet, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "Zara Khan", sheet.Cell(1, 1).Text())
}

func TestXLSXSourceMissingSheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "directory.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := (&XLSXSource{Path: path, Sheet: "Nope"}).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsSourceUnavailable(err))
}

func TestXLSXSourceMissingFile(t *testing.T) {
	_, err := (&XLSXSource{Path: filepath.Join(t.TempDir(), "absent.xlsx"), Sheet: "Active"}).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsSourceUnavailable(err))
}

func TestSheetNames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "multi.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Active"))
	_, err := f.NewSheet("Resigned")
	require.NoError(t, err)
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	names, err := SheetNames(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Active", "Resigned"}, names)
}

func TestMemorySource(t *testing.T) {
	sheet := FromStrings("mem", [][]string{
		{"ID", "Name"},
		{"101", "Zara Khan"},
	})
	src := &MemorySource{SourceName: "mem", Sheet: sheet}

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tabular.KindNumber, got.Cell(1, 0).Kind())
	assert.Equal(t, "Zara Khan", got.Cell(1, 1).Text())
}
