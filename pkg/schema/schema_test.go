package schema

import "github.com/rosterops/staffmap/pkg/tabular"

// Test helpers shared across the package tests.

func strCell(s string) tabular.Cell {
	return tabular.String(s)
}

func nullCell() tabular.Cell {
	return tabular.Null()
}
