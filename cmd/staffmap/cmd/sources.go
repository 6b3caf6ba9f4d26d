package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rosterops/staffmap/pkg/schema"
	"github.com/rosterops/staffmap/pkg/sources"
)

// buildSources turns the configured source list into loaders. File type is
// chosen by extension.
func buildSources(configs []SourceConfig) ([]sources.Source, error) {
	if len(configs) == 0 {
		return nil, fmt.Errorf("no sources configured; add a sources list to the config file")
	}

	out := make([]sources.Source, 0, len(configs))
	for _, sc := range configs {
		status, err := parseStatus(sc.Status)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", sc.Name, err)
		}

		switch strings.ToLower(filepath.Ext(sc.Path)) {
		case ".xlsx", ".xlsm":
			out = append(out, &sources.XLSXSource{
				SourceName: sc.Name,
				Path:       sc.Path,
				Sheet:      sc.Sheet,
				Status:     status,
			})
		case ".csv":
			out = append(out, &sources.CSVSource{
				SourceName: sc.Name,
				Path:       sc.Path,
				Status:     status,
			})
		default:
			return nil, fmt.Errorf("source %q: unsupported file type %q", sc.Name, filepath.Ext(sc.Path))
		}
	}
	return out, nil
}

// parseStatus reads a configured default status value.
func parseStatus(raw string) (schema.Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return "", nil
	case "active":
		return schema.StatusActive, nil
	case "resigned", "terminated", "resigned/terminated", "left":
		return schema.StatusResigned, nil
	default:
		return "", fmt.Errorf("unknown default status %q", raw)
	}
}
