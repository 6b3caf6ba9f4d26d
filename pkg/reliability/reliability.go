// Package reliability holds the configured trust weights for sources.
// A weight expresses how authoritative a source is when the merge engine
// must break a conflict between two non-null values: a dedicated live
// roster outranks a historical export. Weights are configuration, supplied
// up front, never discovered at runtime.
package reliability

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/rosterops/staffmap/pkg/errors"
)

// DefaultWeight is used for sources with no configured weight.
const DefaultWeight = 1

// Weights maps source names to integer trust weights. Higher is more
// authoritative. Immutable once built.
type Weights struct {
	weights map[string]int
}

// New builds a weight table from source name to weight.
func New(weights map[string]int) Weights {
	m := make(map[string]int, len(weights))
	for source, w := range weights {
		m[source] = w
	}
	return Weights{weights: m}
}

// Weight returns the configured weight for a source, or DefaultWeight.
func (w Weights) Weight(source string) int {
	if v, ok := w.weights[source]; ok {
		return v
	}
	return DefaultWeight
}

// Load reads a weight table from a YAML file of the form
// "source name": weight.
func Load(path string) (Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Weights{}, errors.NewIOError("read", path, err)
	}

	raw := map[string]int{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Weights{}, errors.NewParseError("yaml", path, "invalid weights file", err)
	}
	return New(raw), nil
}
