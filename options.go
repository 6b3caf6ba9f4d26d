package staffmap

import (
	"github.com/rs/zerolog"

	"github.com/rosterops/staffmap/pkg/reliability"
	"github.com/rosterops/staffmap/pkg/resolver"
	"github.com/rosterops/staffmap/pkg/schema"
)

// Option is a function that configures a Staffmap instance
type Option func(*config) error

// config holds the assembled configuration of an instance.
type config struct {
	mapping  schema.Mapping
	statuses schema.StatusMap
	weights  reliability.Weights
	cascade  []resolver.Strategy
	logger   *zerolog.Logger
}

// WithMapping configures the label-to-field mapping table. Unset, the
// built-in default mapping is used.
func WithMapping(m schema.Mapping) Option {
	return func(c *config) error {
		c.mapping = m
		return nil
	}
}

// WithMappingFile loads the mapping table from a YAML file.
func WithMappingFile(path string) Option {
	return func(c *config) error {
		m, err := schema.LoadMapping(path)
		if err != nil {
			return err
		}
		c.mapping = m
		return nil
	}
}

// WithStatusMap configures the employment status canonicalizer.
func WithStatusMap(sm schema.StatusMap) Option {
	return func(c *config) error {
		c.statuses = sm
		return nil
	}
}

// WithWeights configures the source reliability table used to break merge
// conflicts.
func WithWeights(w reliability.Weights) Option {
	return func(c *config) error {
		c.weights = w
		return nil
	}
}

// WithWeightsFile loads the reliability table from a YAML file.
func WithWeightsFile(path string) Option {
	return func(c *config) error {
		w, err := reliability.Load(path)
		if err != nil {
			return err
		}
		c.weights = w
		return nil
	}
}

// WithCascade overrides the identity matching strategy order.
func WithCascade(cascade ...resolver.Strategy) Option {
	return func(c *config) error {
		c.cascade = cascade
		return nil
	}
}

// WithLogger configures the logger attached to run contexts.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
