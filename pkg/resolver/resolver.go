package resolver

import (
	"context"

	"github.com/rosterops/staffmap/pkg/errors"
	"github.com/rosterops/staffmap/pkg/logging"
	"github.com/rosterops/staffmap/pkg/schema"
)

// Cluster is one resolved person: every record the cascade attributed to
// the same individual, in input order.
type Cluster struct {
	// Key is the comparable key that closed the cluster, empty for
	// singletons that matched nothing.
	Key string

	// MatchedBy names the strategy that closed the cluster, empty for
	// singletons.
	MatchedBy string

	// Records holds the member records in input order.
	Records []*schema.Record
}

// Size returns the number of member records.
func (c *Cluster) Size() int { return len(c.Records) }

// PassStats counts one cascade pass.
type PassStats struct {
	Strategy string
	Clusters int
	Records  int
}

// Result is the outcome of running the cascade.
type Result struct {
	// Clusters holds every cluster, multi-record ones in pass order
	// followed by the leftover singletons in input order.
	Clusters []*Cluster

	// Passes reports per-strategy counts in cascade order.
	Passes []PassStats

	// NameOnly lists clusters closed by the weakest strategy, surfaced
	// for manual review.
	NameOnly []*Cluster
}

// Resolver runs a strategy cascade over normalized records.
type Resolver struct {
	cascade []Strategy
}

// New creates a resolver with the given cascade. An empty cascade is
// rejected; use DefaultCascade for the standard order.
func New(cascade []Strategy) (*Resolver, error) {
	if len(cascade) == 0 {
		return nil, errors.ErrInvalidInput
	}
	return &Resolver{cascade: cascade}, nil
}

// Resolve partitions records into per-person clusters. Each pass only sees
// records no earlier pass clustered; a key shared by a single record does
// not close a cluster and the record falls through. Records left after the
// last pass become singleton clusters.
func (r *Resolver) Resolve(ctx context.Context, records []*schema.Record) (*Result, error) {
	res := &Result{}
	remaining := records

	for _, strat := range r.cascade {
		if err := ctx.Err(); err != nil {
			return nil, errors.ErrCanceled
		}

		clusters, rest := r.pass(strat, remaining)
		res.Clusters = append(res.Clusters, clusters...)
		remaining = rest

		stats := PassStats{Strategy: strat.Name(), Clusters: len(clusters)}
		for _, c := range clusters {
			stats.Records += c.Size()
		}
		res.Passes = append(res.Passes, stats)

		logging.Ctx(ctx).Debug().
			Str("strategy", strat.Name()).
			Int("clusters", stats.Clusters).
			Int("records", stats.Records).
			Int("remaining", len(remaining)).
			Msg("resolver pass complete")
	}

	for _, rec := range remaining {
		res.Clusters = append(res.Clusters, &Cluster{Records: []*schema.Record{rec}})
	}

	last := r.cascade[len(r.cascade)-1].Name()
	for _, c := range res.Clusters {
		if c.MatchedBy == last && c.Size() > 1 {
			res.NameOnly = append(res.NameOnly, c)
		}
	}

	return res, nil
}

// pass groups the remaining records by one strategy's key. Only groups of
// two or more close as clusters; everything else is returned as leftovers
// in input order.
func (r *Resolver) pass(strat Strategy, records []*schema.Record) ([]*Cluster, []*schema.Record) {
	byKey := make(map[string][]*schema.Record)
	order := make([]string, 0, len(records))

	for _, rec := range records {
		key, ok := strat.Key(rec)
		if !ok {
			continue
		}
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], rec)
	}

	clusters := make([]*Cluster, 0)
	for _, key := range order {
		group := byKey[key]
		if len(group) < 2 {
			continue
		}
		clusters = append(clusters, &Cluster{
			Key:       key,
			MatchedBy: strat.Name(),
			Records:   group,
		})
	}

	// Leftovers keep input order: keyless records and singleton keys alike.
	rest := make([]*schema.Record, 0, len(records))
	for _, rec := range records {
		key, ok := strat.Key(rec)
		if ok && len(byKey[key]) >= 2 {
			continue
		}
		rest = append(rest, rec)
	}

	return clusters, rest
}
