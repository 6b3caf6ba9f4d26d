// Package consolidate wires the full pipeline: load every source, locate
// headers, normalize, collapse exact duplicates, resolve identities, merge
// clusters, and derive timelines. A run tolerates unreadable sources and
// aborts only when not a single one loads.
package consolidate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rosterops/staffmap/pkg/errors"
	"github.com/rosterops/staffmap/pkg/history"
	"github.com/rosterops/staffmap/pkg/logging"
	"github.com/rosterops/staffmap/pkg/merger"
	"github.com/rosterops/staffmap/pkg/normalizer"
	"github.com/rosterops/staffmap/pkg/reliability"
	"github.com/rosterops/staffmap/pkg/resolver"
	"github.com/rosterops/staffmap/pkg/schema"
	"github.com/rosterops/staffmap/pkg/sources"
	"github.com/rosterops/staffmap/pkg/tabular"
)

// Config carries the immutable configuration of a pipeline.
type Config struct {
	// Mapping is the label-to-field table; nil Len means DefaultMapping.
	Mapping schema.Mapping

	// Statuses is the status synonym table.
	Statuses schema.StatusMap

	// Weights is the source reliability table.
	Weights reliability.Weights

	// Cascade overrides the matching strategy order; empty means
	// resolver.DefaultCascade.
	Cascade []resolver.Strategy
}

// Summary aggregates the counters of one run.
type Summary struct {
	SourcesLoaded       int
	SourcesFailed       int
	RecordsIn           int
	RecordsPerSource    map[string]int
	DroppedEmptyRows    int
	DroppedEmptyColumns int
	ExactDuplicates     int
	StatusFallbacks     int
	TempIDsIssued       int
	HeadersGuessed      int
	Clusters            int
	DuplicateIDs        int
	MergedByNameOnly    int
	Conflicts           int
	ActiveProfiles      int
	ResignedProfiles    int
	PendingID           int
	Passes              []resolver.PassStats
	Elapsed             time.Duration
}

// Result is the complete outcome of one consolidation run.
type Result struct {
	// RunID uniquely identifies the run.
	RunID uuid.UUID

	// Profiles holds one merged profile per resolved person.
	Profiles []*merger.Profile

	// Timeline holds every employment stint across all profiles, in
	// profile order then rejoin-sequence order.
	Timeline []history.Entry

	// Summary aggregates the run counters.
	Summary Summary

	// Warnings lists recoverable problems in occurrence order.
	Warnings []string
}

// Pipeline is a configured consolidation pipeline, safe for repeated runs.
type Pipeline struct {
	norm    *normalizer.Normalizer
	res     *resolver.Resolver
	eng     *merger.Engine
	cascade []resolver.Strategy
}

// New builds a pipeline from the given configuration, filling defaults for
// anything unset.
func New(cfg Config) (*Pipeline, error) {
	mapping := cfg.Mapping
	if mapping.Len() == 0 {
		mapping = schema.DefaultMapping()
	}
	statuses := cfg.Statuses
	if statuses.Empty() {
		statuses = schema.DefaultStatusMap()
	}
	cascade := cfg.Cascade
	if len(cascade) == 0 {
		cascade = resolver.DefaultCascade()
	}

	res, err := resolver.New(cascade)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		norm:    normalizer.New(mapping, statuses),
		res:     res,
		eng:     merger.New(cfg.Weights),
		cascade: cascade,
	}, nil
}

// Run executes one consolidation over the given sources. It returns
// ErrNoSources when nothing at all could be read; every other failure is
// recorded as a warning and the run proceeds.
func (p *Pipeline) Run(ctx context.Context, srcs []sources.Source) (*Result, error) {
	start := time.Now()
	result := &Result{RunID: uuid.New()}
	ctx = logging.WithRunID(ctx, result.RunID.String())
	log := logging.Ctx(ctx)

	if len(srcs) == 0 {
		return nil, errors.ErrNoSources
	}

	records, err := p.ingest(ctx, srcs, result)
	if err != nil {
		return nil, err
	}

	records = p.collapseExactDuplicates(records, result)
	result.Summary.RecordsIn = len(records)

	resolved, err := p.res.Resolve(ctx, records)
	if err != nil {
		return nil, err
	}
	result.Summary.Clusters = len(resolved.Clusters)
	result.Summary.MergedByNameOnly = len(resolved.NameOnly)
	result.Summary.Passes = resolved.Passes
	for _, c := range resolved.NameOnly {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("cluster %q merged on name only; review recommended", c.Key))
	}

	p.mergeAll(resolved, result)
	p.auditIdentityKeys(result)

	result.Summary.Elapsed = time.Since(start)
	log.Info().
		Int("sources", result.Summary.SourcesLoaded).
		Int("records", result.Summary.RecordsIn).
		Int("profiles", len(result.Profiles)).
		Int("warnings", len(result.Warnings)).
		Dur("elapsed", result.Summary.Elapsed).
		Msg("consolidation complete")

	return result, nil
}

// ingest loads and normalizes every source. Unreadable sources become
// warnings; only a run with zero readable sources fails.
func (p *Pipeline) ingest(ctx context.Context, srcs []sources.Source, result *Result) ([]*schema.Record, error) {
	log := logging.Ctx(ctx)
	temp := normalizer.NewTempIDAllocator()
	result.Summary.RecordsPerSource = make(map[string]int, len(srcs))

	var records []*schema.Record
	for _, src := range srcs {
		sheet, err := src.Load(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, errors.ErrCanceled
			}
			result.Summary.SourcesFailed++
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("source %q skipped: %v", src.Name(), err))
			log.Warn().Str("source", src.Name()).Err(err).Msg("source skipped")
			continue
		}
		result.Summary.SourcesLoaded++

		header := tabular.LocateHeader(sheet.Rows)
		guessed := !header.Detected()
		if guessed {
			result.Summary.HeadersGuessed++
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("source %q: no credible header row, using row %d", src.Name(), header.Index))
		}

		info := normalizer.SheetInfo{
			Source:        src.Name(),
			DefaultStatus: src.DefaultStatus(),
			HeaderGuessed: guessed,
		}
		nr := p.norm.Normalize(sheet, header, info, temp)

		result.Summary.DroppedEmptyRows += nr.DroppedEmptyRows
		result.Summary.DroppedEmptyColumns += nr.DroppedEmptyColumns
		result.Summary.StatusFallbacks += nr.StatusFallbacks
		result.Summary.RecordsPerSource[src.Name()] += len(nr.Records)

		log.Debug().
			Str("source", src.Name()).
			Int("records", len(nr.Records)).
			Int("dropped_rows", nr.DroppedEmptyRows).
			Msg("source normalized")

		records = append(records, nr.Records...)
	}

	if result.Summary.SourcesLoaded == 0 {
		return nil, errors.ErrNoSources
	}

	result.Summary.TempIDsIssued = temp.Issued()
	return records, nil
}

// collapseExactDuplicates drops repeated rows for the same employee
// identifier within one source, keeping the most complete row. Synthesized
// identifiers are unique per row, so they never collapse.
func (p *Pipeline) collapseExactDuplicates(records []*schema.Record, result *Result) []*schema.Record {
	type key struct {
		source string
		id     string
	}

	best := make(map[key]*schema.Record, len(records))
	order := make([]key, 0, len(records))

	for _, rec := range records {
		k := key{source: rec.Source, id: rec.EmployeeID()}
		prev, seen := best[k]
		if !seen {
			best[k] = rec
			order = append(order, k)
			continue
		}
		result.Summary.ExactDuplicates++
		if rec.NonNullCount() > prev.NonNullCount() {
			best[k] = rec
		}
	}

	out := make([]*schema.Record, 0, len(order))
	for _, k := range order {
		out = append(out, best[k])
	}
	return out
}

// mergeAll merges every cluster and derives its timeline.
func (p *Pipeline) mergeAll(resolved *resolver.Result, result *Result) {
	for _, cluster := range resolved.Clusters {
		profile := p.eng.Merge(cluster)
		entries := history.Build(profile)

		if history.Rejoined(entries) {
			profile.Record.Set(schema.FieldRejoined, tabular.String("Yes"))
		}

		result.Profiles = append(result.Profiles, profile)
		result.Timeline = append(result.Timeline, entries...)
		result.Summary.Conflicts += len(profile.Conflicts)

		if profile.NeedsEmployeeID {
			result.Summary.PendingID++
		}
		if profile.Record.Status == schema.StatusActive {
			result.Summary.ActiveProfiles++
		} else {
			result.Summary.ResignedProfiles++
		}
	}
}

// auditIdentityKeys surfaces employee identifiers shared by more than one
// profile. The cascade never keys on the identifier, so two rows with the
// same ID but no common email, national ID, or name stay separate people;
// that may be correct (reused IDs) or a linking failure, so it is reported
// for review rather than force-merged.
func (p *Pipeline) auditIdentityKeys(result *Result) {
	byID := make(map[string]int, len(result.Profiles))
	order := make([]string, 0, len(result.Profiles))
	for _, profile := range result.Profiles {
		id := profile.Record.EmployeeID()
		if byID[id] == 0 {
			order = append(order, id)
		}
		byID[id]++
	}

	for _, id := range order {
		if byID[id] < 2 {
			continue
		}
		result.Summary.DuplicateIDs++
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("employee ID %q resolved to %d separate profiles; review recommended", id, byID[id]))
	}
}
