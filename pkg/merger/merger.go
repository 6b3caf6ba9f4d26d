// Package merger collapses a resolved cluster into a single canonical
// profile. Field values are chosen deterministically: every member record
// gets a priority score, and for each field the highest-scoring record
// holding a non-null value wins. Ties break toward the earlier record in
// input order, so reruns over the same inputs produce identical output.
package merger

import (
	"github.com/rosterops/staffmap/pkg/reliability"
	"github.com/rosterops/staffmap/pkg/resolver"
	"github.com/rosterops/staffmap/pkg/schema"
	"github.com/rosterops/staffmap/pkg/tabular"
)

// Score components. An active record outranks any resigned one, source
// reliability outranks completeness, completeness breaks the rest.
const (
	activeBonus = 1000
	weightScale = 500
)

// Conflict records one field where cluster members disagreed.
type Conflict struct {
	Field        schema.Field
	Chosen       tabular.Cell
	ChosenSource string
	Discarded    []ConflictValue
}

// ConflictValue is one losing value and where it came from.
type ConflictValue struct {
	Value  tabular.Cell
	Source string
}

// Profile is the merged canonical view of one person.
type Profile struct {
	// Record holds the merged field values.
	Record *schema.Record

	// Sources lists the distinct contributing sources in input order.
	Sources []string

	// MatchedBy names the strategy that formed the cluster, empty for
	// singletons.
	MatchedBy string

	// Conflicts lists fields where members disagreed.
	Conflicts []Conflict

	// NeedsEmployeeID marks a profile whose identifier is still a
	// synthesized placeholder.
	NeedsEmployeeID bool

	// Members holds the original cluster records, untouched.
	Members []*schema.Record
}

// Engine merges clusters under a fixed reliability configuration.
type Engine struct {
	weights reliability.Weights
}

// New creates a merge engine.
func New(weights reliability.Weights) *Engine {
	return &Engine{weights: weights}
}

// Score returns the merge priority of a record: active status dominates,
// then source reliability, then field completeness.
func (e *Engine) Score(rec *schema.Record) int {
	score := e.weights.Weight(rec.Source)*weightScale + rec.NonNullCount()
	if rec.Status == schema.StatusActive {
		score += activeBonus
	}
	return score
}

// Merge collapses one cluster into a profile. The input records are never
// modified.
func (e *Engine) Merge(cluster *resolver.Cluster) *Profile {
	members := cluster.Records
	primary := e.primary(members)

	merged := schema.NewRecord(primary.Source, primary.RowIndex)
	merged.Status = primary.Status
	merged.StatusFellBack = primary.StatusFellBack
	merged.HeaderGuessed = anyHeaderGuessed(members)

	ranked := e.rank(members)

	var conflicts []Conflict
	for _, field := range schema.DefaultFields() {
		if field == schema.FieldEmploymentStatus {
			// Already taken from the primary record above.
			continue
		}
		cell, source, losers := pickField(ranked, field)
		if cell.IsNull() {
			continue
		}
		merged.Set(field, cell)
		if len(losers) > 0 {
			conflicts = append(conflicts, Conflict{
				Field:        field,
				Chosen:       cell,
				ChosenSource: source,
				Discarded:    losers,
			})
		}
	}

	// Extras merge additively; on key collisions the higher-ranked
	// record's value stands.
	for i := len(ranked) - 1; i >= 0; i-- {
		for k, v := range ranked[i].Extras {
			merged.Extras[k] = v
		}
	}

	e.settleEmployeeID(merged, ranked)
	merged.Set(schema.FieldEmploymentStatus, tabular.String(string(merged.Status)))

	return &Profile{
		Record:          merged,
		Sources:         distinctSources(members),
		MatchedBy:       cluster.MatchedBy,
		Conflicts:       conflicts,
		NeedsEmployeeID: merged.HasTempID(),
		Members:         members,
	}
}

// primary returns the highest-scoring member, earliest on ties.
func (e *Engine) primary(members []*schema.Record) *schema.Record {
	best := members[0]
	bestScore := e.Score(best)
	for _, rec := range members[1:] {
		if s := e.Score(rec); s > bestScore {
			best, bestScore = rec, s
		}
	}
	return best
}

// rank returns the members ordered best-first, stable on ties.
func (e *Engine) rank(members []*schema.Record) []*schema.Record {
	out := make([]*schema.Record, len(members))
	copy(out, members)
	// Insertion sort keeps input order for equal scores.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && e.Score(out[j]) > e.Score(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// pickField chooses a field value across ranked members and collects the
// distinct losing values.
func pickField(ranked []*schema.Record, field schema.Field) (tabular.Cell, string, []ConflictValue) {
	var chosen tabular.Cell
	var source string
	var losers []ConflictValue

	for _, rec := range ranked {
		if !rec.Has(field) {
			continue
		}
		cell := rec.Get(field)
		if chosen.IsNull() {
			chosen, source = cell, rec.Source
			continue
		}
		if !cell.Equal(chosen) && !containsValue(losers, cell) {
			losers = append(losers, ConflictValue{Value: cell, Source: rec.Source})
		}
	}
	return chosen, source, losers
}

func containsValue(values []ConflictValue, c tabular.Cell) bool {
	for _, v := range values {
		if v.Value.Equal(c) {
			return true
		}
	}
	return false
}

// settleEmployeeID prefers any real identifier over a synthesized one. A
// placeholder survives only when no member carries a real ID.
func (e *Engine) settleEmployeeID(merged *schema.Record, ranked []*schema.Record) {
	if !merged.HasTempID() {
		return
	}
	for _, rec := range ranked {
		if id := rec.EmployeeID(); id != "" && !rec.HasTempID() {
			merged.Set(schema.FieldEmployeeID, tabular.String(id))
			return
		}
	}
}

func distinctSources(members []*schema.Record) []string {
	seen := make(map[string]bool, len(members))
	out := make([]string, 0, len(members))
	for _, rec := range members {
		if !seen[rec.Source] {
			seen[rec.Source] = true
			out = append(out, rec.Source)
		}
	}
	return out
}

func anyHeaderGuessed(members []*schema.Record) bool {
	for _, rec := range members {
		if rec.HeaderGuessed {
			return true
		}
	}
	return false
}
