// Package resolver groups normalized records into per-person clusters. It
// runs a fixed cascade of matching strategies over the not-yet-clustered
// records; each strategy derives one comparable key per record, records
// sharing a key form a cluster, and a cluster closed by an earlier pass is
// never revisited by a later one.
package resolver

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/rosterops/staffmap/pkg/normalizer"
	"github.com/rosterops/staffmap/pkg/schema"
)

// Strategy derives a comparable identity key from a record. Key reports
// false when the record has no usable value for this strategy, in which
// case the record falls through to the next pass.
type Strategy interface {
	// Name identifies the strategy in cluster provenance and run summaries.
	Name() string

	// Key returns the comparable key for the record.
	Key(rec *schema.Record) (string, bool)
}

// EmailStrategy matches records on the official email address.
type EmailStrategy struct{}

func (EmailStrategy) Name() string { return "official_email" }

func (EmailStrategy) Key(rec *schema.Record) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(rec.Get(schema.FieldOfficialEmail).Text()))
	if v == "" {
		return "", false
	}
	return v, true
}

// NationalIDStrategy matches records on the national identifier, compared
// digits-only so punctuation differences between sources do not matter.
type NationalIDStrategy struct{}

func (NationalIDStrategy) Name() string { return "national_id" }

func (NationalIDStrategy) Key(rec *schema.Record) (string, bool) {
	v := normalizer.DigitsOnly(rec.Get(schema.FieldNationalID).Text())
	if v == "" {
		return "", false
	}
	return v, true
}

// NameStrategy matches records on the case-folded, whitespace-collapsed
// full name. Weakest key in the cascade; clusters it closes are reported
// separately so operators can audit them.
type NameStrategy struct{}

func (NameStrategy) Name() string { return "full_name" }

func (NameStrategy) Key(rec *schema.Record) (string, bool) {
	v := FoldName(rec.Get(schema.FieldFullName).Text())
	if v == "" {
		return "", false
	}
	return v, true
}

// FoldName normalizes a person name for comparison: Unicode NFKC, case
// folding, and interior whitespace collapsed to single spaces. A fresh
// Caser per call; they carry state and are not safe to share.
func FoldName(raw string) string {
	v := norm.NFKC.String(strings.TrimSpace(raw))
	v = cases.Fold().String(v)
	return strings.Join(strings.Fields(v), " ")
}

// DefaultCascade returns the standard strategy order: strongest key first.
func DefaultCascade() []Strategy {
	return []Strategy{EmailStrategy{}, NationalIDStrategy{}, NameStrategy{}}
}
