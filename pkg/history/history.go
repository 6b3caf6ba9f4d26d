// Package history derives per-person employment timelines from merged
// clusters. Each member record becomes one stint, ordered by joining date;
// stints get a rejoin sequence number, a stable record identifier, and
// exactly one stint per person is marked current.
package history

import (
	"fmt"
	"sort"
	"time"

	"github.com/rosterops/staffmap/pkg/merger"
	"github.com/rosterops/staffmap/pkg/schema"
)

// sentinelDate orders records with no joining date before any dated one.
var sentinelDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Entry is one employment stint in a person's timeline.
type Entry struct {
	// Record is the stint's underlying member record.
	Record *schema.Record

	// EmployeeID is the resolved identifier shared by the whole timeline.
	EmployeeID string

	// RejoinSequence numbers the stint within the person's timeline,
	// starting at 1 in joining-date order.
	RejoinSequence int

	// IsCurrent marks the single most recent stint.
	IsCurrent bool

	// RecordUID uniquely identifies the stint across runs, derived from
	// the employee identifier and the rejoin sequence.
	RecordUID string

	// JoiningDate is the stint's joining date, or the ordering sentinel
	// when the source never recorded one.
	JoiningDate time.Time

	// DateMissing reports that JoiningDate is the sentinel.
	DateMissing bool
}

// Build derives the timeline for one merged profile. Entries come back in
// rejoin-sequence order and exactly one carries IsCurrent.
func Build(p *merger.Profile) []Entry {
	employeeID := p.Record.EmployeeID()

	entries := make([]Entry, 0, len(p.Members))
	for _, rec := range p.Members {
		e := Entry{Record: rec, EmployeeID: employeeID}
		if c := rec.Get(schema.FieldJoiningDate); !c.IsNull() {
			if t, ok := c.Date(); ok {
				e.JoiningDate = t
			}
		}
		if e.JoiningDate.IsZero() {
			e.JoiningDate = sentinelDate
			e.DateMissing = true
		}
		entries = append(entries, e)
	}

	// Undated stints sort first; on equal dates a resigned stint comes
	// before an active one so the active stint ends up current. Stable
	// keeps input order beyond that.
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].JoiningDate.Equal(entries[j].JoiningDate) {
			return entries[i].JoiningDate.Before(entries[j].JoiningDate)
		}
		return entries[i].Record.Status == schema.StatusResigned &&
			entries[j].Record.Status == schema.StatusActive
	})

	for i := range entries {
		entries[i].RejoinSequence = i + 1
		entries[i].RecordUID = fmt.Sprintf("%s-%d", employeeID, i+1)
	}
	if len(entries) > 0 {
		entries[len(entries)-1].IsCurrent = true
	}

	return entries
}

// Rejoined reports whether the timeline shows more than one distinct
// dated stint, the signal used to fill the Rejoined flag on output.
func Rejoined(entries []Entry) bool {
	dated := 0
	seen := map[time.Time]bool{}
	for _, e := range entries {
		if e.DateMissing || seen[e.JoiningDate] {
			continue
		}
		seen[e.JoiningDate] = true
		dated++
	}
	return dated > 1
}
