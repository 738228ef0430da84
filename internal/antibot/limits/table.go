// Package limits implements the Limit Table component (spec.md §4.1): a
// pure, height-parameterised function from (action kind, actor class,
// height) to an integer quota, plus the assorted named thresholds the
// classifier and per-kind validators consult. Grounded on the teacher's
// internal/fees (a small pure height/table-indexed pricing function) and the
// tiered-settings shape of config.ArcConfig, generalised from a single
// height-gated fee rate to a height-gated table of per-kind, per-class
// quotas.
package limits

import "github.com/socialchain/antibot/internal/social"

// Entry is one height-activated row of the table, mirroring the original
// engine's height-switch behaviour (new quotas activate at a hard fork
// height and apply to every later height until superseded).
type Entry struct {
	FromHeight int32
	Values     map[social.Kind]map[Class]int
}

// Table is an ordered, height-ascending list of Entry. Limit walks it from
// the newest entry whose FromHeight <= the queried height.
type Table struct {
	entries []Entry
}

// NewTable constructs a Table from caller-supplied entries, sorted ascending
// by FromHeight. Entries need not be pre-sorted.
func NewTable(entries ...Entry) *Table {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1].FromHeight > sorted[j].FromHeight; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	return &Table{entries: sorted}
}

// Limit returns the quota for (kind, class) at height, or 0 if the table has
// no row at or before height, or no entry for that kind/class.
func (t *Table) Limit(kind social.Kind, class Class, height int32) int {
	row := t.rowAt(height)
	if row == nil {
		return 0
	}
	byClass, ok := row.Values[kind]
	if !ok {
		return 0
	}
	return byClass[class]
}

func (t *Table) rowAt(height int32) *Entry {
	var best *Entry
	for i := range t.entries {
		e := &t.entries[i]
		if e.FromHeight <= height {
			best = e
		}
	}
	return best
}

// DefaultTable is the representative current-height table from spec.md
// §4.1, active from genesis (no hard fork history modeled yet — additional
// Entry rows are appended here as future forks change the quotas).
func DefaultTable() *Table {
	return NewTable(Entry{
		FromHeight: 0,
		Values: map[social.Kind]map[Class]int{
			social.KindPost:          {Trial: 5, Full: 30},
			social.KindPostEdit:      {Trial: 1, Full: 1},
			social.KindScore:         {Trial: 45, Full: 90},
			social.KindComplaint:     {Trial: 6, Full: 12},
			social.KindComment:       {Trial: 150, Full: 300},
			social.KindCommentEdit:   {Trial: 1, Full: 1},
			social.KindCommentScore:  {Trial: 300, Full: 600},
			social.KindProfileChange: {Trial: 5, Full: 5},
		},
	})
}

// WindowSeconds returns the sliding-window width for a kind's quota
// (spec.md §3 invariant 2). All kinds currently share the one-day window;
// this is exposed per-kind so a future fork can narrow one without touching
// callers.
func WindowSeconds(kind social.Kind) int64 {
	const day = 86400
	return day
}
