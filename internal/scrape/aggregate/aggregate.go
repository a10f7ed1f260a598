// Package aggregate collects records across a run and collapses duplicates.
package aggregate

import "jobscout-engine/internal/domain"

// Builder accumulates canonical records in fetch order. Append-only; the
// duplicate pass happens once, at Finalize.
type Builder struct {
	records []domain.Record
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Add(recs ...domain.Record) {
	b.records = append(b.records, recs...)
}

func (b *Builder) Len() int { return len(b.records) }

// Finalize returns the run's records with exact duplicates removed, keeping
// the first occurrence of each. Stable: surviving records stay in the order
// they were added. Finalizing twice yields the same sequence.
func (b *Builder) Finalize() []domain.Record {
	seen := make(map[string]bool, len(b.records))
	out := make([]domain.Record, 0, len(b.records))
	for _, r := range b.records {
		k := r.DedupKey()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}
