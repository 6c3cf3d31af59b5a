// core/topk/topk.go

// Package topk keeps the strongest matches for a single query across
// any number of batches. The keep limit bounds memory: once more than
// keep matches are held, everything below the keep-th best kmer count
// is dropped, except exact ties with that count, which are always
// retained. The resulting set is a pure function of the full match
// multiset, so batches may be folded in any order.
package topk

import (
	"sort"

	"cobsift-core/cobs"
)

// Match is one retained hit: where it came from, what it hit, how many
// k-mers it shared.
type Match struct {
	Batch string
	Ref   string
	Kmers int
}

// Acc accumulates top-K-with-ties matches for one query.
// Keep <= 0 disables filtering entirely: every match is retained in
// arrival order and never sorted.
type Acc struct {
	keep    int
	min     int
	matches []Match
}

// New returns an accumulator keeping the top `keep` matches plus ties
// (keep <= 0 = keep everything).
func New(keep int) *Acc {
	return &Acc{keep: keep}
}

// Add folds one batch's matches in. Matches already known to be below
// the current threshold are skipped up front; the threshold only ever
// rises, so a skipped match could never have re-entered the final set.
func (a *Acc) Add(batch string, ms []cobs.Match) {
	for _, m := range ms {
		if m.Kmers >= a.min {
			a.matches = append(a.matches, Match{Batch: batch, Ref: m.Ref, Kmers: m.Kmers})
		}
	}
	a.housekeeping()
}

// housekeeping sorts, cuts at the keep limit, and re-admits exact ties
// from the losers. Losers are sorted too, so ties sit contiguously at
// their front.
func (a *Acc) housekeeping() {
	if a.keep <= 0 {
		return
	}
	sort.Slice(a.matches, func(i, j int) bool {
		x, y := a.matches[i], a.matches[j]
		if x.Kmers != y.Kmers {
			return x.Kmers > y.Kmers
		}
		if x.Batch != y.Batch {
			return x.Batch < y.Batch
		}
		return x.Ref < y.Ref
	})
	if len(a.matches) <= a.keep {
		return
	}
	losers := a.matches[a.keep:]
	a.matches = a.matches[:a.keep:a.keep]
	a.min = a.matches[len(a.matches)-1].Kmers
	for _, m := range losers {
		if m.Kmers != a.min {
			break
		}
		a.matches = append(a.matches, m)
	}
}

// Matches returns the retained matches in container order: sorted by
// (kmers desc, batch, ref) once pruning has run, arrival order before
// that or in unlimited mode. The slice is owned by the accumulator.
func (a *Acc) Matches() []Match { return a.matches }

// Refs returns just the reference ids of the retained matches, in
// container order.
func (a *Acc) Refs() []string {
	refs := make([]string, len(a.matches))
	for i, m := range a.matches {
		refs[i] = m.Ref
	}
	return refs
}

// Len reports how many matches are currently retained.
func (a *Acc) Len() int { return len(a.matches) }

// Threshold reports the current minimum kmer count for admission.
func (a *Acc) Threshold() int { return a.min }
