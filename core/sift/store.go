// core/sift/store.go

// Package sift owns the query → accumulator mapping that all parsed
// match groups are folded into. The store is deliberately not
// goroutine-safe: folding is a single-writer stage, parsing happens
// elsewhere.
package sift

import (
	"cobsift-core/cobs"
	"cobsift-core/topk"
)

// Query is one entry of the result set: the original name and sequence
// plus its match accumulator. Orphans (names only seen in match files)
// carry an empty sequence.
type Query struct {
	Name string
	Seq  string
	Acc  *topk.Acc
}

// Store maps query names to accumulators, preserving registry order.
// Orphans append after every registered name, in first-encountered
// order.
type Store struct {
	keep   int
	byName map[string]*Query
	order  []*Query
}

// NewStore returns an empty store whose accumulators keep the top
// `keep` matches plus ties (keep <= 0 = keep everything).
func NewStore(keep int) *Store {
	return &Store{keep: keep, byName: make(map[string]*Query)}
}

// AddQuery registers a name and sequence from the original query set.
// Re-registering a name updates the sequence but keeps its accumulator
// and position.
func (s *Store) AddQuery(name, seq string) {
	if q, ok := s.byName[name]; ok {
		q.Seq = seq
		return
	}
	q := &Query{Name: name, Seq: seq, Acc: topk.New(s.keep)}
	s.byName[name] = q
	s.order = append(s.order, q)
}

// GetOrCreate returns the query for name, creating an orphan entry
// (empty sequence, appended at the end) when the name is unknown.
// The second result reports whether an orphan was created.
func (s *Store) GetOrCreate(name string) (*Query, bool) {
	if q, ok := s.byName[name]; ok {
		return q, false
	}
	q := &Query{Name: name, Acc: topk.New(s.keep)}
	s.byName[name] = q
	s.order = append(s.order, q)
	return q, true
}

// Fold adds one parsed group to the query's accumulator, creating an
// orphan entry if needed. Single-writer: callers must not fold from
// more than one goroutine.
func (s *Store) Fold(name, batch string, ms []cobs.Match) (orphan bool) {
	q, orphan := s.GetOrCreate(name)
	q.Acc.Add(batch, ms)
	return orphan
}

// Queries returns every entry in output order: registry order first,
// then orphans as encountered.
func (s *Store) Queries() []*Query { return s.order }

// Len reports the number of entries, orphans included.
func (s *Store) Len() int { return len(s.order) }
