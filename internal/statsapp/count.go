// internal/statsapp/count.go
package statsapp

import (
	"fmt"
	"io"

	"cobsift-core/cobs"
	"cobsift/internal/xopen"
)

// FileSummary is what one worker reports for one match file.
type FileSummary struct {
	Queries map[string]struct{} // every query header seen
	Matched map[string]struct{} // queries with at least one match
	Refs    map[string]struct{} // distinct references hit
	Pairs   int                 // match lines (query-reference pairs)
}

// HasHit reports whether the file contributed any match at all.
func (s *FileSummary) HasHit() bool { return s.Pairs > 0 }

// Count streams one match file through the scanner, keeping only sets
// and counters.
func Count(r io.Reader) (*FileSummary, error) {
	sum := &FileSummary{
		Queries: make(map[string]struct{}),
		Matched: make(map[string]struct{}),
		Refs:    make(map[string]struct{}),
	}
	sc := cobs.NewScanner(r, "")
	for sc.Scan() {
		g := sc.Group()
		sum.Queries[g.Query] = struct{}{}
		if len(g.Matches) == 0 {
			continue
		}
		sum.Matched[g.Query] = struct{}{}
		sum.Pairs += len(g.Matches)
		for _, m := range g.Matches {
			sum.Refs[m.Ref] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return sum, nil
}

// CountFile opens (decompressing if needed) and summarizes one file.
func CountFile(path string) (*FileSummary, error) {
	rc, err := xopen.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	sum, err := Count(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sum, nil
}

// Tally merges per-file summaries into the run-wide totals. Queries
// and matched queries de-duplicate globally; genome counts sum the
// per-file distinct counts, matching the per-batch view of the index.
type Tally struct {
	queries       map[string]struct{}
	matched       map[string]struct{}
	pairs         int
	targetGenomes int
	targetBatches int
	processed     int
}

// NewTally returns a tally over `processed` input files.
func NewTally(processed int) *Tally {
	return &Tally{
		queries:   make(map[string]struct{}),
		matched:   make(map[string]struct{}),
		processed: processed,
	}
}

// Fold adds one file's summary.
func (t *Tally) Fold(sum *FileSummary) {
	for q := range sum.Queries {
		t.queries[q] = struct{}{}
	}
	for q := range sum.Matched {
		t.matched[q] = struct{}{}
	}
	t.pairs += sum.Pairs
	t.targetGenomes += len(sum.Refs)
	if sum.HasHit() {
		t.targetBatches++
	}
}

// WriteTSV renders the totals, one "name\tvalue" line each.
func (t *Tally) WriteTSV(w io.Writer) error {
	rows := []struct {
		name  string
		value int
	}{
		{"queries", len(t.queries)},
		{"matched_queries", len(t.matched)},
		{"distinct_genome_query_pairs", t.pairs},
		{"target_genomes", t.targetGenomes},
		{"target_batches", t.targetBatches},
		{"processed_batches", t.processed},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", r.name, r.value); err != nil {
			return err
		}
	}
	return nil
}
