// internal/pipeline/pipeline.go
package pipeline

import (
	"fmt"
	"runtime"

	"cobsift-core/cobs"
	"cobsift-core/sift"
	"cobsift/internal/xopen"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Stats summarizes one merge run.
type Stats struct {
	Parsed  int // files parsed and folded
	Failed  int // files skipped after a parse/IO error
	Groups  int // query groups folded
	Orphans int // entries created for names missing from the registry
}

type fileResult struct {
	path   string
	groups []cobs.Group
	err    error
}

// ParseFile materializes every group of one match file. The batch id is
// derived from the file name.
func ParseFile(path string) ([]cobs.Group, error) {
	rc, err := xopen.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	groups, err := cobs.ReadAll(rc, cobs.BatchID(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return groups, nil
}

// Merge is the scatter/gather run: files are parsed by a bounded worker
// pool with no access to the store, then each file's groups are folded
// into the store here, on the calling goroutine, as results arrive.
// A file that fails to parse is logged and contributes nothing; the run
// carries on. Completion order across files is unspecified; the folded
// result does not depend on it.
func Merge(log *zap.Logger, threads int, files []string, store *sift.Store) Stats {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	results := make(chan fileResult, len(files))
	p := pool.New().WithMaxGoroutines(threads)
	for _, path := range files {
		path := path
		p.Go(func() {
			log.Info("translating matches", zap.String("file", path))
			groups, err := ParseFile(path)
			results <- fileResult{path: path, groups: groups, err: err}
		})
	}
	go func() {
		p.Wait()
		close(results)
	}()

	var st Stats
	for r := range results {
		if r.err != nil {
			log.Warn("skipping match file", zap.String("file", r.path), zap.Error(r.err))
			st.Failed++
			continue
		}
		log.Info("finished parsing", zap.String("file", r.path), zap.Int("groups", len(r.groups)))
		for _, g := range r.groups {
			if store.Fold(g.Query, g.Batch, g.Matches) {
				log.Warn("query not in registry", zap.String("query", g.Query), zap.String("batch", g.Batch))
				st.Orphans++
			}
			st.Groups++
		}
		st.Parsed++
	}
	return st
}
