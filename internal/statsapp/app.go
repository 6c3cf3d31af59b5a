// internal/statsapp/app.go

// Package statsapp implements cobstats, the batch-level summary
// counter over the same match-file format cobsift aggregates. It never
// materializes matches: each worker streams one file through the cobs
// scanner and keeps only distinct-name sets and counts.
package statsapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"cobsift/internal/logging"
	"cobsift/internal/statscli"
	"cobsift/internal/version"
	"cobsift/internal/writers"

	flag "github.com/spf13/pflag"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// RunContext is the cobstats entry point.
// Exit codes: 0 success, 2 usage error, 3 write error. Files that fail
// to parse are logged and excluded from every tally except
// processed_batches.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := statscli.NewFlagSet("cobstats")
	opts, err := statscli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			statscli.Usage(fs, outw)
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "cobstats: %v\n", err)
		statscli.Usage(fs, stderr)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "cobstats version %s\n", version.Version)
		return 0
	}

	log := logging.New(stderr, opts.Quiet)
	defer func() { _ = log.Sync() }()

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	type result struct {
		path string
		sum  *FileSummary
		err  error
	}
	results := make(chan result, len(opts.MatchFiles))
	p := pool.New().WithMaxGoroutines(threads)
	for _, path := range opts.MatchFiles {
		path := path
		p.Go(func() {
			log.Info("summarizing", zap.String("file", path))
			sum, err := CountFile(path)
			results <- result{path: path, sum: sum, err: err}
		})
	}
	go func() {
		p.Wait()
		close(results)
	}()

	tally := NewTally(len(opts.MatchFiles))
	for r := range results {
		if r.err != nil {
			log.Warn("skipping match file", zap.String("file", r.path), zap.Error(r.err))
			continue
		}
		tally.Fold(r.sum)
	}

	if err := tally.WriteTSV(outw); err != nil && !writers.IsBrokenPipe(err) {
		_, _ = fmt.Fprintf(stderr, "cobstats: %v\n", err)
		return 3
	}
	if err := outw.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		_, _ = fmt.Fprintf(stderr, "cobstats: %v\n", err)
		return 3
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
