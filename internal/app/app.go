// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"cobsift-core/fastx"
	"cobsift-core/sift"
	"cobsift/internal/cli"
	"cobsift/internal/logging"
	"cobsift/internal/pipeline"
	"cobsift/internal/version"
	"cobsift/internal/writers"
	"cobsift/internal/xopen"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

// RunContext is the cobsift entry point: load the query registry,
// merge every match file, render the result to stdout. Diagnostics
// only ever go to stderr.
//
// Exit codes: 0 success (including per-file parse failures, which are
// logged and skipped), 2 usage or registry load error, 3 write error.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("cobsift")
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.Usage(fs, outw)
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "cobsift: %v\n", err)
		cli.Usage(fs, stderr)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "cobsift version %s\n", version.Version)
		return 0
	}

	log := logging.New(stderr, opts.Quiet)
	defer func() { _ = log.Sync() }()

	store := sift.NewStore(opts.Keep)
	if err := loadRegistry(store, opts.QueryFile); err != nil {
		_, _ = fmt.Fprintf(stderr, "cobsift: %v\n", err)
		return 2
	}
	log.Info("query registry loaded",
		zap.String("file", opts.QueryFile), zap.Int("queries", store.Len()))

	st := pipeline.Merge(log, opts.Threads, opts.MatchFiles, store)
	log.Info("merge complete",
		zap.Int("files", st.Parsed), zap.Int("failed", st.Failed),
		zap.Int("groups", st.Groups), zap.Int("orphans", st.Orphans))

	if err := writers.Write(opts.Output, outw, store.Queries()); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "cobsift: %v\n", err)
		return 3
	}
	if err := outw.Flush(); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "cobsift: %v\n", err)
		return 3
	}
	return 0
}

// loadRegistry reads the original query set into the store, preserving
// first-seen order. Any read or format error here is fatal for the run.
func loadRegistry(store *sift.Store, path string) error {
	rc, err := xopen.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	recs, err := fastx.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, r := range recs {
		store.AddQuery(r.Name, r.Seq)
	}
	return nil
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
