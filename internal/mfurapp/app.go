// internal/mfurapp/app.go

// Package mfurapp implements mfur2cobs, the converter from mfur's
// per-line TSV into the grouped COBS match format, thresholding to
// top-N-plus-ties per query on the way through.
package mfurapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"cobsift/internal/mfurcli"
	"cobsift/internal/version"
	"cobsift/internal/writers"
	"cobsift/internal/xopen"

	flag "github.com/spf13/pflag"
)

// RunContext is the mfur2cobs entry point.
// Exit codes: 0 success, 2 usage or input error, 3 write error. The
// converter has a single input stream, so unlike cobsift a parse error
// is fatal.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := mfurcli.NewFlagSet("mfur2cobs")
	opts, err := mfurcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			mfurcli.Usage(fs, outw)
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "mfur2cobs: %v\n", err)
		mfurcli.Usage(fs, stderr)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "mfur2cobs version %s\n", version.Version)
		return 0
	}

	rc, err := xopen.Open(opts.Input)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "mfur2cobs: %v\n", err)
		return 2
	}
	defer func() { _ = rc.Close() }()

	if err := Convert(rc, outw, opts.Keep); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "mfur2cobs: %v\n", err)
		return 2
	}
	if err := outw.Flush(); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "mfur2cobs: %v\n", err)
		return 3
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
