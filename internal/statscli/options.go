// internal/statscli/options.go
package statscli

import (
	"errors"
	"fmt"
	"io"

	"cobsift/internal/cliutil"
	"cobsift/internal/version"

	flag "github.com/spf13/pflag"
)

// Options holds all cobstats flags and arguments.
type Options struct {
	MatchFiles []string
	Threads    int
	Quiet      bool
	Version    bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError; help text is
// rendered by Usage.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)
	return fs
}

// Usage writes the full help text to w.
func Usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w,
		`cobstats: summarize COBS match outputs

Version: %s

Usage:
  cobstats [options] <matches.txt[.gz|.zst]>...

Options:
%s`, version.Version, fs.FlagUsages())
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.IntVarP(&opt.Threads, "threads", "j", 8, "worker count")
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log per-file failures, not progress")
	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}

	files, err := cliutil.ExpandPositionals(fs.Args())
	if err != nil {
		return opt, err
	}
	opt.MatchFiles = files

	if len(opt.MatchFiles) == 0 {
		return opt, errors.New("at least one match file is required")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be >= 0")
	}
	return opt, nil
}
