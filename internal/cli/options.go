// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"

	"cobsift/internal/cliutil"
	"cobsift/internal/version"

	flag "github.com/spf13/pflag"
)

// Options holds all cobsift flags and arguments.
type Options struct {
	QueryFile  string
	MatchFiles []string

	Keep    int
	Threads int

	Output string
	Quiet  bool

	Version bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError. pflag's own
// error/usage printing is silenced; callers render help via Usage.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)
	return fs
}

// Usage writes the full help text to w.
func Usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w,
		`cobsift: collect and threshold COBS match outputs

Version: %s

Usage:
  cobsift [options] <matches.txt[.gz|.zst]>...

Options:
%s`, version.Version, fs.FlagUsages())
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments are the match files; globs are expanded.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.StringVarP(&opt.QueryFile, "query", "q", "", "original query file, FASTA/FASTQ (required)")
	fs.IntVarP(&opt.Keep, "keep", "n", 0, "no. of best hits to keep per query, plus ties (0 = keep all)")
	fs.IntVarP(&opt.Threads, "threads", "j", 0, "parse-stage workers (0 = all CPUs)")
	fs.StringVarP(&opt.Output, "output", "o", "fasta", "output format: fasta | tsv | jsonl")
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

	// Validation
	if opt.QueryFile == "" {
		return opt, errors.New("--query is required")
	}
	if len(opt.MatchFiles) == 0 {
		return opt, errors.New("at least one match file is required")
	}
	if opt.Keep < 0 {
		return opt, errors.New("--keep must be >= 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be >= 0")
	}
	switch opt.Output {
	case "fasta", "tsv", "jsonl":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
