// internal/mfurcli/options.go
package mfurcli

import (
	"errors"
	"fmt"
	"io"

	"cobsift/internal/version"

	flag "github.com/spf13/pflag"
)

// Options holds all mfur2cobs flags and arguments.
type Options struct {
	Input   string // "-" = stdin
	Keep    int
	Version bool
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
		`mfur2cobs: convert mfur output into COBS match format, keeping top hits (+ties)

Version: %s

Usage:
  mfur2cobs -n <keep> [mfur.tsv]

Options:
%s`, version.Version, fs.FlagUsages())
}

// ParseArgs registers and parses all flags, returns an Options struct.
// The single optional positional is the input file (default stdin).
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	opt := Options{Input: "-"}

	fs.IntVarP(&opt.Keep, "keep", "n", 0, "no. of best hits to keep per query, plus ties (required)")
	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}

	switch args := fs.Args(); len(args) {
	case 0:
	case 1:
		opt.Input = args[0]
	default:
		return opt, errors.New("at most one input file")
	}
	if opt.Keep < 1 {
		return opt, errors.New("--keep must be >= 1")
	}
	return opt, nil
}
