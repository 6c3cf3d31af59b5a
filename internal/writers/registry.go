// internal/writers/registry.go

// Package writers maps output format names to renderers. Presentation
// knowledge stays here and in internal/output; the store and pipeline
// know nothing about formats.
package writers

import (
	"fmt"
	"io"

	"cobsift-core/sift"
	"cobsift/internal/output"
)

// Renderer writes the final store contents in one format.
type Renderer func(w io.Writer, queries []*sift.Query) error

var renderers = map[string]Renderer{}

// Register adds or replaces a format (last registration wins).
func Register(format string, fn Renderer) { renderers[format] = fn }

// Formats lists the registered format names (unordered).
func Formats() []string {
	out := make([]string, 0, len(renderers))
	for f := range renderers {
		out = append(out, f)
	}
	return out
}

// Write renders queries in the named format.
func Write(format string, w io.Writer, queries []*sift.Query) error {
	fn, ok := renderers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, queries)
}

func init() {
	Register("fasta", output.WriteFASTA)
	Register("tsv", output.WriteTSV)
	Register("jsonl", output.WriteJSONL)
}
