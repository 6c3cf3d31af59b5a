// core/cobs/batch.go
package cobs

import (
	"path/filepath"
	"strings"
)

// BatchDelim separates the batch name from the rest of a match file name.
const BatchDelim = "____"

// BatchID derives the batch identifier from a match file path: the base
// name up to the first BatchDelim, or up to the first dot when the
// delimiter is absent.
func BatchID(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, BatchDelim); i >= 0 {
		return base[:i]
	}
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return base[:i]
	}
	return base
}
