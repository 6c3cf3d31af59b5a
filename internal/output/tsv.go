// internal/output/tsv.go
package output

import (
	"fmt"
	"io"

	"cobsift-core/sift"
)

// WriteTSV writes one line per retained match: query, batch, reference,
// kmer count. Queries without matches emit nothing.
func WriteTSV(w io.Writer, queries []*sift.Query) error {
	for _, q := range queries {
		for _, m := range q.Acc.Matches() {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", q.Name, m.Batch, m.Ref, m.Kmers); err != nil {
				return err
			}
		}
	}
	return nil
}
