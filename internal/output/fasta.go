// internal/output/fasta.go
package output

import (
	"fmt"
	"io"
	"strings"

	"cobsift-core/sift"
)

// WriteFASTA writes one annotated record per query, in store order:
// the header carries the comma-joined retained reference ids, the body
// the original sequence. Queries without matches still get a header
// with an empty reference list; orphans get an empty body line.
func WriteFASTA(w io.Writer, queries []*sift.Query) error {
	for _, q := range queries {
		refs := strings.Join(q.Acc.Refs(), ",")
		if _, err := fmt.Fprintf(w, ">%s %s\n%s\n", q.Name, refs, q.Seq); err != nil {
			return err
		}
	}
	return nil
}
