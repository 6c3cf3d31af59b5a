// internal/output/jsonl.go
package output

import (
	"encoding/json"
	"io"

	"cobsift-core/sift"
	"cobsift/pkg/api"
)

// WriteJSONL emits one api.MatchV1 object per retained match.
func WriteJSONL(w io.Writer, queries []*sift.Query) error {
	enc := json.NewEncoder(w)
	for _, q := range queries {
		for _, m := range q.Acc.Matches() {
			v := api.MatchV1{Query: q.Name, Batch: m.Batch, Ref: m.Ref, Kmers: m.Kmers}
			if err := enc.Encode(&v); err != nil {
				return err
			}
		}
	}
	return nil
}
