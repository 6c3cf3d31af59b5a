// pkg/api/matches_v1.go
package api

// MatchV1 is the stable JSONL schema for retained matches.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MatchV1 struct {
	Query string `json:"query"`
	Batch string `json:"batch"`
	Ref   string `json:"ref"`
	Kmers int    `json:"kmers"`
}
