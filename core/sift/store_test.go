package sift

import (
	"testing"

	"cobsift-core/cobs"
)

func names(s *Store) []string {
	var out []string
	for _, q := range s.Queries() {
		out = append(out, q.Name)
	}
	return out
}

func TestRegistryOrderPreserved(t *testing.T) {
	s := NewStore(0)
	s.AddQuery("q1", "ACGT")
	s.AddQuery("q2", "TTTT")
	s.AddQuery("q1", "ACGA") // re-register updates, no duplicate

	got := names(s)
	if len(got) != 2 || got[0] != "q1" || got[1] != "q2" {
		t.Fatalf("order = %v", got)
	}
	if s.Queries()[0].Seq != "ACGA" {
		t.Fatalf("re-register did not update sequence")
	}
}

func TestOrphansAppendAfterRegistry(t *testing.T) {
	s := NewStore(0)
	s.AddQuery("q1", "A")
	s.AddQuery("q2", "C")

	if orphan := s.Fold("q3", "b1", []cobs.Match{{Ref: "r", Kmers: 2}}); !orphan {
		t.Fatal("folding an unknown name must report an orphan")
	}
	if orphan := s.Fold("q1", "b1", []cobs.Match{{Ref: "r", Kmers: 2}}); orphan {
		t.Fatal("folding a registered name must not report an orphan")
	}
	if orphan := s.Fold("q3", "b2", nil); orphan {
		t.Fatal("second fold into an orphan must not re-create it")
	}

	got := names(s)
	if len(got) != 3 || got[2] != "q3" {
		t.Fatalf("orphan not appended last: %v", got)
	}
	if s.Queries()[2].Seq != "" {
		t.Fatal("orphan must carry an empty sequence")
	}
}

func TestFoldDelegatesToAccumulator(t *testing.T) {
	s := NewStore(1)
	s.AddQuery("q1", "A")
	s.Fold("q1", "b1", []cobs.Match{{Ref: "x", Kmers: 5}, {Ref: "y", Kmers: 2}})
	acc := s.Queries()[0].Acc
	if acc.Len() != 1 || acc.Matches()[0].Ref != "x" {
		t.Fatalf("accumulator state: %+v", acc.Matches())
	}
}
