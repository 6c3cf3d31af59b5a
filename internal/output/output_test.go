package output

import (
	"bytes"
	"testing"

	"cobsift-core/cobs"
	"cobsift-core/sift"

	"github.com/stretchr/testify/require"
)

func demoStore(t *testing.T) []*sift.Query {
	t.Helper()
	s := sift.NewStore(0)
	s.AddQuery("q1", "ACGT")
	s.AddQuery("q2", "TT")
	s.Fold("q1", "b1", []cobs.Match{{Ref: "x", Kmers: 5}, {Ref: "y", Kmers: 3}})
	s.Fold("q3", "b2", []cobs.Match{{Ref: "w", Kmers: 9}})
	return s.Queries()
}

func TestWriteFASTA(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFASTA(&buf, demoStore(t)))
	want := ">q1 x,y\nACGT\n" +
		">q2 \nTT\n" +
		">q3 w\n\n"
	require.Equal(t, want, buf.String())
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, demoStore(t)))
	want := "q1\tb1\tx\t5\n" +
		"q1\tb1\ty\t3\n" +
		"q3\tb2\tw\t9\n"
	require.Equal(t, want, buf.String())
}

func TestWriteJSONL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONL(&buf, demoStore(t)))
	want := `{"query":"q1","batch":"b1","ref":"x","kmers":5}` + "\n" +
		`{"query":"q1","batch":"b1","ref":"y","kmers":3}` + "\n" +
		`{"query":"q3","batch":"b2","ref":"w","kmers":9}` + "\n"
	require.Equal(t, want, buf.String())
}
