package writers

import (
	"bytes"
	"io"
	"testing"

	"cobsift-core/sift"

	"github.com/stretchr/testify/require"
)

func TestWriteUnknownFormat(t *testing.T) {
	err := Write("xml", io.Discard, nil)
	require.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestBuiltinFormatsRegistered(t *testing.T) {
	require.ElementsMatch(t, []string{"fasta", "tsv", "jsonl"}, Formats())
}

func TestWriteDispatches(t *testing.T) {
	s := sift.NewStore(0)
	s.AddQuery("q", "AC")
	var buf bytes.Buffer
	require.NoError(t, Write("fasta", &buf, s.Queries()))
	require.Equal(t, ">q \nAC\n", buf.String())
}

func TestRegisterOverrides(t *testing.T) {
	Register("tsv-test", func(w io.Writer, _ []*sift.Query) error {
		_, err := w.Write([]byte("ok"))
		return err
	})
	var buf bytes.Buffer
	require.NoError(t, Write("tsv-test", &buf, nil))
	require.Equal(t, "ok", buf.String())
}
