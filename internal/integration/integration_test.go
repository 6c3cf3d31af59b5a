// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"cobsift/internal/app"

	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

// The canonical scenario: two registry queries, a tie kept past the
// limit, a dropped non-tie loser, and an orphan appended last.
func scenario(t *testing.T) (query, fileA, fileB string) {
	dir := t.TempDir()
	query = write(t, dir, "reads.fa", ">q1\nACGT\n>q2\nTTTT\n")
	fileA = write(t, dir, "b1____00.txt", "*q1\t2\nr1_x\t5\nr2_y\t5\n")
	fileB = write(t, dir, "b2____00.txt", "*q1\t1\nr3_z\t3\n*q3\t1\nr4_w\t9\n")
	return
}

func TestEndToEndFASTA(t *testing.T) {
	query, fileA, fileB := scenario(t)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-q", query, "-n", "1", fileA, fileB}, &out, &errBuf)
	require.Zero(t, code, errBuf.String())

	want := ">q1 x,y\nACGT\n" +
		">q2 \nTTTT\n" +
		">q3 w\n\n"
	require.Equal(t, want, out.String())
	require.Contains(t, errBuf.String(), "query not in registry")
}

func TestEndToEndTSV(t *testing.T) {
	query, fileA, fileB := scenario(t)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-q", query, "-n", "1", "-o", "tsv", fileA, fileB}, &out, &errBuf)
	require.Zero(t, code, errBuf.String())

	want := "q1\tb1\tx\t5\n" +
		"q1\tb1\ty\t5\n" +
		"q3\tb2\tw\t9\n"
	require.Equal(t, want, out.String())
}

func TestMalformedFileIsIsolated(t *testing.T) {
	query, fileA, fileB := scenario(t)
	bad := write(t, t.TempDir(), "b9____junk.txt", "this is not a match file\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-q", query, "-n", "1", fileA, bad, fileB}, &out, &errBuf)
	require.Zero(t, code, "per-file parse failures must not change the exit status")
	require.Contains(t, errBuf.String(), "skipping match file")

	var ref, refErr bytes.Buffer
	require.Zero(t, app.Run([]string{"-q", query, "-n", "1", fileA, fileB}, &ref, &refErr))
	require.Equal(t, ref.String(), out.String())
}

func TestParallelMatchesSerial(t *testing.T) {
	query, fileA, fileB := scenario(t)

	run := func(threads string) string {
		var out, errBuf bytes.Buffer
		code := app.Run([]string{"-q", query, "-n", "1", "-j", threads, fileA, fileB}, &out, &errBuf)
		require.Zero(t, code, errBuf.String())
		return out.String()
	}
	require.Equal(t, run("1"), run("4"))
}

func TestUnlimitedKeepsEverything(t *testing.T) {
	query, fileA, fileB := scenario(t)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-q", query, "-o", "tsv", fileA, fileB}, &out, &errBuf)
	require.Zero(t, code, errBuf.String())
	// z (count 3) survives with no keep limit.
	require.Contains(t, out.String(), "q1\tb2\tz\t3\n")
}

func TestRegistryLoadErrorIsFatal(t *testing.T) {
	dir := t.TempDir()
	matches := write(t, dir, "b1____00.txt", "*q1\t0\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-q", filepath.Join(dir, "missing.fa"), matches}, &out, &errBuf)
	require.Equal(t, 2, code)
	require.Empty(t, out.String())

	bad := write(t, dir, "bad.fa", "not a fasta header\n")
	code = app.Run([]string{"-q", bad, matches}, &out, &errBuf)
	require.Equal(t, 2, code)
}

func TestGzippedInputs(t *testing.T) {
	query, fileA, _ := scenario(t)

	// Re-compress file A; batch id still comes from the base name.
	data, err := os.ReadFile(fileA)
	require.NoError(t, err)
	gz := gzipBytes(t, data)
	gzPath := filepath.Join(t.TempDir(), "b1____00.txt.gz")
	require.NoError(t, os.WriteFile(gzPath, gz, 0o644))

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-q", query, "-n", "1", "-o", "tsv", gzPath}, &out, &errBuf)
	require.Zero(t, code, errBuf.String())
	require.Equal(t, "q1\tb1\tx\t5\nq1\tb1\ty\t5\n", out.String())
}

func TestVersionFlag(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--version"}, &out, &errBuf)
	require.Zero(t, code)
	require.Contains(t, out.String(), "cobsift version")
}
