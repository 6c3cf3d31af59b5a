// internal/mfurapp/convert.go
package mfurapp

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"cobsift-core/cobs"
	"cobsift-core/topk"
)

// Convert reads mfur three-column output (query, matched file or "NA",
// score) and writes it as COBS match format, keeping the top `keep`
// hits plus exact ties per query. Queries arrive in contiguous runs;
// each run becomes one header group. The emitted target token carries
// an empty sort prefix ("_ref"), so the output round-trips through the
// cobs scanner.
func Convert(r io.Reader, w io.Writer, keep int) error {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, 16*1024*1024)

	var (
		query string
		hits  []cobs.Match
		open  bool
		ln    int
	)
	flush := func() error {
		if !open {
			return nil
		}
		acc := topk.New(keep)
		acc.Add("", hits)
		kept := acc.Matches()
		if _, err := fmt.Fprintf(w, "%c%s\t%d\n", cobs.Marker, query, len(kept)); err != nil {
			return err
		}
		for _, m := range kept {
			if _, err := fmt.Fprintf(w, "_%s\t%d\n", m.Ref, m.Kmers); err != nil {
				return err
			}
		}
		return nil
	}

	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return fmt.Errorf("line %d: want 3 tab-separated fields, got %d", ln, len(fields))
		}
		q, file, scoreText := fields[0], fields[1], fields[2]
		if q == "" {
			return fmt.Errorf("line %d: empty query name", ln)
		}
		if q != query || !open {
			if err := flush(); err != nil {
				return err
			}
			query, hits, open = q, hits[:0], true
		}
		if file == "NA" {
			continue
		}
		score, err := strconv.Atoi(scoreText)
		if err != nil {
			return fmt.Errorf("line %d: bad score %q", ln, scoreText)
		}
		hits = append(hits, cobs.Match{Ref: refName(file), Kmers: score})
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return flush()
}

// refName reduces a matched file path to its reference id: base name
// up to the first dot.
func refName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base
}
