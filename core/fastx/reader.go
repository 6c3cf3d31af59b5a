// core/fastx/reader.go

// Package fastx reads FASTA and FASTQ records. Only names and
// sequences survive; quality strings are consumed and discarded.
package fastx

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Record is one query: the header token before the first whitespace
// and the concatenated sequence.
type Record struct {
	Name string
	Seq  string
}

// ReadAll parses every FASTA/FASTQ record from r, preserving order.
// A stream whose first non-blank line is not a '>' or '@' header is
// malformed, as is a FASTQ record whose quality ends short of its
// sequence.
func ReadAll(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, 64*1024*1024)

	var (
		recs    []Record
		line    string
		ln      int
		pending bool
	)
	next := func() bool {
		if pending {
			pending = false
			return true
		}
		for sc.Scan() {
			ln++
			line = strings.TrimSpace(sc.Text())
			if line != "" {
				return true
			}
		}
		return false
	}

	for next() {
		if line[0] != '>' && line[0] != '@' {
			return nil, fmt.Errorf("fastx: line %d: %q is not a record header", ln, line)
		}
		fastq := line[0] == '@'
		name := headerName(line[1:])
		if name == "" {
			return nil, fmt.Errorf("fastx: line %d: empty record name", ln)
		}

		var seq strings.Builder
		for next() {
			c := line[0]
			if c == '>' || c == '@' || c == '+' {
				pending = true
				break
			}
			seq.WriteString(line)
		}

		// FASTQ quality: read by length, not by marker, since quality
		// strings may legally start with '@' or '+'. A '+' separator
		// is only honored after a FASTQ header; inside a FASTA record
		// it surfaces as a malformed header on the next iteration.
		if fastq && pending && line[0] == '+' {
			pending = false
			qlen := 0
			for qlen < seq.Len() && next() {
				qlen += len(line)
			}
			if qlen < seq.Len() {
				return nil, fmt.Errorf("fastx: record %q: truncated quality", name)
			}
		}

		recs = append(recs, Record{Name: name, Seq: seq.String()})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fastx: %w", err)
	}
	return recs, nil
}

func headerName(hdr string) string {
	hdr = strings.TrimSpace(hdr)
	if i := strings.IndexAny(hdr, " \t"); i >= 0 {
		return hdr[:i]
	}
	return hdr
}
