// core/cobs/scanner.go
package cobs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Marker starts a query header line in COBS match output.
const Marker = '*'

// Match is one containment hit inside a group: the true reference
// identifier (random sort prefix already stripped) and the number of
// shared k-mers.
type Match struct {
	Ref   string
	Kmers int
}

// Group is every match reported for one query inside one batch file,
// in file order.
type Group struct {
	Query   string
	Batch   string
	Matches []Match
}

// Scanner reads grouped match records from a single COBS output stream.
// It follows the bufio.Scanner idiom: Scan advances to the next complete
// group, Group returns it, Err reports the first failure. A Scanner is
// single-pass; any malformed line stops it for good.
//
// Header lines are "*name[ comment]\t<count>"; the declared count is
// validated syntactically but otherwise ignored. Every other non-blank
// line is "<prefix>_<ref>\t<kmers>" and belongs to the open header.
type Scanner struct {
	sc    *bufio.Scanner
	batch string
	line  int
	open  *Group
	out   Group
	done  bool
	err   error
}

// NewScanner returns a Scanner over r tagging every group with batch.
func NewScanner(r io.Reader, batch string) *Scanner {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, 16*1024*1024)
	return &Scanner{sc: sc, batch: batch}
}

// Scan advances to the next group. It returns false at end of stream or
// on the first parse error (see Err).
func (s *Scanner) Scan() bool {
	if s.err != nil || s.done {
		return false
	}
	for s.sc.Scan() {
		s.line++
		text := strings.TrimSpace(s.sc.Text())
		if text == "" {
			continue
		}
		if text[0] == Marker {
			g, err := s.parseHeader(text[1:])
			if err != nil {
				s.fail(err)
				return false
			}
			if s.open != nil {
				s.out = *s.open
				s.open = &g
				return true
			}
			s.open = &g
			continue
		}
		if s.open == nil {
			s.fail(fmt.Errorf("match line before any %q header", string(Marker)))
			return false
		}
		m, err := parseMatch(text)
		if err != nil {
			s.fail(err)
			return false
		}
		s.open.Matches = append(s.open.Matches, m)
	}
	if err := s.sc.Err(); err != nil {
		s.err = err
		return false
	}
	s.done = true
	if s.open != nil {
		s.out = *s.open
		s.open = nil
		return true
	}
	return false
}

// Group returns the group produced by the last successful Scan.
func (s *Scanner) Group() Group { return s.out }

// Err returns the first error hit while scanning, if any.
func (s *Scanner) Err() error { return s.err }

func (s *Scanner) fail(err error) {
	s.err = fmt.Errorf("line %d: %w", s.line, err)
}

func (s *Scanner) parseHeader(rest string) (Group, error) {
	fields := strings.Split(rest, "\t")
	if len(fields) < 2 {
		return Group{}, fmt.Errorf("header needs name and match count, got %d field(s)", len(fields))
	}
	name := fields[0]
	// Drop the FASTA-style comment after the first space.
	if i := strings.IndexByte(name, ' '); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return Group{}, fmt.Errorf("empty query name in header")
	}
	if _, err := strconv.Atoi(strings.TrimSpace(fields[1])); err != nil {
		return Group{}, fmt.Errorf("bad declared match count %q", fields[1])
	}
	return Group{Query: name, Batch: s.batch}, nil
}

func parseMatch(text string) (Match, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Match{}, fmt.Errorf("match line needs target and kmer count, got %d field(s)", len(fields))
	}
	// The target token carries a random sort prefix before the first
	// underscore; only the remainder identifies the reference.
	i := strings.IndexByte(fields[0], '_')
	if i < 0 {
		return Match{}, fmt.Errorf("target %q lacks a sort-prefix underscore", fields[0])
	}
	ref := fields[0][i+1:]
	if ref == "" {
		return Match{}, fmt.Errorf("target %q has an empty reference id", fields[0])
	}
	kmers, err := strconv.Atoi(fields[1])
	if err != nil {
		return Match{}, fmt.Errorf("bad kmer count %q", fields[1])
	}
	if kmers < 0 {
		return Match{}, fmt.Errorf("negative kmer count %q", fields[1])
	}
	return Match{Ref: ref, Kmers: kmers}, nil
}

// ReadAll materializes every group in r. Parsing stops at the first
// malformed line; whatever was read so far is discarded along with the
// error, so one bad file contributes nothing.
func ReadAll(r io.Reader, batch string) ([]Group, error) {
	sc := NewScanner(r, batch)
	var groups []Group
	for sc.Scan() {
		groups = append(groups, sc.Group())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}
