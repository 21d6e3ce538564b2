// Copyright ©2017 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contigio reads the contig FASTA input into a splice.Table.
// Writing FASTA and paths-only output lives in package output.
//
// biogo's alphabet type validates every letter against a fixed,
// pre-declared alphabet, and has no color-space (digit 0-3) alphabet, so
// it cannot parse both of this package's alphabets through one path;
// both the nucleotide and the color-space case (and the shared defline
// grammar) are therefore read with a small bufio-based scanner operating
// on raw bytes, which is alphabet-agnostic by construction.
package contigio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/mergepaths/contigid"
	"github.com/biogo/mergepaths/mergeerr"
	"github.com/biogo/mergepaths/splice"
)

// Alphabet distinguishes the two sequence encodings this tool moves
// between without interpreting: ordinary nucleotide letters, or
// SOLiD-style color-space digits. It is inferred once, from the first
// symbol of the first contig read, and carried explicitly as a value
// rather than as a global flag.
type Alphabet int

const (
	Nucleotide Alphabet = iota
	ColorSpace
)

// Table is an in-memory contig table keyed by ContigIDRegistry key,
// implementing splice.Table.
type Table struct {
	Alphabet Alphabet
	contigs  map[contigid.Key]splice.Contig
	order    []contigid.Key // first-seen order, for deterministic iteration
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{contigs: make(map[contigid.Key]splice.Contig)}
}

// Contig implements splice.Table.
func (t *Table) Contig(key contigid.Key) (splice.Contig, bool) {
	c, ok := t.contigs[key]
	return c, ok
}

// Put records a contig under key in first-seen order.
func (t *Table) Put(key contigid.Key, c splice.Contig) {
	if _, exists := t.contigs[key]; !exists {
		t.order = append(t.order, key)
	}
	t.contigs[key] = c
}

// Keys returns the contig keys in first-seen order.
func (t *Table) Keys() []contigid.Key { return t.order }

// Len returns the number of contigs in the table.
func (t *Table) Len() int { return len(t.contigs) }

// ReadFasta parses a FASTA stream whose defline comment is
// "<length> <coverage>", interning each record's id through reg.
// The alphabet is inferred from the first symbol of the first record:
// a leading digit means color-space, anything else means nucleotide.
func ReadFasta(r io.Reader, reg *contigid.Registry) (*Table, error) {
	t := NewTable()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var (
		haveHeader       bool
		name             string
		coverage         uint32
		seq              []byte
		alphabetDecided  bool
	)
	flush := func() error {
		if !haveHeader {
			return nil
		}
		key, err := reg.Intern(name)
		if err != nil {
			return err
		}
		t.Put(key, splice.Contig{Name: name, Sequence: seq, Coverage: coverage})
		return nil
	}

	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return nil, err
			}
			var err error
			name, coverage, err = parseDefline(line)
			if err != nil {
				return nil, err
			}
			haveHeader = true
			seq = nil
			continue
		}
		if !alphabetDecided && len(seq) == 0 {
			if len(line) > 0 && line[0] >= '0' && line[0] <= '9' {
				t.Alphabet = ColorSpace
			} else {
				t.Alphabet = Nucleotide
			}
			alphabetDecided = true
		}
		seq = append(seq, []byte(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, &mergeerr.IOError{Path: "contig file", Err: err}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return t, nil
}

// parseDefline parses ">name <length> <coverage>" into name and
// coverage. The length field must be present but is neither parsed nor
// checked against the sequence length.
func parseDefline(line string) (name string, coverage uint32, err error) {
	fields := strings.Fields(strings.TrimPrefix(line, ">"))
	if len(fields) < 3 {
		return "", 0, fmt.Errorf("contig defline %q: expected '<id> <length> <coverage>'", line)
	}
	name = fields[0]
	cov, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("contig defline %q: bad coverage field: %w", line, err)
	}
	return name, uint32(cov), nil
}
