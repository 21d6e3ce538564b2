// Copyright ©2017 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package output implements paths-only text emission, FASTA emission of
// merged and unused contigs, and coverage diagnostics.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	biogoutil "github.com/biogo/biogo/util"

	"github.com/biogo/mergepaths/contigid"
	"github.com/biogo/mergepaths/contigio"
	"github.com/biogo/mergepaths/pathstore"
	"github.com/biogo/mergepaths/splice"
)

const fastaWidth = 60

// PathText renders one canonical path the way paths-only mode does:
// "<ordinal> <elem0><sign0> <elem1><sign1> ...".
func PathText(reg *contigid.Registry, ordinal int, path pathstore.Path) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", ordinal)
	for _, e := range path {
		name, err := reg.Name(e.ID)
		if err != nil {
			return "", err
		}
		sb.WriteByte(' ')
		sb.WriteString(name)
		if e.Reverse {
			sb.WriteByte('-')
		} else {
			sb.WriteByte('+')
		}
	}
	return sb.String(), nil
}

// WritePathsOnly emits one line per unique canonical path in
// paths-only mode.
func WritePathsOnly(w io.Writer, reg *contigid.Registry, paths []pathstore.Path) error {
	for i, p := range paths {
		line, err := PathText(reg, i, p)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FastaReport summarizes the diagnostic stream emitted alongside FASTA
// output.
type FastaReport struct {
	MinCoverageAll  float64
	MinCoverageUsed float64
	HasAll          bool
	HasUsed         bool
}

// WriteFasta emits merged canonical path records followed by every
// unused input contig, and returns the coverage report. nextID seeds
// the first merged record's fresh integer id, one past the highest
// pre-existing contig id.
func WriteFasta(w io.Writer, reg *contigid.Registry, table *contigio.Table, paths []pathstore.Path, k int, nextID contigid.Key) (FastaReport, error) {
	used := make(map[contigid.Key]bool)
	var perKmerAll, perKmerUsed []float64

	for _, key := range table.Keys() {
		c, _ := table.Contig(key)
		if ratio, ok := perKmerCoverage(c.Sequence, c.Coverage, k); ok {
			perKmerAll = append(perKmerAll, ratio)
		}
	}

	id := int(nextID)
	for _, p := range paths {
		result, err := splice.Splice(p, table, k)
		if err != nil {
			return FastaReport{}, err
		}
		text, err := PathText(reg, 0, p)
		if err != nil {
			return FastaReport{}, err
		}
		// Drop the synthetic "0 " ordinal prefix PathText adds; the
		// comment wants only the path's element text.
		pathText := strings.TrimPrefix(text, "0 ")
		comment := fmt.Sprintf("%d %d %s", len(result.Sequence), result.Coverage, pathText)
		if err := writeRecord(w, strconv.Itoa(id), comment, result.Sequence, table.Alphabet); err != nil {
			return FastaReport{}, err
		}
		id++
		for _, e := range p {
			used[e.ID] = true
		}
	}

	for _, key := range table.Keys() {
		if used[key] {
			continue
		}
		c, _ := table.Contig(key)
		if err := writeRecord(w, c.Name, fmt.Sprintf("%d %d", len(c.Sequence), c.Coverage), c.Sequence, table.Alphabet); err != nil {
			return FastaReport{}, err
		}
	}
	for _, key := range table.Keys() {
		if !used[key] {
			continue
		}
		c, _ := table.Contig(key)
		if ratio, ok := perKmerCoverage(c.Sequence, c.Coverage, k); ok {
			perKmerUsed = append(perKmerUsed, ratio)
		}
	}

	var report FastaReport
	if len(perKmerAll) > 0 {
		report.MinCoverageAll = floats.Min(perKmerAll)
		report.HasAll = true
	}
	if len(perKmerUsed) > 0 {
		report.MinCoverageUsed = floats.Min(perKmerUsed)
		report.HasUsed = true
	}
	return report, nil
}

// perKmerCoverage computes coverage/(length-k+1), excluding contigs
// whose length does not exceed k-1.
func perKmerCoverage(seq []byte, coverage uint32, k int) (float64, bool) {
	denom := len(seq) - k + 1
	if denom <= 0 {
		return 0, false
	}
	return float64(coverage) / float64(denom), true
}

// WriteDiagnostics reports the coverage thresholds to w.
func WriteDiagnostics(w io.Writer, report FastaReport) {
	if report.HasAll {
		fmt.Fprintf(w, "minimum per-k-mer coverage across all input contigs: %.4f\n", report.MinCoverageAll)
	}
	if report.HasUsed {
		fmt.Fprintf(w, "minimum per-k-mer coverage across contigs used in a canonical path: %.4f\n", report.MinCoverageUsed)
	}
	if report.HasAll && report.HasUsed && report.MinCoverageAll < report.MinCoverageUsed {
		fmt.Fprintf(w, "suggestion: raise the coverage threshold to %.4f\n", report.MinCoverageUsed)
	}
}

// writeRecord writes a single FASTA record. Nucleotide records go
// through biogo's validated alphabet/linear/fasta stack, the same one
// FastaStats.go, seqsplit.go and FastaLenFilter.go use; color-space
// records (raw digit sequences, which biogo/alphabet cannot validate)
// are written with the same defline shape over a plain line-wrapper
// borrowed from contig.Contig.Format's own use of util.NewWrapper.
func writeRecord(w io.Writer, id, comment string, seq []byte, alpha contigio.Alphabet) error {
	if alpha == contigio.Nucleotide {
		s := linear.NewSeq(id, alphabet.BytesToLetters(seq), alphabet.DNA)
		s.Desc = comment
		fw := fasta.NewWriter(w, fastaWidth)
		_, err := fw.Write(s)
		return err
	}
	if _, err := fmt.Fprintf(w, ">%s %s\n", id, comment); err != nil {
		return err
	}
	lw := biogoutil.NewWrapper(w, fastaWidth, -1)
	if _, err := lw.Write(seq); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}
