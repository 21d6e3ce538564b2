// Copyright ©2017 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package splice merges a linear ordering of oriented contig sequences
// into a single sequence under a strict k-1 overlap contract, adapted
// from the super-contig assembly idiom of contig/contig.go (which
// stitches sequences into a sparse, arbitrary-offset interval vector)
// to a dense sequential splice, where every element overlaps its
// predecessor by exactly k-1 symbols and there are no gaps.
package splice

import (
	"fmt"

	"github.com/biogo/mergepaths/contigid"
	"github.com/biogo/mergepaths/mergeerr"
	"github.com/biogo/mergepaths/pathstore"
)

// Contig is the splicer's view of a contig: its name (for diagnostics),
// its raw sequence bytes (nucleotide letters or color-space digits,
// treated identically here), and its declared coverage.
type Contig struct {
	Name     string
	Sequence []byte
	Coverage uint32
}

// Table looks up contigs by key.
type Table interface {
	Contig(key contigid.Key) (Contig, bool)
}

// Result is the spliced sequence plus its accumulated coverage.
type Result struct {
	Sequence []byte
	Coverage uint64
}

// Splice merges the sequences named by path, in order, under the k-1
// overlap contract. path must be non-empty.
func Splice(path pathstore.Path, contigs Table, k int) (Result, error) {
	root := path[0]
	rootContig, ok := contigs.Contig(root.ID)
	if !ok {
		return Result{}, &mergeerr.UnknownContigError{Name: fmt.Sprintf("key %d", root.ID)}
	}

	acc := orient(rootContig.Sequence, root.Reverse)
	seq := make([]byte, len(acc))
	copy(seq, acc)
	coverage := uint64(rootContig.Coverage)

	for _, elem := range path[1:] {
		next, ok := contigs.Contig(elem.ID)
		if !ok {
			return Result{}, &mergeerr.UnknownContigError{Name: fmt.Sprintf("key %d", elem.ID)}
		}
		incoming := orient(next.Sequence, elem.Reverse)

		overlap := k - 1
		if overlap < 0 {
			overlap = 0
		}
		if len(seq) < overlap || len(incoming) < overlap {
			return Result{}, &mergeerr.OverlapViolation{
				K: k, AccName: rootName(path, contigs), NextName: next.Name,
				Accumulator: string(tail(seq, overlap)),
				Incoming:    string(head(incoming, overlap)),
			}
		}
		accTail := tail(seq, overlap)
		incHead := head(incoming, overlap)
		if string(accTail) != string(incHead) {
			return Result{}, &mergeerr.OverlapViolation{
				K: k, AccName: rootName(path, contigs), NextName: next.Name,
				Accumulator: string(accTail),
				Incoming:    string(incHead),
			}
		}
		seq = append(seq, incoming[overlap:]...)
		coverage += uint64(next.Coverage)
	}

	return Result{Sequence: seq, Coverage: coverage}, nil
}

func rootName(path pathstore.Path, contigs Table) string {
	if c, ok := contigs.Contig(path[0].ID); ok {
		return c.Name
	}
	return ""
}

func tail(b []byte, n int) []byte {
	if n <= 0 {
		return nil
	}
	return b[len(b)-n:]
}

func head(b []byte, n int) []byte {
	if n <= 0 {
		return nil
	}
	return b[:n]
}

// orient returns seq, reverse-complemented if reverse is set.
func orient(seq []byte, reverse bool) []byte {
	if !reverse {
		out := make([]byte, len(seq))
		copy(out, seq)
		return out
	}
	return RevComp(seq)
}

// RevComp reverse-complements a nucleotide sequence, or simply reverses
// a color-space sequence: color-space reverses digits with no
// complementing. Letter case is preserved. This is implemented on the
// standard library because biogo/alphabet has no color-space alphabet
// to validate or complement digit symbols through, and both encodings
// need to share one code path: the splicer is oblivious to the choice
// beyond string equality.
func RevComp(seq []byte) []byte {
	out := make([]byte, len(seq))
	n := len(seq)
	for i, b := range seq {
		out[n-1-i] = complement(b)
	}
	return out
}

func complement(b byte) byte {
	switch b {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	case 'a':
		return 't'
	case 't':
		return 'a'
	case 'c':
		return 'g'
	case 'g':
		return 'c'
	case 'N', 'n':
		return b
	case '0', '1', '2', '3':
		// Color-space: reversing the read reverses the digit sequence
		// without complementing any digit.
		return b
	default:
		return b
	}
}
