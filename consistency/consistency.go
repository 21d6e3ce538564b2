// Copyright ©2017 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package consistency implements the pairwise path-consistency check and
// the two-phase link-to-fixed-point driver that grows and deduplicates
// canonical paths.
//
// Check is a pure function: it never mutates either input path in place.
// Instead it returns the winning Alignment plus a flipped flag, and it is
// the caller's responsibility to apply that flip to whichever copy of the
// second path it intends to keep, rather than reverse-complementing the
// argument in place and restoring it later.
package consistency

import (
	"github.com/biogo/mergepaths/contigid"
	"github.com/biogo/mergepaths/mergeerr"
	"github.com/biogo/mergepaths/pathstore"
)

// Alignment is the result of comparing two paths: the inclusive index
// ranges of their maximal common subpath, and whether the second path
// had to be reverse-complemented to align.
type Alignment struct {
	StartA, EndA int
	StartB, EndB int
	Flipped      bool
	DuplicateSize bool
}

// Len returns the length of the matched subpath.
func (a Alignment) Len() int { return a.EndA - a.StartA + 1 }

// Check compares paths a and b, where rootB is the root key of b (the
// key b is filed under, which is b[0].ID only when nothing has been
// prepended ahead of b's root). It reports whether the paths are mutually
// consistent and, if so, the winning Alignment and whether b must be
// reverse-complemented (Flipped) before its StartB/EndB indices apply to
// it.
//
// Algorithm: enumerate every pair of indices at which rootB
// appears in a and in b (orientation ignored); for each pair, determine
// independently whether b needs flipping to match a's orientation at
// that anchor, extend the match as far as possible in both directions,
// and keep the record only if it bottoms out on a path boundary (not a
// mismatch) at both ends. The longest such record wins; ties at the
// maximum length set DuplicateSize.
func Check(a, b pathstore.Path, rootB contigid.Key) (align Alignment, flipped, ok bool, err error) {
	anchorsA := indicesOf(a, rootB)
	anchorsB := indicesOf(b, rootB)
	if len(anchorsA) == 0 || len(anchorsB) == 0 {
		return Alignment{}, false, false, nil
	}

	bestLen := -1
	var best Alignment
	var bestFlipped bool
	duplicate := false

	for _, i := range anchorsA {
		for _, j := range anchorsB {
			flip := a[i].Reverse != b[j].Reverse
			bw := b
			jPos := j
			if flip {
				bw = b.Reversed()
				jPos = len(b) - 1 - j
			}

			lo, loB := i, jPos
			for lo > 0 && loB > 0 && a[lo-1] == bw[loB-1] {
				lo--
				loB--
			}
			hi, hiB := i, jPos
			for hi < len(a)-1 && hiB < len(bw)-1 && a[hi+1] == bw[hiB+1] {
				hi++
				hiB++
			}

			terminalLeft := lo == 0 || loB == 0
			terminalRight := hi == len(a)-1 || hiB == len(bw)-1
			if !terminalLeft || !terminalRight {
				continue
			}

			length := hi - lo + 1
			switch {
			case length > bestLen:
				bestLen = length
				duplicate = false
				best = Alignment{StartA: lo, EndA: hi, StartB: loB, EndB: hiB}
				bestFlipped = flip
			case length == bestLen:
				duplicate = true
			}
		}
	}

	if bestLen < 0 {
		return Alignment{}, false, false, nil
	}
	best.DuplicateSize = duplicate

	// Assert: the winning alignment touches index 0 in at least one path
	// and the last index in at least one path. The terminal checks above
	// guarantee this for every recorded candidate, so a violation here
	// indicates an internal bug rather than inconsistent input.
	if best.StartA != 0 && best.StartB != 0 {
		return Alignment{}, false, false, &mergeerr.InconsistentMergeState{
			Msg: "winning alignment touches neither path's start boundary",
		}
	}
	if best.EndA != len(a)-1 && best.EndB != len(b)-1 {
		return Alignment{}, false, false, &mergeerr.InconsistentMergeState{
			Msg: "winning alignment touches neither path's end boundary",
		}
	}

	minLen := len(a) - 1
	if len(b)-1 < minLen {
		minLen = len(b) - 1
	}
	if best.DuplicateSize && bestLen < minLen {
		// Ambiguous overlap: two equally-long candidates disagree and
		// neither is long enough to resolve the ambiguity.
		return Alignment{}, false, false, nil
	}

	bw := b
	if bestFlipped {
		bw = b.Reversed()
	}
	for k := 0; k <= best.EndA-best.StartA; k++ {
		if a[best.StartA+k].ID != bw[best.StartB+k].ID {
			return Alignment{}, false, false, nil
		}
	}

	best.Flipped = bestFlipped
	return best, bestFlipped, true, nil
}

func indicesOf(p pathstore.Path, key contigid.Key) []int {
	var idx []int
	for i, e := range p {
		if e.ID == key {
			idx = append(idx, i)
		}
	}
	return idx
}
