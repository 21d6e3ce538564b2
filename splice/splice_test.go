// Copyright ©2017 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splice

import (
	"bytes"
	"testing"

	"github.com/biogo/mergepaths/contigid"
	"github.com/biogo/mergepaths/mergeerr"
	"github.com/biogo/mergepaths/pathstore"
)

type fakeTable map[contigid.Key]Contig

func (t fakeTable) Contig(key contigid.Key) (Contig, bool) {
	c, ok := t[key]
	return c, ok
}

func TestSpliceJoinsOnKMinus1Overlap(t *testing.T) {
	// k=3, overlap=2: "AACGT" + "GTTT" sharing "GT".
	table := fakeTable{
		0: {Name: "a", Sequence: []byte("AACGT"), Coverage: 10},
		1: {Name: "b", Sequence: []byte("GTTT"), Coverage: 4},
	}
	path := pathstore.Path{
		{ID: 0, Reverse: false},
		{ID: 1, Reverse: false},
	}
	result, err := Splice(path, table, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := "AACGTTT"
	if string(result.Sequence) != want {
		t.Fatalf("Sequence = %q, want %q", result.Sequence, want)
	}
	if result.Coverage != 14 {
		t.Fatalf("Coverage = %d, want 14", result.Coverage)
	}
}

func TestSpliceReverseComplementsOrientedElement(t *testing.T) {
	// b's stored sequence is "AAAC"; read in reverse it contributes
	// RevComp("AAAC") = "GTTT", matching root "AACGT"'s "GT" tail.
	table := fakeTable{
		0: {Name: "a", Sequence: []byte("AACGT"), Coverage: 1},
		1: {Name: "b", Sequence: []byte("AAAC"), Coverage: 1},
	}
	path := pathstore.Path{
		{ID: 0, Reverse: false},
		{ID: 1, Reverse: true},
	}
	result, err := Splice(path, table, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := "AACGTTT"
	if string(result.Sequence) != want {
		t.Fatalf("Sequence = %q, want %q", result.Sequence, want)
	}
}

func TestSpliceRejectsMismatchedOverlap(t *testing.T) {
	table := fakeTable{
		0: {Name: "a", Sequence: []byte("AACGT"), Coverage: 1},
		1: {Name: "b", Sequence: []byte("TTTT"), Coverage: 1},
	}
	path := pathstore.Path{
		{ID: 0, Reverse: false},
		{ID: 1, Reverse: false},
	}
	_, err := Splice(path, table, 3)
	if err == nil {
		t.Fatal("expected an overlap violation")
	}
	if _, ok := err.(*mergeerr.OverlapViolation); !ok {
		t.Fatalf("expected *mergeerr.OverlapViolation, got %T: %v", err, err)
	}
}

func TestSpliceUnknownContig(t *testing.T) {
	table := fakeTable{0: {Name: "a", Sequence: []byte("AACGT")}}
	path := pathstore.Path{{ID: 0, Reverse: false}, {ID: 77, Reverse: false}}
	_, err := Splice(path, table, 3)
	if err == nil {
		t.Fatal("expected an unknown-contig error")
	}
	if _, ok := err.(*mergeerr.UnknownContigError); !ok {
		t.Fatalf("expected *mergeerr.UnknownContigError, got %T", err)
	}
}

func TestRevCompIsInvolutive(t *testing.T) {
	for _, seq := range [][]byte{
		[]byte("AACGTTTNacgtn"),
		[]byte("0123210"),
		[]byte(""),
	} {
		rc := RevComp(seq)
		rcrc := RevComp(rc)
		if !bytes.Equal(rcrc, seq) {
			t.Fatalf("RevComp(RevComp(%q)) = %q, want %q", seq, rcrc, seq)
		}
	}
}

func TestRevCompNucleotideComplements(t *testing.T) {
	got := RevComp([]byte("AACGT"))
	want := "ACGTT"
	if string(got) != want {
		t.Fatalf("RevComp(%q) = %q, want %q", "AACGT", got, want)
	}
}

func TestRevCompColorSpaceOnlyReverses(t *testing.T) {
	got := RevComp([]byte("0123"))
	want := "3210"
	if string(got) != want {
		t.Fatalf("RevComp(%q) = %q, want %q", "0123", got, want)
	}
}
