// Copyright ©2017 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathstore

import (
	"testing"

	"github.com/biogo/mergepaths/contigid"
)

func TestReversedTogglesOrientationAndOrder(t *testing.T) {
	p := Path{
		{ID: 0, Reverse: false},
		{ID: 1, Reverse: true},
		{ID: 2, Reverse: false},
	}
	r := p.Reversed()
	want := Path{
		{ID: 2, Reverse: true},
		{ID: 1, Reverse: false},
		{ID: 0, Reverse: true},
	}
	if !r.Equal(want) {
		t.Fatalf("Reversed() = %v, want %v", r, want)
	}
	if !r.Reversed().Equal(p) {
		t.Fatal("Reversed is not involutive")
	}
}

func TestEqualAndClone(t *testing.T) {
	p := Path{{ID: 0}, {ID: 1, Reverse: true}}
	c := p.Clone()
	if !p.Equal(c) {
		t.Fatal("clone should equal original")
	}
	c[0].ID = 9
	if p.Equal(c) {
		t.Fatal("mutating clone should not affect original")
	}
}

func TestLessLexicographic(t *testing.T) {
	a := Path{{ID: 0}, {ID: 1}}
	b := Path{{ID: 0}, {ID: 2}}
	c := Path{{ID: 0}}
	if !a.Less(b) {
		t.Fatal("a should sort before b")
	}
	if b.Less(a) {
		t.Fatal("b should not sort before a")
	}
	if !c.Less(a) {
		t.Fatal("shorter prefix should sort first")
	}
}

func TestStoreEraseIsIdempotent(t *testing.T) {
	s := New()
	s.Set(0, Path{{ID: 0}})
	s.Erase(0)
	s.Erase(0) // must not panic or misbehave
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	if _, ok := s.Get(0); ok {
		t.Fatal("Get should report absent after Erase")
	}
}

func TestStoreKeysSorted(t *testing.T) {
	s := New()
	s.Set(3, Path{{ID: 3}})
	s.Set(1, Path{{ID: 1}})
	s.Set(2, Path{{ID: 2}})
	keys := s.Keys()
	want := []contigid.Key{1, 2, 3}
	if len(keys) != len(want) {
		t.Fatalf("got %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("got %v, want %v", keys, want)
		}
	}
}

func TestUniquePathsDedupesByValue(t *testing.T) {
	s := New()
	s.Set(0, Path{{ID: 0}, {ID: 1}})
	s.Set(5, Path{{ID: 0}, {ID: 1}}) // same value, different key
	s.Set(9, Path{{ID: 2}})
	got := s.UniquePaths()
	if len(got) != 2 {
		t.Fatalf("UniquePaths() returned %d paths, want 2: %v", len(got), got)
	}
	// lexicographically, {ID:0,ID:1} sorts before {ID:2}.
	if !got[0].Equal(Path{{ID: 0}, {ID: 1}}) {
		t.Fatalf("got[0] = %v, want [{0 false} {1 false}]", got[0])
	}
}
