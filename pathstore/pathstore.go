// Copyright ©2017 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pathstore provides the core Path/OrientedContig data model and
// an exclusively-owning, deterministically-iterable map from root contig
// key to canonical Path.
package pathstore

import (
	"sort"

	"github.com/biogo/mergepaths/contigid"
)

// OrientedContig is a contig reference together with the orientation it
// is read in. Two OrientedContigs are equal iff both fields match.
type OrientedContig struct {
	ID      contigid.Key
	Reverse bool
}

// Path is an ordered, non-empty sequence of OrientedContig. The root,
// whose ID is the key under which the owning Store files the Path, has
// Reverse == false. It is element 0 unless elements have been prepended
// ahead of it (by a reverse-read path record, or while growing a
// canonical path), in which case element 0 is not the root.
type Path []OrientedContig

// Root returns the path's element 0, which is the root only when nothing
// has been prepended ahead of it.
func (p Path) Root() OrientedContig { return p[0] }

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	c := make(Path, len(p))
	copy(c, p)
	return c
}

// Equal reports whether p and q have identical element sequences.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Reversed returns the reverse-complement of p: the element order is
// reversed and every orientation bit is toggled.
func (p Path) Reversed() Path {
	r := make(Path, len(p))
	for i, e := range p {
		r[len(p)-1-i] = OrientedContig{ID: e.ID, Reverse: !e.Reverse}
	}
	return r
}

// Keys returns the set of distinct contig keys appearing in p, ignoring
// orientation.
func (p Path) Keys() map[contigid.Key]bool {
	s := make(map[contigid.Key]bool, len(p))
	for _, e := range p {
		s[e.ID] = true
	}
	return s
}

// Less reports whether p sorts before q under lexicographic order over
// element sequences, used to make output ordinals reproducible.
func (p Path) Less(q Path) bool {
	for i := 0; i < len(p) && i < len(q); i++ {
		if p[i].ID != q[i].ID {
			return p[i].ID < q[i].ID
		}
		if p[i].Reverse != q[i].Reverse {
			return !p[i].Reverse
		}
	}
	return len(p) < len(q)
}

// Store is a mapping from root contig key to its owned, current
// canonical Path. Keys uniquely own their Path value: Erase releases the
// owned Path exactly once.
type Store struct {
	m map[contigid.Key]Path
}

// New returns an empty Store.
func New() *Store {
	return &Store{m: make(map[contigid.Key]Path)}
}

// Get returns the path stored for key, if any.
func (s *Store) Get(key contigid.Key) (Path, bool) {
	p, ok := s.m[key]
	return p, ok
}

// Set files path under key, taking ownership of it. Any previously owned
// path under key is replaced (and considered released).
func (s *Store) Set(key contigid.Key, path Path) {
	s.m[key] = path
}

// Erase removes and releases the path stored under key. It is a no-op if
// key is absent, so that erasing an already-erased key never double
// releases.
func (s *Store) Erase(key contigid.Key) {
	delete(s.m, key)
}

// Len returns the number of stored paths.
func (s *Store) Len() int { return len(s.m) }

// Keys returns the stored keys in deterministic sorted order.
func (s *Store) Keys() []contigid.Key {
	keys := make([]contigid.Key, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Do calls fn for every stored (key, path) pair in deterministic sorted
// key order.
func (s *Store) Do(fn func(key contigid.Key, path Path)) {
	for _, k := range s.Keys() {
		fn(k, s.m[k])
	}
}

// UniquePaths deduplicates the stored paths by value (not storage
// identity, since distinct keys may transiently alias the same Path
// during linking) and returns them sorted lexicographically over their
// element sequences, giving reproducible output.
func (s *Store) UniquePaths() []Path {
	seen := make([]Path, 0, len(s.m))
	for _, k := range s.Keys() {
		p := s.m[k]
		dup := false
		for _, q := range seen {
			if p.Equal(q) {
				dup = true
				break
			}
		}
		if !dup {
			seen = append(seen, p)
		}
	}
	sort.Slice(seen, func(i, j int) bool { return seen[i].Less(seen[j]) })
	return seen
}
