// Copyright ©2017 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contigid

import "testing"

func TestInternFirstSeenOrder(t *testing.T) {
	r := NewRegistry()
	a, err := r.Intern("a")
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Intern("b")
	if err != nil {
		t.Fatal(err)
	}
	again, err := r.Intern("a")
	if err != nil {
		t.Fatal(err)
	}
	if a != 0 || b != 1 {
		t.Fatalf("got keys a=%d b=%d, want 0,1", a, b)
	}
	if again != a {
		t.Fatalf("re-interning %q returned %d, want %d", "a", again, a)
	}
}

func TestNameTotalOnAllocatedKeys(t *testing.T) {
	r := NewRegistry()
	k, _ := r.Intern("contig1")
	name, err := r.Name(k)
	if err != nil || name != "contig1" {
		t.Fatalf("Name(%d) = %q, %v, want %q, nil", k, name, err, "contig1")
	}
}

func TestNameUnknownKey(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Name(42); err != nil {
		if _, ok := err.(*UnknownKeyError); !ok {
			t.Fatalf("expected *UnknownKeyError, got %T", err)
		}
	}
	if _, err := r.Name(42); err == nil {
		t.Fatal("expected error for unallocated key")
	}
}

func TestLockRejectsNewNames(t *testing.T) {
	r := NewRegistry()
	r.Intern("seen")
	r.Lock()
	if _, err := r.Intern("seen"); err != nil {
		t.Fatalf("re-interning a known name after lock should succeed, got %v", err)
	}
	if _, err := r.Intern("new"); err == nil {
		t.Fatal("expected LockedError interning a new name after lock")
	} else if _, ok := err.(*LockedError); !ok {
		t.Fatalf("expected *LockedError, got %T", err)
	}
}

func TestNextKey(t *testing.T) {
	r := NewRegistry()
	if r.NextKey() != 0 {
		t.Fatalf("NextKey on empty registry = %d, want 0", r.NextKey())
	}
	r.Intern("a")
	r.Intern("b")
	if r.NextKey() != 2 {
		t.Fatalf("NextKey = %d, want 2", r.NextKey())
	}
}
