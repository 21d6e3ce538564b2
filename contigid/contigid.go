// Copyright ©2017 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contigid provides a bidirectional intern table mapping contig
// names to dense, first-seen-order integer keys.
package contigid

import "fmt"

// Key is a dense, non-negative integer assigned in first-seen order.
type Key int

// LockedError is returned by Intern once the registry has been locked.
type LockedError struct {
	Name string
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("contigid: registry locked, cannot intern %q", e.Name)
}

// UnknownKeyError is returned by Name for a key that was never allocated.
type UnknownKeyError struct {
	Key Key
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("contigid: unknown key %d", e.Key)
}

// Registry interns contig names to dense keys. The zero value is ready
// to use.
type Registry struct {
	byName map[string]Key
	names  []string
	locked bool
}

// NewRegistry returns an empty, unlocked Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Key)}
}

// Intern returns the key for name, allocating a new one if name has not
// been seen before. It fails with a *LockedError if the registry has
// already been locked.
func (r *Registry) Intern(name string) (Key, error) {
	if k, ok := r.byName[name]; ok {
		return k, nil
	}
	if r.locked {
		return -1, &LockedError{Name: name}
	}
	if r.byName == nil {
		r.byName = make(map[string]Key)
	}
	k := Key(len(r.names))
	r.byName[name] = k
	r.names = append(r.names, name)
	return k, nil
}

// Lookup returns the key for name without allocating one, reporting
// whether name has been interned.
func (r *Registry) Lookup(name string) (Key, bool) {
	k, ok := r.byName[name]
	return k, ok
}

// Name returns the name for key. It fails with an *UnknownKeyError if key
// was never allocated.
func (r *Registry) Name(key Key) (string, error) {
	if key < 0 || int(key) >= len(r.names) {
		return "", &UnknownKeyError{Key: key}
	}
	return r.names[key], nil
}

// Lock freezes the mapping; subsequent Intern calls for unseen names
// fail.
func (r *Registry) Lock() { r.locked = true }

// Locked reports whether Lock has been called.
func (r *Registry) Locked() bool { return r.locked }

// Len returns the number of interned names.
func (r *Registry) Len() int { return len(r.names) }

// NextKey returns the key that would be assigned to the next newly
// interned name. This is used to seed fresh integer ids for merged
// records one past the highest pre-existing contig id.
func (r *Registry) NextKey() Key { return Key(len(r.names)) }
