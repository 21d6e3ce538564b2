// Copyright ©2017 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mergeerr defines the fatal error kinds produced while parsing,
// linking and emitting contig paths, so that callers can distinguish them
// and report a single diagnostic line before exiting.
package mergeerr

import "fmt"

// UsageError reports missing or conflicting command line arguments.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return "usage: " + e.Msg }

// IOError reports a file that could not be opened, read or written.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string  { return fmt.Sprintf("%s: %v", e.Path, e.Err) }
func (e *IOError) Unwrap() error  { return e.Err }

// MalformedPathError reports a path file record that does not match the
// expected grammar.
type MalformedPathError struct {
	Line int
	Text string
	Why  string
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("malformed path record at line %d (%q): %s", e.Line, e.Text, e.Why)
}

// UnknownContigError reports a path element naming a contig never seen in
// the contig FASTA input (FASTA mode only).
type UnknownContigError struct {
	Name string
}

func (e *UnknownContigError) Error() string {
	return fmt.Sprintf("path references unknown contig %q", e.Name)
}

// OverlapViolation reports a splice step whose last k-1 symbols of the
// accumulator did not equal the first k-1 symbols of the incoming
// sequence.
type OverlapViolation struct {
	K           int
	Accumulator string
	Incoming    string
	AccName     string
	NextName    string
}

func (e *OverlapViolation) Error() string {
	return fmt.Sprintf(
		"overlap violation (k=%d): tail %q of %q does not equal head %q of %q",
		e.K, e.Accumulator, e.AccName, e.Incoming, e.NextName,
	)
}

// InconsistentMergeState reports an internal invariant violation, such as
// a winning alignment that fails to touch a boundary of either path.
type InconsistentMergeState struct {
	Msg string
}

func (e *InconsistentMergeState) Error() string { return "inconsistent merge state: " + e.Msg }
