// Copyright ©2017 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/biogo/mergepaths/contigid"
	"github.com/biogo/mergepaths/contigio"
	"github.com/biogo/mergepaths/pathstore"
	"github.com/biogo/mergepaths/splice"
)

func TestPathTextFormatsOrdinalAndSigns(t *testing.T) {
	reg := contigid.NewRegistry()
	a, _ := reg.Intern("a")
	b, _ := reg.Intern("b")
	path := pathstore.Path{{ID: a, Reverse: false}, {ID: b, Reverse: true}}
	text, err := PathText(reg, 3, path)
	if err != nil {
		t.Fatal(err)
	}
	want := "3 a+ b-"
	if text != want {
		t.Fatalf("PathText = %q, want %q", text, want)
	}
}

func TestWritePathsOnlyEmitsOneLinePerPath(t *testing.T) {
	reg := contigid.NewRegistry()
	a, _ := reg.Intern("a")
	b, _ := reg.Intern("b")
	paths := []pathstore.Path{
		{{ID: a, Reverse: false}},
		{{ID: b, Reverse: false}},
	}
	var buf bytes.Buffer
	if err := WritePathsOnly(&buf, reg, paths); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if lines[0] != "0 a+" || lines[1] != "1 b+" {
		t.Fatalf("got %v", lines)
	}
}

func TestWriteFastaEmitsMergedThenUnused(t *testing.T) {
	reg := contigid.NewRegistry()
	a, _ := reg.Intern("a")
	b, _ := reg.Intern("b")
	c, _ := reg.Intern("c")

	table := contigio.NewTable()
	table.Alphabet = contigio.Nucleotide
	table.Put(a, splContig("a", "AACGT", 10))
	table.Put(b, splContig("b", "GTTT", 4))
	table.Put(c, splContig("c", "GGGGG", 3))

	paths := []pathstore.Path{
		{{ID: a, Reverse: false}, {ID: b, Reverse: false}},
	}

	var buf bytes.Buffer
	report, err := WriteFasta(&buf, reg, table, paths, 3, contigid.Key(table.Len()))
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "AACGTTT") {
		t.Fatalf("expected merged sequence in output, got %q", out)
	}
	if !strings.Contains(out, "GGGGG") {
		t.Fatalf("expected unused contig c in output, got %q", out)
	}
	if !report.HasAll || !report.HasUsed {
		t.Fatalf("expected both coverage reports populated: %+v", report)
	}
}

func splContig(name, seq string, coverage uint32) splice.Contig {
	return splice.Contig{Name: name, Sequence: []byte(seq), Coverage: coverage}
}
