// Copyright ©2017 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pathparse parses the path-record text grammar into pathstore
// entries, gluing forward and reverse evidence around each root as a
// fixed fulcrum.
package pathparse

import (
	"bufio"
	"io"
	"strings"

	"github.com/biogo/mergepaths/contigid"
	"github.com/biogo/mergepaths/mergeerr"
	"github.com/biogo/mergepaths/pathstore"
)

// Parser reads path records and files them into a Store, interning
// contig names through a Registry as it goes.
type Parser struct {
	reg   *contigid.Registry
	store *pathstore.Store
}

// New returns a Parser that interns names through reg and files parsed
// paths into store.
func New(reg *contigid.Registry, store *pathstore.Store) *Parser {
	return &Parser{reg: reg, store: store}
}

// Parse reads one record per line from r. Each line must match:
//
//	'@' WS NAME SIGN WS "->" WS (NAME SIGN WS?)+
//
// It fails with a *mergeerr.MalformedPathError on the first line that
// deviates.
func (p *Parser) Parse(r io.Reader) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := p.parseLine(line, text); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return &mergeerr.IOError{Path: "path file", Err: err}
	}
	return nil
}

func (p *Parser) parseLine(line int, text string) error {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return &mergeerr.MalformedPathError{Line: line, Text: text, Why: "expected '@ root -> elem...'"}
	}
	if fields[0] != "@" {
		return &mergeerr.MalformedPathError{Line: line, Text: text, Why: "record must start with '@'"}
	}
	rootName, rootReverse, err := splitSign(fields[1])
	if err != nil {
		return &mergeerr.MalformedPathError{Line: line, Text: text, Why: err.Error()}
	}
	if fields[2] != "->" {
		return &mergeerr.MalformedPathError{Line: line, Text: text, Why: "expected '->' after root"}
	}
	tailFields := fields[3:]
	if len(tailFields) == 0 {
		return &mergeerr.MalformedPathError{Line: line, Text: text, Why: "expected at least one element after '->'"}
	}
	tail := make(pathstore.Path, 0, len(tailFields))
	for _, f := range tailFields {
		name, rev, err := splitSign(f)
		if err != nil {
			return &mergeerr.MalformedPathError{Line: line, Text: text, Why: err.Error()}
		}
		key, err := p.reg.Intern(name)
		if err != nil {
			return &mergeerr.MalformedPathError{Line: line, Text: text, Why: err.Error()}
		}
		tail = append(tail, pathstore.OrientedContig{ID: key, Reverse: rev})
	}

	rootKey, err := p.reg.Intern(rootName)
	if err != nil {
		return &mergeerr.MalformedPathError{Line: line, Text: text, Why: err.Error()}
	}

	existing, ok := p.store.Get(rootKey)
	if !ok {
		existing = pathstore.Path{{ID: rootKey, Reverse: false}}
	} else if existing[0].ID != rootKey || existing[0].Reverse {
		return &mergeerr.MalformedPathError{
			Line: line, Text: text,
			Why: "existing stored path's first element is not the unreversed root",
		}
	}

	if !rootReverse {
		existing = append(existing, tail...)
	} else {
		reversedTail := make(pathstore.Path, len(tail))
		for i, e := range tail {
			reversedTail[len(tail)-1-i] = e
		}
		glued := make(pathstore.Path, 0, len(reversedTail)+len(existing))
		glued = append(glued, reversedTail...)
		glued = append(glued, existing...)
		existing = glued
	}

	p.store.Set(rootKey, existing)
	return nil
}

// splitSign parses a NAME<sign> token into its name and a reverse
// boolean ('+' => false, '-' => true).
func splitSign(token string) (name string, reverse bool, err error) {
	if len(token) < 2 {
		return "", false, &signError{token}
	}
	sign := token[len(token)-1]
	switch sign {
	case '+':
		return token[:len(token)-1], false, nil
	case '-':
		return token[:len(token)-1], true, nil
	default:
		return "", false, &signError{token}
	}
}

type signError struct{ token string }

func (e *signError) Error() string {
	return "element " + e.token + " missing trailing '+' or '-' orientation sign"
}
