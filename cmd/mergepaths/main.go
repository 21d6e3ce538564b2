// Copyright ©2017 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mergepaths merges mutually-consistent contig paths into larger
// canonical paths and, optionally, splices the underlying contig
// sequences into merged FASTA records.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/biogo/mergepaths/consistency"
	"github.com/biogo/mergepaths/contigid"
	"github.com/biogo/mergepaths/contigio"
	"github.com/biogo/mergepaths/mergeerr"
	"github.com/biogo/mergepaths/output"
	"github.com/biogo/mergepaths/pathparse"
	"github.com/biogo/mergepaths/pathstore"
)

// verbosity is a repeatable "-v" counter. None of FastaStats.go,
// seqsplit.go or krishna.go needed a repeatable flag, but all of them
// build their CLI surface directly on flag.Value implementations
// (flag.BoolVar/IntVar/StringVar), so a small custom flag.Value follows
// the same idiom for the one flag that needs to count rather than just
// toggle or set.
type verbosity int

func (v *verbosity) String() string { return fmt.Sprintf("%d", int(*v)) }
func (v *verbosity) Set(string) error {
	*v++
	return nil
}
func (v *verbosity) IsBoolFlag() bool { return true }

var (
	kmerSize   int
	outPath    string
	verbose    verbosity
	cpuprofile string
)

func init() {
	log.SetFlags(0)
	flag.IntVar(&kmerSize, "k", 0, "k-mer size (required in FASTA mode).")
	flag.StringVar(&outPath, "o", "", "output file, or '-' for stdout (required in FASTA mode).")
	flag.Var(&verbose, "v", "increase verbosity (repeatable).")
	flag.StringVar(&cpuprofile, "cpuprofile", "", "write a CPU profile to this file.")
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: mergepaths [-k K -o FILE] [CONTIGS] PATHS")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if err := run(flag.Args()); err != nil {
		var usageErr *mergeerr.UsageError
		code := 1
		if errors.As(err, &usageErr) {
			usage()
		}
		log.Printf("mergepaths: %v", err)
		os.Exit(code)
	}
}

func run(args []string) error {
	var contigsPath, pathsPath string
	switch len(args) {
	case 1:
		pathsPath = args[0]
	case 2:
		contigsPath, pathsPath = args[0], args[1]
	default:
		return &mergeerr.UsageError{Msg: "expected [CONTIGS] PATHS"}
	}
	fastaMode := contigsPath != ""

	if fastaMode {
		if kmerSize <= 0 {
			return &mergeerr.UsageError{Msg: "-k is required in FASTA mode"}
		}
		if outPath == "" {
			return &mergeerr.UsageError{Msg: "-o is required in FASTA mode"}
		}
	}

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			return &mergeerr.IOError{Path: cpuprofile, Err: err}
		}
		defer f.Close()
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	reg := contigid.NewRegistry()
	store := pathstore.New()

	pathsFile, err := os.Open(pathsPath)
	if err != nil {
		return &mergeerr.IOError{Path: pathsPath, Err: err}
	}
	defer pathsFile.Close()

	if verbose >= 1 {
		fmt.Fprintf(os.Stderr, "reading path records from %q\n", pathsPath)
	}
	parser := pathparse.New(reg, store)
	if err := parser.Parse(pathsFile); err != nil {
		return err
	}

	var table *contigio.Table
	if fastaMode {
		cf, err := os.Open(contigsPath)
		if err != nil {
			return &mergeerr.IOError{Path: contigsPath, Err: err}
		}
		if verbose >= 1 {
			fmt.Fprintf(os.Stderr, "reading contigs from %q\n", contigsPath)
		}
		table, err = contigio.ReadFasta(cf, reg)
		cf.Close()
		if err != nil {
			return err
		}
		if err := checkKnownContigs(store, reg, table); err != nil {
			return err
		}
	}
	reg.Lock()

	if verbose >= 1 {
		fmt.Fprintf(os.Stderr, "parsed %d root-anchored paths\n", store.Len())
	}

	result, err := consistency.LinkPaths(store)
	if err != nil {
		return err
	}
	for _, warn := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warn)
	}
	paths := result.Store.UniquePaths()
	if verbose >= 1 {
		fmt.Fprintf(os.Stderr, "linked to %d canonical paths\n", len(paths))
	}

	var out *os.File
	if !fastaMode {
		out = os.Stdout
	} else if outPath == "-" {
		out = os.Stdout
	} else {
		out, err = os.Create(outPath)
		if err != nil {
			return &mergeerr.IOError{Path: outPath, Err: err}
		}
		defer out.Close()
	}

	if !fastaMode {
		return output.WritePathsOnly(out, reg, paths)
	}

	report, err := output.WriteFasta(out, reg, table, paths, kmerSize, reg.NextKey())
	if err != nil {
		return err
	}
	usedKeys := make(map[contigid.Key]bool)
	for _, p := range paths {
		for _, e := range p {
			usedKeys[e.ID] = true
		}
	}
	fmt.Fprintf(os.Stderr, "%d of %d contigs appear in %d canonical paths\n", len(usedKeys), table.Len(), len(paths))
	output.WriteDiagnostics(os.Stderr, report)
	return nil
}

// checkKnownContigs validates, before any linking work begins, that
// every contig referenced anywhere in the parsed path store exists in
// the contig table, so a typo in a path file fails fast with the
// offending name rather than surfacing deep inside the consistency
// checker.
func checkKnownContigs(store *pathstore.Store, reg *contigid.Registry, table *contigio.Table) error {
	var firstErr error
	store.Do(func(_ contigid.Key, path pathstore.Path) {
		if firstErr != nil {
			return
		}
		for _, e := range path {
			if _, ok := table.Contig(e.ID); ok {
				continue
			}
			name, _ := reg.Name(e.ID)
			firstErr = &mergeerr.UnknownContigError{Name: name}
			return
		}
	})
	return firstErr
}
