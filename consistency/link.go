// Copyright ©2017 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consistency

import (
	"fmt"
	"sort"

	"github.com/biogo/mergepaths/contigid"
	"github.com/biogo/mergepaths/pathstore"
)

// LinkResult is the outcome of running the link-to-fixed-point driver:
// the dedupe-and-merge result store, and any circular-subsumption
// warnings raised during Phase 2.
type LinkResult struct {
	Store    *pathstore.Store
	Warnings []string
}

// LinkPaths runs the grow-then-dedupe two-phase driver against orig and
// returns the merged result. orig is read but never mutated.
func LinkPaths(orig *pathstore.Store) (LinkResult, error) {
	result := pathstore.New()
	for _, k := range orig.Keys() {
		canonical, err := growCanonical(k, orig)
		if err != nil {
			return LinkResult{}, err
		}
		result.Set(k, canonical)
	}

	warnings, err := dedupe(result)
	if err != nil {
		return LinkResult{}, err
	}
	return LinkResult{Store: result, Warnings: warnings}, nil
}

// growCanonical implements Phase 1 (grow) for a single root key: it
// absorbs compatible neighbours from orig into a canonical path,
// draining a worklist of newly-introduced oriented contigs until no more
// material can be pulled in.
func growCanonical(k contigid.Key, orig *pathstore.Store) (pathstore.Path, error) {
	seed, ok := orig.Get(k)
	if !ok {
		return nil, nil
	}
	canonical := seed.Clone()

	visited := make(map[pathstore.OrientedContig]bool, len(canonical))
	var queue []pathstore.OrientedContig
	enqueue := func(items pathstore.Path) {
		for _, it := range items {
			if visited[it] {
				continue
			}
			visited[it] = true
			queue = append(queue, it)
		}
	}
	enqueue(canonical)

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if item.ID == k {
			continue
		}
		child, ok := orig.Get(item.ID)
		if !ok {
			continue
		}

		align, flipped, ok, err := Check(canonical, child, item.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		aligned := child
		if flipped {
			aligned = child.Reversed()
		}
		prefix := aligned[:align.StartB]
		suffix := aligned[align.EndB+1:]

		if len(prefix) > 0 {
			grown := make(pathstore.Path, 0, len(prefix)+len(canonical))
			grown = append(grown, prefix...)
			grown = append(grown, canonical...)
			canonical = grown
			enqueue(prefix)
		}
		if len(suffix) > 0 {
			canonical = append(canonical, suffix...)
			enqueue(suffix)
		}
	}
	return canonical, nil
}

// dedupe implements Phase 2: any canonical path fully contained within
// another is erased. Mutual (circular) subsumption is resolved in
// favour of the path whose contig-key set is a strict superset of the
// other's; when neither strictly contains the other, both are kept and
// a warning is recorded.
func dedupe(result *pathstore.Store) ([]string, error) {
	reported := make(map[[2]contigid.Key]bool)
	var warnings []string

	for _, k := range result.Keys() {
		path, ok := result.Get(k)
		if !ok {
			continue
		}
		for _, c := range sortedKeys(path.Keys()) {
			if c == k {
				continue
			}
			child, ok := result.Get(c)
			if !ok {
				continue
			}
			align, _, ok, err := Check(path, child, c)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if align.EndB-align.StartB+1 != len(child) {
				continue // child is not fully contained
			}

			refKeys, childKeys := path.Keys(), child.Keys()
			refSuper := isSuperset(refKeys, childKeys)
			childSuper := isSuperset(childKeys, refKeys)
			switch {
			case refSuper && !childSuper:
				result.Erase(c)
			default:
				pair := pairKey(k, c)
				if !reported[pair] {
					reported[pair] = true
					warnings = append(warnings, fmt.Sprintf(
						"circular subsumption between canonical paths keyed %d and %d: both retained",
						pair[0], pair[1]))
				}
			}
		}
	}
	sort.Strings(warnings)
	return warnings, nil
}

func pairKey(a, b contigid.Key) [2]contigid.Key {
	if a < b {
		return [2]contigid.Key{a, b}
	}
	return [2]contigid.Key{b, a}
}

func isSuperset(a, b map[contigid.Key]bool) bool {
	for k := range b {
		if !a[k] {
			return false
		}
	}
	return true
}

func sortedKeys(m map[contigid.Key]bool) []contigid.Key {
	keys := make([]contigid.Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
