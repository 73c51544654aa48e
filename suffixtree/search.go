// Copyright 2024, The textindex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffixtree

import "bytes"

// Contains reports whether pattern occurs in the indexed text. The empty
// pattern trivially matches. Cost is O(len(pattern)).
func (t *Tree) Contains(pattern string) bool {
	if len(pattern) == 0 {
		return true
	}
	_, ok := t.walk([]byte(pattern))
	return ok
}

// ContainsBytes is the byte-level form of Contains. A nil pattern is a
// caller contract violation and panics; patterns may be empty.
func (t *Tree) ContainsBytes(pattern []byte) bool {
	if pattern == nil {
		panic("suffixtree: nil pattern")
	}
	if len(pattern) == 0 {
		return true
	}
	_, ok := t.walk(pattern)
	return ok
}

// CountOccurrences returns the number of (possibly overlapping)
// occurrences of pattern in the indexed text. The count is read from the
// leaf counter precomputed at build time, so the cost is O(len(pattern))
// regardless of how many matches exist. The empty pattern matches at
// every position and counts Size().
func (t *Tree) CountOccurrences(pattern string) int {
	if len(pattern) == 0 {
		return t.size
	}
	return t.countOccurrences([]byte(pattern))
}

// CountOccurrencesBytes is the byte-level form of CountOccurrences.
// A nil pattern panics. Unlike the string form, an empty pattern counts
// zero occurrences, mirroring FindAllOccurrencesBytes.
func (t *Tree) CountOccurrencesBytes(pattern []byte) int {
	if pattern == nil {
		panic("suffixtree: nil pattern")
	}
	if len(pattern) == 0 {
		return 0
	}
	return t.countOccurrences(pattern)
}

func (t *Tree) countOccurrences(pattern []byte) int {
	id, ok := t.walk(pattern)
	if !ok {
		return 0
	}
	return int(t.nodes[id].leaves)
}

// FindAllOccurrences returns the starting position of every occurrence
// of pattern, 0-indexed. The order is deterministic for a given text but
// otherwise unspecified; callers that need sorted output must sort.
// The empty pattern matches everywhere and returns all positions 0..n-1.
//
// Cost is O(len(pattern) + number of matches).
func (t *Tree) FindAllOccurrences(pattern string) []int {
	if len(pattern) == 0 {
		pos := make([]int, t.size)
		for i := range pos {
			pos[i] = i
		}
		return pos
	}
	return t.findAll([]byte(pattern))
}

// FindAllOccurrencesBytes is the byte-level form of FindAllOccurrences.
// A nil pattern panics. Unlike the string form, an empty pattern returns
// no positions. The two empty-pattern behaviors are intentionally
// distinct; call sites depend on each.
func (t *Tree) FindAllOccurrencesBytes(pattern []byte) []int {
	if pattern == nil {
		panic("suffixtree: nil pattern")
	}
	if len(pattern) == 0 {
		return nil
	}
	return t.findAll(pattern)
}

func (t *Tree) findAll(pattern []byte) []int {
	id, ok := t.walk(pattern)
	if !ok {
		return nil
	}

	// Collect every leaf position below the match point. The walk is
	// iterative with an explicit stack; recursion depth is unbounded on
	// inputs such as a long run of one symbol.
	pos := make([]int, 0, t.nodes[id].leaves)
	stack := append(make([]int32, 0, 64), id)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &t.nodes[n]
		if len(nd.children) == 0 {
			pos = append(pos, int(nd.suffix))
			continue
		}
		for i := len(nd.children) - 1; i >= 0; i-- {
			stack = append(stack, nd.children[i].id)
		}
	}
	return pos
}

// walk matches pattern edge by edge from the root, comparing whole edge
// labels at a time. It returns the node at the end of the match, or the
// edge's child node when the match ends mid-edge; ok is false on any
// mismatch. pattern must be non-empty.
func (t *Tree) walk(pattern []byte) (id int32, ok bool) {
	id = root
	for len(pattern) > 0 {
		c, ok := t.findChild(id, pattern[0])
		if !ok {
			return 0, false
		}
		label := t.label(c)
		if len(pattern) < len(label) {
			if !bytes.Equal(label[:len(pattern)], pattern) {
				return 0, false
			}
			return c, true
		}
		if !bytes.Equal(label, pattern[:len(label)]) {
			return 0, false
		}
		pattern = pattern[len(label):]
		id = c
	}
	return id, true
}
