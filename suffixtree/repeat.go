// Copyright 2024, The textindex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffixtree

// Substring repeat analysis over a finished tree. Any substring that
// occurs at least twice corresponds to an internal node, so the longest
// repeated substring is the deepest node with two or more leaves below
// it, and the longest common substring of two texts is the deepest node
// of their generalized tree with leaves from both sources.

// LongestRepeatedSubstring returns the longest substring that occurs at
// two or more (possibly overlapping) positions in the indexed text, or
// the empty string when all symbols are distinct. When several
// substrings share the maximum length, the lexicographically least one
// is returned; the choice is deterministic for a given text.
func (t *Tree) LongestRepeatedSubstring() string {
	var best, bestID int32

	// Preorder in symbol order; strict improvement keeps the first and
	// therefore lexicographically least node of maximal depth.
	stack := append(make([]int32, 0, 64), root)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &t.nodes[id]
		if len(nd.children) == 0 {
			continue
		}
		if nd.leaves >= 2 && nd.depth > best {
			best, bestID = nd.depth, id
		}
		for i := len(nd.children) - 1; i >= 0; i-- {
			stack = append(stack, nd.children[i].id)
		}
	}
	if best == 0 {
		return ""
	}
	return t.pathString(bestID)
}

// LongestCommonSubstring returns the longest substring occurring in both
// the indexed text and other, or the empty string when none of length at
// least one exists. It builds a generalized tree over the two texts with
// distinct sentinels and finds the deepest node whose subtree holds
// leaves of both sources; cost is linear in the combined length.
func (t *Tree) LongestCommonSubstring(other string) string {
	if t.size == 0 || len(other) == 0 {
		return ""
	}
	g := buildGeneralized(t.text[:t.size], other)
	return g.longestCommon()
}

// buildGeneralized indexes first + sentinel + second + sentinel2 with
// the regular construction engine. Since each sentinel occurs exactly
// once, any path through one occurs exactly once too, so every internal
// node's path stays within a single source text.
func buildGeneralized(first []byte, second string) *Tree {
	buf := make([]byte, 0, len(first)+len(second)+2)
	buf = append(buf, first...)
	buf = append(buf, sentinel)
	buf = append(buf, second...)
	buf = append(buf, sentinel2)

	b := newBuilder(buf)
	for pos := range buf {
		b.extend(int32(pos))
	}
	return b.finish(len(first))
}

const (
	seenFirst  = 1 << iota // subtree holds a suffix of the first text
	seenSecond             // subtree holds a suffix of the second text
)

// longestCommon runs the two-bit source-mask pass over a generalized
// tree. Masks propagate bottom-up in the same post-order shape as the
// leaf-count pass of finish.
func (g *Tree) longestCommon() string {
	masks := make([]uint8, len(g.nodes))
	var best, bestID int32

	type frame struct {
		id   int32
		next int
	}
	stack := make([]frame, 1, 64)
	stack[0] = frame{root, 0}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		nd := &g.nodes[f.id]
		if f.next < len(nd.children) {
			c := nd.children[f.next].id
			f.next++
			stack = append(stack, frame{c, 0})
			continue
		}
		if len(nd.children) == 0 {
			// Leaves at or before the first sentinel are suffixes of
			// the first text; the rest belong to the second.
			if int(nd.suffix) <= g.size {
				masks[f.id] = seenFirst
			} else {
				masks[f.id] = seenSecond
			}
		} else {
			var m uint8
			for _, c := range nd.children {
				m |= masks[c.id]
			}
			masks[f.id] = m
			if m == seenFirst|seenSecond && nd.depth > best {
				best, bestID = nd.depth, f.id
			}
		}
		stack = stack[:len(stack)-1]
	}
	if best == 0 {
		return ""
	}
	return g.pathString(bestID)
}
