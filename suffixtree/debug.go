// Copyright 2024, The textindex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffixtree

import (
	"fmt"
	"strings"
)

// Dump returns a human-readable rendering of the tree for debugging.
// Each line is one node: the quoted edge label (sentinels escaped),
// the arena index, and either the subtree metadata of an internal node
// or the suffix position of a leaf.
func (t *Tree) Dump() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "tree: size=%d nodes=%d leaves=%d\n",
		t.size, len(t.nodes), t.nodes[root].leaves)

	type entry struct {
		id    int32
		level int
	}
	stack := append(make([]entry, 0, 64), entry{root, 0})
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &t.nodes[e.id]

		indent := strings.Repeat("  ", e.level)
		switch {
		case e.id == root:
			fmt.Fprintf(&sb, "%s. n%d\n", indent, e.id)
		case len(nd.children) == 0:
			fmt.Fprintf(&sb, "%s%q n%d suffix=%d\n",
				indent, t.label(e.id), e.id, nd.suffix)
		default:
			fmt.Fprintf(&sb, "%s%q n%d leaves=%d depth=%d link=n%d\n",
				indent, t.label(e.id), e.id, nd.leaves, nd.depth, nd.link)
		}
		for i := len(nd.children) - 1; i >= 0; i-- {
			stack = append(stack, entry{nd.children[i].id, e.level + 1})
		}
	}
	return sb.String()
}

// verify checks the structural invariants of a finished tree. It runs
// after construction in debug builds and panics on violation.
func (t *Tree) verify() {
	total := int32(len(t.text))
	var leaves int32
	for i := range t.nodes {
		id := int32(i)
		nd := &t.nodes[i]
		if id != root && len(nd.children) == 1 {
			panic("suffixtree: internal node with a single child")
		}
		for j, c := range nd.children {
			if j > 0 && c.sym <= nd.children[j-1].sym {
				panic("suffixtree: children not ordered by symbol")
			}
			if t.text[t.nodes[c.id].start] != c.sym {
				panic("suffixtree: child symbol does not match edge label")
			}
		}
		if len(nd.children) == 0 && id != root {
			leaves++
			if nd.suffix < 0 || nd.suffix >= total {
				panic("suffixtree: leaf suffix out of range")
			}
		}
	}
	if leaves != t.nodes[root].leaves {
		panic("suffixtree: leaf count mismatch")
	}
}
