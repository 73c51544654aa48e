// Copyright 2024, The textindex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffixtree

// EnumerateSuffixes returns every non-empty suffix of the indexed text
// in lexicographic order. It is a pure function of the immutable tree:
// each call allocates its own result and traversal state, so concurrent
// and repeated calls are independent.
//
// The traversal visits children in symbol order, and since the sentinel
// sorts below every text symbol, leaf order equals lexicographic suffix
// order. Intended for diagnostics and invariant testing.
func (t *Tree) EnumerateSuffixes() []string {
	if t.size == 0 {
		return nil
	}
	out := make([]string, 0, t.size)
	stack := append(make([]int32, 0, 64), root)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &t.nodes[id]
		if len(nd.children) == 0 {
			// Skip the lone sentinel leaf; it stands for the empty
			// suffix.
			if int(nd.suffix) < t.size {
				out = append(out, string(t.text[nd.suffix:t.size]))
			}
			continue
		}
		for i := len(nd.children) - 1; i >= 0; i-- {
			stack = append(stack, nd.children[i].id)
		}
	}
	return out
}
