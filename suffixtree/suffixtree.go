// Copyright 2024, The textindex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package suffixtree implements an online suffix tree for exact substring
// indexing.
//
// The tree is built once over a text in amortized linear time using
// Ukkonen's algorithm and then answers substring queries in time
// proportional to the pattern length: existence, occurrence counting,
// occurrence positions, longest repeated substring, and (through a
// generalized tree over two texts) longest common substring.
//
// A finished Tree is immutable and may be shared by any number of
// concurrent readers without locking.
package suffixtree

// The nodes of a tree live in a flat arena and refer to each other by
// int32 arena indices rather than pointers. Edge labels are [start,end)
// ranges into the shared text buffer, never copied substrings. The bytes
// 0x00 and 0x01 are reserved as text terminators; indexing a text that
// contains them is not rejected, but voids the index's answers.

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "suffixtree: " + string(e) }

// ErrNilText is reported by BuildBytes when the input text is nil.
// A nil text is distinct from an empty one, which is valid input.
var ErrNilText error = Error("nil input text")

const (
	// sentinel terminates the indexed text. It sorts below every text
	// symbol, so walking children in symbol order yields suffixes in
	// lexicographic order.
	sentinel = 0x00

	// sentinel2 terminates the second text of a generalized tree.
	sentinel2 = 0x01
)

// root is the arena index of the root node. Node 0 is always the root.
const root = int32(0)

type child struct {
	sym byte  // first symbol of the edge leading to id
	id  int32 // arena index of the child
}

// node is a finished tree node. Children are sorted by symbol, and each
// symbol appears on at most one outgoing edge.
type node struct {
	start, end int32 // edge label is text[start:end]
	link       int32 // suffix link, root when none
	suffix     int32 // suffix starting position for leaves, -1 otherwise
	leaves     int32 // number of leaves in this subtree
	depth      int32 // total label length from the root to this node
	children   []child
}

// Tree is an immutable suffix tree over a text. The zero value is not
// usable; obtain a Tree from Build, BuildBytes, or BuildContext.
type Tree struct {
	text  []byte // indexed text followed by its sentinel byte(s)
	size  int    // length of the primary text, excluding sentinels
	nodes []node
}

// emptyTree is a degenerate singleton shared by every build of an empty
// text: a lone root with no children and no leaves.
var emptyTree = &Tree{
	text:  []byte{sentinel},
	nodes: []node{{suffix: -1}},
}

// Size returns the length of the indexed text.
func (t *Tree) Size() int { return t.size }

// NodeCount returns the total number of nodes in the tree, counting the
// root, internal nodes, and leaves.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// LeafCount returns the number of leaves in the tree. For a non-empty
// text of length n this is n+1, one leaf per suffix plus one for the
// terminating sentinel; for an empty text it is 0.
func (t *Tree) LeafCount() int { return int(t.nodes[root].leaves) }

func (t *Tree) findChild(id int32, sym byte) (int32, bool) {
	cs := t.nodes[id].children
	lo, hi := 0, len(cs)
	for lo < hi {
		mid := (lo + hi) / 2
		if cs[mid].sym < sym {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(cs) && cs[lo].sym == sym {
		return cs[lo].id, true
	}
	return 0, false
}

// label returns the edge label leading into node id.
func (t *Tree) label(id int32) []byte {
	nd := &t.nodes[id]
	return t.text[nd.start:nd.end]
}

// pathString reconstructs the string spelled by the root-to-id path.
// The path of length depth always ends at the node's own edge end.
func (t *Tree) pathString(id int32) string {
	nd := &t.nodes[id]
	return string(t.text[nd.end-nd.depth : nd.end])
}
