// Copyright 2024, The textindex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffixtree

import (
	"context"
	"math"
	"sort"

	"github.com/seqlab/textindex/internal"
)

// Build constructs the suffix tree of text. It processes one symbol per
// step and always succeeds; an empty text yields a shared degenerate
// singleton. The input must not contain the reserved bytes 0x00 and 0x01.
func Build(text string) *Tree {
	if len(text) == 0 {
		return emptyTree
	}
	return build(terminate([]byte(text)), len(text))
}

// BuildBytes is like Build for a byte slice. It fails only when text is
// nil; an empty non-nil slice is valid and yields the same degenerate
// singleton as Build("").
func BuildBytes(text []byte) (*Tree, error) {
	if text == nil {
		return nil, ErrNilText
	}
	if len(text) == 0 {
		return emptyTree, nil
	}
	return build(terminate(text), len(text)), nil
}

// BuildContext is like Build with cooperative cancellation. The context
// is checked between symbol steps (amortized every 4096 positions); on
// cancellation the partial construction state is discarded whole and
// ctx.Err() is returned, so no half-finished tree is ever observable.
func BuildContext(ctx context.Context, text string) (*Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(text) == 0 {
		return emptyTree, nil
	}
	buf := terminate([]byte(text))
	b := newBuilder(buf)
	for pos := range buf {
		if pos&0xfff == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		b.extend(int32(pos))
	}
	return b.finish(len(text)), nil
}

// terminate appends the sentinel, turning the implicit suffix tree into
// an explicit one where every suffix ends exactly at a leaf.
func terminate(text []byte) []byte {
	buf := make([]byte, len(text)+1)
	copy(buf, text)
	buf[len(text)] = sentinel
	return buf
}

func build(buf []byte, size int) *Tree {
	b := newBuilder(buf)
	for pos := range buf {
		b.extend(int32(pos))
	}
	return b.finish(size)
}

// openEnd marks the end of an edge leading into a leaf that is still
// growing. All open leaves extend implicitly as the phase position
// advances; finish converts them to fixed values.
const openEnd = int32(math.MaxInt32)

// bnode is a node under construction. Child links are map-based here and
// converted to the sorted slice form of the immutable tree by finish.
type bnode struct {
	start, end int32
	link       int32
	children   map[byte]int32
}

// builder holds all mutable construction state: the node arena and the
// active point (activeNode, activeEdge, activeLen). It is single-owner,
// lives only for the duration of one build call, and never escapes.
type builder struct {
	text  []byte
	nodes []bnode

	activeNode int32
	activeEdge int32 // text index of the first symbol of the active edge
	activeLen  int32

	remainder int32 // suffixes still to be inserted in the current phase
	lastNew   int32 // newest internal node awaiting its suffix link, or root
	pos       int32 // current phase position
}

func newBuilder(text []byte) *builder {
	b := &builder{
		text:  text,
		nodes: make([]bnode, 1, 2*len(text)+2),
	}
	b.nodes[root] = bnode{}
	return b
}

func (b *builder) newNode(start, end int32) int32 {
	b.nodes = append(b.nodes, bnode{start: start, end: end, link: root})
	return int32(len(b.nodes) - 1)
}

// edgeLen returns the current length of the edge leading into id. Open
// leaf edges grow with the phase position.
func (b *builder) edgeLen(id int32) int32 {
	nd := &b.nodes[id]
	if nd.end == openEnd {
		return b.pos + 1 - nd.start
	}
	return nd.end - nd.start
}

func (b *builder) setChild(id int32, sym byte, c int32) {
	nd := &b.nodes[id]
	if nd.children == nil {
		nd.children = make(map[byte]int32)
	}
	nd.children[sym] = c
}

// walkDown canonizes the active point by consuming whole edges with
// symbol-count jumps rather than walking one symbol at a time. This
// skip/count movement is what keeps total construction time linear.
func (b *builder) walkDown(next int32) bool {
	if l := b.edgeLen(next); b.activeLen >= l {
		b.activeEdge += l
		b.activeLen -= l
		b.activeNode = next
		return true
	}
	return false
}

// addLink resolves the pending suffix link from the previous internal
// node created in this phase, then records id as the new pending node.
// Every internal node created in a phase except possibly the last has
// its link resolved before the phase ends.
func (b *builder) addLink(id int32) {
	if b.lastNew != root {
		b.nodes[b.lastNew].link = id
	}
	b.lastNew = id
}

// extend runs one phase: it inserts every suffix of text[:pos+1] that is
// not yet present, applying the three extension rules.
func (b *builder) extend(pos int32) {
	b.pos = pos
	b.lastNew = root
	b.remainder++
	sym := b.text[pos]

	for b.remainder > 0 {
		if b.activeLen == 0 {
			b.activeEdge = pos
		}
		next, ok := b.nodes[b.activeNode].children[b.text[b.activeEdge]]
		switch {
		case !ok:
			// Rule A: no edge starts with the active symbol here.
			// Grow a new open leaf from the explicit active node.
			leaf := b.newNode(pos, openEnd)
			b.setChild(b.activeNode, b.text[b.activeEdge], leaf)
			b.addLink(b.activeNode)

		default:
			if b.walkDown(next) {
				continue
			}
			if b.text[b.nodes[next].start+b.activeLen] == sym {
				// Rule C: the suffix is already implicitly present.
				// Stop the phase early; this is the amortization
				// trick that bounds total extension work.
				if b.lastNew != root && b.activeNode != root {
					b.nodes[b.lastNew].link = b.activeNode
					b.lastNew = root
				}
				b.activeLen++
				return
			}
			// Rule B: mismatch mid-edge. Split the edge at the
			// mismatch point and attach a new leaf.
			split := b.newNode(b.nodes[next].start, b.nodes[next].start+b.activeLen)
			b.setChild(b.activeNode, b.text[b.activeEdge], split)
			leaf := b.newNode(pos, openEnd)
			b.setChild(split, sym, leaf)
			b.nodes[next].start += b.activeLen
			b.setChild(split, b.text[b.nodes[next].start], next)
			b.addLink(split)
		}

		b.remainder--
		if b.activeNode == root && b.activeLen > 0 {
			b.activeLen--
			b.activeEdge = pos - b.remainder + 1
		} else if b.activeNode != root {
			// Follow the suffix link instead of re-walking from
			// the root.
			b.activeNode = b.nodes[b.activeNode].link
		}
	}
}

// finish converts the construction state into the immutable Tree form:
// open leaf ends become fixed values, map children become sorted slices,
// and one traversal computes string depths top-down with leaf counts and
// suffix positions bottom-up.
func (b *builder) finish(size int) *Tree {
	total := int32(len(b.text))
	t := &Tree{text: b.text, size: size, nodes: make([]node, len(b.nodes))}

	for i := range b.nodes {
		bn := &b.nodes[i]
		nd := &t.nodes[i]
		nd.start, nd.end, nd.link, nd.suffix = bn.start, bn.end, bn.link, -1
		if nd.end == openEnd {
			nd.end = total
		}
		if len(bn.children) > 0 {
			nd.children = make([]child, 0, len(bn.children))
			for sym, id := range bn.children {
				nd.children = append(nd.children, child{sym, id})
			}
			sort.Slice(nd.children, func(x, y int) bool {
				return nd.children[x].sym < nd.children[y].sym
			})
		}
	}

	// Iterative post-order; recursion depth is unbounded on inputs such
	// as a long run of one symbol.
	type frame struct {
		id   int32
		next int
	}
	stack := make([]frame, 1, 64)
	stack[0] = frame{root, 0}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		nd := &t.nodes[f.id]
		if f.next < len(nd.children) {
			c := nd.children[f.next].id
			f.next++
			cn := &t.nodes[c]
			cn.depth = nd.depth + (cn.end - cn.start)
			stack = append(stack, frame{c, 0})
			continue
		}
		if len(nd.children) == 0 {
			nd.leaves = 1
			nd.suffix = total - nd.depth
		} else {
			for _, c := range nd.children {
				nd.leaves += t.nodes[c.id].leaves
			}
		}
		stack = stack[:len(stack)-1]
	}

	if internal.Debug {
		t.verify()
	}
	return t
}
