// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppmtrie

import "sort"

// Node is a handle for a node of a trie. The zero value is the invalid node,
// which is returned for the godparent of the root and by failed lookups.
// The invalid node has no children and a cursor count of zero; Token,
// Depth and the cursor offsets must only be called on valid nodes.
type Node struct {
	t *Trie
	i int32
}

// Valid reports whether n refers to a node.
func (n Node) Valid() bool { return n.t != nil }

// Trie returns the trie the node belongs to.
func (n Node) Trie() *Trie { return n.t }

// Index returns the index of the node in the arena.
func (n Node) Index() int { return int(n.i) }

// IsRoot reports whether n is the root.
func (n Node) IsRoot() bool { return n.t != nil && n.i == 0 }

// Token returns the label of the edge from the parent. The root has the
// token EOS.
func (n Node) Token() Token { return n.t.token[n.i] }

// IsTerminal reports whether the node ends a string, which is the case for
// non-root nodes with the EOS token.
func (n Node) IsTerminal() bool {
	return n.t != nil && n.i != 0 && n.t.token[n.i] == EOS
}

// Depth returns the length of the string represented by the node.
func (n Node) Depth() int { return int(n.t.depth[n.i]) }

// CursorCount returns the number of cursors passing through the node.
func (n Node) CursorCount() int64 {
	if n.t == nil {
		return 0
	}
	return n.t.count[n.i]
}

// FirstCursor returns the start of the cursor range of the node.
func (n Node) FirstCursor() int64 { return n.t.firstCursor[n.i] }

// NumChildren returns the number of children.
func (n Node) NumChildren() int {
	if n.t == nil {
		return 0
	}
	return int(n.t.childCount[n.i])
}

// ChildAt returns the i-th child in token order.
func (n Node) ChildAt(i int) Node {
	if !(0 <= i && i < n.NumChildren()) {
		panic("ppmtrie: child index out of range")
	}
	return Node{t: n.t, i: n.t.firstChild[n.i] + int32(i)}
}

// Children returns the children of the node sorted by token.
func (n Node) Children() []Node {
	c := n.NumChildren()
	if c == 0 {
		return nil
	}
	f := n.t.firstChild[n.i]
	kids := make([]Node, c)
	for i := range kids {
		kids[i] = Node{t: n.t, i: f + int32(i)}
	}
	return kids
}

// Child looks up the child with the given token using binary search.
func (n Node) Child(tok Token) (child Node, ok bool) {
	t := n.t
	c := n.NumChildren()
	if c == 0 {
		return Node{}, false
	}
	f := int(t.firstChild[n.i])
	k := sort.Search(c, func(j int) bool { return t.token[f+j] >= tok })
	if k == c || t.token[f+k] != tok {
		return Node{}, false
	}
	return Node{t: t, i: int32(f + k)}, true
}

// Parent returns the parent node. The parent of the root is invalid.
func (n Node) Parent() Node {
	if n.t == nil {
		return Node{}
	}
	p := n.t.parent[n.i]
	if p < 0 {
		return Node{}
	}
	return Node{t: n.t, i: p}
}

// Godparent returns the node for the string of n without its first token.
// The godparent of the root is invalid.
func (n Node) Godparent() Node {
	if n.t == nil {
		return Node{}
	}
	g := n.t.resolveGodparent(n.i)
	if g < 0 {
		return Node{}
	}
	return Node{t: n.t, i: g}
}

// Path returns the tokens on the path from the root to the node.
func (n Node) Path() []Token {
	p := make([]Token, n.Depth())
	for m := n; m.i != 0; m = m.Parent() {
		p[m.Depth()-1] = m.Token()
	}
	return p
}

// String returns the string represented by the node.
func (n Node) String() string {
	if !n.Valid() {
		return "<nil>"
	}
	return TokenString(n.Path())
}
