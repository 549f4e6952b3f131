// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package serial

import (
	"math"

	"github.com/ulikunitz/ppmtrie"
)

// maxChildren is the maximum number of children of a node.
const maxChildren = 1 << 16

// childrenOf returns the children of n as Child values.
func childrenOf(n ppmtrie.Node) []ppmtrie.Child {
	kids := make([]ppmtrie.Child, n.NumChildren())
	for i := range kids {
		c := n.ChildAt(i)
		kids[i] = ppmtrie.Child{Token: c.Token(), Count: c.CursorCount()}
	}
	return kids
}

// codeTrie codes the levels 0 to height-1 of t in breadth-first order. The
// writer passes the complete trie; the reader passes a trie consisting of
// the root, which grows with every level coded.
func codeTrie(c coder, t *ppmtrie.Trie, height int, mode Mode) error {
	level := []ppmtrie.Node{t.Root()}
	for d := 0; d < height; d++ {
		used := make(map[int]int64)
		var next []ppmtrie.Node
		for _, n := range level {
			if n.IsTerminal() {
				continue
			}
			var err error
			switch {
			case mode == ModeExplicit:
				err = codeExplicit(c, n)
			case d == 0:
				err = codeRoot(c, n)
			default:
				err = codeGodchildren(c, n, used)
			}
			if err != nil {
				return err
			}
			next = append(next, n.Children()...)
		}
		level = next
	}
	return nil
}

// codeRoot codes the children of the root with unbounded counts.
func codeRoot(c coder, n ppmtrie.Node) error {
	src := childrenOf(n)
	k := uint64(len(src))
	if err := c.delta(&k); err != nil {
		return err
	}
	if k > maxChildren {
		return formatError("root has %d children", k)
	}
	kids := make([]ppmtrie.Child, k)
	var sum uint64
	for i := range kids {
		var v uint64
		if !c.reading() {
			kids[i] = src[i]
			v = uint64(src[i].Count)
		}
		if err := c.token(&kids[i].Token); err != nil {
			return err
		}
		if err := c.delta(&v); err != nil {
			return err
		}
		if v > math.MaxInt64-sum {
			return formatError("root count overflows")
		}
		sum += v
		kids[i].Count = int64(v)
	}
	return c.children(n, kids)
}

// codeGodchildren codes the children of n relative to the children of its
// godparent. For every godchild gc the count of the child with the same
// token is bounded by the cursors of n not yet assigned to a child and by
// the cursors of gc not yet used by other nodes of the level. Godchildren
// with a bound of zero can't have a counterpart and aren't coded.
func codeGodchildren(c coder, n ppmtrie.Node, used map[int]int64) error {
	src := childrenOf(n)
	rem := n.CursorCount()
	var kids []ppmtrie.Child
	i := 0
	for _, gc := range n.Godparent().Children() {
		tok := gc.Token()
		present := i < len(src) && src[i].Token == tok
		ub := gc.CursorCount() - used[gc.Index()]
		if rem < ub {
			ub = rem
		}
		if ub <= 0 {
			if present {
				return errBound
			}
			continue
		}
		if err := c.flag(&present); err != nil {
			return err
		}
		if !present {
			continue
		}
		var v uint64
		if !c.reading() {
			v = uint64(src[i].Count - 1)
			i++
		}
		if err := c.bounded(&v, uint64(ub-1)); err != nil {
			return err
		}
		count := int64(v) + 1
		kids = append(kids, ppmtrie.Child{Token: tok, Count: count})
		rem -= count
		used[gc.Index()] += count
	}
	return c.children(n, kids)
}

// codeExplicit codes the number of children of n followed by the token and
// count of every child.
func codeExplicit(c coder, n ppmtrie.Node) error {
	src := childrenOf(n)
	rem := n.CursorCount()
	k := uint64(len(src))
	if err := c.bounded(&k, uint64(rem)); err != nil {
		return err
	}
	if k > maxChildren {
		return formatError("node %d has %d children", n.Index(), k)
	}
	kids := make([]ppmtrie.Child, k)
	for i := range kids {
		if rem <= 0 {
			if c.reading() {
				return formatError("counts exceed node %d",
					n.Index())
			}
			return errorf("children counts exceed node count")
		}
		var v uint64
		if !c.reading() {
			kids[i] = src[i]
			v = uint64(src[i].Count - 1)
		}
		if err := c.token(&kids[i].Token); err != nil {
			return err
		}
		if err := c.bounded(&v, uint64(rem-1)); err != nil {
			return err
		}
		kids[i].Count = int64(v) + 1
		rem -= kids[i].Count
	}
	return c.children(n, kids)
}
