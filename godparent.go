// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppmtrie

import "sync/atomic"

// resolveGodparent returns the index of the godparent of node i or noNode
// for the root. The value is computed on first access and memoized; it
// never changes afterwards because tokens and the nodes of shallower levels
// are fixed once assigned.
//
// The godparent of a depth-1 node is the root. For deeper nodes it is the
// child of the parent's godparent carrying the node's token, or the root if
// that child doesn't exist.
//
// Concurrent readers of a finished trie may race to fill an entry; they
// compute the same value, and the atomic accesses keep that well-defined.
func (t *Trie) resolveGodparent(i int32) int32 {
	g := atomic.LoadInt32(&t.godparent[i])
	if g != unresolved {
		return g
	}
	p := t.parent[i]
	g = 0
	if p > 0 {
		pg := Node{t: t, i: t.resolveGodparent(p)}
		if c, ok := pg.Child(t.token[i]); ok {
			g = c.i
		}
	}
	atomic.StoreInt32(&t.godparent[i], g)
	return g
}
