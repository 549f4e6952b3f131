// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppmtrie

import (
	"encoding/binary"
	"hash/fnv"
)

// Equal compares two tries structurally: the children by token and the
// cursor counts must agree on all levels. Documents, cursors and node
// indexes are not compared.
func Equal(a, b *Trie) bool {
	return EqualNodes(a.Root(), b.Root())
}

// EqualNodes compares the subtries rooted at a and b.
func EqualNodes(a, b Node) bool {
	if a.CursorCount() != b.CursorCount() {
		return false
	}
	n := a.NumChildren()
	if n != b.NumChildren() {
		return false
	}
	for i := 0; i < n; i++ {
		x, y := a.ChildAt(i), b.ChildAt(i)
		if x.Token() != y.Token() || !EqualNodes(x, y) {
			return false
		}
	}
	return true
}

// Hash computes a hash of the trie that is consistent with Equal.
func (t *Trie) Hash() uint64 {
	h := fnv.New64a()
	var p [16]byte
	var walk func(n Node)
	walk = func(n Node) {
		binary.LittleEndian.PutUint16(p[:], uint16(n.Token()))
		binary.LittleEndian.PutUint32(p[2:], uint32(n.NumChildren()))
		binary.LittleEndian.PutUint64(p[6:], uint64(n.CursorCount()))
		h.Write(p[:14])
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(t.Root())
	return h.Sum64()
}
