// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppmtrie

import (
	"sort"

	"github.com/ulikunitz/ppmtrie/xlog"
)

// parallelCursors is the minimum number of cursors on a level for which
// the partitioning is distributed over workers.
const parallelCursors = 1 << 14

// Build indexes the documents. The root is split by the first token of its
// cursors; then every level of new nodes is split until a level produces no
// splits. After Build the document store is frozen.
func (t *Trie) Build() error {
	t.mu.Lock()
	if t.state != collecting {
		t.mu.Unlock()
		return ErrIndexing
	}
	t.state = indexing
	t.mu.Unlock()

	t.count[0] = int64(len(t.cursors))
	t.firstCursor[0] = 0
	level := []int32{0}
	for d := 0; len(level) > 0; d++ {
		splits := t.candidates(level, d)
		if len(splits) == 0 {
			break
		}
		groups := make([][]Child, len(splits))
		var total int64
		for _, n := range splits {
			total += t.count[n]
		}
		workers := t.cfg.Workers
		if total < parallelCursors {
			workers = 1
		}
		runTasks(workers, len(splits), func(i int) error {
			n := splits[i]
			groups[i] = t.partition(t.firstCursor[n], t.count[n],
				d+1)
			return nil
		})
		var next []int32
		for i, n := range splits {
			f := t.appendChildren(n, groups[i])
			for j, k := range groups[i] {
				if k.Token != EOS {
					next = append(next, f+int32(j))
				}
			}
		}
		xlog.Printf(debug, "level %d: split %d nodes, %d new nodes",
			d, len(splits), len(next))
		level = next
	}
	t.Recompute()

	t.mu.Lock()
	t.state = indexed
	t.mu.Unlock()
	return nil
}

// candidates returns the nodes of the level at depth d that satisfy the
// split rules: the depth is below the maximum number of levels and the
// godparent's cursor count exceeds the minimum weight.
func (t *Trie) candidates(level []int32, d int) []int32 {
	if d >= t.cfg.levels() {
		return nil
	}
	var splits []int32
	for _, n := range level {
		if t.count[n] == 0 {
			continue
		}
		if n != 0 {
			g := t.resolveGodparent(n)
			if t.count[g] <= t.cfg.MinWeight {
				continue
			}
		}
		splits = append(splits, n)
	}
	return splits
}

// keyedCursor is a cursor together with the token it points to.
type keyedCursor struct {
	tok Token
	c   Cursor
}

// partition sorts the cursor range [first, first+count) by the token the
// cursors point to at the given depth and returns the groups of equal
// tokens in ascending order. Cursors keep their relative order inside a
// group.
func (t *Trie) partition(first, count int64, depth int) []Child {
	cs := t.cursors[first : first+count]
	kc := make([]keyedCursor, len(cs))
	for i, c := range cs {
		kc[i] = keyedCursor{tok: t.tokenAt(c, depth), c: c}
	}
	sort.SliceStable(kc, func(i, j int) bool {
		return kc[i].tok < kc[j].tok
	})
	var kids []Child
	for i, k := range kc {
		cs[i] = k.c
		if len(kids) == 0 || kids[len(kids)-1].Token != k.tok {
			kids = append(kids, Child{Token: k.tok})
		}
		kids[len(kids)-1].Count++
	}
	return kids
}
