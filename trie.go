// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppmtrie

import (
	"fmt"
	"sync"
)

// maxDepth limits the depth of a trie.
const maxDepth = 1 << 12

// unresolved marks a godparent entry that hasn't been computed yet.
const unresolved int32 = -2

// noNode is used for a missing parent or godparent.
const noNode int32 = -1

// state describes the life cycle of a trie.
type state int

const (
	// documents and cursors can be added
	collecting state = iota
	// the trie is being split; documents are frozen
	indexing
	// the trie is complete and still has its documents
	indexed
	// documents and cursors have been discarded
	truncated
)

// Child describes a child node by its token and cursor count.
type Child struct {
	Token Token
	Count int64
}

// Trie is a context trie stored as a flat arena of nodes. The fields of the
// nodes are kept in parallel slices indexed by the node index; the root has
// index 0. The children of a node occupy the index range
// [firstChild, firstChild+childCount) and are sorted by token.
//
// A built trie is immutable and may be read by multiple goroutines.
type Trie struct {
	cfg Config

	// mu serializes the growth of the arena.
	mu sync.Mutex

	token       []Token
	childCount  []int32
	firstChild  []int32
	count       []int64
	firstCursor []int64
	parent      []int32
	depth       []int32
	// godparent entries are accessed atomically, see godparent.go
	godparent []int32
	height    int

	docs    [][]Token
	cursors []Cursor
	state   state
}

// newTrie creates a trie consisting of the root only.
func newTrie(cfg Config) *Trie {
	t := &Trie{cfg: cfg}
	t.token = append(t.token, EOS)
	t.childCount = append(t.childCount, 0)
	t.firstChild = append(t.firstChild, 0)
	t.count = append(t.count, 0)
	t.firstCursor = append(t.firstCursor, 0)
	t.parent = append(t.parent, noNode)
	t.depth = append(t.depth, 0)
	t.godparent = append(t.godparent, noNode)
	return t
}

// New creates an empty trie that collects documents for indexing.
func New(cfg Config) (*Trie, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	return newTrie(cfg), nil
}

// NewEmpty creates a trie without documents whose root has the given cursor
// count. The nodes must be added with AppendChildren in breadth-first
// order; Recompute must be called afterwards. Decoders of persisted tries
// use this function.
func NewEmpty(cfg Config, rootCount int64) (*Trie, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	if rootCount < 0 {
		return nil, fmt.Errorf("ppmtrie: negative root count %d",
			rootCount)
	}
	t := newTrie(cfg)
	t.count[0] = rootCount
	t.state = truncated
	return t, nil
}

// Config returns the configuration of the trie.
func (t *Trie) Config() Config { return t.cfg }

// Len returns the number of nodes.
func (t *Trie) Len() int { return len(t.token) }

// Height returns the maximum depth of a node in the trie.
func (t *Trie) Height() int { return t.height }

// Root returns the root node.
func (t *Trie) Root() Node { return Node{t: t, i: 0} }

// Node returns the node with index i.
func (t *Trie) Node(i int) Node {
	if !(0 <= i && i < len(t.token)) {
		panic(fmt.Errorf("ppmtrie: node index %d out of range", i))
	}
	return Node{t: t, i: int32(i)}
}

// Truncate discards documents and cursors. The trie keeps its structure
// and cursor counts.
func (t *Trie) Truncate() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch t.state {
	case collecting, indexing:
		return ErrNotBuilt
	}
	t.docs = nil
	t.cursors = nil
	t.state = truncated
	return nil
}

// Built reports whether the trie structure is complete. This is the case
// after Build or for tries created by Combine and NewEmpty.
func (t *Trie) Built() bool {
	return t.state == indexed || t.state == truncated
}

// Truncated reports whether the trie holds no documents.
func (t *Trie) Truncated() bool { return t.state == truncated }

// appendChildren appends the children of node n. The children get
// consecutive cursor ranges starting at the first cursor of n.
func (t *Trie) appendChildren(n int32, kids []Child) (first int32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	first = int32(len(t.token))
	off := t.firstCursor[n]
	d := t.depth[n] + 1
	for _, k := range kids {
		t.token = append(t.token, k.Token)
		t.childCount = append(t.childCount, 0)
		t.firstChild = append(t.firstChild, 0)
		t.count = append(t.count, k.Count)
		t.firstCursor = append(t.firstCursor, off)
		t.parent = append(t.parent, n)
		t.depth = append(t.depth, d)
		t.godparent = append(t.godparent, unresolved)
		off += k.Count
	}
	t.firstChild[n] = first
	t.childCount[n] = int32(len(kids))
	if len(kids) > 0 && int(d) > t.height {
		t.height = int(d)
	}
	return first
}

// AppendChildren adds the children of the leaf n to a trie created by
// NewEmpty. The children must be sorted by token without duplicates and
// have positive counts. Terminal nodes cannot have children.
func (t *Trie) AppendChildren(n Node, kids []Child) error {
	if n.t != t {
		return fmt.Errorf("%w: node of another trie", ErrChildren)
	}
	if t.state != truncated {
		return fmt.Errorf("%w: trie has documents", ErrChildren)
	}
	if t.childCount[n.i] > 0 {
		return fmt.Errorf("%w: node %d has already children",
			ErrChildren, n.i)
	}
	if n.IsTerminal() && len(kids) > 0 {
		return fmt.Errorf("%w: terminal node %d", ErrChildren, n.i)
	}
	if int(t.depth[n.i]) >= maxDepth {
		return fmt.Errorf("%w: trie too deep", ErrChildren)
	}
	for i, k := range kids {
		if k.Count <= 0 {
			return fmt.Errorf("%w: count %d for token %s",
				ErrChildren, k.Count, k.Token)
		}
		if i > 0 && kids[i-1].Token >= k.Token {
			return fmt.Errorf("%w: tokens not sorted", ErrChildren)
		}
	}
	t.appendChildren(n.i, kids)
	return nil
}

// Recompute restores the count invariants: the cursor count of an inner
// node is the sum of the counts of its children and the cursor ranges of the
// children partition the range of their parent. Counts are summed
// bottom-up, then the first-cursor offsets are assigned top-down.
func (t *Trie) Recompute() {
	// children have always larger indexes than their parents
	for i := len(t.token) - 1; i >= 0; i-- {
		c := t.childCount[i]
		if c == 0 {
			continue
		}
		var sum int64
		f := t.firstChild[i]
		for j := f; j < f+c; j++ {
			sum += t.count[j]
		}
		t.count[i] = sum
	}
	t.firstCursor[0] = 0
	for i := range t.token {
		off := t.firstCursor[i]
		f := t.firstChild[i]
		for j := f; j < f+t.childCount[i]; j++ {
			t.firstCursor[j] = off
			off += t.count[j]
		}
	}
}
