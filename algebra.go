// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppmtrie

import "github.com/ulikunitz/ppmtrie/xlog"

// Reducer combines the cursor counts of two aligned nodes. A missing node
// contributes a count of zero.
type Reducer func(x, y int64) int64

// Sum adds the counts. Combining shards with Sum yields the trie of the
// union of their documents.
func Sum(x, y int64) int64 { return x + y }

// Product multiplies the counts; it keeps only strings present in both
// tries.
func Product(x, y int64) int64 { return x * y }

// Ratio returns a reducer computing scale*x/y. Nodes missing in the second
// trie get the count zero.
func Ratio(scale int64) Reducer {
	return func(x, y int64) int64 {
		if y == 0 {
			return 0
		}
		return scale * x / y
	}
}

// pair aligns a node of the result with the nodes of both operands.
type pair struct {
	r    int32
	a, b Node
}

// countOf returns the count of n or zero for the invalid node.
func countOf(n Node) int64 {
	if !n.Valid() {
		return 0
	}
	return n.CursorCount()
}

// Combine walks both tries breadth-first, aligns children by token and
// applies f to their cursor counts. Nodes with a combined count below one
// are dropped together with their subtrees. The result has no documents;
// its counts and cursor offsets are recomputed. The configuration of a is
// used for the result.
func Combine(a, b *Trie, f Reducer) (*Trie, error) {
	for _, t := range []*Trie{a, b} {
		if !t.Built() {
			return nil, ErrNotBuilt
		}
	}
	r := newTrie(a.cfg)
	r.state = truncated
	r.count[0] = f(a.count[0], b.count[0])
	if r.count[0] < 0 {
		r.count[0] = 0
	}
	queue := []pair{{r: 0, a: a.Root(), b: b.Root()}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		kids, src := mergeChildren(p.a, p.b, f)
		if len(kids) == 0 {
			continue
		}
		first := r.appendChildren(p.r, kids)
		for i, s := range src {
			queue = append(queue,
				pair{r: first + int32(i), a: s.a, b: s.b})
		}
	}
	r.Recompute()
	xlog.Printf(debug, "combine: %d + %d nodes -> %d nodes",
		a.Len(), b.Len(), r.Len())
	return r, nil
}

// mergeChildren merges the children of a and b by token. Either node may
// be invalid. It returns the combined children and their source nodes.
func mergeChildren(a, b Node, f Reducer) (kids []Child, src []pair) {
	var ak, bk []Node
	if a.Valid() {
		ak = a.Children()
	}
	if b.Valid() {
		bk = b.Children()
	}
	i, j := 0, 0
	for i < len(ak) || j < len(bk) {
		var x, y Node
		switch {
		case j == len(bk) || (i < len(ak) && ak[i].Token() < bk[j].Token()):
			x = ak[i]
			i++
		case i == len(ak) || bk[j].Token() < ak[i].Token():
			y = bk[j]
			j++
		default:
			x, y = ak[i], bk[j]
			i++
			j++
		}
		var tok Token
		if x.Valid() {
			tok = x.Token()
		} else {
			tok = y.Token()
		}
		c := f(countOf(x), countOf(y))
		if c < 1 {
			continue
		}
		kids = append(kids, Child{Token: tok, Count: c})
		src = append(src, pair{a: x, b: y})
	}
	return kids, src
}
