// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package randtxt generates random texts following the statistics of a
// context trie.
package randtxt

import (
	"math/rand"
	"sort"

	"github.com/ulikunitz/ppmtrie"
)

// Sampler draws tokens from the contexts of a trie. The probability of a
// token is the share of the cursors of the current context passing through
// the child with that token.
type Sampler struct {
	t     *ppmtrie.Trie
	order int
	rng   *rand.Rand
}

// NewSampler creates a sampler using contexts up to the given order.
func NewSampler(t *ppmtrie.Trie, order int, seed int64) *Sampler {
	return &Sampler{t: t, order: order, rng: rand.New(rand.NewSource(seed))}
}

// context backs off from n until a context of at most the sampler's order
// with children is found. It returns the invalid node if no such context
// exists.
func (s *Sampler) context(n ppmtrie.Node) ppmtrie.Node {
	for n.Valid() && (n.Depth() > s.order || n.NumChildren() == 0) {
		n = n.Godparent()
	}
	return n
}

// next draws a child of n using the cursor ranges of the children as the
// cumulative distribution.
func (s *Sampler) next(n ppmtrie.Node) ppmtrie.Node {
	r := n.FirstCursor() + s.rng.Int63n(n.CursorCount())
	kids := n.Children()
	j := sort.Search(len(kids), func(j int) bool {
		k := kids[j]
		return k.FirstCursor()+k.CursorCount() > r
	})
	return kids[j]
}

// Tokens returns up to n tokens. Generation stops early if an end of
// string is drawn.
func (s *Sampler) Tokens(n int) []ppmtrie.Token {
	var toks []ppmtrie.Token
	node := s.t.Root()
	for len(toks) < n {
		if node = s.context(node); !node.Valid() {
			break
		}
		node = s.next(node)
		if node.IsTerminal() {
			break
		}
		toks = append(toks, node.Token())
	}
	return toks
}

// Text returns a text of up to n tokens.
func (s *Sampler) Text(n int) string {
	return ppmtrie.TokenString(s.Tokens(n))
}
