// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppmtrie

// Traverse returns the node representing s exactly.
func (t *Trie) Traverse(s string) (n Node, ok bool) {
	return t.TraverseTokens(Tokens(s))
}

// TraverseTokens returns the node for the token sequence.
func (t *Trie) TraverseTokens(toks []Token) (n Node, ok bool) {
	n = t.Root()
	for _, c := range toks {
		if n, ok = n.Child(c); !ok {
			return Node{}, false
		}
	}
	return n, true
}

// LongestPrefix follows s from the root as far as possible. It returns the
// deepest node reached and the number of tokens matched.
func (t *Trie) LongestPrefix(s string) (n Node, matched int) {
	n = t.Root()
	for _, c := range Tokens(s) {
		child, ok := n.Child(c)
		if !ok {
			break
		}
		n = child
		matched++
	}
	return n, matched
}

// Context returns the context node for s: the node reached by reading s
// token by token and backing off along godparents whenever the current node
// has no child for the next token. Tokens without any coverage reset the
// context to the root. The empty string yields the root.
func (t *Trie) Context(s string) Node {
	n := t.Root()
	for _, c := range Tokens(s) {
		for {
			if child, ok := n.Child(c); ok {
				n = child
				break
			}
			g := n.Godparent()
			if !g.Valid() {
				break
			}
			n = g
		}
	}
	return n
}
