// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package ppmtrie builds character-level context tries over a document
// corpus. The tries are the statistical model of the prediction by partial
// matching codec in the ppm package and can be persisted with the serial
// package.
//
// A trie node represents a string, the labels on the path from the root.
// Every node counts the suffix instances of the corpus, called cursors,
// that start with its string. Nodes are stored in a flat arena and are
// addressed by index; the children of a node occupy a contiguous index range
// sorted by token, so a child can be found by binary search.
//
// The trie is built level by level. All documents must be added before
// Build is called:
//
//	t, err := ppmtrie.New(ppmtrie.Config{MaxLevels: 3})
//	if err != nil {
//		log.Fatal(err)
//	}
//	t.AddDocument("a quick brown fox jumped over the lazy dog")
//	t.AddDocument("this is a test. this is only a test.")
//	if err = t.Build(); err != nil {
//		log.Fatal(err)
//	}
//	n, ok := t.Traverse("te")
//
// Every node except the root has a godparent, the node for its string with
// the first token removed. Godparents provide the context backoff of the
// codec and the count bounds of the serializer.
//
// Tokens are UTF-16 code units. The code unit 0xFFFF is reserved as the
// end-of-string sentinel EOS.
package ppmtrie
