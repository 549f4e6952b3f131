// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppmtrie

import "errors"

// Usage errors. They are returned immediately because continuing would
// silently break the structural invariants of the trie.
var (
	// ErrIndexing reports that documents have been added after indexing
	// has started.
	ErrIndexing = errors.New(
		"ppmtrie: documents must be added before indexing starts")
	// ErrSentinel reports a text containing the reserved code point
	// U+FFFF.
	ErrSentinel = errors.New(
		"ppmtrie: text contains the end-of-string sentinel U+FFFF")
	// ErrNotBuilt reports an operation that requires a built trie.
	ErrNotBuilt = errors.New("ppmtrie: trie has not been built")
	// ErrChildren reports an invalid argument to AppendChildren.
	ErrChildren = errors.New("ppmtrie: invalid children")
)
