// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ppm compresses texts by walking the contexts of a trie in the manner
of prediction by partial matching.

The encoder follows the text down the trie as long as the current context is
not deeper than the context order and has a child for the next token. When
the walk fails it writes a forward record, which identifies the node reached
by an interval code within the cursor range of the node the walk started
from, and a backup record giving the number of godparent steps to the
next context that can continue. Tokens no context covers are written as
16-bit literals after backing up beyond the root. The end of the text is
coded by walking the end-of-string token.

The trie and the context order must be the same for encoding and decoding.
*/
package ppm
