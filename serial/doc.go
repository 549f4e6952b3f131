// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package serial stores tries in a compact model file.

A model file starts with the magic "PPMT", a version byte and a CBOR
header, followed by the payload describing the trie level by level. The
payload can be compressed with xz or zstd.

The payload uses bounded integer codes. In godparent mode the children of a
node are described relative to the children of its godparent: a presence
bit for each godchild and a count bounded by the cursors the node and the
godchild have left. Tries that don't satisfy these bounds, for instance
tries built with word seeding, are written in explicit mode, which lists
the tokens and counts of the children.

Writer and reader share the function that walks the levels of the trie;
only the coder differs, which either writes values or reads them.
*/
package serial
