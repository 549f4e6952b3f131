// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package bitcode provides the integer codes used by the ppm codec and the
// trie serializer on top of a most-significant-bit-first bit stream.
//
// Three codes are supported:
//
//   - bounded codes: an integer known to lie in [0, max] is written with
//     the truncated binary code, which uses floor(log2(max+1)) or one more
//     bit and no bits at all for max == 0;
//   - delta codes: unbounded non-negative integers in the Elias delta code;
//   - interval codes: the shortest dyadic interval [v/2^n, (v+1)/2^n)
//     contained in [lo/total, hi/total), written as the n bits of v.
//
// The decoder of interval codes cannot know n in advance. It refines a
// Dyadic value bit by bit until the interval fits into one of its candidate
// ranges. Encoder and decoder share the predicate Dyadic.Within, so the
// number of bits produced and consumed is always identical.
package bitcode
