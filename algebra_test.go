// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppmtrie

import (
	"errors"
	"testing"
)

func TestCombineSum(t *testing.T) {
	cfg := Config{MaxLevels: 4}
	a := buildTrie(t, cfg, foxTexts[0])
	b := buildTrie(t, cfg, foxTexts[1])
	c, err := Combine(a, b, Sum)
	if err != nil {
		t.Fatalf("Combine error %s", err)
	}
	if !c.Truncated() {
		t.Fatalf("combined trie has documents")
	}
	checkInvariants(t, c)
	all := buildTrie(t, cfg, foxTexts...)
	if !Equal(c, all) {
		t.Fatalf("Combine(a, b, Sum) differs from the trie of both texts")
	}
	if c.Hash() != all.Hash() {
		t.Fatalf("equal tries have different hashes")
	}
	if c.Height() != all.Height() {
		t.Fatalf("Height() = %d; want %d", c.Height(), all.Height())
	}
}

func TestCombineProduct(t *testing.T) {
	cfg := Config{MaxLevels: 3}
	a := buildTrie(t, cfg, foxTexts[0])
	b := buildTrie(t, cfg, foxTexts[1])
	c, err := Combine(a, b, Product)
	if err != nil {
		t.Fatalf("Combine error %s", err)
	}
	checkInvariants(t, c)
	for _, s := range []string{"dog", "tes", "the", "is"} {
		if _, ok := c.Traverse(s); ok {
			t.Fatalf("product contains %q", s)
		}
	}
	n, ok := c.Traverse("th")
	if !ok {
		t.Fatalf("product misses %q", "th")
	}
	if n.NumChildren() != 0 || n.CursorCount() != 2 {
		t.Fatalf("product node %q: %d children, count %d",
			n, n.NumChildren(), n.CursorCount())
	}
}

func TestCombineRatio(t *testing.T) {
	a := buildTrie(t, Config{MaxLevels: 3}, foxTexts...)
	c, err := Combine(a, a, Ratio(100))
	if err != nil {
		t.Fatalf("Combine error %s", err)
	}
	if c.Len() != a.Len() {
		t.Fatalf("Len() = %d; want %d", c.Len(), a.Len())
	}
	for i := 0; i < c.Len(); i++ {
		n := c.Node(i)
		if n.NumChildren() == 0 && n.CursorCount() != 100 {
			t.Fatalf("leaf %q has count %d; want %d",
				n, n.CursorCount(), 100)
		}
	}
}

func TestCombineNotBuilt(t *testing.T) {
	a, err := New(Config{})
	if err != nil {
		t.Fatalf("New error %s", err)
	}
	b := buildTrie(t, Config{}, "abc")
	if _, err = Combine(a, b, Sum); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("Combine returned %v; want %v", err, ErrNotBuilt)
	}
}

func TestAppendChildren(t *testing.T) {
	tr, err := NewEmpty(Config{MaxLevels: 3}, 5)
	if err != nil {
		t.Fatalf("NewEmpty error %s", err)
	}
	root := tr.Root()
	bad := [][]Child{
		{{Token: 'b', Count: 1}, {Token: 'a', Count: 1}},
		{{Token: 'a', Count: 0}},
		{{Token: 'a', Count: 1}, {Token: 'a', Count: 1}},
	}
	for _, kids := range bad {
		if err = tr.AppendChildren(root, kids); !errors.Is(err, ErrChildren) {
			t.Fatalf("AppendChildren(%v) returned %v; want %v",
				kids, err, ErrChildren)
		}
	}
	kids := []Child{{Token: 'a', Count: 3}, {Token: EOS, Count: 2}}
	if err = tr.AppendChildren(root, kids); err != nil {
		t.Fatalf("AppendChildren error %s", err)
	}
	if err = tr.AppendChildren(root, kids); !errors.Is(err, ErrChildren) {
		t.Fatalf("second AppendChildren returned %v; want %v",
			err, ErrChildren)
	}
	end, ok := root.Child(EOS)
	if !ok {
		t.Fatalf("root has no terminal child")
	}
	err = tr.AppendChildren(end, []Child{{Token: 'a', Count: 1}})
	if !errors.Is(err, ErrChildren) {
		t.Fatalf("AppendChildren on terminal returned %v; want %v",
			err, ErrChildren)
	}
	a, _ := root.Child('a')
	err = tr.AppendChildren(a, []Child{{Token: 'a', Count: 2},
		{Token: 'b', Count: 1}})
	if err != nil {
		t.Fatalf("AppendChildren error %s", err)
	}
	tr.Recompute()
	checkInvariants(t, tr)
	if tr.Height() != 2 {
		t.Fatalf("Height() = %d; want %d", tr.Height(), 2)
	}
	if n, ok := tr.Traverse("ab"); !ok || n.FirstCursor() != 2 {
		t.Fatalf("Traverse(%q) = %v, %t", "ab", n, ok)
	}

	built := buildTrie(t, Config{}, "ab")
	if err = built.AppendChildren(built.Root(), kids); !errors.Is(err, ErrChildren) {
		t.Fatalf("AppendChildren on indexed trie returned %v; want %v",
			err, ErrChildren)
	}
}
