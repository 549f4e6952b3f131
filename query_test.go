// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppmtrie

import "testing"

func TestLongestPrefix(t *testing.T) {
	tr := buildTrie(t, Config{MaxLevels: 3}, foxTexts...)
	tests := []struct {
		s       string
		matched int
	}{
		{"", 0},
		{"the", 3},
		{"thez", 3},
		{"tez", 2},
		{"zzz", 1},
		{"###", 0},
	}
	for _, tc := range tests {
		n, k := tr.LongestPrefix(tc.s)
		if k != tc.matched {
			t.Fatalf("LongestPrefix(%q) matched %d; want %d",
				tc.s, k, tc.matched)
		}
		if n.Depth() != k {
			t.Fatalf("LongestPrefix(%q) node depth %d; want %d",
				tc.s, n.Depth(), k)
		}
	}
}

func TestContext(t *testing.T) {
	tr := buildTrie(t, Config{MaxLevels: 3}, foxTexts...)
	tests := []struct{ s, ctx string }{
		{"", ""},
		{"t", "t"},
		{"te", "te"},
		{"tes", "tes"},
		{"test", "est"},
		{"the lazy", "azy"},
		{"xyzzy", "zy"},
		{"q", "q"},
		{"qz", "z"},
		{"q#", ""},
	}
	for _, tc := range tests {
		n := tr.Context(tc.s)
		if s := n.String(); s != tc.ctx {
			t.Fatalf("Context(%q) = %q; want %q", tc.s, s, tc.ctx)
		}
	}
}

func TestTraverseMissing(t *testing.T) {
	tr := buildTrie(t, Config{MaxLevels: 3}, foxTexts...)
	n, ok := tr.Traverse("xyz")
	if ok || n.Valid() {
		t.Fatalf("Traverse(%q) = %v, %t; want invalid node", "xyz", n, ok)
	}
	if c := n.CursorCount(); c != 0 {
		t.Fatalf("CursorCount() = %d; want 0", c)
	}
	if k := n.NumChildren(); k != 0 {
		t.Fatalf("NumChildren() = %d; want 0", k)
	}
	if kids := n.Children(); kids != nil {
		t.Fatalf("Children() = %v; want nil", kids)
	}
	if _, ok = n.Child('a'); ok {
		t.Fatalf("invalid node has child %q", 'a')
	}
	if n.IsTerminal() || n.Godparent().Valid() || n.Parent().Valid() {
		t.Fatalf("invalid node has terminal flag, godparent or parent")
	}
	if s := n.String(); s != "<nil>" {
		t.Fatalf("String() = %q; want %q", s, "<nil>")
	}
}
