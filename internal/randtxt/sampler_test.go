// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package randtxt

import (
	"strings"
	"testing"

	"github.com/ulikunitz/ppmtrie"
)

func buildTrie(t *testing.T, cfg ppmtrie.Config, texts ...string) *ppmtrie.Trie {
	t.Helper()
	tr, err := ppmtrie.New(cfg)
	if err != nil {
		t.Fatalf("New error %s", err)
	}
	if err = tr.AddDocuments(texts...); err != nil {
		t.Fatalf("AddDocuments error %s", err)
	}
	if err = tr.Build(); err != nil {
		t.Fatalf("Build error %s", err)
	}
	return tr
}

func TestSampler(t *testing.T) {
	const text = "abcabcabcabcabcabcabcabcabcabcabcabc"
	tr := buildTrie(t, ppmtrie.Config{MaxLevels: 3}, text)
	s := NewSampler(tr, 2, 1)
	for i := 0; i < 20; i++ {
		g := s.Text(40)
		if len(g) > 40 {
			t.Fatalf("text %q longer than 40", g)
		}
		if len(g) < 3 {
			continue
		}
		// with order 2 every trigram of the output occurs in the text
		for k := 0; k+3 <= len(g); k++ {
			if !strings.Contains(text, g[k:k+3]) {
				t.Fatalf("trigram %q of %q not in text",
					g[k:k+3], g)
			}
		}
	}
}

func TestSamplerDeterministic(t *testing.T) {
	tr := buildTrie(t, ppmtrie.Config{MaxLevels: 4},
		"the quick brown fox jumps over the lazy dog")
	a := NewSampler(tr, 3, 42).Text(100)
	b := NewSampler(tr, 3, 42).Text(100)
	if a != b {
		t.Fatalf("same seed produced %q and %q", a, b)
	}
}

func TestSamplerEmpty(t *testing.T) {
	tr := buildTrie(t, ppmtrie.Config{MaxLevels: ppmtrie.RootOnly}, "abc")
	if s := NewSampler(tr, 2, 1).Text(10); s != "" {
		t.Fatalf("sampling a root-only trie returned %q", s)
	}
}
