// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppm

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/ulikunitz/ppmtrie"
	"github.com/ulikunitz/ppmtrie/internal/randtxt"
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

func roundTrip(t *testing.T, tr *ppmtrie.Trie, text string, order int) []byte {
	t.Helper()
	data, err := Encode(tr, text, order)
	if err != nil {
		t.Fatalf("Encode(%q, %d) error %s", text, order, err)
	}
	s, err := Decode(tr, data, order)
	if err != nil {
		t.Fatalf("Decode error %s", err)
	}
	if s != text {
		t.Fatalf("order %d: decoded %q; want %q", order, s, text)
	}
	return data
}

func TestABBA(t *testing.T) {
	tr := buildTrie(t, ppmtrie.Config{MaxLevels: 2}, "ababababab")
	roundTrip(t, tr, "ab ba", 1)
}

const corpus = "this is a test. this is only a test. - nikola tesla. " +
	"a quick brown fox jumped over the lazy dog."

var texts = []string{
	"",
	"a",
	"this is a test.",
	"the lazy fox is only a dog",
	"nikola tesla jumped over the quick brown fox",
	"zebras & yaks: out of vocabulary!",
	"unicode: äöü € 😀",
	"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
}

func TestRoundTrip(t *testing.T) {
	seeders := []ppmtrie.Seeder{
		ppmtrie.FullTextSeed,
		ppmtrie.WordSeed,
		ppmtrie.TokenBoundarySeed,
	}
	for _, seed := range seeders {
		for _, levels := range []int{ppmtrie.RootOnly, 1, 3, 6} {
			cfg := ppmtrie.Config{MaxLevels: levels, Seeder: seed}
			tr := buildTrie(t, cfg, corpus)
			for order := 0; order <= 7; order++ {
				for _, text := range texts {
					roundTrip(t, tr, text, order)
				}
			}
		}
	}
}

func TestRoundTripTruncated(t *testing.T) {
	tr := buildTrie(t, ppmtrie.Config{MaxLevels: 4, MinWeight: 2}, corpus)
	if err := tr.Truncate(); err != nil {
		t.Fatalf("Truncate error %s", err)
	}
	for _, text := range texts {
		roundTrip(t, tr, text, 3)
	}
}

func TestCompression(t *testing.T) {
	tr := buildTrie(t, ppmtrie.Config{MaxLevels: 5}, corpus)
	const text = "this is only a test."
	data := roundTrip(t, tr, text, 4)
	if len(data) >= len(text) {
		t.Fatalf("encoded %d bytes into %d bytes", len(text), len(data))
	}
	empty := buildTrie(t, ppmtrie.Config{MaxLevels: ppmtrie.RootOnly})
	lit := roundTrip(t, empty, text, 4)
	if len(lit) <= len(data) {
		t.Fatalf("literal coding %d bytes not larger than %d bytes",
			len(lit), len(data))
	}
}

func TestEncodeErrors(t *testing.T) {
	tr := buildTrie(t, ppmtrie.Config{MaxLevels: 2}, "abc")
	if _, err := Encode(tr, "abc", -1); !errors.Is(err, ErrOrder) {
		t.Fatalf("Encode returned %v; want %v", err, ErrOrder)
	}
	if _, err := Decode(tr, nil, -1); !errors.Is(err, ErrOrder) {
		t.Fatalf("Decode returned %v; want %v", err, ErrOrder)
	}
	_, err := Encode(tr, "a\uffffb", 1)
	if !errors.Is(err, ppmtrie.ErrSentinel) {
		t.Fatalf("Encode returned %v; want %v", err, ppmtrie.ErrSentinel)
	}
}

func TestDecodeShort(t *testing.T) {
	tr := buildTrie(t, ppmtrie.Config{MaxLevels: 4}, corpus)
	const text = "this is a test of the quick fox"
	data, err := Encode(tr, text, 3)
	if err != nil {
		t.Fatalf("Encode error %s", err)
	}
	for n := 0; n < len(data); n++ {
		s, err := Decode(tr, data[:n], 3)
		if err != nil {
			t.Fatalf("Decode(data[:%d]) error %s", n, err)
		}
		if !strings.HasPrefix(text, s) {
			t.Fatalf("Decode(data[:%d]) = %q", n, s)
		}
	}
	s, err := Decode(tr, nil, 3)
	if err != nil || s != "" {
		t.Fatalf("Decode(nil) = %q, %v; want empty string", s, err)
	}
}

func TestDecodeDebug(t *testing.T) {
	var buf bytes.Buffer
	debugOn(&buf)
	defer debugOff()
	tr := buildTrie(t, ppmtrie.Config{MaxLevels: 3}, corpus)
	roundTrip(t, tr, "a test", 2)
	if !strings.Contains(buf.String(), "ppm encoded 6 tokens") {
		t.Fatalf("debug output %q", buf.String())
	}
}

func TestConcurrent(t *testing.T) {
	tr := buildTrie(t, ppmtrie.Config{MaxLevels: 5}, corpus)
	if err := tr.Truncate(); err != nil {
		t.Fatalf("Truncate error %s", err)
	}
	var wg sync.WaitGroup
	errs := make(chan error, len(texts))
	for _, text := range texts {
		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			for order := 0; order < 6; order++ {
				data, err := Encode(tr, text, order)
				if err != nil {
					errs <- err
					return
				}
				s, err := Decode(tr, data, order)
				if err != nil {
					errs <- err
					return
				}
				if s != text {
					errs <- errors.New("decoded text differs")
					return
				}
			}
		}(text)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent round trip error %s", err)
	}
}

func TestRandomTexts(t *testing.T) {
	tr := buildTrie(t, ppmtrie.Config{MaxLevels: 6}, corpus)
	for order := 0; order < 7; order++ {
		// texts sampled with a higher order than used for coding
		s := randtxt.NewSampler(tr, order+1, int64(order))
		for i := 0; i < 10; i++ {
			roundTrip(t, tr, s.Text(200), order)
		}
	}
}
