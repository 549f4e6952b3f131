// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppmtrie

import (
	"testing"

	"github.com/kr/pretty"
)

var shardTestTexts = []string{
	"abracadabra",
	"a quick brown fox jumped over the lazy dog",
	"mississippi",
	"this is a test. this is only a test. - nikola tesla",
	"she sells sea shells by the sea shore",
}

func TestShardTexts(t *testing.T) {
	blocks := shardTexts([]string{"aaaa", "bb", "cc", "dddddddd", "e"}, 5)
	want := []int{1, 2, 1, 1}
	if len(blocks) != len(want) {
		t.Fatalf("got %d blocks; want %d", len(blocks), len(want))
	}
	for i, b := range blocks {
		if len(b) != want[i] {
			t.Fatalf("block %d has %d texts; want %d",
				i, len(b), want[i])
		}
	}
	if blocks := shardTexts(nil, 5); len(blocks) != 0 {
		t.Fatalf("shardTexts(nil) returned %d blocks", len(blocks))
	}
}

func TestBuildShards(t *testing.T) {
	cfg := Config{MaxLevels: 5, ShardSize: 12, Workers: 3}
	s, err := BuildShards(shardTestTexts, cfg)
	if err != nil {
		t.Fatalf("BuildShards error %s", err)
	}
	checkInvariants(t, s)
	all := buildTrie(t, Config{MaxLevels: 5}, shardTestTexts...)
	if !Equal(s, all) {
		t.Fatalf("sharded trie differs from single build")
	}
	if err = all.Truncate(); err != nil {
		t.Fatalf("Truncate error %s", err)
	}
	if d := pretty.Diff(all.Stats(), s.Stats()); len(d) > 0 {
		t.Fatalf("stats differ: %v", d)
	}
	if s.Config().ShardSize != 12 {
		t.Fatalf("ShardSize %d; want %d", s.Config().ShardSize, 12)
	}
}

func TestBuildShardsSingle(t *testing.T) {
	s, err := BuildShards(foxTexts, Config{MaxLevels: 3})
	if err != nil {
		t.Fatalf("BuildShards error %s", err)
	}
	if s.Truncated() {
		t.Fatalf("single shard has been truncated")
	}
	if s.NumDocuments() != 2 {
		t.Fatalf("NumDocuments() = %d; want %d", s.NumDocuments(), 2)
	}
	n, ok := s.Traverse("te")
	if !ok || n.CursorCount() != 3 {
		t.Fatalf("Traverse(%q) = %v, %t; want count 3", "te", n, ok)
	}
}
