// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppmtrie

import "github.com/ulikunitz/ppmtrie/xlog"

// shardTexts splits the texts into blocks of about size bytes. A text is
// never split; a block exceeds size only if it consists of a single text.
func shardTexts(texts []string, size int) [][]string {
	var blocks [][]string
	var block []string
	n := 0
	for _, s := range texts {
		if len(block) > 0 && n+len(s) > size {
			blocks = append(blocks, block)
			block, n = nil, 0
		}
		block = append(block, s)
		n += len(s)
	}
	if len(block) > 0 {
		blocks = append(blocks, block)
	}
	return blocks
}

// BuildShards builds a trie for the texts by splitting them into shards of
// about cfg.ShardSize bytes, building the shards independently on
// cfg.Workers goroutines and merging them pairwise with Combine and Sum.
// The result of more than one shard is truncated. A single shard is returned
// as built, with its documents.
//
// With a MinWeight of zero the merged trie equals the trie built from all
// texts at once.
func BuildShards(texts []string, cfg Config) (*Trie, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	blocks := shardTexts(texts, cfg.ShardSize)
	if len(blocks) <= 1 {
		t := newTrie(cfg)
		if err := t.AddDocuments(texts...); err != nil {
			return nil, err
		}
		if err := t.Build(); err != nil {
			return nil, err
		}
		return t, nil
	}
	xlog.Printf(debug, "building %d shards with %d workers",
		len(blocks), cfg.Workers)

	shardCfg := cfg
	shardCfg.Workers = 1
	shards := make([]*Trie, len(blocks))
	err := runTasks(cfg.Workers, len(blocks), func(i int) error {
		t := newTrie(shardCfg)
		if err := t.AddDocuments(blocks[i]...); err != nil {
			return err
		}
		if err := t.Build(); err != nil {
			return err
		}
		if err := t.Truncate(); err != nil {
			return err
		}
		shards[i] = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	for len(shards) > 1 {
		merged := make([]*Trie, (len(shards)+1)/2)
		err = runTasks(cfg.Workers, len(merged), func(i int) error {
			if 2*i+1 == len(shards) {
				merged[i] = shards[2*i]
				return nil
			}
			t, err := Combine(shards[2*i], shards[2*i+1], Sum)
			merged[i] = t
			return err
		})
		if err != nil {
			return nil, err
		}
		shards = merged
	}
	t := shards[0]
	t.cfg = cfg
	return t, nil
}
