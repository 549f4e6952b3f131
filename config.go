// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppmtrie

import (
	"errors"
	"runtime"
)

const (
	// DefaultMaxLevels is the default maximum depth of a trie.
	DefaultMaxLevels = 8
	// DefaultShardSize is the default size of a document block for
	// BuildShards.
	DefaultShardSize = 1 << 20
	// RootOnly as MaxLevels prevents any splitting. The trie consists of
	// the root counting all cursors.
	RootOnly = -1
)

// Seeder decides at which offsets of a document cursors are placed. The
// offset pos is in the range [0, len(doc)]; the offset len(doc) starts the
// empty suffix.
type Seeder func(doc []Token, pos int) bool

// WordSeed places one cursor at the start of each document. The leaves of
// the resulting trie are whole documents.
func WordSeed(doc []Token, pos int) bool { return pos == 0 }

// FullTextSeed places a cursor at every offset, including the end of the
// document. The result is a general suffix trie.
func FullTextSeed(doc []Token, pos int) bool { return true }

// BoundarySeed returns a seeder placing cursors at the start of the
// document and after every token for which isBoundary returns true.
func BoundarySeed(isBoundary func(t Token) bool) Seeder {
	return func(doc []Token, pos int) bool {
		return pos == 0 || isBoundary(doc[pos-1])
	}
}

// TokenBoundarySeed places cursors at the start of the document and after
// every space.
func TokenBoundarySeed(doc []Token, pos int) bool {
	return pos == 0 || doc[pos-1] == ' '
}

// Config describes the parameters for building a trie.
type Config struct {
	// MaxLevels limits the depth of the trie (default: 8). RootOnly
	// disables splitting.
	MaxLevels int

	// Nodes are only split if the cursor count of their godparent
	// exceeds MinWeight (default: 0).
	MinWeight int64

	// Seeder places the cursors (default: FullTextSeed).
	Seeder Seeder

	// Workers defines the number of goroutines used for building. If it
	// is zero GOMAXPROCS determines the number of goroutines.
	Workers int

	// ShardSize is the approximate number of bytes of text in a shard
	// built by BuildShards (default: 1 MiB).
	ShardSize int
}

// ApplyDefaults replaces zero values by the defaults.
func (c *Config) ApplyDefaults() {
	if c.MaxLevels == 0 {
		c.MaxLevels = DefaultMaxLevels
	}
	if c.Seeder == nil {
		c.Seeder = FullTextSeed
	}
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.ShardSize == 0 {
		c.ShardSize = DefaultShardSize
	}
}

// Verify checks the configuration for errors. Zero values will be replaced
// by default values.
func (c *Config) Verify() error {
	if c == nil {
		return errors.New("ppmtrie: configuration is nil")
	}
	c.ApplyDefaults()
	if c.MaxLevels < RootOnly {
		return errors.New("ppmtrie: MaxLevels out of range")
	}
	if c.MaxLevels > maxDepth {
		return errors.New("ppmtrie: MaxLevels too large")
	}
	if c.MinWeight < 0 {
		return errors.New("ppmtrie: MinWeight must not be negative")
	}
	if c.Workers < 1 {
		return errors.New("ppmtrie: Workers must be positive")
	}
	if c.ShardSize < 1 {
		return errors.New("ppmtrie: ShardSize must be positive")
	}
	return nil
}

// levels returns the effective maximum depth.
func (c *Config) levels() int {
	if c.MaxLevels == RootOnly {
		return 0
	}
	return c.MaxLevels
}
