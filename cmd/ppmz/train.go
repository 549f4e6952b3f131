// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"
	"log"

	"github.com/ulikunitz/ppmtrie"
	"github.com/ulikunitz/ppmtrie/internal/corpus"
	"github.com/ulikunitz/ppmtrie/serial"
)

// seeder returns the seeding strategy for the name given on the command
// line.
func seeder(name string) (ppmtrie.Seeder, error) {
	switch name {
	case "full":
		return ppmtrie.FullTextSeed, nil
	case "word":
		return ppmtrie.WordSeed, nil
	case "boundary":
		return ppmtrie.TokenBoundarySeed, nil
	}
	return nil, fmt.Errorf("unknown seeding mode %q", name)
}

func train(args []string) {
	fs := newFlagSet("train")
	var (
		levels    = fs.IntP("levels", "l", ppmtrie.DefaultMaxLevels, "")
		minWeight = fs.Int64P("min-weight", "w", 0, "")
		seed      = fs.StringP("seed", "s", "full", "")
		lines     = fs.Bool("lines", false, "")
		workers   = fs.IntP("workers", "j", 0, "")
		shardSize = fs.Int("shard-size", ppmtrie.DefaultShardSize, "")
		comp      = fs.StringP("compress", "Z", string(serial.None), "")
		output    = fs.StringP("output", "o", "", "")
	)
	fs.parse(args)

	if *output == "" {
		log.Fatal("train: model file must be given with -o")
	}
	if fs.NArg() == 0 {
		log.Fatal("train: no input files")
	}
	s, err := seeder(*seed)
	if err != nil {
		log.Fatal(err)
	}
	c, err := serial.ParseCompression(*comp)
	if err != nil {
		log.Fatal(err)
	}
	cfg := ppmtrie.Config{
		MaxLevels: *levels,
		MinWeight: *minWeight,
		Seeder:    s,
		Workers:   *workers,
		ShardSize: *shardSize,
	}
	if err = cfg.Verify(); err != nil {
		log.Fatal(err)
	}

	files, err := loadFiles(fs.Args())
	if err != nil {
		log.Fatal(err)
	}
	var texts []string
	if *lines {
		texts = corpus.Lines(files)
	} else {
		texts = corpus.Texts(files)
	}
	t, err := ppmtrie.BuildShards(texts, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if !t.Truncated() {
		if err = t.Truncate(); err != nil {
			log.Fatal(err)
		}
	}
	err = writeOutput(*output, func(w io.Writer) error {
		return serial.Write(w, t, serial.WriterConfig{Compression: c})
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("trained %d nodes of height %d on %d documents (%d bytes)",
		t.Len(), t.Height(), len(texts), corpus.Size(files))
}
