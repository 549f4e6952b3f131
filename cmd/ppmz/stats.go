// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kr/pretty"

	"github.com/ulikunitz/ppmtrie"
	"github.com/ulikunitz/ppmtrie/internal/corpus"
)

// measure writes the size of the ppm encoding of the files with the trie.
func measure(w io.Writer, t *ppmtrie.Trie, files []corpus.File, order int) error {
	n, err := corpus.EncodedSize(corpus.Texts(files), t, order)
	if err != nil {
		return err
	}
	size := corpus.Size(files)
	ratio := 0.0
	if size > 0 {
		ratio = float64(n) / float64(size)
	}
	_, err = fmt.Fprintf(w, "encoded: %d of %d bytes (%.3f) with order %d\n",
		n, size, ratio, order)
	return err
}

func stats(args []string) {
	fs := newFlagSet("stats")
	model := fs.StringP("model", "m", "", "")
	order := fs.IntP("order", "k", -1, "")
	fs.parse(args)
	paths := fs.Args()
	if *model == "" {
		if len(paths) == 0 {
			log.Fatal("model file must be given with -m")
		}
		*model, paths = paths[0], paths[1:]
	}
	t, h, err := loadModel(*model)
	if err != nil {
		log.Fatal(err)
	}
	fi, err := os.Stat(*model)
	if err != nil {
		log.Fatal(err)
	}
	pretty.Printf("file: %s (%d bytes)\n", *model, fi.Size())
	pretty.Printf("header: %# v\n", *h)
	pretty.Printf("stats: %# v\n", t.Stats())
	if len(paths) == 0 {
		return
	}
	files, err := loadFiles(paths)
	if err != nil {
		log.Fatal(err)
	}
	if err = measure(os.Stdout, t, files, contextOrder(t, *order)); err != nil {
		log.Fatal(err)
	}
}
