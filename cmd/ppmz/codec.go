// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"io"
	"log"

	"github.com/ulikunitz/ppmtrie"
	"github.com/ulikunitz/ppmtrie/ppm"
)

// codecFlags are the flags shared by encode and decode.
type codecFlags struct {
	*flagSet
	model  *string
	order  *int
	output *string
}

func newCodecFlags(name string) *codecFlags {
	fs := newFlagSet(name)
	return &codecFlags{
		flagSet: fs,
		model:   fs.StringP("model", "m", "", ""),
		order:   fs.IntP("order", "k", -1, ""),
		output:  fs.StringP("output", "o", "-", ""),
	}
}

// setup parses the arguments and loads the model. It returns the trie, the
// context order and the input path. Sample ignores the input path.
func (f *codecFlags) setup(args []string) (t *ppmtrie.Trie, order int, input string) {
	f.parse(args)
	if *f.model == "" {
		log.Fatal("model file must be given with -m")
	}
	switch f.NArg() {
	case 0:
		input = "-"
	case 1:
		input = f.Arg(0)
	default:
		log.Fatal("only a single input file is supported")
	}
	t, _, err := loadModel(*f.model)
	if err != nil {
		log.Fatal(err)
	}
	return t, contextOrder(t, *f.order), input
}

// contextOrder returns k or, for negative k, the height of the trie minus
// one.
func contextOrder(t *ppmtrie.Trie, k int) int {
	if k >= 0 {
		return k
	}
	if k = t.Height() - 1; k < 0 {
		k = 0
	}
	return k
}

func encode(args []string) {
	f := newCodecFlags("encode")
	t, order, input := f.setup(args)
	text, err := readText(input)
	if err != nil {
		log.Fatal(err)
	}
	err = writeOutput(*f.output, func(w io.Writer) error {
		_, err := ppm.EncodeTo(w, t, text, order)
		return err
	})
	if err != nil {
		log.Fatal(err)
	}
}

func decode(args []string) {
	f := newCodecFlags("decode")
	t, order, input := f.setup(args)
	data, err := readInput(input)
	if err != nil {
		log.Fatal(err)
	}
	text, err := ppm.DecodeFrom(bytes.NewReader(data), t, order)
	if err != nil {
		log.Fatal(err)
	}
	err = writeOutput(*f.output, func(w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	})
	if err != nil {
		log.Fatal(err)
	}
}
