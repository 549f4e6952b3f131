// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"io"
	"log"
	"time"

	"github.com/ulikunitz/ppmtrie/internal/randtxt"
)

func sample(args []string) {
	f := newCodecFlags("sample")
	n := f.IntP("tokens", "n", 1000, "")
	seed := f.Int64("seed", 0, "")
	t, order, _ := f.setup(args)
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	text := randtxt.NewSampler(t, order, *seed).Text(*n)
	err := writeOutput(*f.output, func(w io.Writer) error {
		_, err := io.WriteString(w, text+"\n")
		return err
	})
	if err != nil {
		log.Fatal(err)
	}
}
