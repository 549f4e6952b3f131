// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Command ppmz trains context tries on text corpora and compresses texts
// with them.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ogier/pflag"

	"github.com/ulikunitz/ppmtrie"
	"github.com/ulikunitz/ppmtrie/ppm"
	"github.com/ulikunitz/ppmtrie/serial"
	"github.com/ulikunitz/ppmtrie/xlog"
)

const usageStr = `Usage: ppmz COMMAND [OPTION]... [FILE]...
Train context tries and compress texts with them.

Commands:
  train   build a model from the FILEs and directories
  encode  compress FILE with a model
  decode  decompress FILE with a model
  stats   print information about a model and the encoded size of the
          FILEs and directories following it
  sample  generate random text from a model

Train options:
  -l, --levels N       maximum depth of the trie; default 8
  -w, --min-weight N   split only nodes whose godparent has more cursors
  -s, --seed MODE      cursor seeding: full, word or boundary; default full
      --lines          index every line as a separate document
  -j, --workers N      number of goroutines; default all processors
      --shard-size N   bytes of text per shard; default 1 MiB
  -Z, --compress C     model compression: none, xz or zstd; default none
  -o, --output MODEL   model file

Encode, decode, stats and sample options:
  -m, --model MODEL    model file
  -k, --order N        context order; default height of the model minus 1
  -o, --output FILE    output file; default standard output
  -n, --tokens N       number of tokens to sample; default 1000
      --seed N         seed for sampling; default current time

Common options:
  -h, --help           give this help
  -v, --verbose        write debug information to standard error

With no FILE, or when FILE is -, encode and decode read standard input.
`

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

// command describes a subcommand.
type command struct {
	name string
	run  func(args []string)
}

var commands = []command{
	{"train", train},
	{"encode", encode},
	{"decode", decode},
	{"stats", stats},
	{"sample", sample},
}

var cmdName string

// flagSet adds the common flags to a pflag.FlagSet.
type flagSet struct {
	*pflag.FlagSet
	help    *bool
	verbose *bool
}

// newFlagSet creates the flags for a subcommand.
func newFlagSet(name string) *flagSet {
	fs := pflag.NewFlagSet(cmdName+" "+name, pflag.ExitOnError)
	fs.SetInterspersed(true)
	fs.Usage = func() { usage(os.Stderr); os.Exit(1) }
	return &flagSet{
		FlagSet: fs,
		help:    fs.BoolP("help", "h", false, ""),
		verbose: fs.BoolP("verbose", "v", false, ""),
	}
}

// parse parses the arguments and handles the common flags.
func (f *flagSet) parse(args []string) {
	if err := f.Parse(args); err != nil {
		log.Fatal(err)
	}
	if *f.help {
		usage(os.Stdout)
		os.Exit(0)
	}
	if *f.verbose {
		l := xlog.New(os.Stderr, cmdName+": ")
		ppmtrie.SetLogger(l)
		ppm.SetLogger(l)
		serial.SetLogger(l)
	}
}

func main() {
	// setup logger
	cmdName = filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)

	if len(os.Args) < 2 {
		log.Fatalf("for help, type %s -h", cmdName)
	}
	name := os.Args[1]
	switch name {
	case "-h", "--help", "help":
		usage(os.Stdout)
		os.Exit(0)
	}
	for _, c := range commands {
		if c.name == name {
			c.run(os.Args[2:])
			return
		}
	}
	log.Fatalf("unknown command %q; for help, type %s -h", name, cmdName)
}
