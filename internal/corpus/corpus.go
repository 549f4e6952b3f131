// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package corpus loads document collections for training and evaluating
// context tries.
package corpus

import (
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/ulikunitz/ppmtrie"
	"github.com/ulikunitz/ppmtrie/ppm"
)

// File is a file of a corpus.
type File struct {
	Name string
	Data []byte
}

// Files reads all regular files of the corpus in lexical order.
func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

// Size returns the total number of bytes of the files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

// text converts the data into a string that can be indexed. Invalid UTF-8
// sequences and the end-of-string sentinel are replaced by U+FFFD.
func text(data []byte) string {
	s := string(data)
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "\ufffd")
	}
	return strings.ReplaceAll(s, string(rune(ppmtrie.EOS)), "\ufffd")
}

// Texts returns the content of every file as a single document.
func Texts(files []File) []string {
	texts := make([]string, len(files))
	for i, f := range files {
		texts[i] = text(f.Data)
	}
	return texts
}

// Lines returns every non-empty line of the files as a document.
func Lines(files []File) []string {
	var lines []string
	for _, f := range files {
		for _, l := range strings.Split(text(f.Data), "\n") {
			l = strings.TrimSuffix(l, "\r")
			if l == "" {
				continue
			}
			lines = append(lines, l)
		}
	}
	return lines
}

type countWriter struct {
	n int64
}

func (w *countWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	w.n += int64(n)
	return n, nil
}

// EncodedSize returns the number of bytes the ppm encoding of the texts
// requires with the given trie and context order.
func EncodedSize(texts []string, t *ppmtrie.Trie, order int) (n int64, err error) {
	for _, s := range texts {
		cw := &countWriter{}
		if _, err = ppm.EncodeTo(cw, t, s, order); err != nil {
			return n, err
		}
		n += cw.n
	}
	return n, nil
}
