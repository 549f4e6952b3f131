// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/ulikunitz/ppmtrie"
	"github.com/ulikunitz/ppmtrie/internal/corpus"
	"github.com/ulikunitz/ppmtrie/serial"
)

// readInput reads the file at path or standard input for "-" and the empty
// path.
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// readText reads a UTF-8 text.
func readText(path string) (string, error) {
	data, err := readInput(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.New("input is not valid UTF-8")
	}
	return string(data), nil
}

// writeOutput calls f with a buffered writer for the output. Files are
// written to a temporary file first that is renamed after success.
func writeOutput(path string, f func(w io.Writer) error) error {
	if path == "" || path == "-" {
		bw := bufio.NewWriter(os.Stdout)
		if err := f(bw); err != nil {
			return err
		}
		return bw.Flush()
	}
	tmp := path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)
	bw := bufio.NewWriter(file)
	if err = f(bw); err != nil {
		file.Close()
		return err
	}
	if err = bw.Flush(); err != nil {
		file.Close()
		return err
	}
	if err = file.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// loadFiles reads the files given as arguments. Directories are read
// recursively.
func loadFiles(paths []string) (files []corpus.File, err error) {
	for _, path := range paths {
		fi, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			files = append(files, corpus.File{Name: path, Data: data})
			continue
		}
		dir, err := corpus.Files(os.DirFS(path))
		if err != nil {
			return nil, err
		}
		for _, f := range dir {
			f.Name = filepath.Join(path, f.Name)
			files = append(files, f)
		}
	}
	return files, nil
}

// loadModel reads a model file.
func loadModel(path string) (*ppmtrie.Trie, *serial.Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return serial.Read(f)
}
