// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/ppmtrie"
	"github.com/ulikunitz/ppmtrie/internal/corpus"
	"github.com/ulikunitz/ppmtrie/ppm"
	"github.com/ulikunitz/ppmtrie/serial"
)

func TestSeeder(t *testing.T) {
	for _, name := range []string{"full", "word", "boundary"} {
		if _, err := seeder(name); err != nil {
			t.Fatalf("seeder(%q) error %s", name, err)
		}
	}
	if _, err := seeder("lines"); err == nil {
		t.Fatalf("seeder(%q) returned no error", "lines")
	}
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out")
	err := writeOutput(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello")
		return err
	})
	if err != nil {
		t.Fatalf("writeOutput error %s", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error %s", err)
	}
	if string(data) != "hello" {
		t.Fatalf("file contains %q; want %q", data, "hello")
	}

	failed := filepath.Join(dir, "failed")
	errWrite := errors.New("write failed")
	err = writeOutput(failed, func(w io.Writer) error { return errWrite })
	if !errors.Is(err, errWrite) {
		t.Fatalf("writeOutput returned %v; want %v", err, errWrite)
	}
	for _, p := range []string{failed, failed + ".tmp"} {
		if _, err = os.Stat(p); !os.IsNotExist(err) {
			t.Fatalf("file %s exists after failure", p)
		}
	}
}

func TestModelFile(t *testing.T) {
	dir := t.TempDir()
	texts := filepath.Join(dir, "texts")
	if err := os.MkdirAll(filepath.Join(texts, "sub"), 0o755); err != nil {
		t.Fatalf("MkdirAll error %s", err)
	}
	input := map[string]string{
		"a.txt":     "the quick brown fox jumps over the lazy dog",
		"sub/b.txt": "this is a test. this is only a test.",
	}
	for name, s := range input {
		err := os.WriteFile(filepath.Join(texts, name), []byte(s), 0o644)
		if err != nil {
			t.Fatalf("WriteFile error %s", err)
		}
	}
	files, err := loadFiles([]string{texts})
	if err != nil {
		t.Fatalf("loadFiles error %s", err)
	}
	if len(files) != 2 {
		t.Fatalf("loadFiles returned %d files; want %d", len(files), 2)
	}
	tr, err := ppmtrie.BuildShards(corpus.Texts(files),
		ppmtrie.Config{MaxLevels: 4})
	if err != nil {
		t.Fatalf("BuildShards error %s", err)
	}
	model := filepath.Join(dir, "model.ppmt")
	err = writeOutput(model, func(w io.Writer) error {
		return serial.Write(w, tr, serial.WriterConfig{
			Compression: serial.XZ})
	})
	if err != nil {
		t.Fatalf("writeOutput error %s", err)
	}
	u, h, err := loadModel(model)
	if err != nil {
		t.Fatalf("loadModel error %s", err)
	}
	if h.Compression != serial.XZ {
		t.Fatalf("compression %s; want %s", h.Compression, serial.XZ)
	}
	const text = "the lazy test"
	data, err := ppm.Encode(u, text, 3)
	if err != nil {
		t.Fatalf("Encode error %s", err)
	}
	s, err := ppm.Decode(tr, data, 3)
	if err != nil {
		t.Fatalf("Decode error %s", err)
	}
	if s != text {
		t.Fatalf("decoded %q; want %q", s, text)
	}
}

func TestMeasure(t *testing.T) {
	files := []corpus.File{
		{Name: "a.txt", Data: []byte("this is a test. this is only a test.")},
		{Name: "b.txt", Data: []byte("the lazy dog")},
	}
	tr, err := ppmtrie.BuildShards(corpus.Texts(files),
		ppmtrie.Config{MaxLevels: 3})
	if err != nil {
		t.Fatalf("BuildShards error %s", err)
	}
	if k := contextOrder(tr, -1); k != 2 {
		t.Fatalf("contextOrder(-1) = %d; want %d", k, 2)
	}
	if k := contextOrder(tr, 5); k != 5 {
		t.Fatalf("contextOrder(5) = %d; want %d", k, 5)
	}
	var buf bytes.Buffer
	if err = measure(&buf, tr, files, 2); err != nil {
		t.Fatalf("measure error %s", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "encoded: ") ||
		!strings.Contains(out, "of 48 bytes") ||
		!strings.HasSuffix(out, "with order 2\n") {
		t.Fatalf("unexpected output %q", out)
	}
}
