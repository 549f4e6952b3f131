// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package serial

import (
	"bytes"
	"errors"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/ulikunitz/ppmtrie"
	"github.com/ulikunitz/ppmtrie/bitcode"
	"github.com/ulikunitz/ppmtrie/xlog"
)

// payload codes the trie in the given mode.
func payload(t *ppmtrie.Trie, mode Mode) (p []byte, err error) {
	var buf bytes.Buffer
	bw := bitcode.NewWriter(&buf)
	c := &writeCoder{bw: bw}
	rc := uint64(t.Root().CursorCount())
	if err = c.delta(&rc); err != nil {
		return nil, err
	}
	if err = codeTrie(c, t, t.Height(), mode); err != nil {
		return nil, err
	}
	if err = bw.Close(); err != nil {
		return nil, err
	}
	xlog.Printf(debug, "%s payload: %d nodes in %d bits", mode,
		t.Len(), bw.Bits())
	return buf.Bytes(), nil
}

// compress writes p to w using the compressor.
func compress(w io.Writer, p []byte, c Compression) error {
	var cw io.WriteCloser
	var err error
	switch c {
	case None:
		_, err = w.Write(p)
		return err
	case XZ:
		cw, err = xz.NewWriter(w)
	case Zstd:
		cw, err = zstd.NewWriter(w)
	default:
		panic("serial: unexpected compression")
	}
	if err != nil {
		return err
	}
	if _, err = cw.Write(p); err != nil {
		cw.Close()
		return err
	}
	return cw.Close()
}

// Write stores the trie in the model format. Documents and cursors of the
// trie are not written.
func Write(w io.Writer, t *ppmtrie.Trie, cfg WriterConfig) error {
	if err := cfg.Verify(); err != nil {
		return err
	}
	if !t.Built() {
		return ppmtrie.ErrNotBuilt
	}
	mode := cfg.Mode
	if mode == ModeAuto {
		mode = ModeGodparent
	}
	p, err := payload(t, mode)
	if errors.Is(err, errBound) && cfg.Mode == ModeAuto {
		xlog.Printf(debug, "%s; using %s mode", err, ModeExplicit)
		mode = ModeExplicit
		p, err = payload(t, mode)
	}
	if err != nil {
		if errors.Is(err, errBound) && mode == ModeExplicit {
			err = errorf("cursor counts of the trie are inconsistent")
		}
		return err
	}
	tc := t.Config()
	h := Header{
		Version:     Version,
		Mode:        mode,
		Height:      t.Height(),
		Nodes:       t.Len(),
		Compression: cfg.Compression,
		MaxLevels:   tc.MaxLevels,
		MinWeight:   tc.MinWeight,
	}
	if err = writeHeader(w, &h); err != nil {
		return err
	}
	return compress(w, p, cfg.Compression)
}
