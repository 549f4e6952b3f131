// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package serial

import (
	"bufio"
	"errors"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/ulikunitz/ppmtrie"
	"github.com/ulikunitz/ppmtrie/bitcode"
)

// decompress returns a reader for the payload.
func decompress(r io.Reader, c Compression) (pr io.Reader, closer func(), err error) {
	switch c {
	case XZ:
		if pr, err = xz.NewReader(r); err != nil {
			return nil, nil, err
		}
		return pr, func() {}, nil
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return d, d.Close, nil
	}
	return r, func() {}, nil
}

// Read reads a trie from a model file. The trie is truncated; it has no
// documents. The header of the file is returned as well.
func Read(r io.Reader) (t *ppmtrie.Trie, h *Header, err error) {
	br := bufio.NewReader(r)
	if h, err = readHeader(br); err != nil {
		return nil, nil, err
	}
	pr, closer, err := decompress(br, h.Compression)
	if err != nil {
		return nil, nil, formatError("payload: %s", err)
	}
	defer closer()

	bits := bitcode.NewReader(pr)
	c := &readCoder{br: bits}
	var rc uint64
	if err = c.delta(&rc); err != nil {
		return nil, nil, payloadError(err)
	}
	cfg := ppmtrie.Config{MaxLevels: h.MaxLevels, MinWeight: h.MinWeight}
	if cfg.MaxLevels < h.Height {
		cfg.MaxLevels = h.Height
	}
	t, err = ppmtrie.NewEmpty(cfg, int64(rc))
	if err != nil {
		return nil, nil, formatError("%s", err)
	}
	if err = codeTrie(c, t, h.Height, h.Mode); err != nil {
		return nil, nil, payloadError(err)
	}
	t.Recompute()
	if t.Len() != h.Nodes || t.Height() != h.Height {
		return nil, nil, formatError(
			"got %d nodes and height %d; header has %d and %d",
			t.Len(), t.Height(), h.Nodes, h.Height)
	}
	return t, h, nil
}

// payloadError converts errors reading the payload.
func payloadError(err error) error {
	if errors.Is(err, ErrFormat) {
		return err
	}
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return formatError("payload: %s", err)
}
