// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package serial

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// magic identifies a model file.
const magic = "PPMT"

// Version is the version of the model format.
const Version = 1

// maxHeaderLen limits the size of the CBOR header.
const maxHeaderLen = 1 << 12

// Header describes the trie stored in a model file.
type Header struct {
	Version     int         `cbor:"1,keyasint"`
	Mode        Mode        `cbor:"2,keyasint"`
	Height      int         `cbor:"3,keyasint"`
	Nodes       int         `cbor:"4,keyasint"`
	Compression Compression `cbor:"5,keyasint"`
	MaxLevels   int         `cbor:"6,keyasint"`
	MinWeight   int64       `cbor:"7,keyasint"`
}

// verify checks the header values read from a file.
func (h *Header) verify() error {
	if h.Version != Version {
		return formatError("unsupported version %d", h.Version)
	}
	switch h.Mode {
	case ModeGodparent, ModeExplicit:
	default:
		return formatError("unsupported mode %q", h.Mode)
	}
	if _, err := ParseCompression(string(h.Compression)); err != nil {
		return formatError("%s", err)
	}
	if h.Height < 0 || h.Nodes < 1 {
		return formatError("height %d and node count %d",
			h.Height, h.Nodes)
	}
	return nil
}

// writeHeader writes magic, version byte and the CBOR header.
func writeHeader(w io.Writer, h *Header) error {
	data, err := cbor.Marshal(h)
	if err != nil {
		return err
	}
	p := make([]byte, 0, len(magic)+1+binary.MaxVarintLen64+len(data))
	p = append(p, magic...)
	p = append(p, Version)
	p = binary.AppendUvarint(p, uint64(len(data)))
	p = append(p, data...)
	_, err = w.Write(p)
	return err
}

// readHeader reads the header written by writeHeader.
func readHeader(r *bufio.Reader) (h *Header, err error) {
	p := make([]byte, len(magic)+1)
	if _, err = io.ReadFull(r, p); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if string(p[:len(magic)]) != magic {
		return nil, formatError("magic mismatch")
	}
	if p[len(magic)] != Version {
		return nil, formatError("unsupported version %d", p[len(magic)])
	}
	n, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, formatError("header length: %s", err)
	}
	if n > maxHeaderLen {
		return nil, formatError("header length %d too large", n)
	}
	data := make([]byte, n)
	if _, err = io.ReadFull(r, data); err != nil {
		return nil, formatError("header: %s", err)
	}
	h = new(Header)
	if err = cbor.Unmarshal(data, h); err != nil {
		return nil, formatError("header: %s", err)
	}
	if err = h.verify(); err != nil {
		return nil, err
	}
	return h, nil
}
