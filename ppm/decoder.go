// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppm

import (
	"bytes"
	"io"
	"sort"

	"github.com/ulikunitz/ppmtrie"
	"github.com/ulikunitz/ppmtrie/bitcode"
	"github.com/ulikunitz/ppmtrie/xlog"
)

// maxIntervalBits limits the length of an interval code.
const maxIntervalBits = 62

// decoder holds the state of the context walk while decoding.
type decoder struct {
	br   *bitcode.Reader
	h    int
	root ppmtrie.Node
	from ppmtrie.Node
	node ppmtrie.Node
	toks []ppmtrie.Token
	done bool
}

// descend reads the interval code for a walk of k levels down from the
// node from. The tokens on the way are appended to the output.
func (d *decoder) descend(k int) error {
	base := uint64(d.from.FirstCursor())
	total := uint64(d.from.CursorCount())
	var dy bitcode.Dyadic
	n := d.from
	for i := 0; i < k; i++ {
		kids := n.Children()
		if len(kids) == 0 {
			return errMissingChild
		}
		for {
			j := sort.Search(len(kids), func(j int) bool {
				end := uint64(kids[j].FirstCursor()) - base +
					uint64(kids[j].CursorCount())
				return dy.Before(end, total)
			})
			if j == len(kids) {
				return errMissingChild
			}
			lo := uint64(kids[j].FirstCursor()) - base
			hi := lo + uint64(kids[j].CursorCount())
			if dy.Within(lo, hi, total) {
				n = kids[j]
				break
			}
			if dy.N >= maxIntervalBits {
				return errIntervalCode
			}
			if err := d.br.ReadDyadic(&dy); err != nil {
				return err
			}
		}
		if n.IsTerminal() {
			d.done = true
			break
		}
		d.toks = append(d.toks, n.Token())
	}
	d.node = n
	return nil
}

// record decodes a single forward and backup record.
func (d *decoder) record() error {
	k, err := d.br.ReadBounded(uint64(d.h - d.from.Depth()))
	if err != nil {
		return err
	}
	if k > 0 {
		if err = d.descend(int(k)); err != nil || d.done {
			return err
		}
	}
	s, err := d.br.ReadBounded(uint64(d.node.Depth() + 1))
	if err != nil {
		return err
	}
	if s == 0 {
		d.done = true
		return nil
	}
	m := d.node
	for ; s > 0 && m.Valid(); s-- {
		m = m.Godparent()
	}
	if m.Valid() {
		d.from, d.node = m, m
		return nil
	}
	if s > 0 {
		return errBackup
	}
	c, err := d.br.ReadBits(16)
	if err != nil {
		return err
	}
	if ppmtrie.Token(c) == ppmtrie.EOS {
		d.done = true
		return nil
	}
	d.toks = append(d.toks, ppmtrie.Token(c))
	d.from, d.node = d.root, d.root
	return nil
}

// DecodeFrom reads a compressed text from r. Decoding stops at the end of
// the text. If the input ends early or contains a record the trie cannot
// follow, the text decoded so far is returned without an error.
func DecodeFrom(r io.Reader, t *ppmtrie.Trie, order int) (string, error) {
	if order < 0 {
		return "", ErrOrder
	}
	d := &decoder{
		br:   bitcode.NewReader(r),
		h:    height(t, order),
		root: t.Root(),
	}
	d.from, d.node = d.root, d.root
	for !d.done {
		if err := d.record(); err != nil {
			xlog.Printf(debug, "decoding stopped after %d tokens: %s",
				len(d.toks), err)
			break
		}
	}
	return ppmtrie.TokenString(d.toks), nil
}

// Decode decompresses data encoded by Encode with the same trie and
// context order.
func Decode(t *ppmtrie.Trie, data []byte, order int) (string, error) {
	return DecodeFrom(bytes.NewReader(data), t, order)
}
