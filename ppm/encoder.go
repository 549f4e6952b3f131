// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppm

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/ulikunitz/ppmtrie"
	"github.com/ulikunitz/ppmtrie/bitcode"
	"github.com/ulikunitz/ppmtrie/xlog"
)

// ErrOrder indicates a negative context order.
var ErrOrder = errors.New("ppm: context order must not be negative")

// height returns the maximum depth a forward walk can reach for the given
// order.
func height(t *ppmtrie.Trie, order int) int {
	h := t.Height()
	if order < h {
		h = order + 1
	}
	return h
}

// canContinue reports whether the walk can extend node n by token c.
func canContinue(n ppmtrie.Node, c ppmtrie.Token, order int) bool {
	if n.Depth() > order || n.IsTerminal() {
		return false
	}
	_, ok := n.Child(c)
	return ok
}

// encoder holds the state of the context walk.
type encoder struct {
	bw    *bitcode.Writer
	h     int
	order int
	root  ppmtrie.Node
	from  ppmtrie.Node
	node  ppmtrie.Node
	k     int

	records  int
	literals int
}

// forward writes the number of tokens matched since from and the interval
// code of node within the cursor range of from.
func (e *encoder) forward() error {
	max := uint64(e.h - e.from.Depth())
	if err := e.bw.WriteBounded(uint64(e.k), max); err != nil {
		return err
	}
	e.records++
	if e.k == 0 {
		return nil
	}
	lo := uint64(e.node.FirstCursor() - e.from.FirstCursor())
	hi := lo + uint64(e.node.CursorCount())
	return e.bw.WriteInterval(lo, hi, uint64(e.from.CursorCount()))
}

// backup writes the number of godparent steps taken from node.
func (e *encoder) backup(s int) error {
	return e.bw.WriteBounded(uint64(s), uint64(e.node.Depth()+1))
}

// reset sets the walk to start at n.
func (e *encoder) reset(n ppmtrie.Node) {
	e.from, e.node, e.k = n, n, 0
}

// end writes the records for an end of text not covered by any context.
// The walk backs up to the root and writes a forward record without tokens
// followed by a backup of zero steps.
func (e *encoder) end() error {
	if !e.node.IsRoot() {
		s := 0
		for m := e.node; !m.IsRoot(); m = m.Godparent() {
			s++
		}
		if err := e.backup(s); err != nil {
			return err
		}
		e.reset(e.root)
		if err := e.forward(); err != nil {
			return err
		}
	}
	return e.backup(0)
}

// encode writes the records for the tokens. The last token must be EOS.
func (e *encoder) encode(toks []ppmtrie.Token) error {
	for i := 0; i < len(toks); {
		c := toks[i]
		if canContinue(e.node, c, e.order) {
			e.node, _ = e.node.Child(c)
			e.k++
			i++
			if c == ppmtrie.EOS {
				return e.forward()
			}
			continue
		}
		if err := e.forward(); err != nil {
			return err
		}
		m, s := e.node, 0
		for m.Valid() && !canContinue(m, c, e.order) {
			m = m.Godparent()
			s++
		}
		if m.Valid() {
			if err := e.backup(s); err != nil {
				return err
			}
			e.reset(m)
			continue
		}
		if c == ppmtrie.EOS {
			return e.end()
		}
		if err := e.backup(s); err != nil {
			return err
		}
		if err := e.bw.WriteBits(uint64(c), 16); err != nil {
			return err
		}
		e.literals++
		e.reset(e.root)
		i++
	}
	return nil
}

// EncodeTo writes the compressed text to w. It returns the number of bits
// written before padding the final byte.
func EncodeTo(w io.Writer, t *ppmtrie.Trie, text string, order int) (n int64, err error) {
	if order < 0 {
		return 0, ErrOrder
	}
	if strings.ContainsRune(text, rune(ppmtrie.EOS)) {
		return 0, ppmtrie.ErrSentinel
	}
	toks := append(ppmtrie.Tokens(text), ppmtrie.EOS)
	e := &encoder{
		bw:    bitcode.NewWriter(w),
		h:     height(t, order),
		order: order,
		root:  t.Root(),
	}
	e.reset(e.root)
	if err = e.encode(toks); err != nil {
		return e.bw.Bits(), err
	}
	n = e.bw.Bits()
	if err = e.bw.Close(); err != nil {
		return n, err
	}
	xlog.Printf(debug, "encoded %d tokens in %d bits: %d records, %d literals",
		len(toks)-1, n, e.records, e.literals)
	return n, nil
}

// Encode compresses the text using the trie with the given context order.
// The context order limits the depth of the contexts used for prediction;
// an order of zero uses only the root.
func Encode(t *ppmtrie.Trie, text string, order int) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := EncodeTo(&buf, t, text, order); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
