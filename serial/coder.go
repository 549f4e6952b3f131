// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package serial

import (
	"github.com/ulikunitz/ppmtrie"
	"github.com/ulikunitz/ppmtrie/bitcode"
)

// coder transfers the values of the payload. The writer stores the values
// pointed to, the reader sets them.
type coder interface {
	flag(b *bool) error
	bounded(v *uint64, max uint64) error
	delta(v *uint64) error
	token(t *ppmtrie.Token) error
	// children completes the coding of the children of n.
	children(n ppmtrie.Node, kids []ppmtrie.Child) error
	// reading reports whether the coder reads values.
	reading() bool
}

// writeCoder writes values to a bit stream.
type writeCoder struct {
	bw *bitcode.Writer
}

func (c *writeCoder) flag(b *bool) error { return c.bw.WriteBool(*b) }

func (c *writeCoder) bounded(v *uint64, max uint64) error {
	if *v > max {
		return errBound
	}
	return c.bw.WriteBounded(*v, max)
}

func (c *writeCoder) delta(v *uint64) error { return c.bw.WriteDelta(*v) }

func (c *writeCoder) token(t *ppmtrie.Token) error {
	return c.bw.WriteBits(uint64(*t), 16)
}

// children checks that all children of n have been written.
func (c *writeCoder) children(n ppmtrie.Node, kids []ppmtrie.Child) error {
	if len(kids) != n.NumChildren() {
		return errBound
	}
	return nil
}

func (c *writeCoder) reading() bool { return false }

// readCoder reads values from a bit stream and adds the children to the
// trie under construction.
type readCoder struct {
	br *bitcode.Reader
}

func (c *readCoder) flag(b *bool) (err error) {
	*b, err = c.br.ReadBool()
	return err
}

func (c *readCoder) bounded(v *uint64, max uint64) (err error) {
	*v, err = c.br.ReadBounded(max)
	return err
}

func (c *readCoder) delta(v *uint64) (err error) {
	*v, err = c.br.ReadDelta()
	return err
}

func (c *readCoder) token(t *ppmtrie.Token) error {
	v, err := c.br.ReadBits(16)
	*t = ppmtrie.Token(v)
	return err
}

func (c *readCoder) children(n ppmtrie.Node, kids []ppmtrie.Child) error {
	if err := n.Trie().AppendChildren(n, kids); err != nil {
		return formatError("%s", err)
	}
	return nil
}

func (c *readCoder) reading() bool { return true }
