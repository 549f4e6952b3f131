// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package bitcode

import (
	"errors"
	"io"
	"math/bits"

	"github.com/icza/bitio"
)

// errDeltaOverflow indicates a delta code describing more than 64 bits.
var errDeltaOverflow = errors.New("bitcode: delta code overflow")

// Writer writes bits and integer codes to an underlying writer. Bits are
// written most significant bit first. Close must be called to flush the
// final partial byte.
type Writer struct {
	bw *bitio.Writer
	n  int64
}

// NewWriter creates a new bit writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(w)}
}

// Bits returns the number of bits written so far.
func (w *Writer) Bits() int64 { return w.n }

// WriteBits writes the n lower bits of v.
func (w *Writer) WriteBits(v uint64, n int) error {
	if n == 0 {
		return nil
	}
	if n < 64 {
		v &= 1<<uint(n) - 1
	}
	if err := w.bw.WriteBits(v, uint8(n)); err != nil {
		return err
	}
	w.n += int64(n)
	return nil
}

// WriteBool writes a single bit.
func (w *Writer) WriteBool(b bool) error {
	if err := w.bw.WriteBool(b); err != nil {
		return err
	}
	w.n++
	return nil
}

// WriteBounded writes v in [0, max] with the truncated binary code.
func (w *Writer) WriteBounded(v, max uint64) error {
	if v > max {
		panic("bitcode: bounded value exceeds maximum")
	}
	k, u := truncated(max)
	if v < u {
		return w.WriteBits(v, int(k))
	}
	return w.WriteBits(v+u, int(k)+1)
}

// WriteDelta writes the non-negative integer v using the Elias delta code
// of v+1.
func (w *Writer) WriteDelta(v uint64) error {
	x := v + 1
	if x == 0 {
		panic("bitcode: delta value out of range")
	}
	l := bits.Len64(x)
	n := bits.Len64(uint64(l)) - 1
	if err := w.WriteBits(0, n); err != nil {
		return err
	}
	if err := w.WriteBits(uint64(l), n+1); err != nil {
		return err
	}
	return w.WriteBits(x, l-1)
}

// WriteDyadic writes the N bits of the dyadic interval code.
func (w *Writer) WriteDyadic(d Dyadic) error {
	return w.WriteBits(d.V, int(d.N))
}

// WriteInterval writes the interval code for [lo/total, hi/total).
func (w *Writer) WriteInterval(lo, hi, total uint64) error {
	return w.WriteDyadic(Interval(lo, hi, total))
}

// Close flushes the final byte, padding it with zero bits. The underlying
// writer is not closed.
func (w *Writer) Close() error {
	return w.bw.Close()
}

// Reader reads bits and integer codes written by Writer.
type Reader struct {
	br *bitio.Reader
	n  int64
}

// NewReader creates a new bit reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bitio.NewReader(r)}
}

// Bits returns the number of bits read so far.
func (r *Reader) Bits() int64 { return r.n }

// ReadBits reads n bits.
func (r *Reader) ReadBits(n int) (v uint64, err error) {
	if n == 0 {
		return 0, nil
	}
	if v, err = r.br.ReadBits(uint8(n)); err != nil {
		return 0, err
	}
	r.n += int64(n)
	return v, nil
}

// ReadBool reads a single bit.
func (r *Reader) ReadBool() (b bool, err error) {
	if b, err = r.br.ReadBool(); err != nil {
		return false, err
	}
	r.n++
	return b, nil
}

// ReadBounded reads a value in [0, max] written by WriteBounded.
func (r *Reader) ReadBounded(max uint64) (v uint64, err error) {
	k, u := truncated(max)
	x, err := r.ReadBits(int(k))
	if err != nil {
		return 0, err
	}
	if x < u {
		return x, nil
	}
	b, err := r.ReadBool()
	if err != nil {
		return 0, err
	}
	x <<= 1
	if b {
		x |= 1
	}
	return x - u, nil
}

// ReadDelta reads a value written by WriteDelta.
func (r *Reader) ReadDelta() (v uint64, err error) {
	n := 0
	for {
		b, err := r.ReadBool()
		if err != nil {
			return 0, err
		}
		if b {
			break
		}
		n++
		if n > 6 {
			return 0, errDeltaOverflow
		}
	}
	l, err := r.ReadBits(n)
	if err != nil {
		return 0, err
	}
	l |= 1 << uint(n)
	if l > 64 {
		return 0, errDeltaOverflow
	}
	x, err := r.ReadBits(int(l) - 1)
	if err != nil {
		return 0, err
	}
	x |= 1 << (l - 1)
	return x - 1, nil
}

// ReadDyadic extends d by one bit read from the stream.
func (r *Reader) ReadDyadic(d *Dyadic) error {
	b, err := r.ReadBool()
	if err != nil {
		return err
	}
	d.Push(b)
	return nil
}
