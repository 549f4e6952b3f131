// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package bitcode

import (
	"fmt"
	"math/bits"
)

// maxBound is the largest supported upper bound of a bounded code.
const maxBound = 1<<63 - 1

// truncated returns the parameters of the truncated binary code for the
// range [0, max]. Values below u use k bits, the others k+1 bits.
func truncated(max uint64) (k uint, u uint64) {
	if max > maxBound {
		panic(fmt.Errorf("bitcode: bound %d out of range", max))
	}
	count := max + 1
	k = uint(bits.Len64(count)) - 1
	u = (uint64(1) << (k + 1)) - count
	return k, u
}

// BoundedLen returns the number of bits the bounded code for v in [0, max]
// requires.
func BoundedLen(v, max uint64) int {
	k, u := truncated(max)
	if v < u {
		return int(k)
	}
	return int(k) + 1
}

// DeltaLen returns the number of bits of the delta code for v.
func DeltaLen(v uint64) int {
	x := v + 1
	l := bits.Len64(x)
	n := bits.Len64(uint64(l)) - 1
	return n + (n + 1) + (l - 1)
}

// mul returns the 128-bit product of x and y as high and low words.
func mul(x, y uint64) (hi, lo uint64) {
	return bits.Mul64(x, y)
}

// less compares two 128-bit values given as high and low words.
func less(ahi, alo, bhi, blo uint64) bool {
	if ahi != bhi {
		return ahi < bhi
	}
	return alo < blo
}

// Dyadic describes the dyadic interval [V/2^N, (V+1)/2^N).
type Dyadic struct {
	V uint64
	N uint
}

// Push appends a bit to the code, halving the interval.
func (d *Dyadic) Push(bit bool) {
	if d.N >= 63 {
		panic("bitcode: dyadic interval too small")
	}
	d.V <<= 1
	if bit {
		d.V |= 1
	}
	d.N++
}

// Within reports whether the dyadic interval is contained in
// [lo/total, hi/total).
func (d Dyadic) Within(lo, hi, total uint64) bool {
	if d.V >= 1<<d.N {
		return false
	}
	p := uint64(1) << d.N
	// V*total >= lo*2^N
	ahi, alo := mul(d.V, total)
	bhi, blo := mul(lo, p)
	if less(ahi, alo, bhi, blo) {
		return false
	}
	// (V+1)*total <= hi*2^N
	ahi, alo = mul(d.V+1, total)
	bhi, blo = mul(hi, p)
	return !less(bhi, blo, ahi, alo)
}

// Before reports whether the left end of the dyadic interval lies before
// x/total.
func (d Dyadic) Before(x, total uint64) bool {
	ahi, alo := mul(d.V, total)
	bhi, blo := mul(x, uint64(1)<<d.N)
	return less(ahi, alo, bhi, blo)
}

// Interval returns the shortest dyadic interval contained in
// [lo/total, hi/total). The function panics if the arguments don't satisfy
// lo < hi <= total.
func Interval(lo, hi, total uint64) Dyadic {
	if !(lo < hi && hi <= total) {
		panic(fmt.Errorf("bitcode: invalid interval [%d,%d) of %d",
			lo, hi, total))
	}
	for n := uint(0); n < 63; n++ {
		// v = ceil(lo*2^n/total); the quotient is less than 2^n.
		phi, plo := mul(lo, uint64(1)<<n)
		q, r := bits.Div64(phi, plo, total)
		if r != 0 {
			q++
		}
		d := Dyadic{V: q, N: n}
		if d.Within(lo, hi, total) {
			return d
		}
	}
	panic("bitcode: total too large for interval code")
}
