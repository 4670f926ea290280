// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpconv

import (
	"math"
	"math/bits"
)

const (
	mantBits64 = 52 // p = 52 for float64.
	expBits64  = 11
	bias64     = 1023
)

// A diyFp is an unsigned floating-point number f × 2^e with a full
// 64-bit significand. It is normalized when the top bit of f is set.
// The zero value represents zero.
type diyFp struct {
	f uint64
	e int
}

// newDiyFp returns |v| as a diyFp. v must be finite.
// Subnormals keep their reduced significand.
func newDiyFp(v float64) diyFp {
	mant, exp, _ := unpack64(v)
	return diyFp{mant, exp}
}

// unpack64 splits a finite v into |v| = mant × 2^exp, reporting
// whether v is subnormal (or zero).
func unpack64(v float64) (mant uint64, exp int, denorm bool) {
	b := math.Float64bits(v)
	mant = b & (1<<mantBits64 - 1)
	biased := int(b>>mantBits64) & (1<<expBits64 - 1)
	if biased == 0 {
		return mant, 1 - bias64 - mantBits64, true
	}
	return mant | 1<<mantBits64, biased - bias64 - mantBits64, false
}

// normalize shifts f left until its top bit is set.
func (x diyFp) normalize() diyFp {
	// bits.LeadingZeros64 would return 64
	if x.f == 0 {
		return x
	}
	shift := bits.LeadingZeros64(x.f)
	return diyFp{x.f << uint(shift), x.e - shift}
}

// mul returns x × y, keeping the upper 64 bits of the 128-bit product
// rounded half up. The result is off by at most half a unit.
func (x diyFp) mul(y diyFp) diyFp {
	hi, lo := bits.Mul64(x.f, y.f)
	// Round up.
	return diyFp{hi + lo>>63, x.e + y.e + 64}
}
