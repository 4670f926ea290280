// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpconv

import (
	"math"
	"math/bits"

	"github.com/taichimaeda/fpconv/internal/bigdec"
	"github.com/taichimaeda/fpconv/internal/pow10"
)

// Decimal to binary conversion.
//
// The fast path reads at most 18 significant digits into a 64-bit
// integer and scales it by at most two table powers of ten, each
// multiplication keeping the top 64 bits of the product. The result
// is within a tracked error bound of the exact value; if that bound
// straddles the rounding boundary the exact slow path decides.

const (
	chunkDigits = 9 // digits that always fit in a uint32
	expMax64    = 1<<expBits64 - 1
)

// ParseDigits returns the double nearest to the decimal d, with ties
// rounded to even. Values too large for a double become ±Inf, values
// too small ±0, and an empty or all-zero d is a signed zero.
// ParseDigits never fails.
func ParseDigits(d DigitBuffer) float64 {
	digits := d.Digits
	i := 0
	for i < len(digits) && digits[i] == '0' {
		i++
	}
	if i == len(digits) {
		return assemble64(0, 0, d.Neg)
	}
	sig := digits[i:]

	// The value lies in [10^(Scale-len), 10^Scale). Settle scales past
	// either end before any arithmetic on Scale, which may be near the
	// limits of int.
	if d.Scale <= -pow10.MaxScale {
		return assemble64(0, 0, d.Neg)
	}
	if d.Scale > 0 && d.Scale-len(digits) >= pow10.MaxScale {
		return assemble64(0, expMax64, d.Neg)
	}

	// Read up to two chunks of 9 digits. The first fits in 32 bits and
	// the combined value in 64.
	n := min(len(sig), chunkDigits)
	val := uint64(readChunk(sig[:n]))
	consumed := n
	if len(sig) > chunkDigits {
		n = min(len(sig)-chunkDigits, chunkDigits)
		val = val*uint64(pow10.Uint32[n]) + uint64(readChunk(sig[chunkDigits:chunkDigits+n]))
		consumed += n
	}
	truncated := false
	for _, c := range sig[consumed:] {
		if c != '0' {
			truncated = true
			break
		}
	}

	// The value is now val × 10^scale, plus less than one unit of val
	// if truncated.
	scale := d.Scale - (i + consumed)
	switch {
	case scale >= pow10.MaxScale:
		return assemble64(0, expMax64, d.Neg)
	case scale <= -pow10.MaxScale:
		return assemble64(0, 0, d.Neg)
	}

	shift := bits.LeadingZeros64(val)
	val <<= uint(shift)
	exp := 64 - shift // val × 2^(exp-64)

	// slack bounds the distance between val and the exact scaled value,
	// in units of the last bit of val.
	var slack uint64
	if truncated {
		slack = 1 << uint(shift)
	}

	neg := scale < 0
	abs := scale
	if neg {
		abs = -scale
	}
	if k := abs & 15; k != 0 {
		m, e := pow10.Small(k, neg)
		val, exp = mulPow10(val, exp, m, e)
		slack = 2*slack + 3
	}
	if k := abs >> 4; k != 0 {
		m, e := pow10.Large(k, neg)
		val, exp = mulPow10(val, exp, m, e)
		slack = 2*slack + 3
	}

	// Round to the precision the result keeps: 53 bits for normals,
	// fewer for subnormals.
	biased := exp + bias64 - 1
	drop := 64 - mantBits64 - 1
	if biased < 1 {
		drop += 1 - biased
		if drop > 64 {
			// Below half the smallest subnormal, unless the error
			// could reach it.
			if drop == 65 && slack > 0 {
				return bigdec.ParseFloat64(sig, d.Scale-i-len(sig), d.Neg)
			}
			return assemble64(0, 0, d.Neg)
		}
		biased = 0
	}
	// drop may be 64, which leaves mant zero and all of val in rem.
	mant := val >> uint(drop)
	rem := val & (1<<uint(drop) - 1)
	half := uint64(1) << uint(drop-1)

	if slack > 0 {
		dist := rem - half
		if rem < half {
			dist = half - rem
		}
		if dist <= slack {
			return bigdec.ParseFloat64(sig, d.Scale-i-len(sig), d.Neg)
		}
	}
	if rem > half || rem == half && mant&1 != 0 {
		mant++
	}
	return assemble64(mant, biased, d.Neg)
}

// readChunk converts at most 9 ASCII digits.
func readChunk(s []byte) uint32 {
	var v uint32
	for _, c := range s {
		v = v*10 + uint32(c-'0')
	}
	return v
}

// mulPow10 multiplies the normalized val × 2^(exp-64) by the table
// power m × 2^(e-64), keeping a normalized upper half.
func mulPow10(val uint64, exp int, m uint64, e int) (uint64, int) {
	hi, lo := bits.Mul64(val, m)
	exp += e
	if hi>>63 == 0 {
		hi = hi<<1 | lo>>63
		exp--
	}
	return hi, exp
}

// assemble64 packs a rounded mantissa and biased exponent into a double.
// For normal values mant carries the implicit bit and may have
// overflowed to 2^53 from rounding. For subnormals biased is 0 and a
// mantissa that rounded up to 2^52 becomes the smallest normal.
// A biased exponent of expMax64 or more yields an infinity.
func assemble64(mant uint64, biased int, neg bool) float64 {
	var b uint64
	if biased >= 1 {
		if mant == 1<<(mantBits64+1) {
			mant >>= 1
			biased++
		}
		if biased >= expMax64 {
			b = expMax64 << mantBits64
		} else {
			b = uint64(biased)<<mantBits64 | mant&(1<<mantBits64-1)
		}
	} else {
		b = mant
	}
	if neg {
		b |= 1 << 63
	}
	return math.Float64frombits(b)
}
