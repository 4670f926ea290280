// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigdec implements the exact, arbitrary-precision conversions
// that back the fixed-width fast paths when those cannot decide a
// rounding direction.
//
// Both directions round to nearest, ties to even.
package bigdec

import (
	"math"
	"math/big"
)

const (
	mantBits = 52
	expBias  = 1023
	maxExp   = 0x7ff
)

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

// chunkPow10 = 10^19, the largest power of ten below 2^64.
const (
	chunkDigits = 19
	chunkPow10  = 10_000_000_000_000_000_000
)

// digitsToInt sets z to the integer spelled by the ASCII digits.
func digitsToInt(z *big.Int, digits []byte) *big.Int {
	z.SetUint64(0)
	scale := new(big.Int).SetUint64(chunkPow10)
	chunk := new(big.Int)
	for len(digits) > 0 {
		n := min(len(digits), chunkDigits)
		var v uint64
		for _, c := range digits[:n] {
			v = v*10 + uint64(c-'0')
		}
		if n == chunkDigits {
			z.Mul(z, scale)
		} else {
			z.Mul(z, pow10(n))
		}
		z.Add(z, chunk.SetUint64(v))
		digits = digits[n:]
	}
	return z
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// ParseFloat64 returns the double nearest to digits × 10^exp10,
// negated if neg is set. digits holds ASCII '0'-'9' only.
// Values too large for a double become ±Inf and values too small ±0.
func ParseFloat64(digits []byte, exp10 int, neg bool) float64 {
	num := digitsToInt(new(big.Int), digits)
	if num.Sign() == 0 {
		return assemble(0, 0, neg)
	}
	den := big.NewInt(1)
	if exp10 >= 0 {
		num.Mul(num, pow10(exp10))
	} else {
		den = pow10(-exp10)
	}

	// Scale so the quotient carries 66 or 67 bits: enough for 53 bits of
	// mantissa, the round bit, and one spare, with the rest sticky.
	k := 66 - (num.BitLen() - den.BitLen())
	if k >= 0 {
		num.Lsh(num, uint(k))
	} else {
		den.Lsh(den, uint(-k))
	}
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	sticky := r.Sign() != 0

	n := q.BitLen()
	biased := n - 1 - k + expBias
	keep := mantBits + 1
	if biased < 1 {
		// Subnormal: fewer significant bits survive.
		keep = mantBits + biased
		if keep < 0 {
			return assemble(0, 0, neg)
		}
		biased = 0
	}
	drop := uint(n - keep)
	half := new(big.Int).Lsh(bigOne, drop-1)
	rem := new(big.Int).And(q, new(big.Int).Sub(new(big.Int).Lsh(bigOne, drop), bigOne))
	mant := new(big.Int).Rsh(q, drop).Uint64()
	switch rem.Cmp(half) {
	case 1:
		mant++
	case 0:
		if sticky || mant&1 != 0 {
			mant++
		}
	}
	return assemble(mant, biased, neg)
}

// assemble packs a rounded mantissa and biased exponent into a double.
// For normal values mant carries the implicit bit and may have
// overflowed to 2^53 from rounding. For subnormals biased is 0 and a
// mantissa that rounded up to 2^52 becomes the smallest normal.
func assemble(mant uint64, biased int, neg bool) float64 {
	var bits uint64
	if biased >= 1 {
		if mant == 1<<(mantBits+1) {
			mant >>= 1
			biased++
		}
		if biased >= maxExp {
			bits = maxExp << mantBits
		} else {
			bits = uint64(biased)<<mantBits | mant&(1<<mantBits-1)
		}
	} else {
		bits = mant
	}
	if neg {
		bits |= 1 << 63
	}
	return math.Float64frombits(bits)
}

// FixedDigits appends to dst exactly n decimal digits of mant × 2^exp,
// correctly rounded (ties to even), and returns the extended buffer and
// the decimal point position: the value is 0.digits × 10^scale.
// mant must be nonzero and n positive.
func FixedDigits(dst []byte, mant uint64, exp int, n int) ([]byte, int) {
	// mant × 2^exp = N × 10^d10, with N an integer.
	N := new(big.Int).SetUint64(mant)
	d10 := 0
	if exp >= 0 {
		N.Lsh(N, uint(exp))
	} else {
		N.Mul(N, new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil))
		d10 = exp
	}
	s := N.Text(10)
	scale := len(s) + d10
	if len(s) <= n {
		dst = append(dst, s...)
		for range n - len(s) {
			dst = append(dst, '0')
		}
		return dst, scale
	}

	head, tail := s[:n], s[n:]
	up := false
	switch {
	case tail[0] > '5':
		up = true
	case tail[0] == '5':
		up = !allZero(tail[1:]) || (head[n-1]-'0')%2 == 1
	}
	start := len(dst)
	dst = append(dst, head...)
	if up {
		i := len(dst) - 1
		for ; i >= start && dst[i] == '9'; i-- {
			dst[i] = '0'
		}
		if i >= start {
			dst[i]++
		} else {
			// All nines: 99..9 rounds to 100..0, one digit longer.
			dst[start] = '1'
			scale++
		}
	}
	return dst, scale
}

func allZero(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}
