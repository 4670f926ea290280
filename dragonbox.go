// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpconv

import (
	"math/bits"

	"github.com/taichimaeda/fpconv/internal/pow10"
)

// Shortest binary to decimal conversion using the Dragonbox algorithm
// by Junekey Jeon.
//
// For binary to decimal rounding, uses round to nearest, tie to even.
// For decimal to binary rounding, assumes round to nearest, tie to even.
//
// The paper can be found at:
// https://github.com/jk-jeon/dragonbox/blob/d5dc40ae6a3f1a4559cda816738df2d6255b4e24/other_files/Dragonbox.pdf
//
// Section and page numbers below refer to it.

const cacheBits = 128 // Q = 2*q = 128 for float64.

// shortest64 returns the shortest decimal significand and exponent,
// sig × 10^exp10, that rounds back to mant × 2^exp. mant and exp are
// as returned by unpack64 and mant must be nonzero.
// sig has no trailing decimal zeros.
func shortest64(mant uint64, exp int, denorm bool) (sig uint64, exp10 int) {
	// A double w is (-1)^σ × Fw × 2^Ew. The adjusted significand
	// fc = Fw × 2^p and exponent e = Ew - p arrive here as mant and exp,
	// with p the number of explicit significand bits.
	//
	// I is the interval of reals that round to w under round to nearest,
	// tie to even, and Δ is its length. Its endpoints are
	// wL = (w⁻ + w)/2 and wR = (w + w⁺)/2, where w⁻ and w⁺ are the
	// neighboring doubles. I is closed when Fw is even and open otherwise.

	if mant == 1<<mantBits64 && !denorm {
		// Fw = 1 and Ew ≠ Emin: w⁻ is twice as close as w⁺.
		return shorterInterval64(exp)
	}

	// Normal interval case (Δ = 2^e).
	// k = k0 + κ, where k0 = -⌊log10(Δ)⌋.
	// x = 10^k*wL, y = 10^k*w, z = 10^k*wR and δ = z - x = 10^k*Δ.
	const kappa = 2           // κ = 2 for float64 (section 5.1.3)
	const largeDivisor = 1000 // 10^(κ+1)
	const smallDivisor = 100  // 10^κ

	// -k = ⌊log10(Δ)⌋ - κ = ⌊log10(2^e)⌋ - κ (section 6.1)
	minusK := pow10.FloorLog10Pow2(exp) - kappa
	beta := exp + pow10.FloorLog2Pow10(-minusK) // β = e + ⌊k*log2(10)⌋

	// z^(i) and δ^(i) from the table entry φ̃k (sections 5.1.4, 5.1.5).
	phi := phiAt(-minusK)
	zi, zIsInt := mulInt(uint64(mant*2+1)<<uint(beta), phi)
	deltai := delta(phi, beta)

	// Algorithm 5.2: if I ∩ 10^(-k0+1)ℤ is non-empty, its unique element
	// has the fewest significand digits (corollary 3.3). The candidate is
	// s = ⌊z^(i)/10^(κ+1)⌋ with remainder r.
	s := zi / largeDivisor
	r := uint32(zi - largeDivisor*s)

	// By proposition 5.1, s is in I iff
	//   r+z^(f) ≤ δ                        when I = [wL, wR], or
	//   r+z^(f) < δ and (r ≠ 0 or z^(f) ≠ 0) when I = (wL, wR).
	// The second condition keeps s off wR, which an open I excludes.
	if r < deltai {
		// r < δ^(i) already gives r+z^(f) < δ.
		if r != 0 || !zIsInt || mant%2 == 0 {
			return removeTrailingZeros(s, minusK+kappa+1)
		}
		// r = 0 here. Take s̃ = s-1 and r̃ = 10^(κ+1) so that D > 0
		// before the division by 10^κ below (page 17).
		s--
		r = largeDivisor
	} else if r == deltai {
		// Now it comes down to comparing z^(f) with δ^(f), which the
		// parity of x^(i) answers (page 15):
		//   z^(f) < δ^(f) iff x^(i) is odd
		//   z^(f) ≤ δ^(f) iff x^(i) is odd or x^(f) = 0
		xiParity, xIsInt := mulParity(uint64(mant*2-1), phi, beta)
		if xiParity || (xIsInt && mant%2 == 0) {
			return removeTrailingZeros(s, minusK+kappa+1)
		}
		// r = δ^(i) ≥ 10^κ is nonzero, so s̃ = s and r̃ = r.
	}

	// Algorithm 5.4: I ∩ 10^(-k0)ℤ is non-empty (proposition 3.1) and,
	// with I ∩ 10^(-k0+1)ℤ empty, each of its elements is shortest.
	// Pick the one closest to y.
	//
	// D = ⌊r̃ + 10^κ/2 - ε^(i)⌋ with ε = δ/2 (page 17).
	D := uint32(r + (smallDivisor / 2) - (deltai / 2))
	t := D / smallDivisor
	rho := D - t*smallDivisor

	// y^(ru) = ⌊y/10^κ + 1/2⌋
	//        = 10s̃ + ⌊(D + (z^(f)-ε^(f)))/10^κ⌋
	//        = 10s̃ + t + ⌊(ρ + (z^(f)-ε^(f)))/10^κ⌋
	// taking the residue term as zero for now.
	yru := 10*s + uint64(t)
	if rho == 0 {
		// The residue is -1 exactly when ρ = 0 and z^(f) < ε^(f), and
		// z^(f) < ε^(f) iff the parity of y^(i) differs from that of
		// z^(i) - ε^(i) (page 17). z^(i) = 2*5s̃ + r̃ has the parity of
		// r̃, so z^(i) - ε^(i) has the parity of D - 10^κ/2.
		yiParity, yIsInt := mulParity(mant*2, phi, beta)
		yiParityApprox := (D-smallDivisor/2)%2 != 0
		if yiParity != yiParityApprox {
			yru--
		} else if yIsInt && yru%2 != 0 {
			// y^(rd) = ⌈y/10^κ - 1/2⌉ equals y^(ru)-1 iff the fraction
			// of y/10^κ is 1/2, that is, iff ρ = 0 and y is an
			// integer. That tie breaks to even. It cannot occur in the
			// branch above, where z^(f) < ε^(f).
			yru--
		}
	}
	return yru, minusK + kappa
}

// shorterInterval64 handles fc = 2^p with e above the minimum, where
// the lower neighbor is twice as close as the upper (Δ = 3*2^(e-2)).
// Algorithm 5.6.
func shorterInterval64(exp int) (uint64, int) {
	// k0 = -⌊log10(Δ)⌋; x = 10^k0*wL, y = 10^k0*w, z = 10^k0*wR.
	//
	// -k0 = ⌊log10(3*2^(e-2))⌋ = ⌊(e-2)*log10(2) + log10(3)⌋
	//     = ⌊log10(2^e) - log10(4/3)⌋ (section 6.3)
	minusK0 := pow10.FloorLog10Pow2MinusLog10_4Over3(exp)
	beta := exp + pow10.FloorLog2Pow10(-minusK0)

	// x^(i) and z^(i) straight from φ̃k0 (section 5.2.1).
	phi := phiAt(-minusK0)
	xi := leftEndpoint(phi, beta)
	zi := rightEndpoint(phi, beta)

	// From page 23:
	//   x̃^(i) = x^(i) if e ∈ [2, 3] and x ∈ 10^(k0)I, else x^(i) + 1
	//   z̃^(i) = z^(i) - 1 if e ∈ [0, 3] and z ∉ 10^(k0)I, else z^(i)
	// The significand 2^p is even, so I is closed under round to nearest,
	// tie to even: x ∈ 10^(k0)I always holds and z ∉ 10^(k0)I never does.
	// Hence z̃^(i) = z^(i).
	if !(2 <= exp && exp <= 3) {
		xi++
	}

	// I ∩ 10^(-k0+1)ℤ is non-empty iff x̃^(i) ≤ ⌊z̃^(i)/10⌋*10, and then
	// ⌊z̃^(i)/10⌋ × 10^(-k0+1) is its unique, shortest element
	// (proposition 5.5, corollary 3.3).
	q := zi / 10
	if xi <= q*10 {
		return removeTrailingZeros(q, minusK0+1)
	}

	// Otherwise any element of I ∩ 10^(-k0)ℤ is shortest; take the one
	// closest to y. Here y^(ru) = ⌊y+1/2⌋ is computed directly
	// (section 5.2.2).
	yru := roundUp(phi, beta)

	// y^(rd) = ⌈y-1/2⌉ is y^(ru)-1 iff the fraction of y is exactly 1/2,
	// which for float64 happens only at e = -77 (section 5.2.4).
	if exp == -77 && yru%2 != 0 {
		// Tie: both neighbors are in 10^(k0)I here, equidistant from y,
		// and no other integer can be. Break to even.
		yru--
	} else if yru < xi {
		// Unlike the normal case, y^(ru) need not lie in 10^(k0)I. It is
		// at most z̃^(i), and y^(ru)+1 is in 10^(k0)I whenever y^(ru) is
		// not (page 23). There is no tie on this path, so one of the two
		// is the answer.
		yru++
	}
	return yru, minusK0
}

type uint128 struct {
	hi, lo uint64
}

func phiAt(k int) uint128 {
	hi, lo := pow10.Phi(k)
	return uint128{hi, lo}
}

// umul192Upper128 returns the upper 128 bits (out of 192 bits) of x * y.
func umul192Upper128(x uint64, y uint128) uint128 {
	hi, mid := bits.Mul64(x, y.hi)
	t, _ := bits.Mul64(x, y.lo)
	lo, carry := bits.Add64(mid, t, 0)
	return uint128{hi + carry, lo}
}

// umul192Lower128 returns the lower 128 bits (out of 192 bits) of x * y.
func umul192Lower128(x uint64, y uint128) uint128 {
	high := x * y.hi
	hi, lo := bits.Mul64(x, y.lo)
	return uint128{high + hi, lo}
}

// mulInt computes x^(i), y^(i) or z^(i) from φ̃k and reports whether
// the fractional part is zero (section 5.2.1).
func mulInt(u uint64, phi uint128) (intPart uint64, isInt bool) {
	r := umul192Upper128(u, phi)
	return r.hi, r.lo == 0
}

// mulParity computes only the parity of x^(i), y^(i) or z^(i) and
// whether the fractional part is zero (section 5.2.1).
func mulParity(mant2 uint64, phi uint128, beta int) (parity bool, isInt bool) {
	r := umul192Lower128(mant2, phi)
	parity = (r.hi>>(64-beta))&1 != 0
	isInt = r.hi<<beta|r.lo>>(64-beta) == 0
	return
}

// delta computes δ^(i).
func delta(phi uint128, beta int) uint32 {
	return uint32(phi.hi >> (cacheBits/2 - 1 - beta))
}

func leftEndpoint(phi uint128, beta int) uint64 {
	return (phi.hi - phi.hi>>(mantBits64+2)) >> (cacheBits/2 - mantBits64 - 1 - beta)
}

func rightEndpoint(phi uint128, beta int) uint64 {
	return (phi.hi + phi.hi>>(mantBits64+1)) >> (cacheBits/2 - mantBits64 - 1 - beta)
}

// roundUp computes y^(ru).
func roundUp(phi uint128, beta int) uint64 {
	return (phi.hi>>(cacheBits/2-mantBits64-2-beta) + 1) / 2
}

// removeTrailingZeros strips decimal trailing zeros from mant, adding
// them to exp. There are at most 15 for float64 (page 16).
// Each step multiplies by the modular inverse of 5^k and rotates by k:
// the result is small exactly when mant was divisible by 10^k.
func removeTrailingZeros(mant uint64, exp int) (uint64, int) {
	s := 0
	steps := [...]struct {
		inv   uint64
		rot   int
		limit uint64
	}{
		{28999941890838049, 8, 184467440738},
		{182622766329724561, 4, 1844674407370956},
		{10330176681277348905, 2, 184467440737095517},
		{14757395258967641293, 1, 1844674407370955162},
	}
	for _, st := range steps {
		s *= 2
		if r := bits.RotateLeft64(mant*st.inv, -st.rot); r < st.limit {
			s++
			mant = r
		}
	}
	return mant, exp + s
}
