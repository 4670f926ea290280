// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpconv

import "github.com/taichimaeda/fpconv/internal/pow10"

// Binary to decimal conversion of a requested number of digits using
// the counted mode of Grisu3 by Florian Loitsch.
//
// All arithmetic is on 64-bit integers. The scaled input carries an
// error of at most one unit, which is tracked through digit generation;
// when the error could change a digit or the rounding direction the
// conversion reports failure instead of guessing.
//
// The paper can be found at:
// https://www.cs.tufts.edu/~nr/cs257/archive/florian-loitsch/printf.pdf

// The scaled value w × 10^-mk keeps its binary exponent in this window,
// so that the integral part fits in 32 bits and ten times the fractional
// part fits in 64.
const (
	minTargetExp = -60
	maxTargetExp = -32
)

// grisu3Counted writes exactly len(buf) digits of v > 0 into buf and
// returns the decimal exponent of the last digit: v ≈ buf × 10^exp10.
// It reports false if 64-bit precision cannot guarantee the digits are
// the correctly rounded ones; buf then holds garbage.
func grisu3Counted(v float64, buf []byte) (exp10 int, ok bool) {
	w := newDiyFp(v).normalize()

	// Pick 10^mk so that the product lands in the target window.
	minExp := minTargetExp - (w.e + 64)
	maxExp := maxTargetExp - (w.e + 64)
	cf, ce, mk := pow10.Cached(minExp, maxExp)

	// The cached power is rounded and so is the product, so scaled is
	// within one unit of w × 10^mk.
	scaled := w.mul(diyFp{cf, ce})

	kappa, ok := digitGenCounted(scaled, buf)
	if !ok {
		return 0, false
	}
	return -mk + kappa, true
}

// digitGenCounted generates len(buf) digits of w, whose exponent lies in
// [minTargetExp, maxTargetExp] and whose significand is accurate to one
// unit. It returns kappa such that w ≈ buf × 10^kappa.
func digitGenCounted(w diyFp, buf []byte) (kappa int, ok bool) {
	requested := len(buf)
	// w is assumed to have an error less than 1 unit.
	// Whenever w is scaled we also scale its error.
	wError := uint64(1)

	// Split w at the binary point: one = 2^-w.e.
	shift := uint(-w.e)
	one := uint64(1) << shift
	integrals := uint32(w.f >> shift)
	fractionals := w.f & (one - 1)

	// With no fraction, integrals alone must supply every digit, which
	// it cannot when it has fewer than requested digits.
	if fractionals == 0 && (requested >= 11 || integrals < pow10.Uint32[requested-1]) {
		return 0, false
	}

	divisor, kappa := biggestPowerTen(integrals, 64-int(shift))
	length := 0

	// Loop invariant: buf[:length] = w / 10^kappa (integer division).
	for kappa > 0 {
		digit := integrals / divisor
		integrals %= divisor
		buf[length] = byte('0' + digit)
		length++
		requested--
		kappa--
		if requested == 0 {
			break
		}
		divisor /= 10
	}

	if requested == 0 {
		rest := uint64(integrals)<<shift + fractionals
		return roundWeedCounted(buf, rest, uint64(divisor)<<shift, wError, kappa)
	}

	// Past the decimal point. fractionals < one ≤ 2^60, so multiplying
	// by ten does not overflow.
	for requested > 0 && fractionals > wError {
		fractionals *= 10
		wError *= 10
		buf[length] = byte('0' + fractionals>>shift)
		length++
		requested--
		kappa--
		fractionals &= one - 1
	}
	if requested != 0 {
		return 0, false
	}
	return roundWeedCounted(buf, fractionals, one, wError, kappa)
}

// biggestPowerTen returns the largest power of ten not above number,
// and its exponent plus one. number must be nonzero and below
// 2^(numberBits+1), with numberBits in [4, 32].
func biggestPowerTen(number uint32, numberBits int) (power uint32, exponentPlusOne int) {
	// 1233/4096 is approximately 1/log2(10).
	guess := ((numberBits + 1) * 1233) >> 12
	power = pow10.Uint32[guess]
	// 2^numberBits ≤ number is not guaranteed.
	if number < power {
		guess--
		power = pow10.Uint32[guess]
	}
	return power, guess + 1
}

// roundWeedCounted rounds buf up by one in the last place if the exact
// value is closer to it, given the remainder rest out of tenKappa with
// an uncertainty of unit. It reports false if the direction cannot be
// decided. A carry out of the first digit turns "99" into "10" and
// increments kappa.
func roundWeedCounted(buf []byte, rest, tenKappa, unit uint64, kappa int) (int, bool) {
	// rest < tenKappa. The comparisons are ordered so none of them
	// overflow for any rest < tenKappa and unit.
	//
	// A unit of half of tenKappa or more leaves no way to tell.
	if unit >= tenKappa || tenKappa-unit <= unit {
		return 0, false
	}
	// 2·(rest + unit) ≤ tenKappa: round down.
	if tenKappa-rest > rest && tenKappa-2*rest >= 2*unit {
		return kappa, true
	}
	// 2·(rest - unit) ≥ tenKappa: round up.
	if rest > unit && (tenKappa <= rest-unit || tenKappa-(rest-unit) <= rest-unit) {
		i := len(buf) - 1
		buf[i]++
		for ; i > 0 && buf[i] == '0'+10; i-- {
			buf[i] = '0'
			buf[i-1]++
		}
		if buf[0] == '0'+10 {
			buf[0] = '1'
			kappa++
		}
		return kappa, true
	}
	return 0, false
}
