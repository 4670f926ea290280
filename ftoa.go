// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpconv

import (
	"math"
	"strconv"

	"github.com/taichimaeda/fpconv/internal/bigdec"
)

// MaxDigits is the largest digit count Digits accepts: the number of
// significant digits in the longest exact decimal expansion of a double.
const MaxDigits = 767

// FormatDigits returns exactly n digits of v, correctly rounded, using
// only 64-bit arithmetic. The value 0.Digits × 10^Scale approximates |v|
// and Neg holds the sign of v.
//
// The fast path cannot decide every case; it then reports false and
// returns the zero DigitBuffer. It also reports false for zero, NaN,
// infinities and for n outside [1, MaxDigits]. Digits handles all of
// these.
func FormatDigits(v float64, n int) (DigitBuffer, bool) {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) || n < 1 || n > MaxDigits {
		return DigitBuffer{}, false
	}
	buf := make([]byte, n)
	exp10, ok := grisu3Counted(v, buf)
	if !ok {
		return DigitBuffer{}, false
	}
	return DigitBuffer{Digits: buf, Scale: n + exp10, Neg: math.Signbit(v)}, true
}

// Digits returns exactly n digits of v, correctly rounded with ties to
// even, falling back to exact arithmetic when FormatDigits cannot decide.
// Zero yields n zeros with Scale 1.
//
// It returns a *NumError wrapping ErrNotFinite for NaN and infinities,
// and ErrDigitCount for n outside [1, MaxDigits].
func Digits(v float64, n int) (DigitBuffer, error) {
	const fnDigits = "Digits"
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return DigitBuffer{}, notFiniteError(fnDigits, v)
	}
	if n < 1 || n > MaxDigits {
		return DigitBuffer{}, digitCountError(fnDigits, n)
	}
	neg := math.Signbit(v)
	if v == 0 {
		zeros := make([]byte, n)
		for i := range zeros {
			zeros[i] = '0'
		}
		return DigitBuffer{Digits: zeros, Scale: 1, Neg: neg}, nil
	}
	if d, ok := FormatDigits(v, n); ok {
		return d, nil
	}
	mant, exp, _ := unpack64(v)
	digits, scale := bigdec.FixedDigits(make([]byte, 0, n), mant, exp, n)
	return DigitBuffer{Digits: digits, Scale: scale, Neg: neg}, nil
}

// Shortest returns the shortest digits that parse back to v under
// round to nearest, tie to even. When several such strings exist the
// one closest to v is chosen, ties to even. Zero yields "0" with Scale 1.
//
// It returns a *NumError wrapping ErrNotFinite for NaN and infinities.
func Shortest(v float64) (DigitBuffer, error) {
	const fnShortest = "Shortest"
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return DigitBuffer{}, notFiniteError(fnShortest, v)
	}
	neg := math.Signbit(v)
	if v == 0 {
		return DigitBuffer{Digits: []byte{'0'}, Scale: 1, Neg: neg}, nil
	}
	mant, exp, denorm := unpack64(v)
	sig, exp10 := shortest64(mant, exp, denorm)
	// sig has at most 17 digits.
	digits := strconv.AppendUint(make([]byte, 0, 17), sig, 10)
	return DigitBuffer{Digits: digits, Scale: len(digits) + exp10, Neg: neg}, nil
}
