// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpconv

import (
	"math"
	"strconv"
)

// A DigitBuffer is a decimal number in scientific form:
// its value is 0.Digits × 10^Scale, negated if Neg is set.
//
// Digits holds ASCII '0'-'9' only, most significant first, with no
// sign or decimal point. Leading zeros are permitted and count as
// positions, so "05" with Scale 1 is 0.05. An empty or all-zero
// Digits denotes zero.
type DigitBuffer struct {
	Digits []byte
	Scale  int
	Neg    bool
}

// NewDigitBuffer returns the DigitBuffer 0.digits × 10^scale.
// It reports a *NumError wrapping ErrSyntax if digits contains
// anything but '0'-'9'.
func NewDigitBuffer(digits string, scale int, neg bool) (DigitBuffer, error) {
	const fnNewDigitBuffer = "NewDigitBuffer"
	if !validDigits(digits) {
		return DigitBuffer{}, syntaxError(fnNewDigitBuffer, digits)
	}
	return DigitBuffer{Digits: []byte(digits), Scale: scale, Neg: neg}, nil
}

// FromSignificand returns the DigitBuffer for the integer significand
// digits times 10^exp, the form most text parsers produce:
// FromSignificand("5", -1, false) is 0.5. The resulting Scale
// saturates at math.MaxInt.
func FromSignificand(digits string, exp int, neg bool) (DigitBuffer, error) {
	const fnFromSignificand = "FromSignificand"
	if !validDigits(digits) {
		return DigitBuffer{}, syntaxError(fnFromSignificand, digits)
	}
	scale := math.MaxInt
	if exp <= math.MaxInt-len(digits) {
		scale = exp + len(digits)
	}
	return DigitBuffer{Digits: []byte(digits), Scale: scale, Neg: neg}, nil
}

func validDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Float64 returns the double nearest to d. See ParseDigits.
func (d DigitBuffer) Float64() float64 {
	return ParseDigits(d)
}

// String renders d as [-]0.<digits>e<scale>, or [-]0 when d has no digits.
func (d DigitBuffer) String() string {
	buf := make([]byte, 0, len(d.Digits)+8)
	if d.Neg {
		buf = append(buf, '-')
	}
	buf = append(buf, '0')
	if len(d.Digits) == 0 {
		return string(buf)
	}
	buf = append(buf, '.')
	buf = append(buf, d.Digits...)
	buf = append(buf, 'e')
	buf = strconv.AppendInt(buf, int64(d.Scale), 10)
	return string(buf)
}
