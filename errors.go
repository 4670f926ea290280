// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpconv

import (
	"errors"
	"strconv"
)

var (
	// ErrSyntax indicates that a digit string contains a byte other than '0'-'9'.
	ErrSyntax = errors.New("invalid syntax")

	// ErrNotFinite indicates that NaN or an infinity was passed where
	// a finite value is required.
	ErrNotFinite = errors.New("value not finite")

	// ErrDigitCount indicates a requested digit count outside [1, MaxDigits].
	ErrDigitCount = errors.New("digit count out of range")
)

// A NumError records a failed conversion.
type NumError struct {
	Func string // the failing function (NewDigitBuffer, Digits, Shortest, ...)
	Num  string // the input
	Err  error  // the reason the conversion failed (e.g. ErrSyntax, ErrNotFinite, etc.)
}

func (e *NumError) Error() string {
	return "fpconv." + e.Func + ": " + "parsing " + strconv.Quote(e.Num) + ": " + e.Err.Error()
}

func (e *NumError) Unwrap() error { return e.Err }

func syntaxError(fn, str string) *NumError {
	return &NumError{fn, str, ErrSyntax}
}

func notFiniteError(fn string, v float64) *NumError {
	return &NumError{fn, strconv.FormatFloat(v, 'g', -1, 64), ErrNotFinite}
}

func digitCountError(fn string, n int) *NumError {
	return &NumError{fn, strconv.Itoa(n), ErrDigitCount}
}
