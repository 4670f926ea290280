// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fpconv converts between decimal digit strings and IEEE-754
// binary64 values.
//
// The decimal side is a DigitBuffer: digits, a decimal point position
// and a sign, with no textual syntax. Parsing text into a DigitBuffer
// and laying out digits as text are left to the caller.
//
// ParseDigits maps a DigitBuffer to the nearest double. FormatDigits
// produces a requested number of correctly rounded digits with the
// Grisu3 algorithm, and reports when 64-bit arithmetic is not enough
// to be sure. Digits always succeeds by falling back to exact
// arithmetic, and Shortest produces the shortest round-trip digits
// with the Dragonbox algorithm.
//
// All functions are safe for concurrent use.
package fpconv
