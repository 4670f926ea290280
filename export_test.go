// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpconv

// Export guts for testing.

func Grisu3Counted(v float64, n int) (digits string, exp10 int, ok bool) {
	buf := make([]byte, n)
	exp10, ok = grisu3Counted(v, buf)
	return string(buf), exp10, ok
}

func ShortestBits(v float64) (sig uint64, exp10 int) {
	mant, exp, denorm := unpack64(v)
	return shortest64(mant, exp, denorm)
}

var (
	BiggestPowerTen     = biggestPowerTen
	RemoveTrailingZeros = removeTrailingZeros
	RoundWeedCounted    = roundWeedCounted
)
