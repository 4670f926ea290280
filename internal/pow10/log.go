// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pow10

// FloorLog10Pow2 computes ⌊log10(2^e)⌋ = ⌊e*log10(2)⌋.
func FloorLog10Pow2(e int) int {
	// e should be in the range [-2620, 2620].
	return (e * 315653) >> 20
}

// CeilLog10Pow2 computes ⌈e*log10(2)⌉.
// e*log10(2) is irrational for e ≠ 0, so the ceiling is the floor of the
// negated product, negated.
func CeilLog10Pow2(e int) int {
	return -FloorLog10Pow2(-e)
}

// FloorLog2Pow10 computes ⌊log2(10^e)⌋ = ⌊e*log2(10)⌋.
func FloorLog2Pow10(e int) int {
	// e should be in the range [-1233, 1233].
	// The formula itself holds on [-4003, 4003],
	// but restricted to avoid overflow.
	return (e * 1741647) >> 19
}

// FloorLog10Pow2MinusLog10_4Over3 computes
// ⌊e*log10(2)-log10(4/3)⌋ = ⌊log10(2^e)-log10(4/3)⌋.
func FloorLog10Pow2MinusLog10_4Over3(e int) int {
	// e should be in the range [-2985, 2936].
	return (e*631305 - 261663) >> 21
}
