// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pow10 holds the precomputed powers of ten shared by the
// decimal to binary and binary to decimal conversions.
//
// Every table is initialized before first use and never written
// afterwards, so concurrent readers need no synchronization.
package pow10

// Powers of ten for the decimal to binary conversion.
// A power 10^k is stored as a normalized 64-bit significand m
// (most significant bit set) and a binary exponent e such that
// 10^k ≈ m × 2^(e-64). The significands are correctly rounded.
//
// Splitting a decimal scale into a low nibble (k ∈ [1, 15]) and
// a multiple of 16 (k ∈ [16, 336]) means at most two 64-bit
// multiplications are needed for any scale below 352.

// MaxScale is the first decimal scale that no longer fits in the tables.
// 10^352 overflows any float64 significand and 10^-352 underflows it.
const MaxScale = 22 * 16

var smallPow10 = [15]uint64{
	0xa000000000000000, // 1
	0xc800000000000000, // 2
	0xfa00000000000000, // 3
	0x9c40000000000000, // 4
	0xc350000000000000, // 5
	0xf424000000000000, // 6
	0x9896800000000000, // 7
	0xbebc200000000000, // 8
	0xee6b280000000000, // 9
	0x9502f90000000000, // 10
	0xba43b74000000000, // 11
	0xe8d4a51000000000, // 12
	0x9184e72a00000000, // 13
	0xb5e620f480000000, // 14
	0xe35fa931a0000000, // 15
}

var smallInvPow10 = [15]uint64{
	0xcccccccccccccccd, // 1
	0xa3d70a3d70a3d70a, // 2
	0x83126e978d4fdf3b, // 3
	0xd1b71758e219652c, // 4
	0xa7c5ac471b478423, // 5
	0x8637bd05af6c69b6, // 6
	0xd6bf94d5e57a42bc, // 7
	0xabcc77118461cefd, // 8
	0x89705f4136b4a597, // 9
	0xdbe6fecebdedd5bf, // 10
	0xafebff0bcb24aaff, // 11
	0x8cbccc096f5088cc, // 12
	0xe12e13424bb40e13, // 13
	0xb424dc35095cd80f, // 14
	0x901d7cf73ab0acd9, // 15
}

// Shared by smallPow10 and smallInvPow10: 10^-k uses 1-e.
var smallExp = [15]int16{
	4,  // 1
	7,  // 2
	10, // 3
	14, // 4
	17, // 5
	20, // 6
	24, // 7
	27, // 8
	30, // 9
	34, // 10
	37, // 11
	40, // 12
	44, // 13
	47, // 14
	50, // 15
}

var largePow10 = [21]uint64{
	0x8e1bc9bf04000000, // 16
	0x9dc5ada82b70b59e, // 32
	0xaf298d050e4395d7, // 48
	0xc2781f49ffcfa6d5, // 64
	0xd7e77a8f87daf7fc, // 80
	0xefb3ab16c59b14a3, // 96
	0x850fadc09923329e, // 112
	0x93ba47c980e98ce0, // 128
	0xa402b9c5a8d3a6e7, // 144
	0xb616a12b7fe617aa, // 160
	0xca28a291859bbf93, // 176
	0xe070f78d3927556b, // 192
	0xf92e0c3537826146, // 208
	0x8a5296ffe33cc930, // 224
	0x9991a6f3d6bf1766, // 240
	0xaa7eebfb9df9de8e, // 256
	0xbd49d14aa79dbc82, // 272
	0xd226fc195c6a2f8c, // 288
	0xe950df20247c83fd, // 304
	0x81842f29f2cce376, // 320
	0x8fcac257558ee4e6, // 336
}

var largeInvPow10 = [21]uint64{
	0xe69594bec44de15b, // 16
	0xcfb11ead453994ba, // 32
	0xbb127c53b17ec159, // 48
	0xa87fea27a539e9a5, // 64
	0x97c560ba6b0919a6, // 80
	0x88b402f7fd75539b, // 96
	0xf64335bcf065d37d, // 112
	0xddd0467c64bce4a1, // 128
	0xc7caba6e7c5382c9, // 144
	0xb3f4e093db73a093, // 160
	0xa21727db38cb0030, // 176
	0x91ff83775423cc06, // 192
	0x8380dea93da4bc60, // 208
	0xece53cec4a314ebe, // 224
	0xd5605fcdcf32e1d7, // 240
	0xc0314325637a193a, // 256
	0xad1c8eab5ee43b67, // 272
	0x9becce62836ac577, // 288
	0x8c71dcd9ba0b4926, // 304
	0xfd00b897478238d1, // 320
	0xe3e27a444d8d98b8, // 336
}

// Shared by largePow10 and largeInvPow10: 10^-k uses 1-e.
var largeExp = [21]int16{
	54,   // 16
	107,  // 32
	160,  // 48
	213,  // 64
	266,  // 80
	319,  // 96
	373,  // 112
	426,  // 128
	479,  // 144
	532,  // 160
	585,  // 176
	638,  // 192
	691,  // 208
	745,  // 224
	798,  // 240
	851,  // 256
	904,  // 272
	957,  // 288
	1010, // 304
	1064, // 320
	1117, // 336
}

// Small returns 10^i, or 10^-i if inv is set, for i in [1, 15].
func Small(i int, inv bool) (mant uint64, exp int) {
	exp = int(smallExp[i-1])
	if inv {
		return smallInvPow10[i-1], 1 - exp
	}
	return smallPow10[i-1], exp
}

// Large returns 10^(16i), or 10^(-16i) if inv is set, for i in [1, 21].
func Large(i int, inv bool) (mant uint64, exp int) {
	exp = int(largeExp[i-1])
	if inv {
		return largeInvPow10[i-1], 1 - exp
	}
	return largePow10[i-1], exp
}

// Uint32 holds 10^0 through 10^9, the powers that fit in 32 bits.
var Uint32 = [10]uint32{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
}
