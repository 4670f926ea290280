// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pow10

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratPow10(k int) *big.Rat {
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs(k))), nil)
	if k < 0 {
		return new(big.Rat).SetFrac(big.NewInt(1), p)
	}
	return new(big.Rat).SetInt(p)
}

func ratPow2(e int) *big.Rat {
	p := new(big.Int).Lsh(big.NewInt(1), uint(abs(e)))
	if e < 0 {
		return new(big.Rat).SetFrac(big.NewInt(1), p)
	}
	return new(big.Rat).SetInt(p)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// floorLog10 returns ⌊log10(r)⌋ for r > 0.
func floorLog10(r *big.Rat) int {
	k := int(float64(r.Num().BitLen()-r.Denom().BitLen()) * 0.30103)
	for ratPow10(k).Cmp(r) > 0 {
		k--
	}
	for ratPow10(k+1).Cmp(r) <= 0 {
		k++
	}
	return k
}

// requireRounded checks that m × 2^(e-64) is 10^k correctly rounded
// to a normalized 64-bit significand.
func requireRounded(t *testing.T, m uint64, e, k int) {
	t.Helper()
	require.NotZero(t, m>>63, "10^%d: significand not normalized", k)
	// 10^k × 2^(64-e) must be within half a unit of m.
	exact := new(big.Rat).Mul(ratPow10(k), ratPow2(64-e))
	diff := new(big.Rat).Sub(new(big.Rat).SetInt(new(big.Int).SetUint64(m)), exact)
	diff.Abs(diff)
	require.LessOrEqual(t, diff.Cmp(big.NewRat(1, 2)), 0, "10^%d: %#x × 2^%d is off by %s", k, m, e-64, diff.FloatString(3))
}

func TestSmall(t *testing.T) {
	for i := 1; i <= 15; i++ {
		m, e := Small(i, false)
		requireRounded(t, m, e, i)
		m, e = Small(i, true)
		requireRounded(t, m, e, -i)
	}
}

func TestLarge(t *testing.T) {
	for i := 1; i <= 21; i++ {
		m, e := Large(i, false)
		requireRounded(t, m, e, 16*i)
		m, e = Large(i, true)
		requireRounded(t, m, e, -16*i)
	}
}

func TestUint32(t *testing.T) {
	p := uint32(1)
	for i, v := range Uint32 {
		assert.Equal(t, p, v, "10^%d", i)
		p *= 10
	}
}

func TestCachedPowers(t *testing.T) {
	for i, p := range cachedPowers {
		// f × 2^e ≈ 10^k is the same as requireRounded with the exponent
		// shifted by the significand width.
		requireRounded(t, p.f, int(p.e)+64, CachedMinDecimalExp+i*cachedExpStep)
	}
	assert.Equal(t, CachedMaxDecimalExp, CachedMinDecimalExp+(len(cachedPowers)-1)*cachedExpStep)
}

func TestCachedRange(t *testing.T) {
	// Every normalized binary64 exponent, from the smallest subnormal
	// shifted up to 64 bits to the largest finite value.
	for we := -1137; we <= 960; we++ {
		minExp := -60 - (we + 64)
		maxExp := -32 - (we + 64)
		f, e, k := Cached(minExp, maxExp)
		require.NotZero(t, f>>63)
		require.GreaterOrEqual(t, e, minExp, "w.e=%d", we)
		require.LessOrEqual(t, e, maxExp, "w.e=%d", we)
		require.Zero(t, (k-CachedMinDecimalExp)%cachedExpStep)
	}

	// Windows no double produces fall back to the table's ends.
	require.NotPanics(t, func() {
		_, _, k := Cached(-100000, -99973)
		require.Equal(t, CachedMinDecimalExp, k)
		_, _, k = Cached(100000, 100027)
		require.Equal(t, CachedMaxDecimalExp, k)
	})
}

func TestPhi(t *testing.T) {
	tests := []struct {
		k      int
		hi, lo uint64
	}{
		{MinK, 0xff77b1fcbebcdc4f, 0x25e8e89c13bb0f7b},
		{-100, 0xdff9772470297ebd, 0x59787e2b93bc56f8},
		{-1, 0xcccccccccccccccc, 0xcccccccccccccccd},
		{0, 0x8000000000000000, 0x0000000000000000},
		{1, 0xa000000000000000, 0x0000000000000000},
		{27, 0xcecb8f27f4200f3a, 0x0000000000000000},
		{28, 0x813f3978f8940984, 0x4000000000000000},
		{100, 0x924d692ca61be758, 0x593c2626705f9c57},
		{MaxK, 0xf70867153aa2db38, 0xb8cbee4fc66d1ea8},
	}
	for _, tt := range tests {
		hi, lo := Phi(tt.k)
		assert.Equal(t, tt.hi, hi, "k=%d hi", tt.k)
		assert.Equal(t, tt.lo, lo, "k=%d lo", tt.k)
	}
	for k := MinK; k <= MaxK; k++ {
		hi, _ := Phi(k)
		require.NotZero(t, hi>>63, "k=%d", k)
	}
}

func TestFloorLog10Pow2(t *testing.T) {
	for e := -1700; e <= 1700; e++ {
		require.Equal(t, floorLog10(ratPow2(e)), FloorLog10Pow2(e), "e=%d", e)
	}
}

func TestCeilLog10Pow2(t *testing.T) {
	for e := -1700; e <= 1700; e++ {
		want := floorLog10(ratPow2(e))
		if e != 0 {
			want++
		}
		require.Equal(t, want, CeilLog10Pow2(e), "e=%d", e)
	}
}

func TestFloorLog2Pow10(t *testing.T) {
	for e := -1233; e <= 1233; e++ {
		var want int
		if e >= 0 {
			want = ratPow10(e).Num().BitLen() - 1
		} else {
			want = -ratPow10(-e).Num().BitLen()
		}
		require.Equal(t, want, FloorLog2Pow10(e), "e=%d", e)
	}
}

func TestFloorLog10Pow2MinusLog10_4Over3(t *testing.T) {
	threeQuarters := big.NewRat(3, 4)
	for e := -1500; e <= 1500; e++ {
		r := new(big.Rat).Mul(ratPow2(e), threeQuarters)
		require.Equal(t, floorLog10(r), FloorLog10Pow2MinusLog10_4Over3(e), "e=%d", e)
	}
}
