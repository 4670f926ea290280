// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pow10

import "math/big"

// The 128-bit table φ̃k used by the shortest digit generator.
// φ̃k = ⌈φk⌉ where φk = 10^k*2^(-e_k) and e_k is the unique integer
// satisfying 2^127 ≤ φk < 2^128. For k ≥ 0 small enough that 10^k
// fits in 128 bits, φk is an integer and the ceiling is a no-op.
const (
	MinK = -292 // k ∈ [-292, 326] for float64.
	MaxK = 326
)

var phi128 [MaxK - MinK + 1][2]uint64

func init() {
	var (
		one  = big.NewInt(1)
		ten  = big.NewInt(10)
		p    = new(big.Int)
		q    = new(big.Int)
		r    = new(big.Int)
		mask = new(big.Int).Sub(new(big.Int).Lsh(one, 64), one)
	)
	for k := MinK; k <= MaxK; k++ {
		if k >= 0 {
			p.Exp(ten, big.NewInt(int64(k)), nil)
			sh := 128 - p.BitLen()
			if sh >= 0 {
				q.Lsh(p, uint(sh))
			} else {
				// ⌈p / 2^-sh⌉
				q.Sub(p, one)
				q.Rsh(q, uint(-sh))
				q.Add(q, one)
			}
		} else {
			// 10^k lies in (2^-L, 2^(1-L)) where L is the bit length of 10^-k.
			p.Exp(ten, big.NewInt(int64(-k)), nil)
			q.Lsh(one, uint(127+p.BitLen()))
			q.QuoRem(q, p, r)
			if r.Sign() != 0 {
				q.Add(q, one)
			}
		}
		hi := new(big.Int).Rsh(q, 64)
		lo := new(big.Int).And(q, mask)
		phi128[k-MinK] = [2]uint64{hi.Uint64(), lo.Uint64()}
	}
}

// Phi returns the high and low 64 bits of φ̃k for k in [MinK, MaxK].
func Phi(k int) (hi, lo uint64) {
	e := phi128[k-MinK]
	return e[0], e[1]
}
