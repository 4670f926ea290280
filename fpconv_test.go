// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpconv_test

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"testing"

	. "github.com/taichimaeda/fpconv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomFloat64FullRange(r *rand.Rand) float64 {
	bits := r.Uint64() // random 64-bit pattern
	return math.Float64frombits(bits)
}

// randomFinite returns a random finite nonzero double, either sign.
func randomFinite(r *rand.Rand) float64 {
	for {
		v := randomFloat64FullRange(r)
		if v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v
		}
	}
}

// splitE splits strconv's 'e' format, [-]d[.ddd]e±xx, into the digits
// and the decimal point position of 0.digits × 10^scale.
func splitE(s string) (digits string, scale int, neg bool) {
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	mant, exp, _ := strings.Cut(s, "e")
	e, err := strconv.Atoi(exp)
	if err != nil {
		panic(err)
	}
	return strings.Replace(mant, ".", "", 1), e + 1, neg
}

// want returns the n correctly rounded digits of v as produced by strconv.
func want(v float64, n int) (digits string, scale int) {
	digits, scale, _ = splitE(strconv.FormatFloat(v, 'e', n-1, 64))
	return digits, scale
}

func requireSameFloat(t *testing.T, want, got float64, msgAndArgs ...any) {
	t.Helper()
	require.Equal(t, math.Float64bits(want), math.Float64bits(got), msgAndArgs...)
}

func TestConcurrentUse(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	inputs := make([]float64, 256)
	for i := range inputs {
		inputs[i] = randomFinite(r)
	}

	type result struct {
		digits, shortest DigitBuffer
		ok               bool
		parsed           float64
	}
	run := func(v float64) result {
		var res result
		res.digits, res.ok = FormatDigits(v, 15)
		res.shortest, _ = Shortest(v)
		d, _ := Digits(v, 17)
		res.parsed = ParseDigits(d)
		return res
	}
	sequential := make([]result, len(inputs))
	for i, v := range inputs {
		sequential[i] = run(v)
	}

	const workers = 8
	results := make([][]result, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := make([]result, len(inputs))
			// Walk the inputs from a different starting point per worker.
			for j := range inputs {
				i := (j + w*37) % len(inputs)
				out[i] = run(inputs[i])
			}
			results[w] = out
		}()
	}
	wg.Wait()

	for w := range workers {
		for i := range inputs {
			assert.Equal(t, sequential[i], results[w][i], "worker %d input %v", w, inputs[i])
		}
	}
}
