// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpconv_test

import (
	"errors"
	"testing"

	. "github.com/taichimaeda/fpconv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDigitBuffer(t *testing.T) {
	d, err := NewDigitBuffer("0125", -2, true)
	require.NoError(t, err)
	assert.Equal(t, DigitBuffer{Digits: []byte("0125"), Scale: -2, Neg: true}, d)

	d, err = NewDigitBuffer("", 0, false)
	require.NoError(t, err)
	assert.Empty(t, d.Digits)
}

func TestFromSignificand(t *testing.T) {
	tests := []struct {
		digits string
		exp    int
		scale  int
	}{
		{"5", -1, 0},
		{"5", 0, 1},
		{"123", 2, 5},
		{"9007199254740993", 0, 16},
		{"", 7, 7},
	}
	for _, test := range tests {
		d, err := FromSignificand(test.digits, test.exp, false)
		require.NoError(t, err)
		assert.Equal(t, test.scale, d.Scale, "FromSignificand(%q, %d)", test.digits, test.exp)
		assert.Equal(t, test.digits, string(d.Digits))
	}
}

func TestDigitBufferSyntax(t *testing.T) {
	for _, s := range []string{"1.5", "-1", "12a", " 1", "1e5", "\x00"} {
		d, err := NewDigitBuffer(s, 0, false)
		assert.ErrorIs(t, err, ErrSyntax, "NewDigitBuffer(%q)", s)
		assert.Zero(t, d)

		_, err = FromSignificand(s, 0, false)
		assert.ErrorIs(t, err, ErrSyntax, "FromSignificand(%q)", s)

		var ne *NumError
		require.True(t, errors.As(err, &ne))
		assert.Equal(t, "FromSignificand", ne.Func)
		assert.Equal(t, s, ne.Num)
	}

	_, err := NewDigitBuffer("1.5", 0, false)
	assert.EqualError(t, err, `fpconv.NewDigitBuffer: parsing "1.5": invalid syntax`)
}

func TestDigitBufferString(t *testing.T) {
	tests := []struct {
		d   DigitBuffer
		out string
	}{
		{DigitBuffer{}, "0"},
		{DigitBuffer{Neg: true}, "-0"},
		{DigitBuffer{Digits: []byte("5"), Scale: 0}, "0.5e0"},
		{DigitBuffer{Digits: []byte("17976931348623157"), Scale: 309}, "0.17976931348623157e309"},
		{DigitBuffer{Digits: []byte("494"), Scale: -323, Neg: true}, "-0.494e-323"},
	}
	for _, test := range tests {
		assert.Equal(t, test.out, test.d.String())
	}
}
