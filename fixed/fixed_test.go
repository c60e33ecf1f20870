// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/paratensord/fixed"
)

func integer(i uint64) fixed.Fixed {
	return fixed.One.MulInt(i)
}

func TestU16Conversion(t *testing.T) {
	assert.Equal(t, fixed.One, fixed.FromU16(0xffff), "0xffff is not one")
	assert.Equal(t, fixed.Zero, fixed.FromU16(0), "0 is not zero")

	for _, u := range []uint16{0, 1, 2, 0x7fff, 0x8000, 0x1234, 0xfffe, 0xffff} {
		assert.Equal(t, u, fixed.FromU16(u).ToU16(), "round trip of %d", u)
	}

	assert.Equal(t, uint16(0xffff), integer(3).ToU16(), "no saturation")
}

func TestArithmetic(t *testing.T) {
	two := integer(2)
	three := integer(3)

	assert.Equal(t, integer(6), two.Mul(three), "wrong product")
	assert.Equal(t, integer(5), two.Add(three), "wrong sum")
	assert.Equal(t, fixed.One, three.Sub(two), "wrong difference")
	assert.Equal(t, fixed.Zero, two.Sub(three), "difference not floored")
	assert.Equal(t, fixed.Half, fixed.One.Div(two), "wrong quotient")
	assert.Equal(t, fixed.Zero, fixed.One.Div(fixed.Zero), "division by zero")
	assert.Equal(t, fixed.Max, fixed.Max.Add(fixed.One), "no saturating add")
	assert.Equal(t, fixed.Max, integer(1<<31).Mul(integer(4)), "no saturating mul")
	assert.Equal(t, integer(12), three.MulInt(4), "wrong integer product")
	assert.Equal(t, uint64(3), fixed.FromRatio(7, 2).Floor(), "wrong floor")
	assert.Equal(t, fixed.Zero, fixed.FromRatio(7, 0), "zero denominator")
}

func TestMulAmount(t *testing.T) {
	assert.Equal(t, uint64(500), fixed.Half.MulAmount(1000), "half of 1000")
	assert.Equal(t, uint64(333), fixed.FromRatio(1, 3).MulAmount(1000), "third of 1000")
	assert.Equal(t, uint64(1000), fixed.One.MulAmount(1000), "all of 1000")
}

func TestMulDiv(t *testing.T) {
	assert.Equal(t, uint64(0x8000), fixed.MulDiv(0x10000, 0x8000, 0x10000), "wrong quotient")
	assert.Equal(t, uint64(1<<62), fixed.MulDiv(1<<63, 1<<63, 1<<64-1), "wrong wide quotient")
	assert.Equal(t, uint64(0), fixed.MulDiv(5, 7, 0), "zero divisor")
	assert.Equal(t, uint64(1<<64-1), fixed.MulDiv(1<<63, 4, 1), "not saturated")
}

func TestNormalise(t *testing.T) {
	v := []fixed.Fixed{integer(1), integer(1), integer(1)}
	fixed.Normalise(v)

	s := fixed.Sum(v)
	assert.True(t, s <= fixed.One, "sum above one: %s", s)
	assert.True(t, fixed.One-s <= fixed.Fixed(len(v)), "sum too far from one: %s", s)
	assert.Equal(t, v[0], v[1], "unequal")

	z := []fixed.Fixed{0, 0}
	fixed.Normalise(z)
	assert.Equal(t, []fixed.Fixed{0, 0}, z, "zero vector changed")
}


func TestString(t *testing.T) {
	assert.Equal(t, "1.500000", fixed.One.Add(fixed.Half).String(), "wrong string")
}
