// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixed

import (
	"fmt"
	"math/bits"
)

// Fixed - unsigned 32.32 fixed point number
//
// all operations truncate (floor) and saturate at Max rather than wrap
type Fixed uint64

// constants
const (
	fractionBits = 32

	Zero Fixed = 0
	One  Fixed = 1 << fractionBits
	Half Fixed = One >> 1
	Max  Fixed = 1<<64 - 1

	// u16 fractions use 0xffff as 1.0
	U16One = 0xffff
)

// FromRatio - numerator/denominator, zero if denominator is zero
func FromRatio(numerator uint64, denominator uint64) Fixed {
	if 0 == denominator {
		return Zero
	}
	hi, lo := bits.Mul64(numerator, uint64(One))
	return div128(hi, lo, denominator)
}

// FromU16 - a u16 fraction where 0xffff represents one
func FromU16(u uint16) Fixed {
	return FromRatio(uint64(u), U16One)
}

// ToU16 - convert a value in [0,1] to the nearest u16 fraction, saturating at 0xffff
func (f Fixed) ToU16() uint16 {
	if f >= One {
		return U16One
	}
	hi, lo := bits.Mul64(uint64(f), U16One)
	lo, carry := bits.Add64(lo, uint64(Half), 0)
	hi += carry
	return uint16(hi<<(64-fractionBits) | lo>>fractionBits)
}

// Add - saturating addition
func (f Fixed) Add(g Fixed) Fixed {
	sum, carry := bits.Add64(uint64(f), uint64(g), 0)
	if 0 != carry {
		return Max
	}
	return Fixed(sum)
}

// Sub - subtraction floored at zero
func (f Fixed) Sub(g Fixed) Fixed {
	if g >= f {
		return Zero
	}
	return f - g
}

// Mul - product, truncated
func (f Fixed) Mul(g Fixed) Fixed {
	hi, lo := bits.Mul64(uint64(f), uint64(g))
	if hi>>fractionBits != 0 {
		return Max
	}
	return Fixed(hi<<(64-fractionBits) | lo>>fractionBits)
}

// Div - quotient, truncated; zero divisor gives zero
func (f Fixed) Div(g Fixed) Fixed {
	if 0 == g {
		return Zero
	}
	hi := uint64(f) >> (64 - fractionBits)
	lo := uint64(f) << fractionBits
	return div128(hi, lo, uint64(g))
}

// MulInt - multiply by a plain integer
func (f Fixed) MulInt(i uint64) Fixed {
	hi, lo := bits.Mul64(uint64(f), i)
	if 0 != hi {
		return Max
	}
	return Fixed(lo)
}

// Floor - integer part
func (f Fixed) Floor() uint64 {
	return uint64(f) >> fractionBits
}

// MulAmount - apply this fraction to an integer amount, floor of the result
func (f Fixed) MulAmount(amount uint64) uint64 {
	hi, lo := bits.Mul64(uint64(f), amount)
	if hi>>fractionBits != 0 {
		return 1<<64 - 1
	}
	return hi<<(64-fractionBits) | lo>>fractionBits
}

// MulDiv - floor(a × b / d) with a 128 bit intermediate, saturating;
// zero divisor gives zero
func MulDiv(a uint64, b uint64, d uint64) uint64 {
	if 0 == d {
		return 0
	}
	hi, lo := bits.Mul64(a, b)
	if hi >= d {
		return 1<<64 - 1
	}
	q, _ := bits.Div64(hi, lo, d)
	return q
}

// String - for debugging
func (f Fixed) String() string {
	frac := uint64(f) & (uint64(One) - 1)
	// six decimal places are enough to read a trace
	micro := (frac * 1000000) >> fractionBits
	return fmt.Sprintf("%d.%06d", f.Floor(), micro)
}

// the 128 bit value hi:lo divided by d saturating at Max
func div128(hi uint64, lo uint64, d uint64) Fixed {
	if hi >= d {
		return Max
	}
	q, _ := bits.Div64(hi, lo, d)
	return Fixed(q)
}
