// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixed

// Sum - saturating sum of a vector
func Sum(v []Fixed) Fixed {
	s := Zero
	for _, f := range v {
		s = s.Add(f)
	}
	return s
}

// Normalise - scale v in place so that it sums to One
//
// a zero vector is left unchanged; the result sums to within len(v)
// units of the last place of One, never above it
func Normalise(v []Fixed) {
	total := Sum(v)
	if Zero == total {
		return
	}
	for i, f := range v {
		v[i] = f.Div(total)
	}
}

// ToU16Vector - convert a vector of [0,1] values to u16 fractions
func ToU16Vector(v []Fixed) []uint16 {
	u := make([]uint16, len(v))
	for i, f := range v {
		u[i] = f.ToU16()
	}
	return u
}
