// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package difficulty - registration proof of work difficulty
//
// a 256 bit work hash read as a big endian integer meets difficulty d
// when hash × d still fits in 256 bits, so on average d hashes are
// needed to find a solution
package difficulty

import (
	"fmt"
	"math/big"

	"github.com/bitmark-inc/paratensord/fault"
)

// HashSize - bytes in a work hash
const HashSize = 32

// limit is 2^256
var limit big.Int

func init() {
	limit.Lsh(big.NewInt(1), 8*HashSize)
}

// Meets - true if the hash satisfies the difficulty
func Meets(hash []byte, difficulty uint64) bool {
	if HashSize != len(hash) || 0 == difficulty {
		return false
	}
	h := new(big.Int).SetBytes(hash)
	h.Mul(h, new(big.Int).SetUint64(difficulty))
	return h.Cmp(&limit) < 0
}

// Target - the largest hash that meets the difficulty
func Target(difficulty uint64) (*big.Int, error) {
	if 0 == difficulty {
		return nil, fault.InvalidDifficulty
	}
	t := new(big.Int).Sub(&limit, big.NewInt(1))
	return t.Div(t, new(big.Int).SetUint64(difficulty)), nil
}

// TargetString - target as 64 hex digits, for display
func TargetString(difficulty uint64) string {
	t, err := Target(difficulty)
	if nil != err {
		return err.Error()
	}
	return fmt.Sprintf("%064x", t)
}
