// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
)

// names of the counters in the Globals pool
var (
	GlobalN             = []byte("N")
	GlobalTotalStake    = []byte("stake")
	GlobalTotalIssuance = []byte("issuance")
	GlobalHeight        = []byte("height")
	GlobalBlocksPerStep = []byte("blocks-per-step")
)

// NetuidKey - netuid
func NetuidKey(netuid uint16) []byte {
	key := make([]byte, 2)
	binary.BigEndian.PutUint16(key, netuid)
	return key
}

// UidKey - netuid ++ uid
func UidKey(netuid uint16, uid uint16) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint16(key, netuid)
	binary.BigEndian.PutUint16(key[2:], uid)
	return key
}

// NetuidSuffixKey - netuid ++ suffix
func NetuidSuffixKey(netuid uint16, suffix []byte) []byte {
	key := make([]byte, 2, 2+len(suffix))
	binary.BigEndian.PutUint16(key, netuid)
	return append(key, suffix...)
}

// PairKey - first ++ second
func PairKey(first []byte, second []byte) []byte {
	key := make([]byte, 0, len(first)+len(second))
	key = append(key, first...)
	return append(key, second...)
}
