// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++     = concatenation of byte data
// 3. netuid = big endian uint16 (2 bytes)
// 4. uid    = big endian uint16 (2 bytes)
// 5. key    = hotkey or coldkey (32 byte ed25519 public key)
// 6. count  = big endian uint64 (8 bytes)
// 7. row    = repeated (uid ++ big endian uint16 value)
//
// Globals:
//
//   G ++ name                - global counters: "N", "stake", "issuance", "height", "blocks-per-step"
//                              data: count
//   R ++ netuid              - emission ratio
//                              data: big endian uint16
//
// Subnetworks:
//
//   U ++ netuid              - subnetwork exists
//                              data: creation block number
//   N ++ netuid              - occupied slot count
//                              data: count
//   H ++ netuid              - hyperparameters
//                              data: packed hyperparameter record
//   E ++ netuid              - block number of the last epoch
//                              data: count
//   V ++ netuid ++ vector    - derived score vectors, one byte vector id
//                              data: N big endian uint16 (u64 for emission)
//
// Identity:
//
//   K ++ netuid ++ uid       - uid -> hotkey
//                              data: hotkey
//   I ++ netuid ++ hotkey    - hotkey -> uid
//                              data: uid
//   C ++ hotkey              - hotkey -> coldkey binding
//                              data: coldkey
//   O ++ coldkey ++ hotkey   - hotkeys owned by a coldkey
//                              data: empty
//   T ++ netuid ++ uid       - registration block
//                              data: count
//   L ++ netuid ++ uid       - block number of the last weight update
//                              data: count
//
// Graph:
//
//   W ++ netuid ++ uid       - weight row
//                              data: row
//   B ++ netuid ++ uid       - bond row
//                              data: row
//
// Stake and endpoints:
//
//   S ++ hotkey              - stake
//                              data: count
//   A ++ hotkey              - axon endpoint metadata
//                              data: packed axon record
//   $ ++ coldkey             - free balance (account layer stand-in)
//                              data: count
//
// Testing:
//   Z ++ key                 - testing data
package storage
