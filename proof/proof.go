// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package proof - registration admission by proof of work
//
// the work for a registration is SHA3-256(block number ++ nonce ++ hotkey)
// with both numbers big endian uint64; it must meet the difficulty of
// the subnetwork and name a recent block
package proof

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/difficulty"
	"github.com/bitmark-inc/paratensord/hyperparameter"
)

// MaxBlockAge - a proof must be for one of the latest blocks
const MaxBlockAge = 3

// Digest - the work hash for a registration attempt
func Digest(blockNumber uint64, nonce uint64, hotkey account.Key) []byte {
	buffer := make([]byte, 16, 16+account.KeySize)
	binary.BigEndian.PutUint64(buffer, blockNumber)
	binary.BigEndian.PutUint64(buffer[8:], nonce)
	buffer = append(buffer, hotkey.Bytes()...)
	digest := sha3.Sum256(buffer)
	return digest[:]
}

// DifficultyFunc - difficulty of a subnetwork
type DifficultyFunc func(netuid uint16) (uint64, error)

// Verifier - checks registration proofs against the current block height
type Verifier struct {
	log        *logger.L
	height     func() uint64
	difficulty DifficultyFunc
}

// New - verifier using committed subnetwork difficulty
func New(log *logger.L, height func() uint64) *Verifier {
	return &Verifier{
		log:    log,
		height: height,
		difficulty: func(netuid uint16) (uint64, error) {
			p, err := hyperparameter.Read(netuid)
			return p.Difficulty, err
		},
	}
}

// NewWithDifficulty - verifier with a custom difficulty source
func NewWithDifficulty(log *logger.L, height func() uint64, difficulty DifficultyFunc) *Verifier {
	return &Verifier{
		log:        log,
		height:     height,
		difficulty: difficulty,
	}
}

// Verify - true if the proof admits hotkey to the subnetwork
func (v *Verifier) Verify(netuid uint16, blockNumber uint64, nonce uint64, work []byte, hotkey account.Key) bool {
	height := v.height()
	if blockNumber > height || height-blockNumber >= MaxBlockAge {
		v.log.Debugf("netuid: %d  stale block: %d  height: %d", netuid, blockNumber, height)
		return false
	}

	if !bytes.Equal(Digest(blockNumber, nonce, hotkey), work) {
		v.log.Debugf("netuid: %d  work mismatch for: %s", netuid, hotkey)
		return false
	}

	d, err := v.difficulty(netuid)
	if nil != err {
		v.log.Debugf("netuid: %d  difficulty error: %s", netuid, err)
		return false
	}

	return difficulty.Meets(work, d)
}

// Solve - search nonces from start until one meets the difficulty
//
// returns false if shutdown is closed first
func Solve(blockNumber uint64, hotkey account.Key, d uint64, start uint64, shutdown <-chan struct{}) (uint64, []byte, bool) {
	for nonce := start; ; nonce += 1 {
		if 0 == nonce&0xfff {
			select {
			case <-shutdown:
				return 0, nil, false
			default:
			}
		}
		work := Digest(blockNumber, nonce, hotkey)
		if difficulty.Meets(work, d) {
			return nonce, work, true
		}
	}
}
