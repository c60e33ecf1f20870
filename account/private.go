// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/paratensord/fault"
)

// seed parameters
var (
	seedHeader       = []byte{0x5a, 0xfe, 0x02}
	seedHeaderLength = len(seedHeader)
)

// PrivateKey - an ed25519 signing key kept as its seed
type PrivateKey struct {
	seed [ed25519.SeedSize]byte
	key  ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh key from the system random source
func NewPrivateKey() (*PrivateKey, error) {
	return newPrivateKey(rand.Reader)
}

func newPrivateKey(r io.Reader) (*PrivateKey, error) {
	seed := [ed25519.SeedSize]byte{}
	if _, err := io.ReadFull(r, seed[:]); nil != err {
		return nil, err
	}
	return privateKeyFromSeed(seed), nil
}

func privateKeyFromSeed(seed [ed25519.SeedSize]byte) *PrivateKey {
	return &PrivateKey{
		seed: seed,
		key:  ed25519.NewKeyFromSeed(seed[:]),
	}
}

// PrivateKeyFromBase58Seed - decode a seed produced by Seed()
func PrivateKeyFromBase58Seed(s string) (*PrivateKey, error) {
	decoded, err := base58.Decode(s)
	if nil != err {
		return nil, fault.InvalidAccount
	}
	if seedHeaderLength+ed25519.SeedSize+checksumLength != len(decoded) {
		return nil, fault.InvalidKeyLength
	}
	if !bytes.Equal(seedHeader, decoded[:seedHeaderLength]) {
		return nil, fault.InvalidAccount
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.InvalidChecksum
	}

	seed := [ed25519.SeedSize]byte{}
	copy(seed[:], decoded[seedHeaderLength:checksumStart])
	return privateKeyFromSeed(seed), nil
}

// Seed - base58 text form of the private key seed
func (privateKey *PrivateKey) Seed() string {
	buffer := make([]byte, 0, seedHeaderLength+ed25519.SeedSize+checksumLength)
	buffer = append(buffer, seedHeader...)
	buffer = append(buffer, privateKey.seed[:]...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// Key - the public half
func (privateKey *PrivateKey) Key() Key {
	k := Key{}
	copy(k[:], privateKey.key.Public().(ed25519.PublicKey))
	return k
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.key, message)
}
