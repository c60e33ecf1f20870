// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/paratensord/fault"
)

// miscellaneous constants
const (
	KeySize = ed25519.PublicKeySize

	checksumLength = 4

	// leading byte of the encoded form
	publicKeyCode = 0x01
)

// Key - a hotkey or coldkey: an ed25519 public key
type Key [KeySize]byte

// KeyFromBytes - copy a raw public key
func KeyFromBytes(b []byte) (Key, error) {
	k := Key{}
	if KeySize != len(b) {
		return k, fault.InvalidKeyLength
	}
	copy(k[:], b)
	return k, nil
}

// KeyFromBase58 - decode the checksummed text form of a key
func KeyFromBase58(s string) (Key, error) {
	k := Key{}

	decoded, err := base58.Decode(s)
	if nil != err {
		return k, fault.InvalidAccount
	}
	if 1+KeySize+checksumLength != len(decoded) || publicKeyCode != decoded[0] {
		return k, fault.InvalidAccount
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return k, fault.InvalidChecksum
	}

	copy(k[:], decoded[1:checksumStart])
	return k, nil
}

// Bytes - the raw public key
func (k Key) Bytes() []byte {
	return k[:]
}

// String - the checksummed base58 form
func (k Key) String() string {
	buffer := make([]byte, 0, 1+KeySize+checksumLength)
	buffer = append(buffer, publicKeyCode)
	buffer = append(buffer, k[:]...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for %#v
func (k Key) GoString() string {
	return "<key:" + k.String() + ">"
}

// MarshalText - for JSON
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText - for JSON
func (k *Key) UnmarshalText(s []byte) error {
	decoded, err := KeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*k = decoded
	return nil
}

// CheckSignature - verify an ed25519 signature over message by this key
func (k Key) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(k[:]), message, signature) {
		return fault.InvalidSignature
	}
	return nil
}
