// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/paratensord/fault"
)

// SignatureSize - bytes in a detached ed25519 signature
const SignatureSize = ed25519.SignatureSize

// Signature - detached signature carried by every signed request,
// hex encoded in JSON
type Signature []byte

// String - hex form for %s
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// GoString - for %#v
func (signature Signature) GoString() string {
	return "<signature:" + signature.String() + ">"
}

// MarshalText - hex text for JSON
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(signature.String()), nil
}

// UnmarshalText - decode hex text, anything other than a full
// signature is refused before it reaches a verifier
func (signature *Signature) UnmarshalText(s []byte) error {
	if hex.EncodedLen(SignatureSize) != len(s) {
		return fault.InvalidSignature
	}
	buffer := make([]byte, SignatureSize)
	if _, err := hex.Decode(buffer, s); nil != err {
		return fault.InvalidSignature
	}
	*signature = buffer
	return nil
}
