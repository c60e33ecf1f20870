// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package signed - canonical messages for signed RPC requests
//
// a request names the method, a recent block height and its fields;
// the signer signs the packed form and the server rebuilds it from the
// decoded arguments
package signed

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/fault"
)

// Window - how many blocks a signed request stays valid
const Window = 20

// Message - the bytes covered by a request signature
func Message(method string, height uint64, fields ...interface{}) []byte {
	buffer := make([]byte, 0, 64)
	buffer = appendBytes(buffer, []byte(method))
	buffer = appendUint(buffer, height, 8)

	for i, field := range fields {
		switch f := field.(type) {
		case uint8:
			buffer = append(buffer, f)
		case uint16:
			buffer = appendUint(buffer, uint64(f), 2)
		case uint32:
			buffer = appendUint(buffer, uint64(f), 4)
		case uint64:
			buffer = appendUint(buffer, f, 8)
		case string:
			buffer = appendBytes(buffer, []byte(f))
		case []byte:
			buffer = appendBytes(buffer, f)
		case account.Key:
			buffer = append(buffer, f.Bytes()...)
		case []uint16:
			buffer = appendUint(buffer, uint64(len(f)), 2)
			for _, u := range f {
				buffer = appendUint(buffer, uint64(u), 2)
			}
		default:
			logger.Panicf("signed.Message field[%d] has unsupported type: %T", i, field)
		}
	}
	return buffer
}

// Sign - sign a request
func Sign(privateKey *account.PrivateKey, method string, height uint64, fields ...interface{}) account.Signature {
	return privateKey.Sign(Message(method, height, fields...))
}

// Verify - check the signature and the freshness of a request
func Verify(signer account.Key, signature account.Signature, current uint64, method string, height uint64, fields ...interface{}) error {
	if height > current+Window || height+Window < current {
		return fault.InvalidBlockNumber
	}
	return signer.CheckSignature(Message(method, height, fields...), signature)
}

func appendUint(buffer []byte, n uint64, size int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return append(buffer, b[8-size:]...)
}

func appendBytes(buffer []byte, b []byte) []byte {
	l := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(l, uint64(len(b)))
	buffer = append(buffer, l[:n]...)
	return append(buffer, b...)
}
