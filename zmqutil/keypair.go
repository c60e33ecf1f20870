// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/util"
)

// curve keys are 32 bytes, stored as a tag followed by hex
const curveKeyLength = 32

type keyKind struct {
	tag     string
	private bool
	mode    os.FileMode
	invalid error
}

var (
	publicKind  = keyKind{tag: "PUBLIC:", private: false, mode: 0666, invalid: fault.InvalidPublicKeyFile}
	privateKind = keyKind{tag: "PRIVATE:", private: true, mode: 0600, invalid: fault.InvalidPrivateKeyFile}
)

func (k keyKind) encode(z85 string) []byte {
	return []byte(k.tag + hex.EncodeToString([]byte(zmq.Z85decode(z85))) + "\n")
}

func (k keyKind) decode(s string) ([]byte, error) {
	h, err := hex.DecodeString(strings.TrimPrefix(s, k.tag))
	if nil != err || curveKeyLength != len(h) {
		return nil, k.invalid
	}
	return h, nil
}

// MakeKeyPair - generate a curve pair into two new files
//
// neither file may exist beforehand
func MakeKeyPair(publicKeyFileName string, privateKeyFileName string) error {
	for _, name := range []string{publicKeyFileName, privateKeyFileName} {
		if util.EnsureFileExists(name) {
			return fault.KeyFileAlreadyExists
		}
	}

	publicZ85, privateZ85, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	err = ioutil.WriteFile(publicKeyFileName, publicKind.encode(publicZ85), publicKind.mode)
	if nil != err {
		return err
	}
	err = ioutil.WriteFile(privateKeyFileName, privateKind.encode(privateZ85), privateKind.mode)
	if nil != err {
		os.Remove(publicKeyFileName)
		return err
	}
	return nil
}

// ReadPublicKeyFile - public key from a file written by MakeKeyPair
func ReadPublicKeyFile(fileName string) ([]byte, error) {
	return readKeyFile(fileName, publicKind)
}

// ReadPrivateKeyFile - private key from a file written by MakeKeyPair
func ReadPrivateKeyFile(fileName string) ([]byte, error) {
	return readKeyFile(fileName, privateKind)
}

// ReadPublicKey - decode tagged text that must hold a public key
func ReadPublicKey(key string) ([]byte, error) {
	return readKey(key, publicKind)
}

// ReadPrivateKey - decode tagged text that must hold a private key
func ReadPrivateKey(key string) ([]byte, error) {
	return readKey(key, privateKind)
}

func readKeyFile(fileName string, kind keyKind) ([]byte, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return readKey(string(data), kind)
}

func readKey(key string, kind keyKind) ([]byte, error) {
	data, private, err := ParseKey(key)
	if nil != err {
		return nil, err
	}
	if private != kind.private {
		return nil, kind.invalid
	}
	return data, nil
}

// ParseKey - decode either kind of tagged key, the flag is true for
// a private key
//
// text with no known tag is reported as a bad public key
func ParseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)
	for _, kind := range []keyKind{privateKind, publicKind} {
		if strings.HasPrefix(s, kind.tag) {
			h, err := kind.decode(s)
			if nil != err {
				return nil, false, err
			}
			return h, kind.private, nil
		}
	}
	return nil, false, fault.InvalidPublicKeyFile
}
