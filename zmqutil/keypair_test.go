// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/zmqutil"
)

const (
	publicText  = "PUBLIC:0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	privateText = "PRIVATE:fedcba9876543210fedcba9876543210fedcba9876543210fedcba9876543210"
)

func TestParseKey(t *testing.T) {
	data, private, err := zmqutil.ParseKey("  " + publicText + "\n")
	assert.Nil(t, err, "wrong public ParseKey")
	assert.False(t, private, "public key flagged private")
	assert.Equal(t, 32, len(data), "wrong public length")
	assert.Equal(t, byte(0x01), data[0], "wrong first byte")

	data, private, err = zmqutil.ParseKey(privateText)
	assert.Nil(t, err, "wrong private ParseKey")
	assert.True(t, private, "private key flagged public")
	assert.Equal(t, byte(0xfe), data[0], "wrong first byte")

	_, _, err = zmqutil.ParseKey("PUBLIC:0123")
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "short public key accepted")

	_, _, err = zmqutil.ParseKey("PRIVATE:zz")
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "bad hex accepted")

	_, _, err = zmqutil.ParseKey("SECRET:00")
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "untagged key accepted")
}

func TestReadKeyKind(t *testing.T) {
	_, err := zmqutil.ReadPublicKey(privateText)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "private key read as public")

	_, err = zmqutil.ReadPrivateKey(publicText)
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "public key read as private")
}

func TestMakeKeyPair(t *testing.T) {
	dir, err := ioutil.TempDir("", "paratensord-zmq")
	require.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(dir)

	publicFile := filepath.Join(dir, "publisher.public")
	privateFile := filepath.Join(dir, "publisher.private")

	require.Nil(t, zmqutil.MakeKeyPair(publicFile, privateFile), "wrong MakeKeyPair")

	public, err := zmqutil.ReadPublicKeyFile(publicFile)
	assert.Nil(t, err, "wrong ReadPublicKeyFile")
	assert.Equal(t, 32, len(public), "wrong public length")

	private, err := zmqutil.ReadPrivateKeyFile(privateFile)
	assert.Nil(t, err, "wrong ReadPrivateKeyFile")
	assert.Equal(t, 32, len(private), "wrong private length")

	text, err := ioutil.ReadFile(privateFile)
	assert.Nil(t, err, "wrong ReadFile")
	assert.True(t, strings.HasPrefix(string(text), "PRIVATE:"), "wrong private tag")

	err = zmqutil.MakeKeyPair(publicFile, privateFile)
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "existing files overwritten")
}
