// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/fixtures"
	"github.com/bitmark-inc/paratensord/rpc/signed"
)

func TestMessage(t *testing.T) {
	m := signed.Message("Stake.Add", 0x0102, uint16(7), uint64(9), "ab", []uint16{1, 2})
	expected := []byte{
		9, 'S', 't', 'a', 'k', 'e', '.', 'A', 'd', 'd',
		0, 0, 0, 0, 0, 0, 0x01, 0x02,
		0, 7,
		0, 0, 0, 0, 0, 0, 0, 9,
		2, 'a', 'b',
		0, 2, 0, 1, 0, 2,
	}
	assert.Equal(t, expected, m, "wrong message")
}

func TestMessageFieldBoundaries(t *testing.T) {
	a := signed.Message("M", 1, "ab", "c")
	b := signed.Message("M", 1, "a", "bc")
	assert.NotEqual(t, a, b, "ambiguous string packing")
}

func TestSignVerify(t *testing.T) {
	privateKey, key := fixtures.KeyPair()
	other := fixtures.Key()

	sig := signed.Sign(privateKey, "Neuron.SetWeights", 100, uint16(1), []uint16{0, 1}, []uint16{5, 6})

	err := signed.Verify(key, sig, 105, "Neuron.SetWeights", 100, uint16(1), []uint16{0, 1}, []uint16{5, 6})
	assert.Nil(t, err, "wrong Verify")

	err = signed.Verify(other, sig, 105, "Neuron.SetWeights", 100, uint16(1), []uint16{0, 1}, []uint16{5, 6})
	assert.Equal(t, fault.InvalidSignature, err, "wrong signer accepted")

	err = signed.Verify(key, sig, 105, "Neuron.SetWeights", 100, uint16(1), []uint16{0, 1}, []uint16{5, 7})
	assert.Equal(t, fault.InvalidSignature, err, "altered field accepted")

	err = signed.Verify(key, sig, 105, "Neuron.ServeAxon", 100, uint16(1), []uint16{0, 1}, []uint16{5, 6})
	assert.Equal(t, fault.InvalidSignature, err, "signature reused for another method")

	err = signed.Verify(key, sig, 100+signed.Window+1, "Neuron.SetWeights", 100, uint16(1), []uint16{0, 1}, []uint16{5, 6})
	assert.Equal(t, fault.InvalidBlockNumber, err, "stale request accepted")

	err = signed.Verify(key, sig, 100-signed.Window-1, "Neuron.SetWeights", 100, uint16(1), []uint16{0, 1}, []uint16{5, 6})
	assert.Equal(t, fault.InvalidBlockNumber, err, "future request accepted")
}
