// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metagraph_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/fixtures"
	"github.com/bitmark-inc/paratensord/hyperparameter"
	"github.com/bitmark-inc/paratensord/registry"
	"github.com/bitmark-inc/paratensord/rpc/metagraph"
	"github.com/bitmark-inc/paratensord/subnet"
	"github.com/bitmark-inc/paratensord/weights"
)

type acceptAll struct{}

func (acceptAll) Verify(uint16, uint64, uint64, []byte, account.Key) bool { return true }

func setup(t *testing.T) (string, []account.Key, []account.Key) {
	fixtures.SetupTestLogger()
	tmp := fixtures.SetupTestStorage()

	require.Nil(t, registry.Initialise(acceptAll{}), "wrong registry Initialise")
	require.Nil(t, weights.Initialise(), "wrong weights Initialise")

	p := hyperparameter.Default()
	p.MinAllowedWeights = 1
	p.MaxAllowedMaxMinRatio = 0
	require.Nil(t, registry.CreateSubnetwork(1, p, 0x4000, 0), "wrong CreateSubnetwork")

	hotkeys := []account.Key{fixtures.Key(), fixtures.Key()}
	coldkeys := []account.Key{fixtures.Key(), fixtures.Key()}
	for i := range hotkeys {
		_, err := registry.Register(1, 2, hotkeys[i], coldkeys[i], registry.Proof{})
		require.Nil(t, err, "wrong Register")
	}

	require.Nil(t, weights.SetWeights(1, hotkeys[0], []uint16{1}, []uint16{1}, 3), "wrong SetWeights")
	require.Nil(t, weights.ServeAxon(hotkeys[1], 2, "10.1.2.3", 8091, 4, weights.ModalityText, 3), "wrong ServeAxon")

	return tmp, hotkeys, coldkeys
}

func teardown(tmp string) {
	_ = weights.Finalise()
	_ = registry.Finalise()
	fixtures.TeardownTestStorage(tmp)
	fixtures.TeardownTestLogger()
}

func TestGet(t *testing.T) {
	tmp, hotkeys, coldkeys := setup(t)
	defer teardown(tmp)

	m := metagraph.New(logger.New(fixtures.LogCategory))

	var reply metagraph.GetReply
	err := m.Get(&metagraph.GetArguments{Netuid: 1}, &reply)
	require.Nil(t, err, "wrong Get")

	assert.Equal(t, uint16(1), reply.Netuid, "wrong netuid")
	assert.Equal(t, 2, reply.N, "wrong count")
	assert.Equal(t, uint16(0x4000), reply.EmissionRatio, "wrong emission ratio")
	require.Equal(t, 2, len(reply.Neurons), "wrong neuron count")

	n0 := reply.Neurons[0]
	assert.Equal(t, hotkeys[0], n0.Hotkey, "wrong hotkey")
	assert.Equal(t, coldkeys[0], n0.Coldkey, "wrong coldkey")
	assert.Equal(t, uint64(2), n0.RegisteredAt, "wrong registration height")
	assert.Equal(t, uint64(3), n0.LastUpdate, "wrong last update")
	assert.Equal(t, subnet.Row{{Uid: 1, Value: 0xffff}}, n0.Weights, "wrong weights")
	assert.Nil(t, n0.Axon, "unexpected axon")

	n1 := reply.Neurons[1]
	require.NotNil(t, n1.Axon, "missing axon")
	assert.Equal(t, "10.1.2.3", n1.Axon.IP, "wrong axon ip")
	assert.Equal(t, uint16(8091), n1.Axon.Port, "wrong axon port")

	err = m.Get(&metagraph.GetArguments{Netuid: 9}, &reply)
	assert.Equal(t, fault.SubnetworkNotFound, err, "wrong missing subnetwork error")
}

func TestVector(t *testing.T) {
	tmp, _, _ := setup(t)
	defer teardown(tmp)

	m := metagraph.New(logger.New(fixtures.LogCategory))

	var reply metagraph.VectorReply
	err := m.Vector(&metagraph.VectorArguments{Netuid: 1, Name: "rank"}, &reply)
	assert.Nil(t, err, "wrong Vector")
	assert.Equal(t, "rank", reply.Name, "wrong name")
	assert.Equal(t, []uint64{0, 0}, reply.Values, "wrong values before any epoch")

	err = m.Vector(&metagraph.VectorArguments{Netuid: 1, Name: "colour"}, &reply)
	assert.Equal(t, fault.InvalidVectorName, err, "wrong unknown vector error")
}

func TestLookupAndHotkey(t *testing.T) {
	tmp, hotkeys, coldkeys := setup(t)
	defer teardown(tmp)

	m := metagraph.New(logger.New(fixtures.LogCategory))

	var lookup metagraph.LookupReply
	err := m.Lookup(&metagraph.LookupArguments{Netuid: 1, Hotkey: hotkeys[1]}, &lookup)
	assert.Nil(t, err, "wrong Lookup")
	assert.Equal(t, uint16(1), lookup.Uid, "wrong uid")

	err = m.Lookup(&metagraph.LookupArguments{Netuid: 1, Hotkey: fixtures.Key()}, &lookup)
	assert.Equal(t, fault.NotRegistered, err, "unknown hotkey found")

	var hotkey metagraph.HotkeyReply
	err = m.Hotkey(&metagraph.HotkeyArguments{Netuid: 1, Uid: 0}, &hotkey)
	assert.Nil(t, err, "wrong Hotkey")
	assert.Equal(t, hotkeys[0], hotkey.Hotkey, "wrong hotkey")
	assert.Equal(t, coldkeys[0], hotkey.Coldkey, "wrong coldkey")

	err = m.Hotkey(&metagraph.HotkeyArguments{Netuid: 1, Uid: 2}, &hotkey)
	assert.Equal(t, fault.InvalidUid, err, "unknown uid found")
}
