// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/fixtures"
	"github.com/bitmark-inc/paratensord/hyperparameter"
	"github.com/bitmark-inc/paratensord/registry"
	"github.com/bitmark-inc/paratensord/registry/mocks"
	"github.com/bitmark-inc/paratensord/storage"
	"github.com/bitmark-inc/paratensord/subnet"
)

var noProof = registry.Proof{}

func setup(t *testing.T, admission registry.Admission, params hyperparameter.Params, netuids ...uint16) string {
	fixtures.SetupTestLogger()
	tmp := fixtures.SetupTestStorage()

	require.Nil(t, registry.Initialise(admission), "wrong Initialise")

	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "wrong NewDBTransaction")
	for _, netuid := range netuids {
		require.Nil(t, subnet.Create(trx, netuid, params, 0), "wrong Create")
	}
	require.Nil(t, trx.Commit(), "wrong Commit")
	return tmp
}

func teardown(tmp string) {
	_ = registry.Finalise()
	fixtures.TeardownTestStorage(tmp)
	fixtures.TeardownTestLogger()
}

func acceptAll(t *testing.T) (*gomock.Controller, *mocks.MockAdmission) {
	ctl := gomock.NewController(t)
	a := mocks.NewMockAdmission(ctl)
	a.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true).AnyTimes()
	return ctl, a
}

// load a committed subnetwork for inspection
func load(t *testing.T, netuid uint16) *subnet.State {
	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "wrong NewDBTransaction")
	defer trx.Abort()
	s, err := subnet.Load(trx, netuid)
	require.Nil(t, err, "wrong Load")
	return s
}

// apply a change to a committed subnetwork
func modify(t *testing.T, netuid uint16, f func(s *subnet.State)) {
	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "wrong NewDBTransaction")
	defer trx.Abort()
	s, err := subnet.Load(trx, netuid)
	require.Nil(t, err, "wrong Load")
	f(s)
	require.Nil(t, subnet.Save(trx, s), "wrong Save")
	require.Nil(t, trx.Commit(), "wrong Commit")
}

func assertInverse(t *testing.T, netuid uint16) {
	s := load(t, netuid)
	for uid := 0; uid < s.N; uid += 1 {
		hotkey, found := registry.LookupHotkey(netuid, uint16(uid))
		require.True(t, found, "uid %d has no hotkey", uid)
		back, found := registry.LookupUid(netuid, hotkey)
		require.True(t, found, "hotkey of uid %d has no uid", uid)
		assert.Equal(t, uint16(uid), back, "lookups not inverse for uid %d", uid)
	}
	_, found := registry.LookupHotkey(netuid, uint16(s.N))
	assert.False(t, found, "uid N is bound")
}

func TestRegister(t *testing.T) {
	ctl, a := acceptAll(t)
	defer ctl.Finish()

	tmp := setup(t, a, hyperparameter.Default(), 1)
	defer teardown(tmp)

	keys := []account.Key{fixtures.Key(), fixtures.Key(), fixtures.Key()}
	for i, k := range keys {
		uid, err := registry.Register(1, 10, k, k, noProof)
		assert.Nil(t, err, "wrong Register")
		assert.Equal(t, uint16(i), uid, "wrong uid")
	}
	assertInverse(t, 1)

	_, err := registry.Register(1, 10, keys[0], keys[0], noProof)
	assert.Equal(t, fault.AlreadyRegistered, err, "duplicate registration accepted")

	_, found := registry.LookupUid(1, fixtures.Key())
	assert.False(t, found, "unregistered hotkey found")

	coldkey, found := registry.ReadColdkey(keys[1])
	assert.True(t, found, "no coldkey binding")
	assert.Equal(t, keys[1], coldkey, "wrong coldkey binding")
	assert.Equal(t, []account.Key{keys[2]}, registry.Hotkeys(keys[2]), "wrong owned hotkeys")
}

func TestRegisterMissingSubnetwork(t *testing.T) {
	ctl, a := acceptAll(t)
	defer ctl.Finish()

	tmp := setup(t, a, hyperparameter.Default(), 1)
	defer teardown(tmp)

	k := fixtures.Key()
	_, err := registry.Register(2, 10, k, k, noProof)
	assert.Equal(t, fault.InvalidUid, err, "missing subnetwork accepted")
}

func TestRegisterColdkeyMismatch(t *testing.T) {
	ctl, a := acceptAll(t)
	defer ctl.Finish()

	tmp := setup(t, a, hyperparameter.Default(), 1, 2)
	defer teardown(tmp)

	hotkey := fixtures.Key()
	coldkey := fixtures.Key()

	_, err := registry.Register(1, 10, hotkey, coldkey, noProof)
	require.Nil(t, err, "wrong Register")

	_, err = registry.Register(2, 10, hotkey, fixtures.Key(), noProof)
	assert.Equal(t, fault.NonAssociatedColdKey, err, "second coldkey accepted")

	_, err = registry.Register(2, 10, hotkey, coldkey, noProof)
	assert.Nil(t, err, "same coldkey rejected")
}

func TestRegisterInvalidProof(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAdmission(ctl)

	tmp := setup(t, a, hyperparameter.Default(), 1)
	defer teardown(tmp)

	k := fixtures.Key()
	p := registry.Proof{BlockNumber: 9, Nonce: 12345, Work: []byte{1, 2, 3}}
	a.EXPECT().Verify(uint16(1), uint64(9), uint64(12345), []byte{1, 2, 3}, k).Return(false).Times(1)

	_, err := registry.Register(1, 10, k, k, p)
	assert.Equal(t, fault.InvalidProofOfWork, err, "invalid proof accepted")

	assert.Equal(t, 0, load(t, 1).N, "rejected registration changed state")
	_, found := registry.ReadColdkey(k)
	assert.False(t, found, "rejected registration bound a coldkey")
}

func TestRegisterFullSubnetwork(t *testing.T) {
	ctl, a := acceptAll(t)
	defer ctl.Finish()

	params := hyperparameter.Default()
	params.MaxAllowedUids = 2
	params.ImmunityPeriod = 10

	tmp := setup(t, a, params, 1)
	defer teardown(tmp)

	keys := []account.Key{fixtures.Key(), fixtures.Key()}
	for _, k := range keys {
		_, err := registry.Register(1, 0, k, k, noProof)
		require.Nil(t, err, "wrong Register")
	}

	// uid 1 is the lower stake, and is endorsed by uid 0
	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "wrong NewDBTransaction")
	trx.PutN(storage.Pool.Stake, keys[0].Bytes(), 100)
	trx.PutN(storage.Pool.Stake, keys[1].Bytes(), 50)
	require.Nil(t, trx.Commit(), "wrong Commit")

	modify(t, 1, func(s *subnet.State) {
		s.Weights[0] = subnet.Row{{Uid: 0, Value: 0x8000}, {Uid: 1, Value: 0x7fff}}
		s.Bonds[0] = subnet.Row{{Uid: 1, Value: 0x1000}}
	})

	newcomer := fixtures.Key()

	// everyone is still immune
	_, err = registry.Register(1, 5, newcomer, newcomer, noProof)
	assert.Equal(t, fault.SubnetworkFull, err, "immune uid evicted")

	uid, err := registry.Register(1, 20, newcomer, newcomer, noProof)
	require.Nil(t, err, "wrong Register")
	assert.Equal(t, uint16(1), uid, "wrong uid evicted")

	s := load(t, 1)
	assert.Equal(t, 2, s.N, "wrong N")
	assert.Equal(t, newcomer, s.Hotkeys[1], "newcomer not bound")
	assert.Equal(t, uint64(20), s.RegisteredAt[1], "wrong registration block")
	assert.Equal(t, subnet.Row{{Uid: 0, Value: 0x8000}}, s.Weights[0], "edge to evicted uid kept")
	assert.Equal(t, subnet.Row{}, s.Bonds[0], "bond to evicted uid kept")

	_, found := registry.LookupUid(1, keys[1])
	assert.False(t, found, "evicted hotkey still registered")
	assertInverse(t, 1)
}

func TestEvictionTieBreak(t *testing.T) {
	ctl, a := acceptAll(t)
	defer ctl.Finish()

	params := hyperparameter.Default()
	params.MaxAllowedUids = 3
	params.ImmunityPeriod = 0

	tmp := setup(t, a, params, 1)
	defer teardown(tmp)

	keys := []account.Key{fixtures.Key(), fixtures.Key(), fixtures.Key()}
	for _, k := range keys {
		_, err := registry.Register(1, 0, k, k, noProof)
		require.Nil(t, err, "wrong Register")
	}

	// equal emission and stake: lowest uid goes
	newcomer := fixtures.Key()
	uid, err := registry.Register(1, 1, newcomer, newcomer, noProof)
	require.Nil(t, err, "wrong Register")
	assert.Equal(t, uint16(0), uid, "tie not broken by lowest uid")

	// emission ranks before stake
	modify(t, 1, func(s *subnet.State) {
		s.Emission = []uint64{10, 10, 3}
	})
	other := fixtures.Key()
	uid, err = registry.Register(1, 2, other, other, noProof)
	require.Nil(t, err, "wrong Register")
	assert.Equal(t, uint16(2), uid, "lowest emission not evicted")
}

func TestDeregister(t *testing.T) {
	ctl, a := acceptAll(t)
	defer ctl.Finish()

	tmp := setup(t, a, hyperparameter.Default(), 1)
	defer teardown(tmp)

	keys := []account.Key{fixtures.Key(), fixtures.Key(), fixtures.Key(), fixtures.Key()}
	for _, k := range keys {
		_, err := registry.Register(1, 0, k, k, noProof)
		require.Nil(t, err, "wrong Register")
	}

	modify(t, 1, func(s *subnet.State) {
		for i := 0; i < s.N; i += 1 {
			s.Weights[i] = subnet.Row{{Uid: 1, Value: 0x4000}, {Uid: 3, Value: 0xbfff}}
			s.Bonds[i] = subnet.Row{{Uid: 1, Value: 7}}
		}
	})

	assert.Equal(t, fault.InvalidUid, registry.Deregister(1, 4), "out of range uid accepted")
	assert.Equal(t, fault.SubnetworkNotFound, registry.Deregister(2, 0), "missing subnetwork accepted")

	require.Nil(t, registry.Deregister(1, 1), "wrong Deregister")

	s := load(t, 1)
	assert.Equal(t, 3, s.N, "wrong N")
	assert.Equal(t, keys[3], s.Hotkeys[1], "last uid not moved into the freed slot")
	for i := 0; i < s.N; i += 1 {
		for _, e := range s.Weights[i] {
			assert.True(t, int(e.Uid) < s.N, "row %d references freed uid %d", i, e.Uid)
		}
		assert.Equal(t, subnet.Row{{Uid: 1, Value: 0xbfff}}, s.Weights[i], "row %d not remapped", i)
		assert.Equal(t, subnet.Row{}, s.Bonds[i], "row %d kept bond to removed uid", i)
	}

	_, found := registry.LookupUid(1, keys[1])
	assert.False(t, found, "deregistered hotkey still present")
	assertInverse(t, 1)
}
