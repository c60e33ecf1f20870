// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hyperparameter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/fixtures"
	"github.com/bitmark-inc/paratensord/hyperparameter"
	"github.com/bitmark-inc/paratensord/messagebus"
	"github.com/bitmark-inc/paratensord/storage"
	"github.com/bitmark-inc/paratensord/subnet"
)

func setup(t *testing.T, netuids ...uint16) string {
	fixtures.SetupTestLogger()
	tmp := fixtures.SetupTestStorage()

	err := hyperparameter.Initialise()
	require.Nil(t, err, "wrong Initialise")

	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "wrong NewDBTransaction")
	for _, netuid := range netuids {
		require.Nil(t, subnet.Create(trx, netuid, hyperparameter.Default(), 0), "wrong Create")
	}
	require.Nil(t, trx.Commit(), "wrong Commit")

	return tmp
}

func teardown(tmp string) {
	_ = hyperparameter.Finalise()
	fixtures.TeardownTestStorage(tmp)
	fixtures.TeardownTestLogger()
}

func TestPacking(t *testing.T) {
	p := hyperparameter.Default()
	p.Difficulty = 1 << 40
	p.ActivityCutoff = 0

	unpacked, err := hyperparameter.Unpack(p.Pack())
	assert.Nil(t, err, "wrong Unpack")
	assert.Equal(t, p, unpacked, "parameters changed")

	_, err = hyperparameter.Unpack(p.Pack()[1:])
	assert.Equal(t, fault.TruncatedRecord, err, "wrong error for truncated record")
}

func TestValidate(t *testing.T) {
	assert.Nil(t, hyperparameter.Default().Validate(), "defaults rejected")

	p := hyperparameter.Default()
	p.Tempo = 0
	assert.Equal(t, fault.InvalidTempo, p.Validate(), "zero tempo accepted")

	p = hyperparameter.Default()
	p.MaxAllowedUids = 0
	assert.Equal(t, fault.MaxAllowedUidsTooSmall, p.Validate(), "zero max uids accepted")

	p = hyperparameter.Default()
	p.BondsMovingAverage = hyperparameter.BondsMovingAverageScale + 1
	assert.Equal(t, fault.InvalidHyperparameter, p.Validate(), "moving average above one accepted")
}

func TestEmissionRatioBound(t *testing.T) {
	tmp := setup(t, 1, 2, 3)
	defer teardown(tmp)

	assert.Nil(t, hyperparameter.SetEmissionRatio(1, 0x8000), "wrong first ratio")
	assert.Nil(t, hyperparameter.SetEmissionRatio(2, 0x7fff), "wrong second ratio")

	// sum would be 0x10000
	err := hyperparameter.SetEmissionRatio(3, 1)
	assert.Equal(t, fault.EmissionRatioSumExceeded, err, "sum above one accepted")

	// replacing a value counts only the new value
	assert.Nil(t, hyperparameter.SetEmissionRatio(2, 0x7000), "lowering rejected")
	assert.Nil(t, hyperparameter.SetEmissionRatio(3, 0x0fff), "fill to one rejected")

	err = hyperparameter.SetEmissionRatio(1, 0x8001)
	assert.Equal(t, fault.EmissionRatioSumExceeded, err, "raise above one accepted")

	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "wrong NewDBTransaction")
	defer trx.Abort()

	assert.Equal(t, uint16(0x8000), hyperparameter.EmissionRatio(trx, 1), "rejected update changed state")
	assert.Equal(t, uint64(0xffff), hyperparameter.EmissionRatioSum(trx, 1, 0x8000), "wrong sum")
}

func TestEmissionRatioUnknownSubnetwork(t *testing.T) {
	tmp := setup(t, 1)
	defer teardown(tmp)

	err := hyperparameter.SetEmissionRatio(7, 1)
	assert.Equal(t, fault.SubnetworkNotFound, err, "missing subnetwork accepted")
}

func TestSetTempo(t *testing.T) {
	tmp := setup(t, 1)
	defer teardown(tmp)

	queue := messagebus.Bus.Events.Chan(5)
	defer messagebus.Bus.Events.Release()

	assert.Nil(t, hyperparameter.SetTempo(1, 360), "wrong SetTempo")

	p, err := hyperparameter.Read(1)
	assert.Nil(t, err, "wrong Read")
	assert.Equal(t, uint16(360), p.Tempo, "tempo not stored")

	received := <-queue
	assert.Equal(t, "tempo-set", received.Command, "wrong event")
	assert.Equal(t, `{"netuid":1,"tempo":360}`, string(received.Parameters[0]), "wrong event payload")

	assert.Equal(t, fault.InvalidTempo, hyperparameter.SetTempo(1, 0), "zero tempo accepted")
	assert.Equal(t, fault.SubnetworkNotFound, hyperparameter.SetTempo(2, 10), "missing subnetwork accepted")
}

func TestSetMaxAllowedUidsBelowN(t *testing.T) {
	tmp := setup(t, 1)
	defer teardown(tmp)

	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "wrong NewDBTransaction")
	s, err := subnet.Load(trx, 1)
	require.Nil(t, err, "wrong Load")
	for i := 0; i < 3; i += 1 {
		k := fixtures.Key()
		s.Append(k, k, 0, 0)
		trx.Put(storage.Pool.Coldkeys, k.Bytes(), k.Bytes())
	}
	require.Nil(t, subnet.Save(trx, s), "wrong Save")
	require.Nil(t, trx.Commit(), "wrong Commit")

	p := hyperparameter.Default()
	p.MaxAllowedUids = 2
	assert.Equal(t, fault.MaxAllowedUidsTooSmall, hyperparameter.Set(1, p), "max uids below N accepted")

	p.MaxAllowedUids = 3
	assert.Nil(t, hyperparameter.Set(1, p), "max uids equal to N rejected")
}

func TestBlocksPerStep(t *testing.T) {
	tmp := setup(t)
	defer teardown(tmp)

	assert.Equal(t, uint64(1), hyperparameter.ReadBlocksPerStep(), "wrong default")
	assert.Equal(t, fault.InvalidCount, hyperparameter.SetBlocksPerStep(0), "zero accepted")
	assert.Nil(t, hyperparameter.SetBlocksPerStep(4), "wrong SetBlocksPerStep")
	assert.Equal(t, uint64(4), hyperparameter.ReadBlocksPerStep(), "value not stored")
}

func TestNotInitialised(t *testing.T) {
	assert.Equal(t, fault.NotInitialised, hyperparameter.SetTempo(1, 10), "SetTempo before Initialise")
	assert.Equal(t, fault.NotInitialised, hyperparameter.Set(1, hyperparameter.Default()), "Set before Initialise")
	assert.Equal(t, fault.NotInitialised, hyperparameter.SetEmissionRatio(1, 1), "SetEmissionRatio before Initialise")
	assert.Equal(t, fault.NotInitialised, hyperparameter.SetBlocksPerStep(2), "SetBlocksPerStep before Initialise")
}
