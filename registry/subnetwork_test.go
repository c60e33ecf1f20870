// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/fixtures"
	"github.com/bitmark-inc/paratensord/hyperparameter"
	"github.com/bitmark-inc/paratensord/registry"
	"github.com/bitmark-inc/paratensord/storage"
	"github.com/bitmark-inc/paratensord/subnet"
)

func TestCreateRemoveSubnetwork(t *testing.T) {
	ctl, admission := acceptAll(t)
	defer ctl.Finish()

	tmp := setup(t, admission, hyperparameter.Default())
	defer teardown(tmp)

	params := hyperparameter.Default()

	require.Nil(t, registry.CreateSubnetwork(1, params, 0x8000, 3), "wrong CreateSubnetwork")
	assert.Equal(t, fault.SubnetworkAlreadyExists, registry.CreateSubnetwork(1, params, 0, 3), "duplicate created")

	err := registry.CreateSubnetwork(2, params, 0x8000, 3)
	assert.Equal(t, fault.EmissionRatioSumExceeded, err, "ratio sum above one accepted")
	assert.Equal(t, []uint16{1}, subnet.ReadNetuids(), "rejected subnetwork was created")

	for i := 0; i < 3; i += 1 {
		k := fixtures.Key()
		_, err := registry.Register(1, 4, k, k, noProof)
		require.Nil(t, err, "wrong Register")
	}
	globalN, _ := storage.Pool.Globals.GetN(storage.GlobalN)
	assert.Equal(t, uint64(3), globalN, "wrong global count")

	require.Nil(t, registry.RemoveSubnetwork(1), "wrong RemoveSubnetwork")
	assert.Equal(t, fault.SubnetworkNotFound, registry.RemoveSubnetwork(1), "removed twice")

	globalN, _ = storage.Pool.Globals.GetN(storage.GlobalN)
	assert.Equal(t, uint64(0), globalN, "slots not released")
	assert.Equal(t, 0, len(subnet.ReadNetuids()), "subnetwork still listed")
	assert.False(t, storage.Pool.EmissionRatio.Has(storage.NetuidKey(1)), "emission ratio kept")

	// the released emission ratio is available again
	assert.Nil(t, registry.CreateSubnetwork(2, params, 0x8000, 9), "wrong CreateSubnetwork after remove")
}

func TestCreateSubnetworkInvalidParams(t *testing.T) {
	ctl, admission := acceptAll(t)
	defer ctl.Finish()

	tmp := setup(t, admission, hyperparameter.Default())
	defer teardown(tmp)

	params := hyperparameter.Default()
	params.Tempo = 0
	err := registry.CreateSubnetwork(1, params, 0, 0)
	assert.True(t, fault.IsErrInvalid(err), "invalid parameters accepted: %v", err)
	assert.Equal(t, 0, len(subnet.ReadNetuids()), "subnetwork created")
}
