// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hyperparameter

import (
	"encoding/binary"

	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/fixed"
	"github.com/bitmark-inc/paratensord/storage"
)

// MaxEmissionRatioSum - sum of all emission ratios may not exceed one
const MaxEmissionRatioSum = fixed.U16One

// Get - parameters of an existing subnetwork
func Get(trx storage.Transaction, netuid uint16) (Params, error) {
	buffer := trx.Get(storage.Pool.Hyperparameters, storage.NetuidKey(netuid))
	if nil == buffer {
		return Params{}, fault.SubnetworkNotFound
	}
	return Unpack(buffer)
}

// Read - committed parameters, for queries
func Read(netuid uint16) (Params, error) {
	buffer := storage.Pool.Hyperparameters.Get(storage.NetuidKey(netuid))
	if nil == buffer {
		return Params{}, fault.SubnetworkNotFound
	}
	return Unpack(buffer)
}

// Put - store parameters without any checks
func Put(trx storage.Transaction, netuid uint16, p Params) {
	trx.Put(storage.Pool.Hyperparameters, storage.NetuidKey(netuid), p.Pack())
}

// Delete - drop parameters and emission ratio of a removed subnetwork
func Delete(trx storage.Transaction, netuid uint16) {
	key := storage.NetuidKey(netuid)
	trx.Delete(storage.Pool.Hyperparameters, key)
	trx.Delete(storage.Pool.EmissionRatio, key)
}

// EmissionRatio - share of the global block emission, 0xffff is one
func EmissionRatio(trx storage.Transaction, netuid uint16) uint16 {
	buffer := trx.Get(storage.Pool.EmissionRatio, storage.NetuidKey(netuid))
	if 2 != len(buffer) {
		return 0
	}
	return binary.BigEndian.Uint16(buffer)
}

// ReadEmissionRatio - committed value, for queries
func ReadEmissionRatio(netuid uint16) uint16 {
	buffer := storage.Pool.EmissionRatio.Get(storage.NetuidKey(netuid))
	if 2 != len(buffer) {
		return 0
	}
	return binary.BigEndian.Uint16(buffer)
}

// EmissionRatioSum - sum over all subnetworks, replacing the value of
// netuid by ratio
func EmissionRatioSum(trx storage.Transaction, netuid uint16, ratio uint16) uint64 {
	sum := uint64(ratio)
	target := storage.NetuidKey(netuid)
	for _, e := range trx.Fetch(storage.Pool.EmissionRatio, nil) {
		if string(target) == string(e.Key) || 2 != len(e.Value) {
			continue
		}
		sum += uint64(binary.BigEndian.Uint16(e.Value))
	}
	return sum
}

// PutEmissionRatio - store a ratio if the sum over all subnetworks stays
// within one, returning the new sum
func PutEmissionRatio(trx storage.Transaction, netuid uint16, ratio uint16) (uint64, error) {
	sum := EmissionRatioSum(trx, netuid, ratio)
	if sum > MaxEmissionRatioSum {
		return sum, fault.EmissionRatioSumExceeded
	}
	buffer := make([]byte, 2)
	binary.BigEndian.PutUint16(buffer, ratio)
	trx.Put(storage.Pool.EmissionRatio, storage.NetuidKey(netuid), buffer)
	return sum, nil
}

// BlocksPerStep - global multiplier applied to every tempo, defaults to 1
func BlocksPerStep(trx storage.Transaction) uint64 {
	n, found := trx.GetN(storage.Pool.Globals, storage.GlobalBlocksPerStep)
	if !found || 0 == n {
		return 1
	}
	return n
}

// ReadBlocksPerStep - committed value, for queries
func ReadBlocksPerStep() uint64 {
	n, found := storage.Pool.Globals.GetN(storage.GlobalBlocksPerStep)
	if !found || 0 == n {
		return 1
	}
	return n
}
