// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hyperparameter

import (
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/messagebus"
	"github.com/bitmark-inc/paratensord/storage"
)

// event payloads
type tempoSet struct {
	Netuid uint16 `json:"netuid"`
	Tempo  uint16 `json:"tempo"`
}

type emissionRatioSet struct {
	Netuid uint16 `json:"netuid"`
	Ratio  uint16 `json:"ratio"`
}

type blocksPerStepSet struct {
	BlocksPerStep uint64 `json:"blocks_per_step"`
}

type hyperparametersSet struct {
	Netuid uint16 `json:"netuid"`
	Params Params `json:"params"`
}

// Set - replace all parameters of a subnetwork
func Set(netuid uint16, p Params) error {
	err := update(netuid, func(current *Params) {
		*current = p
	})
	if nil != err {
		return err
	}
	messagebus.Bus.Events.SendItem("hyperparameters-set", hyperparametersSet{Netuid: netuid, Params: p})
	return nil
}

// SetTempo - change the epoch length of a subnetwork
func SetTempo(netuid uint16, tempo uint16) error {
	err := update(netuid, func(current *Params) {
		current.Tempo = tempo
	})
	if nil != err {
		return err
	}
	messagebus.Bus.Events.SendItem("tempo-set", tempoSet{Netuid: netuid, Tempo: tempo})
	return nil
}

// apply f to the stored parameters, validate and store them
func update(netuid uint16, f func(*Params)) error {
	globalData.RLock()
	log := globalData.log
	initialised := globalData.initialised
	globalData.RUnlock()

	if !initialised {
		return fault.NotInitialised
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	p, err := Get(trx, netuid)
	if nil != err {
		return err
	}

	f(&p)

	err = p.Validate()
	if nil != err {
		return err
	}

	n, _ := trx.GetN(storage.Pool.SubnetN, storage.NetuidKey(netuid))
	if uint64(p.MaxAllowedUids) < n {
		return fault.MaxAllowedUidsTooSmall
	}

	Put(trx, netuid, p)

	err = trx.Commit()
	if nil != err {
		return err
	}

	log.Infof("netuid: %d  parameters: %+v", netuid, p)
	return nil
}

// SetEmissionRatio - change the share of block emission for a subnetwork
//
// rejected with no change if the sum over all subnetworks would exceed one
func SetEmissionRatio(netuid uint16, ratio uint16) error {
	globalData.RLock()
	log := globalData.log
	initialised := globalData.initialised
	globalData.RUnlock()

	if !initialised {
		return fault.NotInitialised
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	if !trx.Has(storage.Pool.Subnets, storage.NetuidKey(netuid)) {
		return fault.SubnetworkNotFound
	}

	sum, err := PutEmissionRatio(trx, netuid, ratio)
	if nil != err {
		log.Debugf("netuid: %d  ratio: %d  rejected sum: %d", netuid, ratio, sum)
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	log.Infof("netuid: %d  emission ratio: %d  total: %d", netuid, ratio, sum)
	messagebus.Bus.Events.SendItem("emission-ratio-set", emissionRatioSet{Netuid: netuid, Ratio: ratio})
	return nil
}

// SetBlocksPerStep - change the global tempo multiplier
func SetBlocksPerStep(blocksPerStep uint64) error {
	globalData.RLock()
	log := globalData.log
	initialised := globalData.initialised
	globalData.RUnlock()

	if !initialised {
		return fault.NotInitialised
	}

	if 0 == blocksPerStep {
		return fault.InvalidCount
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	trx.PutN(storage.Pool.Globals, storage.GlobalBlocksPerStep, blocksPerStep)

	err = trx.Commit()
	if nil != err {
		return err
	}

	log.Infof("blocks per step: %d", blocksPerStep)
	messagebus.Bus.Events.SendItem("blocks-per-step-set", blocksPerStepSet{BlocksPerStep: blocksPerStep})
	return nil
}
