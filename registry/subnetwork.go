// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/hyperparameter"
	"github.com/bitmark-inc/paratensord/messagebus"
	"github.com/bitmark-inc/paratensord/storage"
	"github.com/bitmark-inc/paratensord/subnet"
)

type subnetworkCreated struct {
	Netuid        uint16                `json:"netuid"`
	Height        uint64                `json:"height"`
	EmissionRatio uint16                `json:"emission_ratio"`
	Params        hyperparameter.Params `json:"params"`
}

type subnetworkRemoved struct {
	Netuid  uint16 `json:"netuid"`
	Evicted int    `json:"evicted"`
}

// CreateSubnetwork - add an empty subnetwork with its share of emission
//
// nothing is created if the emission ratio would break the sum limit
func CreateSubnetwork(netuid uint16, params hyperparameter.Params, emissionRatio uint16, height uint64) error {
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

	err = subnet.Create(trx, netuid, params, height)
	if nil != err {
		return err
	}

	if 0 != emissionRatio {
		sum, err := hyperparameter.PutEmissionRatio(trx, netuid, emissionRatio)
		if nil != err {
			log.Debugf("netuid: %d  ratio: %d  rejected sum: %d", netuid, emissionRatio, sum)
			return err
		}
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	log.Infof("netuid: %d  created at: %d  emission ratio: %d", netuid, height, emissionRatio)
	messagebus.Bus.Events.SendItem("subnetwork-created", subnetworkCreated{
		Netuid:        netuid,
		Height:        height,
		EmissionRatio: emissionRatio,
		Params:        params,
	})
	return nil
}

// RemoveSubnetwork - delete a subnetwork, its uids, rows and parameters
//
// stake stays with the hotkeys
func RemoveSubnetwork(netuid uint16) error {
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

	s, err := subnet.Delete(trx, netuid)
	if nil != err {
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	log.Infof("netuid: %d  removed with: %d uids", netuid, s.N)
	messagebus.Bus.Events.SendItem("subnetwork-removed", subnetworkRemoved{
		Netuid:  netuid,
		Evicted: s.N,
	})
	return nil
}
