// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/clock"
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/hyperparameter"
	"github.com/bitmark-inc/paratensord/registry"
	"github.com/bitmark-inc/paratensord/storage"
)

// create the configured subnetworks on an empty database
//
// existing subnetworks are left untouched, later changes must go
// through the admin rpc
func genesis(log *logger.L, options *Configuration) error {

	if _, found := storage.Pool.Globals.GetN(storage.GlobalBlocksPerStep); !found {
		err := hyperparameter.SetBlocksPerStep(options.BlocksPerStep)
		if nil != err {
			return err
		}
	}

	height := clock.Height()
	for _, g := range options.Genesis {
		err := registry.CreateSubnetwork(g.Netuid, options.genesisParams(g), g.EmissionRatio, height)
		if fault.SubnetworkAlreadyExists == err {
			log.Debugf("genesis netuid: %d already exists", g.Netuid)
			continue
		}
		if nil != err {
			log.Errorf("genesis netuid: %d  error: %s", g.Netuid, err)
			return err
		}
	}
	return nil
}
