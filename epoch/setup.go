// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package epoch - periodic scoring of each subnetwork
//
// Compute is a pure function of a loaded subnet.State; Run applies it
// to one subnetwork as a single transaction when the subnetwork's tempo
// has elapsed and Step does this for every subnetwork at a block
package epoch

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/counter"
	"github.com/bitmark-inc/paratensord/fault"
)

// DefaultIncentiveShare - half of each budget goes to incentive
const DefaultIncentiveShare = 0x8000

// Configuration - emission settings
type Configuration struct {
	BlockEmission  uint64 `gluamapper:"block_emission" json:"block_emission"`
	IncentiveShare uint16 `gluamapper:"incentive_share" json:"incentive_share"`
}

type globalDataType struct {
	sync.RWMutex
	log            *logger.L
	blockEmission  uint64
	incentiveShare uint16
	initialised    bool
}

var globalData globalDataType

// statistics
var (
	completed counter.Counter
	faults    counter.Counter
)

// Initialise - set the emission parameters
func Initialise(configuration Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("epoch")
	globalData.log.Info("starting…")

	globalData.blockEmission = configuration.BlockEmission
	globalData.incentiveShare = configuration.IncentiveShare
	globalData.log.Infof("block emission: %d  incentive share: %d", configuration.BlockEmission, configuration.IncentiveShare)

	globalData.initialised = true
	return nil
}

// Finalise - shutdown
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("finished")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// Completed - number of epochs applied since start
func Completed() uint64 {
	return completed.Uint64()
}

// FaultCount - number of epochs abandoned since start
func FaultCount() uint64 {
	return faults.Uint64()
}
