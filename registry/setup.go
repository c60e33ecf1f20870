// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - binds credential pairs to compact per-subnetwork uids
package registry

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/fault"
)

// Admission - decides whether a registration proof is acceptable
type Admission interface {
	Verify(netuid uint16, blockNumber uint64, nonce uint64, work []byte, hotkey account.Key) bool
}

type globalDataType struct {
	sync.RWMutex
	log         *logger.L
	admission   Admission
	initialised bool
}

var globalData globalDataType

// Initialise - set the admission control
func Initialise(admission Admission) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("registry")
	globalData.log.Info("starting…")

	globalData.admission = admission
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

	globalData.admission = nil
	globalData.initialised = false
	return nil
}
