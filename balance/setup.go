// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - free funds held by coldkeys
//
// balances are written directly to their pool and never through the
// shared database transaction, so a debit can happen while a stake
// transaction is open
package balance

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/fault"
)

type globalDataType struct {
	sync.Mutex
	log         *logger.L
	initialised bool
}

var globalData globalDataType

// Initialise - start the balance layer
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("balance")
	globalData.log.Info("starting…")

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
