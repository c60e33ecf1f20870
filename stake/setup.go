// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stake - per-hotkey stake, the stake total and the issuance
//
// funds move between a coldkey's balance held by the account layer
// (the Ledger) and the stake of a hotkey bound to that coldkey
package stake

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/fault"
)

// Ledger - the account layer holding coldkey balances
type Ledger interface {
	Debit(coldkey account.Key, amount uint64) error
	Credit(coldkey account.Key, amount uint64) error
}

type globalDataType struct {
	sync.RWMutex
	log         *logger.L
	ledger      Ledger
	initialised bool
}

var globalData globalDataType

// Initialise - set the account layer
func Initialise(ledger Ledger) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("stake")
	globalData.log.Info("starting…")

	globalData.ledger = ledger
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

	globalData.ledger = nil
	globalData.initialised = false
	return nil
}

func current() (*logger.L, Ledger, error) {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return nil, nil, fault.NotInitialised
	}
	return globalData.log, globalData.ledger, nil
}
