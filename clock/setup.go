// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package clock - the block clock
//
// every interval the height advances by one; epochs due at the new
// height are applied before the height becomes visible, so requests
// handled during a block always see that block's epoch results
package clock

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/background"
	"github.com/bitmark-inc/paratensord/fault"
)

// DefaultInterval - time between blocks
const DefaultInterval = 12 * time.Second

type globalDataType struct {
	sync.RWMutex
	log         *logger.L
	ticker      ticker
	background  *background.T
	initialised bool
}

var globalData globalDataType

// Initialise - start the clock
//
// an interval of zero leaves the clock stopped, Advance must then be
// called explicitly
func Initialise(interval time.Duration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("clock")
	globalData.log.Info("starting…")
	globalData.log.Infof("height: %d  interval: %s", Height(), interval)

	globalData.initialised = true

	if interval > 0 {
		globalData.ticker = ticker{
			log:      globalData.log,
			interval: interval,
		}
		globalData.background = background.Start(background.Processes{&globalData.ticker}, nil)
	}
	return nil
}

// Finalise - stop the clock
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.background.Stop()
	globalData.background = nil

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()
	return nil
}
