// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hyperparameter - per-subnetwork parameters, the global
// emission ratio table and the global blocks per step
package hyperparameter

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/fault"
)

type globalDataType struct {
	sync.RWMutex
	log         *logger.L
	initialised bool
}

var globalData globalDataType

// Initialise - set up the logger channel
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("hyperparameter")
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
