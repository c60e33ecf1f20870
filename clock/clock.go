// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package clock

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/epoch"
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/messagebus"
	"github.com/bitmark-inc/paratensord/storage"
)

// serialises Advance between the ticker and explicit callers
var advanceLock sync.Mutex

type blockStarted struct {
	Height uint64 `json:"height"`
	Faults int    `json:"faults"`
}

// Height - current block height
func Height() uint64 {
	n, _ := storage.Pool.Globals.GetN(storage.GlobalHeight)
	return n
}

// Advance - start the next block
//
// returns the new height; epoch faults are reported by the epoch
// package and do not stop the clock
func Advance() (uint64, error) {
	globalData.RLock()
	log := globalData.log
	initialised := globalData.initialised
	globalData.RUnlock()

	if !initialised {
		return 0, fault.NotInitialised
	}

	advanceLock.Lock()
	defer advanceLock.Unlock()

	height := Height() + 1

	faultCount := 0
	err := epoch.Step(height)
	if nil != err {
		f, ok := err.(epoch.Faults)
		if !ok {
			log.Errorf("height: %d  epoch step error: %s", height, err)
			return 0, err
		}
		faultCount = len(f)
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}
	defer trx.Abort()

	trx.PutN(storage.Pool.Globals, storage.GlobalHeight, height)
	err = trx.Commit()
	if nil != err {
		log.Criticalf("height: %d  commit error: %s", height, err)
		return 0, err
	}

	log.Debugf("height: %d  epoch faults: %d", height, faultCount)
	messagebus.Bus.Events.SendItem("block", blockStarted{
		Height: height,
		Faults: faultCount,
	})
	return height, nil
}

// background process advancing the height at a fixed interval
type ticker struct {
	log      *logger.L
	interval time.Duration
}

func (t *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	t.log.Info("ticking…")

	tick := time.NewTicker(t.interval)
	defer tick.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-tick.C:
			if _, err := Advance(); nil != err {
				t.log.Errorf("advance error: %s", err)
			}
		}
	}
	t.log.Info("stopped")
}
