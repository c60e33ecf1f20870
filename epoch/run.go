// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package epoch

import (
	"fmt"

	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/hyperparameter"
	"github.com/bitmark-inc/paratensord/messagebus"
	"github.com/bitmark-inc/paratensord/stake"
	"github.com/bitmark-inc/paratensord/storage"
	"github.com/bitmark-inc/paratensord/subnet"
)

// event payloads
type epochCompleted struct {
	Netuid   uint16 `json:"netuid"`
	Height   uint64 `json:"height"`
	Elapsed  uint64 `json:"elapsed"`
	Emission uint64 `json:"emission"`
}

type epochFault struct {
	Netuid uint16 `json:"netuid"`
	Height uint64 `json:"height"`
	Error  string `json:"error"`
}

// Fault - an epoch that could not be applied
type Fault struct {
	Netuid uint16
	Err    error
}

// Faults - every subnetwork whose epoch failed in one Step
type Faults []Fault

func (f Faults) Error() string {
	if 1 == len(f) {
		return fmt.Sprintf("netuid: %d  epoch fault: %s", f[0].Netuid, f[0].Err)
	}
	return fmt.Sprintf("%d epoch faults, first netuid: %d  %s", len(f), f[0].Netuid, f[0].Err)
}

// IsDue - true if the subnetwork's epoch should run at height
func IsDue(lastEpoch uint64, tempo uint16, blocksPerStep uint64, height uint64) bool {
	if height < lastEpoch {
		return false
	}
	return height-lastEpoch >= uint64(tempo)*blocksPerStep
}

// Run - apply the epoch of one subnetwork if it is due at height
//
// returns true if an epoch was applied; the scores, bonds, emission
// and stake credits are committed together or not at all
func Run(netuid uint16, height uint64) (bool, error) {
	globalData.RLock()
	log := globalData.log
	blockEmission := globalData.blockEmission
	incentiveShare := globalData.incentiveShare
	initialised := globalData.initialised
	globalData.RUnlock()

	if !initialised {
		return false, fault.NotInitialised
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return false, err
	}
	defer trx.Abort()

	s, err := subnet.Load(trx, netuid)
	if nil != err {
		return false, err
	}

	if !IsDue(s.LastEpoch, s.Params.Tempo, hyperparameter.BlocksPerStep(trx), height) {
		return false, nil
	}

	in := Inputs{
		Height:         height,
		Elapsed:        height - s.LastEpoch,
		BlockEmission:  blockEmission,
		EmissionRatio:  hyperparameter.EmissionRatio(trx, netuid),
		IncentiveShare: incentiveShare,
	}
	err = Compute(s, in)
	if nil != err {
		return false, err
	}

	s.LastEpoch = height
	err = subnet.Save(trx, s)
	if nil != err {
		return false, err
	}

	total := uint64(0)
	for uid := 0; uid < s.N; uid += 1 {
		stake.CreditEmission(trx, s.Hotkeys[uid], s.Emission[uid])
		total += s.Emission[uid]
	}

	err = trx.Commit()
	if nil != err {
		return false, err
	}

	completed.Increment()
	log.Infof("netuid: %d  height: %d  elapsed: %d  emission: %d", netuid, height, in.Elapsed, total)
	messagebus.Bus.Events.SendItem("epoch-completed", epochCompleted{
		Netuid:   netuid,
		Height:   height,
		Elapsed:  in.Elapsed,
		Emission: total,
	})
	return true, nil
}

// Step - run every due epoch at the start of a block, in ascending netuid order
//
// a failing subnetwork is skipped with its previous state intact and
// the rest still run; all failures are returned as Faults
func Step(height uint64) error {
	globalData.RLock()
	log := globalData.log
	globalData.RUnlock()

	var failed Faults
	for _, netuid := range subnet.ReadNetuids() {
		_, err := Run(netuid, height)
		if nil == err {
			continue
		}
		if fault.NotInitialised == err {
			return err
		}

		faults.Increment()
		log.Criticalf("netuid: %d  height: %d  epoch abandoned: %s", netuid, height, err)
		messagebus.Bus.Events.SendItem("epoch-fault", epochFault{
			Netuid: netuid,
			Height: height,
			Error:  err.Error(),
		})
		failed = append(failed, Fault{Netuid: netuid, Err: err})
	}

	if 0 != len(failed) {
		return failed
	}
	return nil
}
