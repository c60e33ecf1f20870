// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/messagebus"
	"github.com/bitmark-inc/paratensord/storage"
	"github.com/bitmark-inc/paratensord/subnet"
)

// Proof - a registration proof of work
type Proof struct {
	BlockNumber uint64 `json:"block_number"`
	Nonce       uint64 `json:"nonce"`
	Work        []byte `json:"work"`
}

// event payloads
type neuronRegistered struct {
	Netuid  uint16       `json:"netuid"`
	Uid     uint16       `json:"uid"`
	Hotkey  account.Key  `json:"hotkey"`
	Coldkey account.Key  `json:"coldkey"`
	Evicted *account.Key `json:"evicted,omitempty"`
}

type neuronDeregistered struct {
	Netuid uint16      `json:"netuid"`
	Uid    uint16      `json:"uid"`
	Hotkey account.Key `json:"hotkey"`
	Moved  uint16      `json:"moved"`
}

// Register - bind a credential pair to a uid of a subnetwork
//
// a free uid is used when one exists, otherwise the lowest scoring
// uid outside its immunity period is evicted
func Register(netuid uint16, height uint64, hotkey account.Key, coldkey account.Key, proof Proof) (uint16, error) {
	globalData.RLock()
	admission := globalData.admission
	log := globalData.log
	globalData.RUnlock()

	if nil == admission {
		return 0, fault.NotInitialised
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}
	defer trx.Abort()

	s, err := subnet.Load(trx, netuid)
	if fault.SubnetworkNotFound == err {
		return 0, fault.InvalidUid
	}
	if nil != err {
		log.Criticalf("netuid: %d  load error: %s", netuid, err)
		return 0, err
	}

	if _, found := s.Lookup(hotkey); found {
		return 0, fault.AlreadyRegistered
	}

	bound, hasColdkey := Coldkey(trx, hotkey)
	if hasColdkey && bound != coldkey {
		return 0, fault.NonAssociatedColdKey
	}

	if !admission.Verify(netuid, proof.BlockNumber, proof.Nonce, proof.Work, hotkey) {
		return 0, fault.InvalidProofOfWork
	}

	stake, _ := trx.GetN(storage.Pool.Stake, hotkey.Bytes())

	var uid uint16
	var evicted *account.Key
	if s.N < int(s.Params.MaxAllowedUids) {
		uid = s.Append(hotkey, coldkey, stake, height)
	} else {
		candidate, ok := evictionCandidate(s, height)
		if !ok {
			return 0, fault.SubnetworkFull
		}
		uid = candidate
		old := s.Hotkeys[uid]
		evicted = &old
		s.Replace(uid, hotkey, coldkey, stake, height)
	}

	if !hasColdkey {
		bindColdkey(trx, hotkey, coldkey)
	}

	err = subnet.Save(trx, s)
	if nil != err {
		log.Criticalf("netuid: %d  save error: %s", netuid, err)
		return 0, err
	}

	err = trx.Commit()
	if nil != err {
		return 0, err
	}

	if nil != evicted {
		log.Infof("netuid: %d  uid: %d  hotkey: %s  evicted: %s", netuid, uid, hotkey, *evicted)
	} else {
		log.Infof("netuid: %d  uid: %d  hotkey: %s", netuid, uid, hotkey)
	}
	messagebus.Bus.Events.SendItem("neuron-registered", neuronRegistered{
		Netuid:  netuid,
		Uid:     uid,
		Hotkey:  hotkey,
		Coldkey: coldkey,
		Evicted: evicted,
	})
	return uid, nil
}

// the lowest (emission, stake, uid) of the uids past their immunity period
func evictionCandidate(s *subnet.State, height uint64) (uint16, bool) {
	found := false
	best := uint16(0)
	for i := 0; i < s.N; i += 1 {
		registered := s.RegisteredAt[i]
		if height < registered || height-registered < s.Params.ImmunityPeriod {
			continue
		}
		if !found ||
			s.Emission[i] < s.Emission[best] ||
			(s.Emission[i] == s.Emission[best] && s.Stake[i] < s.Stake[best]) {
			best = uint16(i)
			found = true
		}
	}
	return best, found
}

// Deregister - free a uid, moving the last uid into its slot
func Deregister(netuid uint16, uid uint16) error {
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

	s, err := subnet.Load(trx, netuid)
	if nil != err {
		return err
	}
	if int(uid) >= s.N {
		return fault.InvalidUid
	}

	hotkey := s.Hotkeys[uid]
	moved := s.Remove(uid)

	err = subnet.Save(trx, s)
	if nil != err {
		log.Criticalf("netuid: %d  save error: %s", netuid, err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	log.Infof("netuid: %d  uid: %d  hotkey: %s  moved: %d", netuid, uid, hotkey, moved)
	messagebus.Bus.Events.SendItem("neuron-deregistered", neuronDeregistered{
		Netuid: netuid,
		Uid:    uid,
		Hotkey: hotkey,
		Moved:  moved,
	})
	return nil
}
