// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package weights

import (
	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/fixed"
	"github.com/bitmark-inc/paratensord/hyperparameter"
	"github.com/bitmark-inc/paratensord/messagebus"
	"github.com/bitmark-inc/paratensord/storage"
	"github.com/bitmark-inc/paratensord/subnet"
)

type weightsSet struct {
	Netuid uint16      `json:"netuid"`
	Uid    uint16      `json:"uid"`
	Hotkey account.Key `json:"hotkey"`
	Row    subnet.Row  `json:"row"`
}

// SetWeights - replace the outgoing weight row of a registered hotkey
//
// the stored row is normalised to sum to 0xffff, has zero entries
// removed and is in ascending uid order
func SetWeights(netuid uint16, hotkey account.Key, uids []uint16, values []uint16, height uint64) error {
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

	uid, found := s.Lookup(hotkey)
	if !found {
		return fault.NotRegistered
	}

	row, err := Validate(s.N, s.Params, uids, values)
	if nil != err {
		log.Debugf("netuid: %d  uid: %d  rejected: %s", netuid, uid, err)
		return err
	}

	s.Weights[uid] = row
	s.LastUpdate[uid] = height

	err = subnet.Save(trx, s)
	if nil != err {
		log.Criticalf("netuid: %d  save error: %s", netuid, err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	log.Infof("netuid: %d  uid: %d  edges: %d", netuid, uid, len(row))
	messagebus.Bus.Events.SendItem("weights-set", weightsSet{
		Netuid: netuid,
		Uid:    uid,
		Hotkey: hotkey,
		Row:    row,
	})
	return nil
}

// Validate - check a proposed weight row against a subnetwork of n
// uids and return its normalised form
func Validate(n int, params hyperparameter.Params, uids []uint16, values []uint16) (subnet.Row, error) {
	if len(uids) != len(values) {
		return nil, fault.WeightVecNotEqualSize
	}

	seen := make(map[uint16]struct{}, len(uids))
	for _, uid := range uids {
		if _, ok := seen[uid]; ok {
			return nil, fault.DuplicateUids
		}
		seen[uid] = struct{}{}
	}

	for _, uid := range uids {
		if int(uid) >= n {
			return nil, fault.InvalidUid
		}
	}

	nonZero := 0
	minimum := uint16(0xffff)
	maximum := uint16(0)
	for _, v := range values {
		if 0 == v {
			continue
		}
		nonZero += 1
		if v < minimum {
			minimum = v
		}
		if v > maximum {
			maximum = v
		}
	}
	if nonZero < int(params.MinAllowedWeights) {
		return nil, fault.NotSettingEnoughWeights
	}

	ratio := params.MaxAllowedMaxMinRatio
	if 0 != ratio && nonZero > 0 && uint64(maximum) > uint64(minimum)*uint64(ratio) {
		return nil, fault.MaxAllowedMaxMinRatioExceeded
	}

	// tiny entries can floor to zero when scaled
	row := normalise(uids, values)
	if len(row) < int(params.MinAllowedWeights) {
		return nil, fault.NotSettingEnoughWeights
	}
	return row, nil
}

// scale values to sum to 0xffff
//
// each entry is floored and the remainder goes to the first largest
// entry, so the sum is exact; entries that floor to zero are dropped
func normalise(uids []uint16, values []uint16) subnet.Row {
	total := uint64(0)
	for _, v := range values {
		total += uint64(v)
	}

	row := make(subnet.Row, 0, len(uids))
	if 0 == total {
		return row
	}

	sum := uint64(0)
	largest := -1
	for i, v := range values {
		if 0 == v {
			continue
		}
		scaled := uint64(v) * fixed.U16One / total
		if 0 == scaled {
			continue
		}
		sum += scaled
		row = append(row, subnet.Entry{Uid: uids[i], Value: uint16(scaled)})
		if largest < 0 || uint16(scaled) > row[largest].Value {
			largest = len(row) - 1
		}
	}
	if largest >= 0 {
		row[largest].Value += uint16(fixed.U16One - sum)
	}

	row.Sort()
	return row
}
