// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subnet

import (
	"encoding/binary"

	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/hyperparameter"
	"github.com/bitmark-inc/paratensord/storage"
)

// Exists - true if the subnetwork has been created
func Exists(trx storage.Transaction, netuid uint16) bool {
	return trx.Has(storage.Pool.Subnets, storage.NetuidKey(netuid))
}

// Netuids - all subnetworks in ascending order, including pending changes
func Netuids(trx storage.Transaction) []uint16 {
	elements := trx.Fetch(storage.Pool.Subnets, nil)
	netuids := make([]uint16, 0, len(elements))
	for _, e := range elements {
		if 2 == len(e.Key) {
			netuids = append(netuids, binary.BigEndian.Uint16(e.Key))
		}
	}
	return netuids
}

// ReadNetuids - committed subnetworks in ascending order
func ReadNetuids() []uint16 {
	netuids := make([]uint16, 0, 16)
	_ = storage.Pool.Subnets.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if 2 == len(key) {
			netuids = append(netuids, binary.BigEndian.Uint16(key))
		}
		return nil
	})
	return netuids
}

// Create - add an empty subnetwork
func Create(trx storage.Transaction, netuid uint16, params hyperparameter.Params, height uint64) error {
	if Exists(trx, netuid) {
		return fault.SubnetworkAlreadyExists
	}
	err := params.Validate()
	if nil != err {
		return err
	}

	key := storage.NetuidKey(netuid)
	trx.PutN(storage.Pool.Subnets, key, height)
	hyperparameter.Put(trx, netuid, params)

	// the first epoch is a full tempo after creation
	s := newState(netuid, 0, params)
	s.LastEpoch = height
	return Save(trx, s)
}

// Delete - remove a subnetwork and every row it owns
//
// stake and coldkey bindings belong to the hotkeys and are kept
func Delete(trx storage.Transaction, netuid uint16) (*State, error) {
	s, err := Load(trx, netuid)
	if nil != err {
		return nil, err
	}

	// an empty state makes Save delete every uid row
	empty := newState(netuid, 0, s.Params)
	empty.loadedN = s.loadedN
	empty.loadedHotkeys = s.loadedHotkeys
	err = Save(trx, empty)
	if nil != err {
		return nil, err
	}

	key := storage.NetuidKey(netuid)
	trx.Delete(storage.Pool.Subnets, key)
	trx.Delete(storage.Pool.SubnetN, key)
	trx.Delete(storage.Pool.LastEpoch, key)
	for _, v := range vectors {
		trx.Delete(storage.Pool.Vectors, vectorKey(netuid, v.id))
	}
	hyperparameter.Delete(trx, netuid)

	return s, nil
}

// Load - materialise a subnetwork
//
// returns a RecordError if the stored rows are inconsistent
func Load(trx storage.Transaction, netuid uint16) (*State, error) {
	key := storage.NetuidKey(netuid)
	if !trx.Has(storage.Pool.Subnets, key) {
		return nil, fault.SubnetworkNotFound
	}

	params, err := hyperparameter.Get(trx, netuid)
	if nil != err {
		return nil, err
	}

	count, _ := trx.GetN(storage.Pool.SubnetN, key)
	if count > 0xffff {
		return nil, fault.InconsistentRowLength
	}
	n := int(count)

	s := newState(netuid, n, params)
	s.LastEpoch, _ = trx.GetN(storage.Pool.LastEpoch, key)

	for uid := 0; uid < n; uid += 1 {
		uidKey := storage.UidKey(netuid, uint16(uid))

		hotkey, err := account.KeyFromBytes(trx.Get(storage.Pool.Keys, uidKey))
		if nil != err {
			return nil, fault.InconsistentRowLength
		}
		back := trx.Get(storage.Pool.Uids, storage.NetuidSuffixKey(netuid, hotkey.Bytes()))
		if 2 != len(back) || uint16(uid) != binary.BigEndian.Uint16(back) {
			return nil, fault.InconsistentRowLength
		}
		coldkey, err := account.KeyFromBytes(trx.Get(storage.Pool.Coldkeys, hotkey.Bytes()))
		if nil != err {
			return nil, fault.InconsistentRowLength
		}

		s.Hotkeys[uid] = hotkey
		s.Coldkeys[uid] = coldkey
		s.Stake[uid], _ = trx.GetN(storage.Pool.Stake, hotkey.Bytes())
		s.LastUpdate[uid], _ = trx.GetN(storage.Pool.LastUpdate, uidKey)
		s.RegisteredAt[uid], _ = trx.GetN(storage.Pool.RegisteredAt, uidKey)

		s.Weights[uid], err = UnpackRow(trx.Get(storage.Pool.Weights, uidKey))
		if nil != err {
			return nil, err
		}
		s.Bonds[uid], err = UnpackRow(trx.Get(storage.Pool.Bonds, uidKey))
		if nil != err {
			return nil, err
		}
	}

	for _, v := range vectors {
		err := v.decode(s, trx.Get(storage.Pool.Vectors, vectorKey(netuid, v.id)))
		if nil != err {
			return nil, err
		}
	}

	s.loadedN = n
	s.loadedHotkeys = append([]account.Key{}, s.Hotkeys...)

	err = s.Check()
	if nil != err {
		return nil, err
	}
	return s, nil
}

// Save - write a state back, removing rows of uids that no longer exist
//
// stake and coldkey bindings are not written, they are owned by the
// stake ledger and the registry
func Save(trx storage.Transaction, s *State) error {
	err := s.Check()
	if nil != err {
		return err
	}

	netuid := s.Netuid
	key := storage.NetuidKey(netuid)

	current := make(map[account.Key]struct{}, s.N)
	for uid := 0; uid < s.N; uid += 1 {
		uidKey := storage.UidKey(netuid, uint16(uid))
		hotkey := s.Hotkeys[uid]
		current[hotkey] = struct{}{}

		trx.Put(storage.Pool.Keys, uidKey, hotkey.Bytes())
		trx.Put(storage.Pool.Uids, storage.NetuidSuffixKey(netuid, hotkey.Bytes()), uidKey[2:])
		trx.PutN(storage.Pool.LastUpdate, uidKey, s.LastUpdate[uid])
		trx.PutN(storage.Pool.RegisteredAt, uidKey, s.RegisteredAt[uid])
		trx.Put(storage.Pool.Weights, uidKey, PackRow(s.Weights[uid]))
		trx.Put(storage.Pool.Bonds, uidKey, PackRow(s.Bonds[uid]))
	}

	for uid := s.N; uid < s.loadedN; uid += 1 {
		uidKey := storage.UidKey(netuid, uint16(uid))
		trx.Delete(storage.Pool.Keys, uidKey)
		trx.Delete(storage.Pool.LastUpdate, uidKey)
		trx.Delete(storage.Pool.RegisteredAt, uidKey)
		trx.Delete(storage.Pool.Weights, uidKey)
		trx.Delete(storage.Pool.Bonds, uidKey)
	}

	for _, hotkey := range s.loadedHotkeys {
		if _, ok := current[hotkey]; !ok {
			trx.Delete(storage.Pool.Uids, storage.NetuidSuffixKey(netuid, hotkey.Bytes()))
		}
	}

	trx.PutN(storage.Pool.SubnetN, key, uint64(s.N))
	trx.PutN(storage.Pool.LastEpoch, key, s.LastEpoch)
	for _, v := range vectors {
		trx.Put(storage.Pool.Vectors, vectorKey(netuid, v.id), v.encode(s))
	}

	globalN, _ := trx.GetN(storage.Pool.Globals, storage.GlobalN)
	globalN = globalN + uint64(s.N) - uint64(s.loadedN)
	trx.PutN(storage.Pool.Globals, storage.GlobalN, globalN)

	s.loadedN = s.N
	s.loadedHotkeys = append([]account.Key{}, s.Hotkeys...)
	return nil
}

// LookupUid - uid of a hotkey in a subnetwork
func LookupUid(trx storage.Transaction, netuid uint16, hotkey account.Key) (uint16, bool) {
	buffer := trx.Get(storage.Pool.Uids, storage.NetuidSuffixKey(netuid, hotkey.Bytes()))
	if 2 != len(buffer) {
		return 0, false
	}
	return binary.BigEndian.Uint16(buffer), true
}

// Read - a consistent copy of a committed subnetwork, for queries
func Read(netuid uint16) (*State, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	defer trx.Abort()
	return Load(trx, netuid)
}
