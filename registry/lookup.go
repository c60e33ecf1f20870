// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"

	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/storage"
	"github.com/bitmark-inc/paratensord/subnet"
)

// Coldkey - the coldkey a hotkey is bound to
func Coldkey(trx storage.Transaction, hotkey account.Key) (account.Key, bool) {
	k, err := account.KeyFromBytes(trx.Get(storage.Pool.Coldkeys, hotkey.Bytes()))
	if nil != err {
		return account.Key{}, false
	}
	return k, true
}

// ReadColdkey - committed coldkey binding
func ReadColdkey(hotkey account.Key) (account.Key, bool) {
	k, err := account.KeyFromBytes(storage.Pool.Coldkeys.Get(hotkey.Bytes()))
	if nil != err {
		return account.Key{}, false
	}
	return k, true
}

func bindColdkey(trx storage.Transaction, hotkey account.Key, coldkey account.Key) {
	trx.Put(storage.Pool.Coldkeys, hotkey.Bytes(), coldkey.Bytes())
	trx.Put(storage.Pool.Hotkeys, storage.PairKey(coldkey.Bytes(), hotkey.Bytes()), []byte{})
}

// Hotkeys - all hotkeys ever bound to a coldkey
func Hotkeys(coldkey account.Key) []account.Key {
	hotkeys := make([]account.Key, 0, 8)
	prefix := coldkey.Bytes()
	cursor := storage.Pool.Hotkeys.NewFetchCursor().Seek(prefix)
	_ = cursor.Map(func(key []byte, value []byte) error {
		if len(key) != 2*account.KeySize || string(key[:account.KeySize]) != string(prefix) {
			return errStop
		}
		k, err := account.KeyFromBytes(key[account.KeySize:])
		if nil == err {
			hotkeys = append(hotkeys, k)
		}
		return nil
	})
	return hotkeys
}

type stopError struct{}

func (stopError) Error() string { return "stop" }

var errStop = stopError{}

// LookupUid - committed uid of a hotkey in a subnetwork
func LookupUid(netuid uint16, hotkey account.Key) (uint16, bool) {
	buffer := storage.Pool.Uids.Get(storage.NetuidSuffixKey(netuid, hotkey.Bytes()))
	if 2 != len(buffer) {
		return 0, false
	}
	return binary.BigEndian.Uint16(buffer), true
}

// LookupHotkey - committed hotkey bound to a uid
func LookupHotkey(netuid uint16, uid uint16) (account.Key, bool) {
	k, err := account.KeyFromBytes(storage.Pool.Keys.Get(storage.UidKey(netuid, uid)))
	if nil != err {
		return account.Key{}, false
	}
	return k, true
}

// IsRegisteredAnywhere - true if the hotkey holds a uid on any subnetwork
func IsRegisteredAnywhere(trx storage.Transaction, hotkey account.Key) bool {
	for _, netuid := range subnet.Netuids(trx) {
		if _, found := subnet.LookupUid(trx, netuid, hotkey); found {
			return true
		}
	}
	return false
}
