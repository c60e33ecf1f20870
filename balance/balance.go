// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/storage"
)

// Accounts - the balance layer as seen by the stake ledger
type Accounts struct{}

// Debit - remove funds from a coldkey
func (Accounts) Debit(coldkey account.Key, amount uint64) error {
	return Debit(coldkey, amount)
}

// Credit - add funds to a coldkey
func (Accounts) Credit(coldkey account.Key, amount uint64) error {
	return Credit(coldkey, amount)
}

// Get - current balance of a coldkey
func Get(coldkey account.Key) uint64 {
	n, _ := storage.Pool.Balances.GetN(coldkey.Bytes())
	return n
}

// Debit - remove funds from a coldkey
func Debit(coldkey account.Key, amount uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if 0 == amount {
		return fault.ZeroAmount
	}

	key := coldkey.Bytes()
	n, _ := storage.Pool.Balances.GetN(key)
	if n < amount {
		globalData.log.Debugf("coldkey: %s  balance: %d  debit: %d", coldkey, n, amount)
		return fault.NotEnoughBalanceToStake
	}

	n -= amount
	if 0 == n {
		storage.Pool.Balances.Delete(key)
	} else {
		storage.Pool.Balances.PutN(key, n)
	}
	globalData.log.Debugf("coldkey: %s  debit: %d  balance: %d", coldkey, amount, n)
	return nil
}

// Credit - add funds to a coldkey
func Credit(coldkey account.Key, amount uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if 0 == amount {
		return fault.ZeroAmount
	}

	key := coldkey.Bytes()
	n, _ := storage.Pool.Balances.GetN(key)
	if n+amount < n {
		return fault.AmountTooLarge
	}

	n += amount
	storage.Pool.Balances.PutN(key, n)
	globalData.log.Debugf("coldkey: %s  credit: %d  balance: %d", coldkey, amount, n)
	return nil
}
