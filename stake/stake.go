// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/messagebus"
	"github.com/bitmark-inc/paratensord/registry"
	"github.com/bitmark-inc/paratensord/storage"
)

// event payloads
type stakeChanged struct {
	Coldkey account.Key `json:"coldkey"`
	Hotkey  account.Key `json:"hotkey"`
	Amount  uint64      `json:"amount"`
	Stake   uint64      `json:"stake"`
}

type minted struct {
	Coldkey account.Key `json:"coldkey"`
	Amount  uint64      `json:"amount"`
}

// Get - committed stake of a hotkey
func Get(hotkey account.Key) uint64 {
	n, _ := storage.Pool.Stake.GetN(hotkey.Bytes())
	return n
}

// Total - committed sum of all stakes
func Total() uint64 {
	n, _ := storage.Pool.Globals.GetN(storage.GlobalTotalStake)
	return n
}

// TotalIssuance - committed amount of all funds ever created
func TotalIssuance() uint64 {
	n, _ := storage.Pool.Globals.GetN(storage.GlobalTotalIssuance)
	return n
}

// Add - move funds from a coldkey balance to the stake of one of its hotkeys
func Add(coldkey account.Key, hotkey account.Key, amount uint64) error {
	log, ledger, err := current()
	if nil != err {
		return err
	}
	if 0 == amount {
		return fault.ZeroAmount
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	err = authorise(trx, coldkey, hotkey)
	if nil != err {
		return err
	}

	stake, _ := trx.GetN(storage.Pool.Stake, hotkey.Bytes())
	total, _ := trx.GetN(storage.Pool.Globals, storage.GlobalTotalStake)
	if stake+amount < stake || total+amount < total {
		return fault.AmountTooLarge
	}

	err = ledger.Debit(coldkey, amount)
	if nil != err {
		log.Debugf("coldkey: %s  debit: %d  error: %s", coldkey, amount, err)
		return err
	}

	stake += amount
	trx.PutN(storage.Pool.Stake, hotkey.Bytes(), stake)
	trx.PutN(storage.Pool.Globals, storage.GlobalTotalStake, total+amount)

	err = trx.Commit()
	if nil != err {
		log.Errorf("hotkey: %s  commit error: %s  refunding: %d", hotkey, err, amount)
		if e := ledger.Credit(coldkey, amount); nil != e {
			log.Criticalf("coldkey: %s  refund: %d  error: %s", coldkey, amount, e)
		}
		return err
	}

	log.Infof("hotkey: %s  added: %d  stake: %d", hotkey, amount, stake)
	messagebus.Bus.Events.SendItem("stake-added", stakeChanged{
		Coldkey: coldkey,
		Hotkey:  hotkey,
		Amount:  amount,
		Stake:   stake,
	})
	return nil
}

// Remove - move stake of a hotkey back to the balance of its coldkey
func Remove(coldkey account.Key, hotkey account.Key, amount uint64) error {
	log, ledger, err := current()
	if nil != err {
		return err
	}
	if 0 == amount {
		return fault.ZeroAmount
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	err = authorise(trx, coldkey, hotkey)
	if nil != err {
		return err
	}

	stake, _ := trx.GetN(storage.Pool.Stake, hotkey.Bytes())
	if stake < amount {
		return fault.NotEnoughStakeToWithdraw
	}
	total, _ := trx.GetN(storage.Pool.Globals, storage.GlobalTotalStake)
	if total < amount {
		log.Criticalf("total stake: %d  below hotkey stake: %d", total, stake)
		return fault.InconsistentStakeTotal
	}

	stake -= amount
	if 0 == stake {
		trx.Delete(storage.Pool.Stake, hotkey.Bytes())
	} else {
		trx.PutN(storage.Pool.Stake, hotkey.Bytes(), stake)
	}
	trx.PutN(storage.Pool.Globals, storage.GlobalTotalStake, total-amount)

	err = trx.Commit()
	if nil != err {
		return err
	}

	err = ledger.Credit(coldkey, amount)
	if nil != err {
		log.Criticalf("coldkey: %s  credit: %d  error: %s", coldkey, amount, err)
		return err
	}

	log.Infof("hotkey: %s  removed: %d  stake: %d", hotkey, amount, stake)
	messagebus.Bus.Events.SendItem("stake-removed", stakeChanged{
		Coldkey: coldkey,
		Hotkey:  hotkey,
		Amount:  amount,
		Stake:   stake,
	})
	return nil
}

// Mint - create new funds in the balance of a coldkey
func Mint(coldkey account.Key, amount uint64) error {
	log, ledger, err := current()
	if nil != err {
		return err
	}
	if 0 == amount {
		return fault.ZeroAmount
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	issuance, _ := trx.GetN(storage.Pool.Globals, storage.GlobalTotalIssuance)
	if issuance+amount < issuance {
		return fault.AmountTooLarge
	}

	err = ledger.Credit(coldkey, amount)
	if nil != err {
		return err
	}
	trx.PutN(storage.Pool.Globals, storage.GlobalTotalIssuance, issuance+amount)

	err = trx.Commit()
	if nil != err {
		log.Criticalf("coldkey: %s  minted: %d  issuance not recorded: %s", coldkey, amount, err)
		return err
	}

	log.Infof("coldkey: %s  minted: %d", coldkey, amount)
	messagebus.Bus.Events.SendItem("minted", minted{Coldkey: coldkey, Amount: amount})
	return nil
}

// CreditEmission - add newly created funds directly to the stake of a
// hotkey as part of an open transaction
func CreditEmission(trx storage.Transaction, hotkey account.Key, amount uint64) {
	if 0 == amount {
		return
	}
	stake, _ := trx.GetN(storage.Pool.Stake, hotkey.Bytes())
	trx.PutN(storage.Pool.Stake, hotkey.Bytes(), saturatingAdd(stake, amount))

	total, _ := trx.GetN(storage.Pool.Globals, storage.GlobalTotalStake)
	trx.PutN(storage.Pool.Globals, storage.GlobalTotalStake, saturatingAdd(total, amount))

	issuance, _ := trx.GetN(storage.Pool.Globals, storage.GlobalTotalIssuance)
	trx.PutN(storage.Pool.Globals, storage.GlobalTotalIssuance, saturatingAdd(issuance, amount))
}

// the hotkey must be bound to the calling coldkey
func authorise(trx storage.Transaction, coldkey account.Key, hotkey account.Key) error {
	bound, found := registry.Coldkey(trx, hotkey)
	if !found {
		return fault.NotRegistered
	}
	if bound != coldkey {
		return fault.NonAssociatedColdKey
	}
	return nil
}

func saturatingAdd(a uint64, b uint64) uint64 {
	if a+b < a {
		return 1<<64 - 1
	}
	return a + b
}
