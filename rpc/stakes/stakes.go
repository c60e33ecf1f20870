// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stakes - moving funds between coldkey balances and hotkey stake
package stakes

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/rpc/ratelimit"
	"github.com/bitmark-inc/paratensord/rpc/signed"
)

// Backend - the stake ledger as seen by the service
type Backend interface {
	Height() uint64
	AddStake(coldkey account.Key, hotkey account.Key, amount uint64) error
	RemoveStake(coldkey account.Key, hotkey account.Key, amount uint64) error
	Stake(hotkey account.Key) uint64
	Balance(coldkey account.Key) uint64
	Hotkeys(coldkey account.Key) []account.Key
}

// Stake - type for RPC calls
type Stake struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Backend Backend
}

const (
	rateLimitStake = 100
	rateBurstStake = 50
)

// signed method names
const (
	MethodAdd    = "Stake.Add"
	MethodRemove = "Stake.Remove"
)

// New - create the Stake service
func New(log *logger.L, backend Backend) *Stake {
	return &Stake{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitStake, rateBurstStake),
		Backend: backend,
	}
}

// TransferArguments - coldkey signed movement of funds
type TransferArguments struct {
	Coldkey   account.Key       `json:"coldkey"`
	Hotkey    account.Key       `json:"hotkey"`
	Amount    uint64            `json:"amount,string"`
	Height    uint64            `json:"height"`
	Signature account.Signature `json:"signature"`
}

// TransferReply - balances after the movement
type TransferReply struct {
	Stake   uint64 `json:"stake,string"`
	Balance uint64 `json:"balance,string"`
}

// Add - move funds from the coldkey balance to the hotkey stake
func (s *Stake) Add(arguments *TransferArguments, reply *TransferReply) error {
	return s.transfer(MethodAdd, s.Backend.AddStake, arguments, reply)
}

// Remove - move funds from the hotkey stake back to the coldkey balance
func (s *Stake) Remove(arguments *TransferArguments, reply *TransferReply) error {
	return s.transfer(MethodRemove, s.Backend.RemoveStake, arguments, reply)
}

func (s *Stake) transfer(method string, move func(account.Key, account.Key, uint64) error, arguments *TransferArguments, reply *TransferReply) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if 0 == arguments.Amount {
		return fault.ZeroAmount
	}

	err := signed.Verify(arguments.Coldkey, arguments.Signature, s.Backend.Height(), method, arguments.Height,
		arguments.Hotkey, arguments.Amount)
	if nil != err {
		return err
	}

	err = move(arguments.Coldkey, arguments.Hotkey, arguments.Amount)
	if nil != err {
		s.Log.Debugf("%s coldkey: %s  hotkey: %s  error: %s", method, arguments.Coldkey, arguments.Hotkey, err)
		return err
	}

	reply.Stake = s.Backend.Stake(arguments.Hotkey)
	reply.Balance = s.Backend.Balance(arguments.Coldkey)
	return nil
}

// ---

// AccountArguments - coldkey to report
type AccountArguments struct {
	Coldkey account.Key `json:"coldkey"`
}

// HotkeyStake - stake held by one hotkey
type HotkeyStake struct {
	Hotkey account.Key `json:"hotkey"`
	Stake  uint64      `json:"stake,string"`
}

// AccountReply - free balance and the stake of every controlled hotkey
type AccountReply struct {
	Balance uint64        `json:"balance,string"`
	Hotkeys []HotkeyStake `json:"hotkeys"`
}

// Account - free balance and stakes of a coldkey
func (s *Stake) Account(arguments *AccountArguments, reply *AccountReply) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	reply.Balance = s.Backend.Balance(arguments.Coldkey)
	hotkeys := s.Backend.Hotkeys(arguments.Coldkey)
	reply.Hotkeys = make([]HotkeyStake, len(hotkeys))
	for i, hotkey := range hotkeys {
		reply.Hotkeys[i] = HotkeyStake{
			Hotkey: hotkey,
			Stake:  s.Backend.Stake(hotkey),
		}
	}
	return nil
}
