// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/rpc/signed"
	"github.com/bitmark-inc/paratensord/rpc/stakes"
)

// AddStake - move balance of the signing coldkey to a hotkey
func (client *Client) AddStake(coldkey *account.PrivateKey, hotkey account.Key, amount uint64) (*stakes.TransferReply, error) {
	return client.transfer(stakes.MethodAdd, coldkey, hotkey, amount)
}

// RemoveStake - move stake of a hotkey back to the signing coldkey
func (client *Client) RemoveStake(coldkey *account.PrivateKey, hotkey account.Key, amount uint64) (*stakes.TransferReply, error) {
	return client.transfer(stakes.MethodRemove, coldkey, hotkey, amount)
}

func (client *Client) transfer(method string, coldkey *account.PrivateKey, hotkey account.Key, amount uint64) (*stakes.TransferReply, error) {
	height, err := client.height()
	if nil != err {
		return nil, err
	}

	arguments := stakes.TransferArguments{
		Coldkey:   coldkey.Key(),
		Hotkey:    hotkey,
		Amount:    amount,
		Height:    height,
		Signature: signed.Sign(coldkey, method, height, hotkey, amount),
	}

	var reply stakes.TransferReply
	err = client.call(method, arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetAccount - balance and staked hotkeys of a coldkey
func (client *Client) GetAccount(coldkey account.Key) (*stakes.AccountReply, error) {
	var reply stakes.AccountReply
	err := client.call("Stake.Account", stakes.AccountArguments{Coldkey: coldkey}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
