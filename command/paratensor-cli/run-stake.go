// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/command/paratensor-cli/rpccalls"
	"github.com/bitmark-inc/paratensord/rpc/stakes"
)

type transferFunc func(*rpccalls.Client, *account.PrivateKey, account.Key, uint64) (*stakes.TransferReply, error)

func runAddStake(c *cli.Context) error {
	return runTransfer(c, (*rpccalls.Client).AddStake)
}

func runRemoveStake(c *cli.Context) error {
	return runTransfer(c, (*rpccalls.Client).RemoveStake)
}

func runTransfer(c *cli.Context, transfer transferFunc) error {

	m := c.App.Metadata["config"].(*metadata)

	hotkey, err := checkKey("hotkey", c.String("hotkey"))
	if nil != err {
		return err
	}

	amount, err := checkPositive("amount", c.Uint64("amount"))
	if nil != err {
		return err
	}

	coldkey, err := signingKey(m)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := transfer(client, coldkey, hotkey, amount)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var coldkey account.Key
	if s := c.String("coldkey"); "" != s {
		k, err := checkKey("coldkey", s)
		if nil != err {
			return err
		}
		coldkey = k
	} else {
		privateKey, err := signingKey(m)
		if nil != err {
			return err
		}
		coldkey = privateKey.Key()
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetAccount(coldkey)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
