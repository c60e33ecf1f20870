// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/paratensord/account"
)

type keyReply struct {
	Seed string      `json:"seed"`
	Key  account.Key `json:"key"`
}

func runKeygen(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := account.NewPrivateKey()
	if nil != err {
		return err
	}

	printJson(m.w, keyReply{
		Seed: privateKey.Seed(),
		Key:  privateKey.Key(),
	})
	return nil
}
