// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfo()
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runMetagraph(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	netuid, err := checkNetuid(c)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	if name := c.String("vector"); "" != name {
		response, err := client.GetVector(netuid, name)
		if nil != err {
			return err
		}
		printJson(m.w, response)
		return nil
	}

	response, err := client.GetMetagraph(netuid)
	if nil != err {
		return err
	}
	printJson(m.w, response)
	return nil
}
