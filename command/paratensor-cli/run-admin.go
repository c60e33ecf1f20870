// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/command/paratensor-cli/rpccalls"
	"github.com/bitmark-inc/paratensord/hyperparameter"
)

// connect and sign with the admin key
func adminAction(c *cli.Context, action func(*rpccalls.Client, *account.PrivateKey) error) error {

	m := c.App.Metadata["config"].(*metadata)

	signer, err := signingKey(m)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	return action(client, signer)
}

func runMint(c *cli.Context) error {
	coldkey, err := checkKey("coldkey", c.String("coldkey"))
	if nil != err {
		return err
	}
	amount, err := checkPositive("amount", c.Uint64("amount"))
	if nil != err {
		return err
	}

	return adminAction(c, func(client *rpccalls.Client, signer *account.PrivateKey) error {
		return client.Mint(signer, coldkey, amount)
	})
}

func runSetTempo(c *cli.Context) error {
	netuid, err := checkNetuid(c)
	if nil != err {
		return err
	}
	tempo, err := checkUint16("tempo", c.Uint("tempo"))
	if nil != err {
		return err
	}

	return adminAction(c, func(client *rpccalls.Client, signer *account.PrivateKey) error {
		return client.SetTempo(signer, netuid, tempo)
	})
}

func runSetEmissionRatio(c *cli.Context) error {
	netuid, err := checkNetuid(c)
	if nil != err {
		return err
	}
	ratio, err := checkUint16("ratio", c.Uint("ratio"))
	if nil != err {
		return err
	}

	return adminAction(c, func(client *rpccalls.Client, signer *account.PrivateKey) error {
		return client.SetEmissionRatio(signer, netuid, ratio)
	})
}

func runSetBlocksPerStep(c *cli.Context) error {
	blocks, err := checkPositive("blocks", c.Uint64("blocks"))
	if nil != err {
		return err
	}

	return adminAction(c, func(client *rpccalls.Client, signer *account.PrivateKey) error {
		return client.SetBlocksPerStep(signer, blocks)
	})
}

func runCreateSubnetwork(c *cli.Context) error {
	netuid, err := checkNetuid(c)
	if nil != err {
		return err
	}
	ratio, err := checkUint16("ratio", c.Uint("ratio"))
	if nil != err {
		return err
	}

	params, err := subnetworkParams(c)
	if nil != err {
		return err
	}

	return adminAction(c, func(client *rpccalls.Client, signer *account.PrivateKey) error {
		return client.CreateSubnetwork(signer, netuid, params, ratio)
	})
}

func runSetHyperparameters(c *cli.Context) error {
	netuid, err := checkNetuid(c)
	if nil != err {
		return err
	}

	return adminAction(c, func(client *rpccalls.Client, signer *account.PrivateKey) error {
		graph, err := client.GetMetagraph(netuid)
		if nil != err {
			return err
		}
		params, err := overrideParams(c, graph.Params)
		if nil != err {
			return err
		}
		return client.SetHyperparameters(signer, netuid, params)
	})
}

// defaults with any overrides given on the command line
func subnetworkParams(c *cli.Context) (hyperparameter.Params, error) {
	return overrideParams(c, hyperparameter.Default())
}

func overrideParams(c *cli.Context, params hyperparameter.Params) (hyperparameter.Params, error) {
	tempo, err := checkUint16("tempo", c.Uint("tempo"))
	if nil != err {
		return params, err
	}
	if 0 != tempo {
		params.Tempo = tempo
	}

	maxUids, err := checkUint16("max-uids", c.Uint("max-uids"))
	if nil != err {
		return params, err
	}
	if 0 != maxUids {
		params.MaxAllowedUids = maxUids
	}

	if d := c.Uint64("difficulty"); 0 != d {
		params.Difficulty = d
	}

	return params, params.Validate()
}

func runRemoveSubnetwork(c *cli.Context) error {
	netuid, err := checkNetuid(c)
	if nil != err {
		return err
	}

	return adminAction(c, func(client *rpccalls.Client, signer *account.PrivateKey) error {
		return client.RemoveSubnetwork(signer, netuid)
	})
}

func runDeregister(c *cli.Context) error {
	netuid, err := checkNetuid(c)
	if nil != err {
		return err
	}
	uid, err := checkUint16("uid", c.Uint("uid"))
	if nil != err {
		return err
	}

	return adminAction(c, func(client *rpccalls.Client, signer *account.PrivateKey) error {
		return client.Deregister(signer, netuid, uid)
	})
}
