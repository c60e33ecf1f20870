// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/paratensord/command/paratensor-cli/rpccalls"
)

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	netuid, err := checkNetuid(c)
	if nil != err {
		return err
	}

	coldkey, err := checkKey("coldkey", c.String("coldkey"))
	if nil != err {
		return err
	}

	hotkey, err := signingKey(m)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	// CTRL-C abandons the proof search
	shutdown := make(chan struct{})
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)
	go func() {
		if _, ok := <-ch; ok {
			close(shutdown)
		}
	}()

	if m.verbose {
		fmt.Fprintf(m.e, "solving registration for hotkey: %s\n", hotkey.Key())
	}

	response, err := client.Register(hotkey, &rpccalls.RegisterData{
		Netuid:  netuid,
		Coldkey: coldkey,
	}, shutdown)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runSetWeights(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	netuid, err := checkNetuid(c)
	if nil != err {
		return err
	}

	uids, err := parseUint16List("uids", c.String("uids"))
	if nil != err {
		return err
	}

	values, err := parseUint16List("values", c.String("values"))
	if nil != err {
		return err
	}

	hotkey, err := signingKey(m)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	return client.SetWeights(hotkey, &rpccalls.WeightsData{
		Netuid: netuid,
		Uids:   uids,
		Values: values,
	})
}

func runServeAxon(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ip := c.String("ip")
	if "" == ip {
		return fmt.Errorf("ip is required")
	}

	port, err := checkUint16("port", c.Uint("port"))
	if nil != err {
		return err
	}

	ipType := c.Uint("ip-type")
	if 4 != ipType && 6 != ipType {
		return ErrInvalidIpType
	}

	modality, err := checkUint16("modality", c.Uint("modality"))
	if nil != err {
		return err
	}
	if modality > 0xff {
		return fmt.Errorf("modality: %d is out of range", modality)
	}

	hotkey, err := signingKey(m)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	return client.ServeAxon(hotkey, &rpccalls.AxonData{
		Version:  uint32(c.Uint("axon-version")),
		IP:       ip,
		Port:     port,
		IPType:   uint8(ipType),
		Modality: uint8(modality),
	})
}
