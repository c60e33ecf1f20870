// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	netrpc "net/rpc"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/counter"
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/rpc/admin"
	"github.com/bitmark-inc/paratensord/rpc/certificate"
	"github.com/bitmark-inc/paratensord/rpc/handler"
	"github.com/bitmark-inc/paratensord/rpc/listeners"
	"github.com/bitmark-inc/paratensord/rpc/node"
	"github.com/bitmark-inc/paratensord/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

var globalData struct {
	sync.RWMutex
	log         *logger.L
	connections counter.Counter
	initialised bool
}

// identity - what every service reports about this node
type identity struct {
	version string
	chain   string
	height  func() uint64
	admin   *admin.KeySet
}

// Initialise - start the TLS JSON RPC listener and, if it has listen
// addresses, the HTTPS listener
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, chain string, height func() uint64, adminKeys *admin.KeySet) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log

	id := identity{
		version: version,
		chain:   chain,
		height:  height,
		admin:   adminKeys,
	}

	if err := serveRPC(log, rpcConfiguration, id); nil != err {
		return err
	}

	if 0 == len(httpsConfiguration.Listen) {
		log.Infof("%s: disabled", httpsName)
	} else if err := serveHTTPS(log, httpsConfiguration, id); nil != err {
		return err
	}

	globalData.initialised = true
	log.Infof("chain: %s  version: %s  started", chain, version)
	return nil
}

func newServer(log *logger.L, id identity) *netrpc.Server {
	return server.Create(log, id.version, id.chain, id.height, &globalData.connections, id.admin)
}

func serveRPC(log *logger.L, configuration *listeners.RPCConfiguration, id identity) error {
	tlsConfig, fingerprint, err := certificate.Load(log, rpcName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	l, err := listeners.NewRPC(configuration, log, &globalData.connections, newServer(log, id), tlsConfig, fingerprint)
	if nil != err {
		return err
	}
	return l.Serve()
}

func serveHTTPS(log *logger.L, configuration *listeners.HTTPSConfiguration, id identity) error {
	tlsConfig, fingerprint, err := certificate.Load(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}
	log.Infof("%s: certificate SHA3-256: %x", httpsName, fingerprint)

	start := time.Now()
	info := node.New(log, start, id.version, id.chain, id.height, &globalData.connections)
	summary := func() (interface{}, error) {
		var reply node.InfoReply
		err := info.Info(&node.InfoArguments{}, &reply)
		return reply, err
	}

	h := handler.New(log, newServer(log, id), start, id.version, configuration.MaximumConnections, summary)

	l, err := listeners.NewHTTPS(configuration, log, tlsConfig, h)
	if nil != err {
		return err
	}
	return l.Serve()
}

// Finalise - mark the listeners finished, open connections are left
// to end with the process
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// ConnectionCount - number of open RPC connections
func ConnectionCount() uint64 {
	return globalData.connections.Uint64()
}
