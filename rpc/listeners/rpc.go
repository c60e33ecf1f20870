// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/counter"
	"github.com/bitmark-inc/paratensord/fault"
)

const (
	logName = "client_rpc"
)

// RPCConfiguration - client_rpc section of the configuration file
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// rpcListener - JSON-RPC codec over raw TLS connections
type rpcListener struct {
	log       *logger.L
	active    *counter.Counter
	limit     uint64
	server    *rpc.Server
	tlsConfig *tls.Config
	endpoints []endpoint
}

// NewRPC - validate the configuration for a JSON RPC listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	switch {
	case configuration.MaximumConnections < minConnectionCount:
		log.Errorf("%s: maximum connections: %d below: %d", logName, configuration.MaximumConnections, minConnectionCount)
		return nil, fault.MissingParameters
	case 0 == len(configuration.Listen):
		log.Errorf("%s: no listen addresses", logName)
		return nil, fault.MissingParameters
	}

	endpoints, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	log.Infof("%s: certificate SHA3-256: %x", logName, certificateFingerprint)

	return &rpcListener{
		log:       log,
		active:    count,
		limit:     configuration.MaximumConnections,
		server:    server,
		tlsConfig: tlsConfig,
		endpoints: endpoints,
	}, nil
}

// Serve - bind every address, then accept in background
//
// a bind failure is returned before any connection is accepted
func (r *rpcListener) Serve() error {
	bound := make([]net.Listener, 0, len(r.endpoints))
	for _, e := range r.endpoints {
		l, err := tls.Listen(e.network, e.address, r.tlsConfig)
		if nil != err {
			r.log.Errorf("%s: listen on: %s  error: %s", logName, e.address, err)
			for _, b := range bound {
				_ = b.Close()
			}
			return err
		}
		r.log.Infof("%s: listening on: %s", logName, e.address)
		bound = append(bound, l)
	}

	for _, l := range bound {
		go r.accept(l)
	}
	return nil
}

func (r *rpcListener) accept(l net.Listener) {
	defer l.Close()

	for {
		conn, err := l.Accept()
		if nil != err {
			r.log.Errorf("%s: accept on: %s  error: %s", logName, l.Addr(), err)
			return
		}
		go r.serve(conn)
	}
}

// serve - one client until it disconnects; connections over the
// limit are closed at once
func (r *rpcListener) serve(conn net.Conn) {
	defer r.active.Decrement()
	defer conn.Close()

	if r.active.Increment() > r.limit {
		r.log.Warnf("%s: connection limit: %d reached, dropped: %s", logName, r.limit, conn.RemoteAddr())
		return
	}
	r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
}
