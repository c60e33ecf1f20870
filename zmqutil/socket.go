// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package zmqutil - curve keys and encrypted server sockets for ZeroMQ
package zmqutil

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/paratensord/util"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
)

// Keys - the curve pair a server socket presents to its peers
type Keys struct {
	Private []byte
	Public  []byte
}

// the ZAP handler is process wide
var auth struct {
	sync.Mutex
	running bool
}

// StartAuthentication - start the ZAP handler, further calls are no-ops
func StartAuthentication() error {
	auth.Lock()
	defer auth.Unlock()

	if auth.running {
		return nil
	}
	zmq.AuthSetVerbose(false)
	if err := zmq.AuthStart(); nil != err {
		return err
	}
	auth.running = true
	return nil
}

// StopAuthentication - stop the ZAP handler if it was started
func StopAuthentication() {
	auth.Lock()
	defer auth.Unlock()

	if auth.running {
		zmq.AuthStop()
		auth.running = false
	}
}

// Bind - bind every listen address, sharing one socket per address family
//
// on error all sockets opened so far are closed
func Bind(log *logger.L, socketType zmq.Type, zapDomain string, keys Keys, listen []*util.Connection) ([]*zmq.Socket, error) {

	families := make(map[bool]*zmq.Socket, 2)
	sockets := make([]*zmq.Socket, 0, 2)

	for i, address := range listen {
		endpoint, v6 := address.CanonicalIPandPort("tcp://")

		socket, ok := families[v6]
		if !ok {
			s, err := newServerSocket(socketType, zapDomain, keys, v6)
			if nil != err {
				closeAll(sockets)
				return nil, err
			}
			families[v6] = s
			sockets = append(sockets, s)
			socket = s
		}

		if err := socket.Bind(endpoint); nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, endpoint, err)
			closeAll(sockets)
			return nil, err
		}
		log.Infof("bind[%d]: %q  IPv6: %v", i, endpoint, v6)
	}
	return sockets, nil
}

func closeAll(sockets []*zmq.Socket) {
	for _, s := range sockets {
		s.Close()
	}
}

// curve server that accepts any client key
func newServerSocket(socketType zmq.Type, zapDomain string, keys Keys, v6 bool) (*zmq.Socket, error) {

	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)

	settings := []func() error{
		func() error { return socket.SetCurveServer(1) },
		func() error { return socket.SetCurveSecretkey(string(keys.Private)) },
		func() error { return socket.SetZapDomain(zapDomain) },
		func() error { return socket.SetIdentity(string(keys.Public)) },
		func() error { return socket.SetIpv6(v6) },

		// a subscriber that stops reading must not stall shutdown
		func() error { return socket.SetLinger(0) },

		func() error { return socket.SetHeartbeatIvl(heartbeatInterval) },
		func() error { return socket.SetHeartbeatTimeout(heartbeatTimeout) },
		func() error { return socket.SetHeartbeatTtl(heartbeatTTL) },
	}
	for _, set := range settings {
		if err := set(); nil != err {
			socket.Close()
			return nil, err
		}
	}

	return socket, nil
}
