// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS endpoints for the JSON RPC server
package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/fault"
)

const minConnectionCount = 1

// Listener - bind all configured addresses and serve in background
type Listener interface {
	Serve() error
}

// endpoint - a listen address and the network it is bound on
type endpoint struct {
	network string
	address string
}

// parseListenAddress - "*:PORT" becomes "[::]:PORT" on tcp (both
// families), "[v6]:PORT" is tcp6 and anything else must be an IPv4
// literal on tcp4
func parseListenAddress(addrs []string, log *logger.L) ([]endpoint, error) {
	endpoints := make([]endpoint, 0, len(addrs))
	for _, listen := range addrs {
		e, host := endpoint{network: "tcp4", address: listen}, ""

		switch {
		case strings.HasPrefix(listen, "*:"):
			e = endpoint{network: "tcp", address: "[::]" + listen[1:]}
			host = "::"
		case strings.HasPrefix(listen, "["):
			e.network = "tcp6"
			host = strings.SplitN(listen[1:], "]:", 2)[0]
		default:
			host = strings.SplitN(listen, ":", 2)[0]
		}

		if nil == net.ParseIP(host) {
			log.Errorf("listen: %q  error: %s", listen, fault.InvalidIpAddress)
			return nil, fault.InvalidIpAddress
		}
		endpoints = append(endpoints, e)
	}
	return endpoints, nil
}
