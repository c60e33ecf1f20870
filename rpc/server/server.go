// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/counter"
	"github.com/bitmark-inc/paratensord/rpc/admin"
	"github.com/bitmark-inc/paratensord/rpc/metagraph"
	"github.com/bitmark-inc/paratensord/rpc/neuron"
	"github.com/bitmark-inc/paratensord/rpc/node"
	"github.com/bitmark-inc/paratensord/rpc/stakes"
)

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, chain string, height func() uint64, rpcCount *counter.Counter, adminKeys *admin.KeySet) *rpc.Server {

	start := time.Now().UTC()
	b := &backend{height: height}

	server := rpc.NewServer()

	_ = server.Register(node.New(log, start, version, chain, height, rpcCount))
	_ = server.Register(metagraph.New(log))
	_ = server.Register(neuron.New(log, b))
	_ = server.Register(stakes.New(log, b))
	_ = server.Register(admin.New(log, adminKeys, b))

	return server
}
