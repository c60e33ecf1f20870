// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/paratensord/counter"
	"github.com/bitmark-inc/paratensord/epoch"
	"github.com/bitmark-inc/paratensord/hyperparameter"
	"github.com/bitmark-inc/paratensord/publish"
	"github.com/bitmark-inc/paratensord/rpc/ratelimit"
	"github.com/bitmark-inc/paratensord/stake"
	"github.com/bitmark-inc/paratensord/storage"
	"github.com/bitmark-inc/paratensord/subnet"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Chain   string
	Height  func() uint64
	counter *counter.Counter
}

// New - create the Node service
func New(log *logger.L, start time.Time, version string, chain string, height func() uint64, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Chain:   chain,
		Height:  height,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain         string   `json:"chain"`
	Height        uint64   `json:"height"`
	Subnetworks   []uint16 `json:"subnetworks"`
	GlobalN       uint64   `json:"globalN"`
	TotalStake    uint64   `json:"totalStake"`
	TotalIssuance uint64   `json:"totalIssuance"`
	BlocksPerStep uint64   `json:"blocksPerStep"`
	Epochs        Epochs   `json:"epochs"`
	Publisher     string   `json:"publisher,omitempty"`
	RPCs          uint64   `json:"rpcs"`
	Version       string   `json:"version"`
	Uptime        string   `json:"uptime"`
}

// Epochs - epoch counters since start
type Epochs struct {
	Completed uint64 `json:"completed"`
	Faults    uint64 `json:"faults"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	globalN, _ := storage.Pool.Globals.GetN(storage.GlobalN)

	reply.Chain = node.Chain
	reply.Height = node.Height()
	reply.Subnetworks = subnet.ReadNetuids()
	reply.GlobalN = globalN
	reply.TotalStake = stake.Total()
	reply.TotalIssuance = stake.TotalIssuance()
	reply.BlocksPerStep = hyperparameter.ReadBlocksPerStep()
	reply.Epochs = Epochs{
		Completed: epoch.Completed(),
		Faults:    epoch.FaultCount(),
	}
	reply.Publisher = hex.EncodeToString(publish.PublicKey())
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
