// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metagraph - read only views of a subnetwork
package metagraph

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/hyperparameter"
	"github.com/bitmark-inc/paratensord/registry"
	"github.com/bitmark-inc/paratensord/rpc/ratelimit"
	"github.com/bitmark-inc/paratensord/subnet"
	"github.com/bitmark-inc/paratensord/weights"
)

const (
	rateLimitMetagraph = 100
	rateBurstMetagraph = 50

	// a full view costs this many tokens
	costGet = 5
)

// Metagraph - type for RPC calls
type Metagraph struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

// New - create the Metagraph service
func New(log *logger.L) *Metagraph {
	return &Metagraph{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitMetagraph, rateBurstMetagraph),
	}
}

// ---

// GetArguments - subnetwork to view
type GetArguments struct {
	Netuid uint16 `json:"netuid"`
}

// Neuron - everything known about one uid
type Neuron struct {
	Uid          uint16        `json:"uid"`
	Hotkey       account.Key   `json:"hotkey"`
	Coldkey      account.Key   `json:"coldkey"`
	Active       bool          `json:"active"`
	LastUpdate   uint64        `json:"lastUpdate"`
	RegisteredAt uint64        `json:"registeredAt"`
	Stake        uint64        `json:"stake"`
	Rank         uint16        `json:"rank"`
	Trust        uint16        `json:"trust"`
	Consensus    uint16        `json:"consensus"`
	Incentive    uint16        `json:"incentive"`
	Dividends    uint16        `json:"dividends"`
	Emission     uint64        `json:"emission"`
	Weights      subnet.Row    `json:"weights"`
	Bonds        subnet.Row    `json:"bonds"`
	Axon         *weights.Axon `json:"axon,omitempty"`
}

// GetReply - the full view of a subnetwork
type GetReply struct {
	Netuid        uint16                `json:"netuid"`
	N             int                   `json:"n"`
	LastEpoch     uint64                `json:"lastEpoch"`
	EmissionRatio uint16                `json:"emissionRatio"`
	Params        hyperparameter.Params `json:"params"`
	Neurons       []Neuron              `json:"neurons"`
}

// Get - the full view of a subnetwork
func (m *Metagraph) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.LimitN(m.Limiter, costGet); nil != err {
		return err
	}

	s, err := subnet.Read(arguments.Netuid)
	if nil != err {
		return err
	}

	reply.Netuid = s.Netuid
	reply.N = s.N
	reply.LastEpoch = s.LastEpoch
	reply.EmissionRatio = hyperparameter.ReadEmissionRatio(arguments.Netuid)
	reply.Params = s.Params
	reply.Neurons = make([]Neuron, s.N)
	for uid := 0; uid < s.N; uid += 1 {
		n := Neuron{
			Uid:          uint16(uid),
			Hotkey:       s.Hotkeys[uid],
			Coldkey:      s.Coldkeys[uid],
			Active:       s.Active[uid],
			LastUpdate:   s.LastUpdate[uid],
			RegisteredAt: s.RegisteredAt[uid],
			Stake:        s.Stake[uid],
			Rank:         s.Rank[uid],
			Trust:        s.Trust[uid],
			Consensus:    s.Consensus[uid],
			Incentive:    s.Incentive[uid],
			Dividends:    s.Dividends[uid],
			Emission:     s.Emission[uid],
			Weights:      s.Weights[uid],
			Bonds:        s.Bonds[uid],
		}
		if axon, ok := weights.GetAxon(s.Hotkeys[uid]); ok {
			n.Axon = &axon
		}
		reply.Neurons[uid] = n
	}
	return nil
}

// ---

// VectorArguments - one named vector of a subnetwork
type VectorArguments struct {
	Netuid uint16 `json:"netuid"`
	Name   string `json:"name"`
}

// VectorReply - the values indexed by uid
type VectorReply struct {
	Name   string   `json:"name"`
	Values []uint64 `json:"values"`
}

// Vector - one persisted vector without the rest of the subnetwork
func (m *Metagraph) Vector(arguments *VectorArguments, reply *VectorReply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	values, err := subnet.ReadVector(arguments.Netuid, arguments.Name)
	if nil != err {
		return err
	}
	reply.Name = arguments.Name
	reply.Values = values
	return nil
}

// ---

// LookupArguments - hotkey to find
type LookupArguments struct {
	Netuid uint16      `json:"netuid"`
	Hotkey account.Key `json:"hotkey"`
}

// LookupReply - the uid of the hotkey
type LookupReply struct {
	Uid uint16 `json:"uid"`
}

// Lookup - uid of a hotkey
func (m *Metagraph) Lookup(arguments *LookupArguments, reply *LookupReply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	uid, found := registry.LookupUid(arguments.Netuid, arguments.Hotkey)
	if !found {
		return fault.NotRegistered
	}
	reply.Uid = uid
	return nil
}

// ---

// HotkeyArguments - uid to find
type HotkeyArguments struct {
	Netuid uint16 `json:"netuid"`
	Uid    uint16 `json:"uid"`
}

// HotkeyReply - the hotkey and coldkey of the uid
type HotkeyReply struct {
	Hotkey  account.Key `json:"hotkey"`
	Coldkey account.Key `json:"coldkey"`
}

// Hotkey - credentials bound to a uid
func (m *Metagraph) Hotkey(arguments *HotkeyArguments, reply *HotkeyReply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	hotkey, found := registry.LookupHotkey(arguments.Netuid, arguments.Uid)
	if !found {
		return fault.InvalidUid
	}
	reply.Hotkey = hotkey
	reply.Coldkey, _ = registry.ReadColdkey(hotkey)
	return nil
}
