// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package neuron

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/registry"
	"github.com/bitmark-inc/paratensord/rpc/ratelimit"
	"github.com/bitmark-inc/paratensord/rpc/signed"
)

// Backend - state transitions a neuron may request
type Backend interface {
	Height() uint64
	Register(netuid uint16, height uint64, hotkey account.Key, coldkey account.Key, proof registry.Proof) (uint16, error)
	SetWeights(netuid uint16, hotkey account.Key, uids []uint16, values []uint16, height uint64) error
	ServeAxon(hotkey account.Key, version uint32, ip string, port uint16, ipType uint8, modality uint8, height uint64) error
}

// Neuron - type for RPC calls
type Neuron struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Backend Backend
}

const (
	rateLimitNeuron = 100
	rateBurstNeuron = 50
)

// signed method names
const (
	MethodRegister   = "Neuron.Register"
	MethodSetWeights = "Neuron.SetWeights"
	MethodServeAxon  = "Neuron.ServeAxon"
)

// New - create the Neuron service
func New(log *logger.L, backend Backend) *Neuron {
	return &Neuron{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNeuron, rateBurstNeuron),
		Backend: backend,
	}
}

// Neuron register
// ---------------

// RegisterArguments - a hotkey joining a subnetwork with a solved proof
type RegisterArguments struct {
	Netuid    uint16            `json:"netuid"`
	Hotkey    account.Key       `json:"hotkey"`
	Coldkey   account.Key       `json:"coldkey"`
	Proof     registry.Proof    `json:"proof"`
	Height    uint64            `json:"height"`
	Signature account.Signature `json:"signature"`
}

// RegisterReply - the uid assigned to the hotkey
type RegisterReply struct {
	Uid uint16 `json:"uid"`
}

// Register - register a hotkey on a subnetwork
func (n *Neuron) Register(arguments *RegisterArguments, reply *RegisterReply) error {
	if err := ratelimit.Limit(n.Limiter); nil != err {
		return err
	}

	current := n.Backend.Height()
	err := signed.Verify(arguments.Hotkey, arguments.Signature, current, MethodRegister, arguments.Height,
		arguments.Netuid, arguments.Coldkey, arguments.Proof.BlockNumber, arguments.Proof.Nonce, arguments.Proof.Work)
	if nil != err {
		return err
	}

	uid, err := n.Backend.Register(arguments.Netuid, current, arguments.Hotkey, arguments.Coldkey, arguments.Proof)
	if nil != err {
		n.Log.Debugf("register netuid: %d  hotkey: %s  error: %s", arguments.Netuid, arguments.Hotkey, err)
		return err
	}

	n.Log.Infof("register netuid: %d  hotkey: %s  uid: %d", arguments.Netuid, arguments.Hotkey, uid)
	reply.Uid = uid
	return nil
}

// Neuron weights
// --------------

// SetWeightsArguments - a new weight row for the signing hotkey
type SetWeightsArguments struct {
	Netuid    uint16            `json:"netuid"`
	Hotkey    account.Key       `json:"hotkey"`
	Uids      []uint16          `json:"uids"`
	Values    []uint16          `json:"values"`
	Height    uint64            `json:"height"`
	Signature account.Signature `json:"signature"`
}

// SetWeightsReply - empty on success
type SetWeightsReply struct {
}

// SetWeights - replace the weight row of a hotkey
func (n *Neuron) SetWeights(arguments *SetWeightsArguments, reply *SetWeightsReply) error {
	if err := ratelimit.Limit(n.Limiter); nil != err {
		return err
	}

	current := n.Backend.Height()
	err := signed.Verify(arguments.Hotkey, arguments.Signature, current, MethodSetWeights, arguments.Height,
		arguments.Netuid, arguments.Uids, arguments.Values)
	if nil != err {
		return err
	}

	return n.Backend.SetWeights(arguments.Netuid, arguments.Hotkey, arguments.Uids, arguments.Values, current)
}

// Neuron axon
// -----------

// ServeAxonArguments - the endpoint the signing hotkey serves from
type ServeAxonArguments struct {
	Hotkey    account.Key       `json:"hotkey"`
	Version   uint32            `json:"version"`
	IP        string            `json:"ip"`
	Port      uint16            `json:"port"`
	IPType    uint8             `json:"ip_type"`
	Modality  uint8             `json:"modality"`
	Height    uint64            `json:"height"`
	Signature account.Signature `json:"signature"`
}

// ServeAxonReply - empty on success
type ServeAxonReply struct {
}

// ServeAxon - publish the endpoint of a hotkey
func (n *Neuron) ServeAxon(arguments *ServeAxonArguments, reply *ServeAxonReply) error {
	if err := ratelimit.Limit(n.Limiter); nil != err {
		return err
	}

	current := n.Backend.Height()
	err := signed.Verify(arguments.Hotkey, arguments.Signature, current, MethodServeAxon, arguments.Height,
		arguments.Version, arguments.IP, arguments.Port, arguments.IPType, arguments.Modality)
	if nil != err {
		return err
	}

	return n.Backend.ServeAxon(arguments.Hotkey, arguments.Version, arguments.IP, arguments.Port,
		arguments.IPType, arguments.Modality, current)
}
