// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package admin - privileged changes to subnetworks, parameters and issuance
//
// every request is signed by one of the configured admin keys
package admin

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/hyperparameter"
	"github.com/bitmark-inc/paratensord/rpc/ratelimit"
	"github.com/bitmark-inc/paratensord/rpc/signed"
)

// Backend - privileged state transitions
type Backend interface {
	Height() uint64
	SetTempo(netuid uint16, tempo uint16) error
	SetEmissionRatio(netuid uint16, ratio uint16) error
	SetBlocksPerStep(blocksPerStep uint64) error
	SetHyperparameters(netuid uint16, params hyperparameter.Params) error
	CreateSubnetwork(netuid uint16, params hyperparameter.Params, emissionRatio uint16, height uint64) error
	RemoveSubnetwork(netuid uint16) error
	Deregister(netuid uint16, uid uint16) error
	Mint(coldkey account.Key, amount uint64) error
}

// Admin - type for RPC calls
type Admin struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Keys    *KeySet
	Backend Backend
}

const (
	rateLimitAdmin = 10
	rateBurstAdmin = 10
)

// signed method names
const (
	MethodSetTempo          = "Admin.SetTempo"
	MethodSetEmissionRatio  = "Admin.SetEmissionRatio"
	MethodSetBlocksPerStep  = "Admin.SetBlocksPerStep"
	MethodSetHyperparameter = "Admin.SetHyperparameters"
	MethodCreateSubnetwork  = "Admin.CreateSubnetwork"
	MethodRemoveSubnetwork  = "Admin.RemoveSubnetwork"
	MethodDeregister        = "Admin.Deregister"
	MethodMint              = "Admin.Mint"
)

// New - create the Admin service
func New(log *logger.L, keys *KeySet, backend Backend) *Admin {
	return &Admin{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAdmin, rateBurstAdmin),
		Keys:    keys,
		Backend: backend,
	}
}

// Authority - the signing part of every admin request
type Authority struct {
	Signer    account.Key       `json:"signer"`
	Height    uint64            `json:"height"`
	Signature account.Signature `json:"signature"`
}

// Reply - empty on success
type Reply struct {
}

func (a *Admin) authorise(authority Authority, method string, fields ...interface{}) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if !a.Keys.Contains(authority.Signer) {
		a.Log.Warnf("%s: signer: %s not an admin key", method, authority.Signer)
		return fault.NotAuthorised
	}
	return signed.Verify(authority.Signer, authority.Signature, a.Backend.Height(), method, authority.Height, fields...)
}

func (a *Admin) done(method string, err error) error {
	if nil != err {
		a.Log.Debugf("%s: error: %s", method, err)
		return err
	}
	a.Log.Infof("%s: done", method)
	return nil
}

// ---

// SetTempoArguments - new tempo of a subnetwork
type SetTempoArguments struct {
	Authority
	Netuid uint16 `json:"netuid"`
	Tempo  uint16 `json:"tempo"`
}

// SetTempo - change the epoch interval of a subnetwork
func (a *Admin) SetTempo(arguments *SetTempoArguments, reply *Reply) error {
	err := a.authorise(arguments.Authority, MethodSetTempo, arguments.Netuid, arguments.Tempo)
	if nil != err {
		return err
	}
	return a.done(MethodSetTempo, a.Backend.SetTempo(arguments.Netuid, arguments.Tempo))
}

// SetEmissionRatioArguments - new share of block emission
type SetEmissionRatioArguments struct {
	Authority
	Netuid uint16 `json:"netuid"`
	Ratio  uint16 `json:"ratio"`
}

// SetEmissionRatio - change the emission share of a subnetwork
func (a *Admin) SetEmissionRatio(arguments *SetEmissionRatioArguments, reply *Reply) error {
	err := a.authorise(arguments.Authority, MethodSetEmissionRatio, arguments.Netuid, arguments.Ratio)
	if nil != err {
		return err
	}
	return a.done(MethodSetEmissionRatio, a.Backend.SetEmissionRatio(arguments.Netuid, arguments.Ratio))
}

// SetBlocksPerStepArguments - new global step length
type SetBlocksPerStepArguments struct {
	Authority
	BlocksPerStep uint64 `json:"blocks_per_step"`
}

// SetBlocksPerStep - change the global step length
func (a *Admin) SetBlocksPerStep(arguments *SetBlocksPerStepArguments, reply *Reply) error {
	err := a.authorise(arguments.Authority, MethodSetBlocksPerStep, arguments.BlocksPerStep)
	if nil != err {
		return err
	}
	return a.done(MethodSetBlocksPerStep, a.Backend.SetBlocksPerStep(arguments.BlocksPerStep))
}

// SetHyperparametersArguments - complete replacement parameter set
type SetHyperparametersArguments struct {
	Authority
	Netuid uint16                `json:"netuid"`
	Params hyperparameter.Params `json:"params"`
}

// SetHyperparameters - replace every parameter of a subnetwork
func (a *Admin) SetHyperparameters(arguments *SetHyperparametersArguments, reply *Reply) error {
	err := a.authorise(arguments.Authority, MethodSetHyperparameter, arguments.Netuid, arguments.Params.Pack())
	if nil != err {
		return err
	}
	return a.done(MethodSetHyperparameter, a.Backend.SetHyperparameters(arguments.Netuid, arguments.Params))
}

// CreateSubnetworkArguments - a new empty subnetwork
type CreateSubnetworkArguments struct {
	Authority
	Netuid        uint16                `json:"netuid"`
	Params        hyperparameter.Params `json:"params"`
	EmissionRatio uint16                `json:"emission_ratio"`
}

// CreateSubnetwork - add a subnetwork
func (a *Admin) CreateSubnetwork(arguments *CreateSubnetworkArguments, reply *Reply) error {
	err := a.authorise(arguments.Authority, MethodCreateSubnetwork, arguments.Netuid, arguments.Params.Pack(), arguments.EmissionRatio)
	if nil != err {
		return err
	}
	err = a.Backend.CreateSubnetwork(arguments.Netuid, arguments.Params, arguments.EmissionRatio, a.Backend.Height())
	return a.done(MethodCreateSubnetwork, err)
}

// RemoveSubnetworkArguments - subnetwork to drop
type RemoveSubnetworkArguments struct {
	Authority
	Netuid uint16 `json:"netuid"`
}

// RemoveSubnetwork - drop a subnetwork with all of its neurons
func (a *Admin) RemoveSubnetwork(arguments *RemoveSubnetworkArguments, reply *Reply) error {
	err := a.authorise(arguments.Authority, MethodRemoveSubnetwork, arguments.Netuid)
	if nil != err {
		return err
	}
	return a.done(MethodRemoveSubnetwork, a.Backend.RemoveSubnetwork(arguments.Netuid))
}

// DeregisterArguments - uid to remove
type DeregisterArguments struct {
	Authority
	Netuid uint16 `json:"netuid"`
	Uid    uint16 `json:"uid"`
}

// Deregister - remove one neuron from a subnetwork
func (a *Admin) Deregister(arguments *DeregisterArguments, reply *Reply) error {
	err := a.authorise(arguments.Authority, MethodDeregister, arguments.Netuid, arguments.Uid)
	if nil != err {
		return err
	}
	return a.done(MethodDeregister, a.Backend.Deregister(arguments.Netuid, arguments.Uid))
}

// MintArguments - new funds for a coldkey
type MintArguments struct {
	Authority
	Coldkey account.Key `json:"coldkey"`
	Amount  uint64      `json:"amount,string"`
}

// Mint - credit new funds to a coldkey and raise total issuance
func (a *Admin) Mint(arguments *MintArguments, reply *Reply) error {
	err := a.authorise(arguments.Authority, MethodMint, arguments.Coldkey, arguments.Amount)
	if nil != err {
		return err
	}
	return a.done(MethodMint, a.Backend.Mint(arguments.Coldkey, arguments.Amount))
}
