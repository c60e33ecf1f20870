// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/balance"
	"github.com/bitmark-inc/paratensord/hyperparameter"
	"github.com/bitmark-inc/paratensord/registry"
	"github.com/bitmark-inc/paratensord/rpc/admin"
	"github.com/bitmark-inc/paratensord/rpc/neuron"
	"github.com/bitmark-inc/paratensord/rpc/stakes"
	"github.com/bitmark-inc/paratensord/stake"
	"github.com/bitmark-inc/paratensord/weights"
)

// routes service requests to the state packages
type backend struct {
	height func() uint64
}

var (
	_ neuron.Backend = &backend{}
	_ stakes.Backend = &backend{}
	_ admin.Backend  = &backend{}
)

func (b *backend) Height() uint64 {
	return b.height()
}

func (b *backend) Register(netuid uint16, height uint64, hotkey account.Key, coldkey account.Key, proof registry.Proof) (uint16, error) {
	return registry.Register(netuid, height, hotkey, coldkey, proof)
}

func (b *backend) SetWeights(netuid uint16, hotkey account.Key, uids []uint16, values []uint16, height uint64) error {
	return weights.SetWeights(netuid, hotkey, uids, values, height)
}

func (b *backend) ServeAxon(hotkey account.Key, version uint32, ip string, port uint16, ipType uint8, modality uint8, height uint64) error {
	return weights.ServeAxon(hotkey, version, ip, port, ipType, modality, height)
}

func (b *backend) AddStake(coldkey account.Key, hotkey account.Key, amount uint64) error {
	return stake.Add(coldkey, hotkey, amount)
}

func (b *backend) RemoveStake(coldkey account.Key, hotkey account.Key, amount uint64) error {
	return stake.Remove(coldkey, hotkey, amount)
}

func (b *backend) Stake(hotkey account.Key) uint64 {
	return stake.Get(hotkey)
}

func (b *backend) Balance(coldkey account.Key) uint64 {
	return balance.Get(coldkey)
}

func (b *backend) Hotkeys(coldkey account.Key) []account.Key {
	return registry.Hotkeys(coldkey)
}

func (b *backend) SetTempo(netuid uint16, tempo uint16) error {
	return hyperparameter.SetTempo(netuid, tempo)
}

func (b *backend) SetEmissionRatio(netuid uint16, ratio uint16) error {
	return hyperparameter.SetEmissionRatio(netuid, ratio)
}

func (b *backend) SetBlocksPerStep(blocksPerStep uint64) error {
	return hyperparameter.SetBlocksPerStep(blocksPerStep)
}

func (b *backend) SetHyperparameters(netuid uint16, params hyperparameter.Params) error {
	return hyperparameter.Set(netuid, params)
}

func (b *backend) CreateSubnetwork(netuid uint16, params hyperparameter.Params, emissionRatio uint16, height uint64) error {
	return registry.CreateSubnetwork(netuid, params, emissionRatio, height)
}

func (b *backend) RemoveSubnetwork(netuid uint16) error {
	return registry.RemoveSubnetwork(netuid)
}

func (b *backend) Deregister(netuid uint16, uid uint16) error {
	return registry.Deregister(netuid, uid)
}

func (b *backend) Mint(coldkey account.Key, amount uint64) error {
	return stake.Mint(coldkey, amount)
}
