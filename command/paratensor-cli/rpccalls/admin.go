// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/hyperparameter"
	"github.com/bitmark-inc/paratensord/rpc/admin"
	"github.com/bitmark-inc/paratensord/rpc/signed"
)

func (client *Client) authority(signer *account.PrivateKey, method string, fields ...interface{}) (admin.Authority, error) {
	height, err := client.height()
	if nil != err {
		return admin.Authority{}, err
	}
	return admin.Authority{
		Signer:    signer.Key(),
		Height:    height,
		Signature: signed.Sign(signer, method, height, fields...),
	}, nil
}

// Mint - credit new funds to a coldkey balance
func (client *Client) Mint(signer *account.PrivateKey, coldkey account.Key, amount uint64) error {
	a, err := client.authority(signer, admin.MethodMint, coldkey, amount)
	if nil != err {
		return err
	}
	arguments := admin.MintArguments{
		Authority: a,
		Coldkey:   coldkey,
		Amount:    amount,
	}
	return client.call(admin.MethodMint, arguments, &admin.Reply{})
}

// SetTempo - change the epoch period of a subnetwork
func (client *Client) SetTempo(signer *account.PrivateKey, netuid uint16, tempo uint16) error {
	a, err := client.authority(signer, admin.MethodSetTempo, netuid, tempo)
	if nil != err {
		return err
	}
	arguments := admin.SetTempoArguments{
		Authority: a,
		Netuid:    netuid,
		Tempo:     tempo,
	}
	return client.call(admin.MethodSetTempo, arguments, &admin.Reply{})
}

// SetEmissionRatio - change the share of block emission of a subnetwork
func (client *Client) SetEmissionRatio(signer *account.PrivateKey, netuid uint16, ratio uint16) error {
	a, err := client.authority(signer, admin.MethodSetEmissionRatio, netuid, ratio)
	if nil != err {
		return err
	}
	arguments := admin.SetEmissionRatioArguments{
		Authority: a,
		Netuid:    netuid,
		Ratio:     ratio,
	}
	return client.call(admin.MethodSetEmissionRatio, arguments, &admin.Reply{})
}

// SetBlocksPerStep - change the global tempo multiplier
func (client *Client) SetBlocksPerStep(signer *account.PrivateKey, blocksPerStep uint64) error {
	a, err := client.authority(signer, admin.MethodSetBlocksPerStep, blocksPerStep)
	if nil != err {
		return err
	}
	arguments := admin.SetBlocksPerStepArguments{
		Authority:     a,
		BlocksPerStep: blocksPerStep,
	}
	return client.call(admin.MethodSetBlocksPerStep, arguments, &admin.Reply{})
}

// SetHyperparameters - replace all parameters of a subnetwork
func (client *Client) SetHyperparameters(signer *account.PrivateKey, netuid uint16, params hyperparameter.Params) error {
	a, err := client.authority(signer, admin.MethodSetHyperparameter, netuid, params.Pack())
	if nil != err {
		return err
	}
	arguments := admin.SetHyperparametersArguments{
		Authority: a,
		Netuid:    netuid,
		Params:    params,
	}
	return client.call(admin.MethodSetHyperparameter, arguments, &admin.Reply{})
}

// CreateSubnetwork - add an empty subnetwork
func (client *Client) CreateSubnetwork(signer *account.PrivateKey, netuid uint16, params hyperparameter.Params, emissionRatio uint16) error {
	a, err := client.authority(signer, admin.MethodCreateSubnetwork, netuid, params.Pack(), emissionRatio)
	if nil != err {
		return err
	}
	arguments := admin.CreateSubnetworkArguments{
		Authority:     a,
		Netuid:        netuid,
		Params:        params,
		EmissionRatio: emissionRatio,
	}
	return client.call(admin.MethodCreateSubnetwork, arguments, &admin.Reply{})
}

// RemoveSubnetwork - delete a subnetwork and its registrations
func (client *Client) RemoveSubnetwork(signer *account.PrivateKey, netuid uint16) error {
	a, err := client.authority(signer, admin.MethodRemoveSubnetwork, netuid)
	if nil != err {
		return err
	}
	arguments := admin.RemoveSubnetworkArguments{
		Authority: a,
		Netuid:    netuid,
	}
	return client.call(admin.MethodRemoveSubnetwork, arguments, &admin.Reply{})
}

// Deregister - free a uid slot
func (client *Client) Deregister(signer *account.PrivateKey, netuid uint16, uid uint16) error {
	a, err := client.authority(signer, admin.MethodDeregister, netuid, uid)
	if nil != err {
		return err
	}
	arguments := admin.DeregisterArguments{
		Authority: a,
		Netuid:    netuid,
		Uid:       uid,
	}
	return client.call(admin.MethodDeregister, arguments, &admin.Reply{})
}
