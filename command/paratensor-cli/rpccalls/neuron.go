// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/proof"
	"github.com/bitmark-inc/paratensord/registry"
	"github.com/bitmark-inc/paratensord/rpc/neuron"
	"github.com/bitmark-inc/paratensord/rpc/signed"
)

// RegisterData - registration of the signing hotkey
type RegisterData struct {
	Netuid  uint16
	Coldkey account.Key
}

// Register - solve the registration work then submit it
//
// the proof is dated at the current height and must be accepted
// within a few blocks
func (client *Client) Register(hotkey *account.PrivateKey, data *RegisterData, shutdown <-chan struct{}) (*neuron.RegisterReply, error) {

	graph, err := client.GetMetagraph(data.Netuid)
	if nil != err {
		return nil, err
	}

	height, err := client.height()
	if nil != err {
		return nil, err
	}

	nonce, work, ok := proof.Solve(height, hotkey.Key(), graph.Params.Difficulty, 0, shutdown)
	if !ok {
		return nil, ErrInterrupted
	}

	arguments := neuron.RegisterArguments{
		Netuid:  data.Netuid,
		Hotkey:  hotkey.Key(),
		Coldkey: data.Coldkey,
		Proof: registry.Proof{
			BlockNumber: height,
			Nonce:       nonce,
			Work:        work,
		},
		Height: height,
	}
	arguments.Signature = signed.Sign(hotkey, neuron.MethodRegister, height,
		arguments.Netuid, arguments.Coldkey, arguments.Proof.BlockNumber, arguments.Proof.Nonce, arguments.Proof.Work)

	var reply neuron.RegisterReply
	err = client.call(neuron.MethodRegister, arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// WeightsData - a weight row to set
type WeightsData struct {
	Netuid uint16
	Uids   []uint16
	Values []uint16
}

// SetWeights - replace the weight row of the signing hotkey
func (client *Client) SetWeights(hotkey *account.PrivateKey, data *WeightsData) error {
	height, err := client.height()
	if nil != err {
		return err
	}

	arguments := neuron.SetWeightsArguments{
		Netuid: data.Netuid,
		Hotkey: hotkey.Key(),
		Uids:   data.Uids,
		Values: data.Values,
		Height: height,
	}
	arguments.Signature = signed.Sign(hotkey, neuron.MethodSetWeights, height,
		arguments.Netuid, arguments.Uids, arguments.Values)

	var reply neuron.SetWeightsReply
	return client.call(neuron.MethodSetWeights, arguments, &reply)
}

// AxonData - endpoint metadata to publish
type AxonData struct {
	Version  uint32
	IP       string
	Port     uint16
	IPType   uint8
	Modality uint8
}

// ServeAxon - publish the endpoint of the signing hotkey
func (client *Client) ServeAxon(hotkey *account.PrivateKey, data *AxonData) error {
	height, err := client.height()
	if nil != err {
		return err
	}

	arguments := neuron.ServeAxonArguments{
		Hotkey:   hotkey.Key(),
		Version:  data.Version,
		IP:       data.IP,
		Port:     data.Port,
		IPType:   data.IPType,
		Modality: data.Modality,
		Height:   height,
	}
	arguments.Signature = signed.Sign(hotkey, neuron.MethodServeAxon, height,
		arguments.Version, arguments.IP, arguments.Port, arguments.IPType, arguments.Modality)

	var reply neuron.ServeAxonReply
	return client.call(neuron.MethodServeAxon, arguments, &reply)
}
