// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/rpc/metagraph"
)

// GetMetagraph - full view of one subnetwork
func (client *Client) GetMetagraph(netuid uint16) (*metagraph.GetReply, error) {
	var reply metagraph.GetReply
	err := client.call("Metagraph.Get", metagraph.GetArguments{Netuid: netuid}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetVector - one named per-uid vector
func (client *Client) GetVector(netuid uint16, name string) (*metagraph.VectorReply, error) {
	var reply metagraph.VectorReply
	err := client.call("Metagraph.Vector", metagraph.VectorArguments{Netuid: netuid, Name: name}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Lookup - uid of a hotkey
func (client *Client) Lookup(netuid uint16, hotkey account.Key) (uint16, error) {
	var reply metagraph.LookupReply
	err := client.call("Metagraph.Lookup", metagraph.LookupArguments{Netuid: netuid, Hotkey: hotkey}, &reply)
	return reply.Uid, err
}
