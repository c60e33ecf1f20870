// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/paratensord/counter"
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/fixtures"
	"github.com/bitmark-inc/paratensord/rpc/admin"
	"github.com/bitmark-inc/paratensord/rpc/metagraph"
	"github.com/bitmark-inc/paratensord/rpc/neuron"
	"github.com/bitmark-inc/paratensord/rpc/node"
	"github.com/bitmark-inc/paratensord/rpc/server"
	"github.com/bitmark-inc/paratensord/rpc/signed"
	"github.com/bitmark-inc/paratensord/rpc/stakes"
)

var address string

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	tmp := fixtures.SetupTestStorage()

	c := counter.Counter(0)
	s := server.Create(
		logger.New(fixtures.LogCategory),
		"1.0",
		"testing",
		func() uint64 { return 100 },
		&c,
		admin.NewKeySet(nil),
	)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if nil != err {
		panic(err)
	}
	address = l.Addr().String()

	go func() {
		for {
			conn, err := l.Accept()
			if nil != err {
				return
			}
			go s.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	rc := m.Run()

	_ = l.Close()
	fixtures.TeardownTestStorage(tmp)
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func dial(t *testing.T) *rpc.Client {
	conn, err := net.Dial("tcp", address)
	require.Nil(t, err, "wrong Dial")
	return jsonrpc.NewClient(conn)
}

// each call fails or succeeds in a way specific to the service it
// reaches, showing the method is registered under the expected name

func TestNodeInfo(t *testing.T) {
	client := dial(t)
	defer client.Close()

	var reply node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, "testing", reply.Chain, "wrong chain")
	assert.Equal(t, uint64(100), reply.Height, "wrong height")
}

func TestMetagraphGet(t *testing.T) {
	client := dial(t)
	defer client.Close()

	var reply metagraph.GetReply
	err := client.Call("Metagraph.Get", &metagraph.GetArguments{Netuid: 9}, &reply)
	require.NotNil(t, err, "wrong Metagraph.Get")
	assert.Equal(t, fault.SubnetworkNotFound.Error(), err.Error(), "wrong reply")
}

func TestNeuronRegister(t *testing.T) {
	client := dial(t)
	defer client.Close()

	privateKey, hotkey := fixtures.KeyPair()
	arg := neuron.RegisterArguments{
		Netuid:  1,
		Hotkey:  hotkey,
		Coldkey: hotkey,
		Height:  10,
	}
	arg.Signature = signed.Sign(privateKey, neuron.MethodRegister, arg.Height, arg.Netuid, hotkey, uint64(0), uint64(0), []byte(nil))

	var reply neuron.RegisterReply
	err := client.Call("Neuron.Register", &arg, &reply)
	require.NotNil(t, err, "wrong Neuron.Register")
	assert.Equal(t, fault.InvalidBlockNumber.Error(), err.Error(), "wrong reply")
}

func TestStakeAdd(t *testing.T) {
	client := dial(t)
	defer client.Close()

	arg := stakes.TransferArguments{
		Coldkey: fixtures.Key(),
		Hotkey:  fixtures.Key(),
		Height:  100,
	}

	var reply stakes.TransferReply
	err := client.Call("Stake.Add", &arg, &reply)
	require.NotNil(t, err, "wrong Stake.Add")
	assert.Equal(t, fault.ZeroAmount.Error(), err.Error(), "wrong reply")
}

func TestStakeAccount(t *testing.T) {
	client := dial(t)
	defer client.Close()

	var reply stakes.AccountReply
	err := client.Call("Stake.Account", &stakes.AccountArguments{Coldkey: fixtures.Key()}, &reply)
	assert.Nil(t, err, "wrong Stake.Account")
	assert.Equal(t, uint64(0), reply.Balance, "wrong balance")
	assert.Equal(t, 0, len(reply.Hotkeys), "wrong hotkeys")
}

func TestAdminMint(t *testing.T) {
	client := dial(t)
	defer client.Close()

	privateKey, key := fixtures.KeyPair()
	arg := admin.MintArguments{
		Authority: admin.Authority{
			Signer:    key,
			Height:    100,
			Signature: signed.Sign(privateKey, admin.MethodMint, 100, key, uint64(5)),
		},
		Coldkey: key,
		Amount:  5,
	}

	var reply admin.Reply
	err := client.Call("Admin.Mint", &arg, &reply)
	require.NotNil(t, err, "wrong Admin.Mint")
	assert.Equal(t, fault.NotAuthorised.Error(), err.Error(), "wrong reply")
}

func TestUnknownService(t *testing.T) {
	client := dial(t)
	defer client.Close()

	var reply struct{}
	err := client.Call("Bitmarks.Create", &struct{}{}, &reply)
	assert.NotNil(t, err, "unknown service answered")
}
