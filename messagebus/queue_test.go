// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/paratensord/messagebus"
)

// drain - everything currently buffered in a listener
func drain(queue <-chan messagebus.Message) []string {
	commands := []string{}
	for {
		select {
		case m := <-queue:
			commands = append(commands, m.Command)
		default:
			return commands
		}
	}
}

func TestBroadcastFanOut(t *testing.T) {
	defer messagebus.Bus.Events.Release()

	// no listeners yet
	messagebus.Bus.Events.Send("block")

	early := messagebus.Bus.Events.Chan(10)
	messagebus.Bus.Events.Send("stake-added", []byte(`{"amount":1}`))

	late := messagebus.Bus.Events.Chan(10)
	messagebus.Bus.Events.Send("weights-set")
	messagebus.Bus.Events.Send("epoch-completed")

	assert.Equal(t, []string{"stake-added", "weights-set", "epoch-completed"}, drain(early), "wrong early listener")
	assert.Equal(t, []string{"weights-set", "epoch-completed"}, drain(late), "wrong late listener")
}

func TestBroadcastParameters(t *testing.T) {
	defer messagebus.Bus.Events.Release()

	queue := messagebus.Bus.Events.Chan(-1)
	messagebus.Bus.Events.Send("axon-served", []byte("a"), []byte("b"))

	m := <-queue
	require.Equal(t, 2, len(m.Parameters), "wrong parameter count")
	assert.Equal(t, "a", string(m.Parameters[0]), "wrong first parameter")
	assert.Equal(t, "b", string(m.Parameters[1]), "wrong second parameter")
}

func TestBroadcastFullListenerDoesNotBlock(t *testing.T) {
	defer messagebus.Bus.Events.Release()

	full := messagebus.Bus.Events.Chan(1)
	roomy := messagebus.Bus.Events.Chan(3)

	for _, c := range []string{"minted", "tempo-set", "subnetwork-created"} {
		messagebus.Bus.Events.Send(c)
	}

	assert.Equal(t, []string{"minted"}, drain(full), "wrong full listener")
	assert.Equal(t, []string{"minted", "tempo-set", "subnetwork-created"}, drain(roomy), "slow listener held back another")
}

func TestRelease(t *testing.T) {
	queue := messagebus.Bus.Events.Chan(1)
	messagebus.Bus.Events.Release()

	messagebus.Bus.Events.Send("block")
	assert.Equal(t, []string{}, drain(queue), "released listener still receives")
}

func TestSendItem(t *testing.T) {
	defer messagebus.Bus.Events.Release()

	queue := messagebus.Bus.Events.Chan(1)

	err := messagebus.Bus.Events.SendItem("tempo-set", struct {
		Netuid uint16 `json:"netuid"`
		Tempo  uint16 `json:"tempo"`
	}{Netuid: 3, Tempo: 100})
	assert.Nil(t, err, "wrong SendItem")

	received := <-queue
	assert.Equal(t, "tempo-set", received.Command, "wrong command")
	assert.Equal(t, `{"netuid":3,"tempo":100}`, string(received.Parameters[0]), "wrong payload")

	assert.NotNil(t, messagebus.Bus.Events.SendItem("bad", make(chan int)), "unencodable item sent")
}
