// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"encoding/json"
	"sync"
)

// listener channel size when Chan is given a negative size
const defaultListenerSize = 100

// Message - an event name and its encoded parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BroadcastQueue - fan out to every current listener
//
// Send never blocks: a listener whose channel is full misses the message
type BroadcastQueue struct {
	sync.RWMutex
	listeners []chan Message
}

type busses struct {
	Events *BroadcastQueue // state transition events for publishers
}

// Bus - all available message queues
var Bus = busses{
	Events: &BroadcastQueue{},
}

// Send - deliver a message to all listeners
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.RLock()
	defer queue.RUnlock()

	for _, listener := range queue.listeners {
		select {
		case listener <- m:
		default:
		}
	}
}

// SendItem - deliver a message whose single parameter is the JSON form of item
func (queue *BroadcastQueue) SendItem(command string, item interface{}) error {
	buffer, err := json.Marshal(item)
	if nil != err {
		return err
	}
	queue.Send(command, buffer)
	return nil
}

// Chan - create a new listener channel
//
// size < 0 selects the default size, size == 0 is unbuffered
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size < 0 {
		size = defaultListenerSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Release - drop all listeners
func (queue *BroadcastQueue) Release() {
	queue.Lock()
	queue.listeners = nil
	queue.Unlock()
}
