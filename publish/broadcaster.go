// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/paratensord/messagebus"
	"github.com/bitmark-inc/paratensord/util"
	"github.com/bitmark-inc/paratensord/zmqutil"
)

const (
	broadcasterZapDomain = "broadcaster"
	queueSize            = 1000
)

// sender - the part of a socket used by the broadcaster
type sender interface {
	SendBytes(data []byte, flags zmq.Flag) (int, error)
}

// broadcaster - relays the event bus to PUB sockets
type broadcaster struct {
	log     *logger.L
	chain   string
	queue   <-chan messagebus.Message
	sockets []*zmq.Socket
}

func newBroadcaster(log *logger.L, chain string, keys zmqutil.Keys, broadcast []string) (*broadcaster, error) {

	listen, err := util.NewConnections(broadcast)
	if nil != err {
		log.Errorf("broadcast address error: %s", err)
		return nil, err
	}

	sockets, err := zmqutil.Bind(log, zmq.PUB, broadcasterZapDomain, keys, listen)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return nil, err
	}

	return &broadcaster{
		log:     log,
		chain:   chain,
		sockets: sockets,

		// subscribe now so events raised before Run are kept
		queue: messagebus.Bus.Events.Chan(queueSize),
	}, nil
}

// Run - forward events until shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	brdc.log.Info("starting…")

	defer func() {
		for _, socket := range brdc.sockets {
			socket.Close()
		}
		brdc.log.Info("stopped")
	}()

	for {
		select {
		case <-shutdown:
			return
		case item := <-brdc.queue:
			brdc.log.Debugf("event: %s  sockets: %d", item.Command, len(brdc.sockets))
			for _, socket := range brdc.sockets {
				brdc.process(socket, &item)
			}
		}
	}
}

// frames: chain, command, then each parameter; only the last frame
// drops SNDMORE
//
// a full send queue drops the message rather than blocking the node
func (brdc *broadcaster) process(socket sender, item *messagebus.Message) {

	frames := make([][]byte, 0, 2+len(item.Parameters))
	frames = append(frames, []byte(brdc.chain), []byte(item.Command))
	frames = append(frames, item.Parameters...)

	last := len(frames) - 1
	for i, f := range frames {
		flags := zmq.DONTWAIT
		if i != last {
			flags |= zmq.SNDMORE
		}
		if _, err := socket.SendBytes(f, flags); nil != err {
			brdc.log.Warnf("event: %s  frame[%d] error: %s", item.Command, i, err)
			return
		}
	}
}
