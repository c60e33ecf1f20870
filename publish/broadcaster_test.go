// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/paratensord/background"
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/fixtures"
	"github.com/bitmark-inc/paratensord/messagebus"
)

type frame struct {
	data  string
	flags zmq.Flag
}

type recorder struct {
	frames []frame
	fail   bool
}

func (r *recorder) Send(data string, flags zmq.Flag) (int, error) {
	return r.SendBytes([]byte(data), flags)
}

func (r *recorder) SendBytes(data []byte, flags zmq.Flag) (int, error) {
	if r.fail {
		return 0, fault.RateLimiting
	}
	r.frames = append(r.frames, frame{data: string(data), flags: flags})
	return len(data), nil
}

func TestProcess(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	brdc := broadcaster{
		log:   logger.New(fixtures.LogCategory),
		chain: "local",
	}

	r := &recorder{}
	brdc.process(r, &messagebus.Message{
		Command:    "stake-added",
		Parameters: [][]byte{[]byte(`{"amount":5}`)},
	})

	assert.Equal(t, []frame{
		{data: "local", flags: zmq.SNDMORE | zmq.DONTWAIT},
		{data: "stake-added", flags: zmq.SNDMORE | zmq.DONTWAIT},
		{data: `{"amount":5}`, flags: zmq.DONTWAIT},
	}, r.frames, "wrong frames")

	r = &recorder{}
	brdc.process(r, &messagebus.Message{Command: "bare"})
	assert.Equal(t, []frame{
		{data: "local", flags: zmq.SNDMORE | zmq.DONTWAIT},
		{data: "bare", flags: zmq.DONTWAIT},
	}, r.frames, "wrong frames without parameters")

	r = &recorder{fail: true}
	brdc.process(r, &messagebus.Message{Command: "dropped"})
	assert.Equal(t, 0, len(r.frames), "frames sent after failure")
}

func TestRunStops(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	defer messagebus.Bus.Events.Release()

	brdc := &broadcaster{
		log:   logger.New(fixtures.LogCategory),
		chain: "local",
		queue: messagebus.Bus.Events.Chan(10),
	}

	p := background.Start(background.Processes{brdc}, nil)

	// no sockets bound so events are consumed and discarded
	messagebus.Bus.Events.Send("weights-set", []byte("{}"))
	time.Sleep(10 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcaster did not stop")
	}
}

func TestInitialiseWithoutBroadcast(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := Initialise(&Configuration{}, "local")
	assert.Nil(t, err, "wrong Initialise")
	assert.Equal(t, fault.AlreadyInitialised, Initialise(&Configuration{}, "local"), "wrong second Initialise")
	assert.Nil(t, Finalise(), "wrong Finalise")
	assert.Equal(t, fault.NotInitialised, Finalise(), "wrong second Finalise")
}
