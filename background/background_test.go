// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/paratensord/background"
)

// ticker counts loop iterations until shutdown, then records the
// argument it was started with
type ticker struct {
	ticks  int64
	seen   interface{}
	exited int32
}

func (tk *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	for {
		select {
		case <-shutdown:
			tk.seen = args
			atomic.StoreInt32(&tk.exited, 1)
			return
		case <-time.After(time.Millisecond):
			atomic.AddInt64(&tk.ticks, 1)
		}
	}
}

func TestStartStop(t *testing.T) {
	processes := []*ticker{{}, {}, {}}

	p := background.Start(background.Processes{processes[0], processes[1], processes[2]}, "epoch")
	time.Sleep(20 * time.Millisecond)

	for i, tk := range processes {
		assert.Equal(t, int32(0), atomic.LoadInt32(&tk.exited), "process[%d] exited early", i)
	}

	p.Stop()

	for i, tk := range processes {
		assert.Equal(t, int32(1), tk.exited, "process[%d] still running", i)
		assert.Equal(t, "epoch", tk.seen, "process[%d] wrong args", i)
		assert.True(t, tk.ticks > 0, "process[%d] never ran", i)
	}

	// closed channels are not closed again
	p.Stop()
}

func TestStopEmpty(t *testing.T) {
	background.Start(nil, nil).Stop()

	var none *background.T
	none.Stop()
}
