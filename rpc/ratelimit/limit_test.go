// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)
	for i := 0; i < 10; i += 1 {
		assert.Nil(t, ratelimit.Limit(limiter), "wrong Limit[%d]", i)
	}

	// a zero burst limiter can never grant a token
	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(rate.NewLimiter(1, 0)), "wrong zero burst")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 100)

	assert.Nil(t, ratelimit.LimitN(limiter, 25), "wrong LimitN")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 0), "zero cost accepted")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, -3), "negative cost accepted")

	// more than the burst can never be reserved
	assert.Equal(t, fault.RateLimiting, ratelimit.LimitN(limiter, 101), "cost above burst accepted")
}
