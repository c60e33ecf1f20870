// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - delay or refuse requests beyond a service's rate
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/paratensord/fault"
)

// Limit - a request costing a single token
func Limit(limiter *rate.Limiter) error {
	return LimitN(limiter, 1)
}

// LimitN - a request costing several tokens, e.g. a whole metagraph
//
// the caller sleeps until the tokens are available; a cost that can
// never be met is refused at once
func LimitN(limiter *rate.Limiter, cost int) error {
	if cost <= 0 {
		return fault.InvalidCount
	}

	r := limiter.ReserveN(time.Now(), cost)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
