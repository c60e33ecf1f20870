// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/paratensord/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidIpType = fault.InvalidError("ip type must be 4 or 6")
	ErrMissingKey    = fault.InvalidError("signing key is required: use --key or " + keyEnvironment)
)
