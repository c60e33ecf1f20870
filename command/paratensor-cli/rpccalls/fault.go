// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/paratensord/fault"
)

// ErrInterrupted - proof search stopped before a solution
const ErrInterrupted = fault.ProcessError("proof search interrupted")
