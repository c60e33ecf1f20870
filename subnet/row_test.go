// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subnet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/paratensord/fault"
)

func TestRowPacking(t *testing.T) {
	row := Row{{Uid: 1, Value: 0x1234}, {Uid: 7, Value: 0xffff}}
	buffer := PackRow(row)
	assert.Equal(t, []byte{0x00, 0x01, 0x12, 0x34, 0x00, 0x07, 0xff, 0xff}, buffer, "wrong packing")

	unpacked, err := UnpackRow(buffer)
	assert.Nil(t, err, "wrong UnpackRow")
	assert.Equal(t, row, unpacked, "wrong row")

	empty, err := UnpackRow(nil)
	assert.Nil(t, err, "wrong UnpackRow of nil")
	assert.Equal(t, 0, len(empty), "nil is not an empty row")

	_, err = UnpackRow(buffer[:5])
	assert.Equal(t, fault.TruncatedRecord, err, "wrong error for truncated row")
}

func TestRowEdits(t *testing.T) {
	row := Row{{Uid: 0, Value: 10}, {Uid: 2, Value: 20}, {Uid: 5, Value: 50}}

	assert.Equal(t, uint16(20), row.Get(2), "wrong Get")
	assert.Equal(t, uint16(0), row.Get(3), "absent entry not zero")

	assert.Equal(t, Row{{Uid: 0, Value: 10}, {Uid: 5, Value: 50}}, row.Without(2), "wrong Without")
	assert.Equal(t, Row{{Uid: 0, Value: 10}, {Uid: 1, Value: 50}, {Uid: 2, Value: 20}}, row.Remap(5, 1), "wrong Remap")

	// originals untouched
	assert.Equal(t, uint16(50), row.Get(5), "Remap modified the original")
}

func TestRowCheck(t *testing.T) {
	assert.Nil(t, Row{{Uid: 0}, {Uid: 2}}.check(3), "valid row rejected")
	assert.Equal(t, fault.DanglingUid, Row{{Uid: 3}}.check(3), "out of range uid accepted")
	assert.Equal(t, fault.UnorderedRow, Row{{Uid: 2}, {Uid: 1}}.check(3), "unordered row accepted")
	assert.Equal(t, fault.UnorderedRow, Row{{Uid: 1}, {Uid: 1}}.check(3), "duplicate uid accepted")
}
