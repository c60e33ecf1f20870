// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subnet

import (
	"encoding/binary"
	"sort"

	"github.com/bitmark-inc/paratensord/fault"
)

// Entry - one edge of a weight or bond row
type Entry struct {
	Uid   uint16 `json:"uid"`
	Value uint16 `json:"value"`
}

// Row - outgoing edges of one uid in ascending uid order
type Row []Entry

const entryLength = 4

// PackRow - uid ++ value for each entry
func PackRow(row Row) []byte {
	buffer := make([]byte, entryLength*len(row))
	for i, e := range row {
		binary.BigEndian.PutUint16(buffer[entryLength*i:], e.Uid)
		binary.BigEndian.PutUint16(buffer[entryLength*i+2:], e.Value)
	}
	return buffer
}

// UnpackRow - decode a row made by PackRow, nil gives an empty row
func UnpackRow(buffer []byte) (Row, error) {
	if 0 != len(buffer)%entryLength {
		return nil, fault.TruncatedRecord
	}
	row := make(Row, len(buffer)/entryLength)
	for i := range row {
		row[i].Uid = binary.BigEndian.Uint16(buffer[entryLength*i:])
		row[i].Value = binary.BigEndian.Uint16(buffer[entryLength*i+2:])
	}
	return row, nil
}

// Get - value for a target uid, zero if absent
func (row Row) Get(uid uint16) uint16 {
	i := sort.Search(len(row), func(i int) bool { return row[i].Uid >= uid })
	if i < len(row) && row[i].Uid == uid {
		return row[i].Value
	}
	return 0
}

// Sort - restore ascending uid order
func (row Row) Sort() {
	sort.Slice(row, func(i, j int) bool { return row[i].Uid < row[j].Uid })
}

// Without - copy of the row with any entry for uid removed
func (row Row) Without(uid uint16) Row {
	result := make(Row, 0, len(row))
	for _, e := range row {
		if e.Uid != uid {
			result = append(result, e)
		}
	}
	return result
}

// Remap - copy of the row with an entry for from renamed to to
//
// any existing entry for to must already have been removed
func (row Row) Remap(from uint16, to uint16) Row {
	result := make(Row, len(row))
	copy(result, row)
	for i := range result {
		if result[i].Uid == from {
			result[i].Uid = to
		}
	}
	result.Sort()
	return result
}

// check - targets below n, strictly ascending
func (row Row) check(n int) error {
	for i, e := range row {
		if int(e.Uid) >= n {
			return fault.DanglingUid
		}
		if i > 0 && row[i-1].Uid >= e.Uid {
			return fault.UnorderedRow
		}
	}
	return nil
}
