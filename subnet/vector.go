// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subnet

import (
	"encoding/binary"

	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/storage"
)

// a persisted per-uid vector
type vector struct {
	id   byte
	name string
	// element width in bytes: 1 (bool), 2 (u16) or 8 (u64)
	width int
	u16   func(*State) *[]uint16
	u64   func(*State) *[]uint64
	flag  func(*State) *[]bool
}

var vectors = []vector{
	{id: 'a', name: "active", width: 1, flag: func(s *State) *[]bool { return &s.Active }},
	{id: 'r', name: "rank", width: 2, u16: func(s *State) *[]uint16 { return &s.Rank }},
	{id: 't', name: "trust", width: 2, u16: func(s *State) *[]uint16 { return &s.Trust }},
	{id: 'c', name: "consensus", width: 2, u16: func(s *State) *[]uint16 { return &s.Consensus }},
	{id: 'i', name: "incentive", width: 2, u16: func(s *State) *[]uint16 { return &s.Incentive }},
	{id: 'd', name: "dividends", width: 2, u16: func(s *State) *[]uint16 { return &s.Dividends }},
	{id: 'e', name: "emission", width: 8, u64: func(s *State) *[]uint64 { return &s.Emission }},
}

// VectorNames - names accepted by ReadVector
func VectorNames() []string {
	names := make([]string, 0, len(vectors)+1)
	for _, v := range vectors {
		names = append(names, v.name)
	}
	return append(names, "stake")
}

func vectorKey(netuid uint16, id byte) []byte {
	return storage.NetuidSuffixKey(netuid, []byte{id})
}

func (v vector) encode(s *State) []byte {
	buffer := make([]byte, v.width*s.N)
	switch v.width {
	case 1:
		for i, f := range *v.flag(s) {
			if f {
				buffer[i] = 1
			}
		}
	case 2:
		for i, u := range *v.u16(s) {
			binary.BigEndian.PutUint16(buffer[2*i:], u)
		}
	case 8:
		for i, u := range *v.u64(s) {
			binary.BigEndian.PutUint64(buffer[8*i:], u)
		}
	}
	return buffer
}

func (v vector) decode(s *State, buffer []byte) error {
	if len(buffer) != v.width*s.N {
		return fault.VectorLengthMismatch
	}
	switch v.width {
	case 1:
		f := make([]bool, s.N)
		for i := range f {
			f[i] = 0 != buffer[i]
		}
		*v.flag(s) = f
	case 2:
		u := make([]uint16, s.N)
		for i := range u {
			u[i] = binary.BigEndian.Uint16(buffer[2*i:])
		}
		*v.u16(s) = u
	case 8:
		u := make([]uint64, s.N)
		for i := range u {
			u[i] = binary.BigEndian.Uint64(buffer[8*i:])
		}
		*v.u64(s) = u
	}
	return nil
}

// ReadVector - one committed vector of a subnetwork without loading
// the rest of its state
func ReadVector(netuid uint16, name string) ([]uint64, error) {
	key := storage.NetuidKey(netuid)
	if !storage.Pool.Subnets.Has(key) {
		return nil, fault.SubnetworkNotFound
	}
	count, _ := storage.Pool.SubnetN.GetN(key)
	n := int(count)

	if "stake" == name {
		result := make([]uint64, n)
		for uid := 0; uid < n; uid += 1 {
			hotkey := storage.Pool.Keys.Get(storage.UidKey(netuid, uint16(uid)))
			if nil == hotkey {
				return nil, fault.InconsistentRowLength
			}
			result[uid], _ = storage.Pool.Stake.GetN(hotkey)
		}
		return result, nil
	}

	for _, v := range vectors {
		if v.name != name {
			continue
		}
		buffer := storage.Pool.Vectors.Get(vectorKey(netuid, v.id))
		if len(buffer) != v.width*n {
			return nil, fault.VectorLengthMismatch
		}
		result := make([]uint64, n)
		for i := range result {
			switch v.width {
			case 1:
				result[i] = uint64(buffer[i])
			case 2:
				result[i] = uint64(binary.BigEndian.Uint16(buffer[2*i:]))
			case 8:
				result[i] = binary.BigEndian.Uint64(buffer[8*i:])
			}
		}
		return result, nil
	}
	return nil, fault.InvalidVectorName
}
