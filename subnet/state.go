// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package subnet - the per-subnetwork aggregate record and its
// persistence
//
// all per-uid slices of a State have exactly N entries and every
// weight or bond row references only uids below N; Check verifies
// this and Load refuses to return a State that fails it
package subnet

import (
	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/hyperparameter"
)

// State - everything the registry and the epoch need for one subnetwork
type State struct {
	Netuid    uint16
	N         int
	Params    hyperparameter.Params
	LastEpoch uint64

	Hotkeys      []account.Key
	Coldkeys     []account.Key
	Stake        []uint64
	LastUpdate   []uint64
	RegisteredAt []uint64
	Weights      []Row
	Bonds        []Row

	// derived by the epoch
	Active    []bool
	Rank      []uint16
	Trust     []uint16
	Consensus []uint16
	Incentive []uint16
	Dividends []uint16
	Emission  []uint64

	// as loaded, so Save can remove what is gone
	loadedN       int
	loadedHotkeys []account.Key
}

func newState(netuid uint16, n int, params hyperparameter.Params) *State {
	return &State{
		Netuid:       netuid,
		N:            n,
		Params:       params,
		Hotkeys:      make([]account.Key, n),
		Coldkeys:     make([]account.Key, n),
		Stake:        make([]uint64, n),
		LastUpdate:   make([]uint64, n),
		RegisteredAt: make([]uint64, n),
		Weights:      make([]Row, n),
		Bonds:        make([]Row, n),
		Active:       make([]bool, n),
		Rank:         make([]uint16, n),
		Trust:        make([]uint16, n),
		Consensus:    make([]uint16, n),
		Incentive:    make([]uint16, n),
		Dividends:    make([]uint16, n),
		Emission:     make([]uint64, n),
	}
}

// Check - verify the structural invariants
func (s *State) Check() error {
	n := s.N
	if n < 0 || n > 0xffff {
		return fault.InconsistentRowLength
	}
	if len(s.Hotkeys) != n || len(s.Coldkeys) != n || len(s.Stake) != n ||
		len(s.LastUpdate) != n || len(s.RegisteredAt) != n ||
		len(s.Weights) != n || len(s.Bonds) != n {
		return fault.InconsistentRowLength
	}
	if len(s.Active) != n || len(s.Rank) != n || len(s.Trust) != n ||
		len(s.Consensus) != n || len(s.Incentive) != n ||
		len(s.Dividends) != n || len(s.Emission) != n {
		return fault.VectorLengthMismatch
	}
	for uid := 0; uid < n; uid += 1 {
		if err := s.Weights[uid].check(n); nil != err {
			return err
		}
		if err := s.Bonds[uid].check(n); nil != err {
			return err
		}
	}
	return nil
}

// Lookup - uid of a hotkey
func (s *State) Lookup(hotkey account.Key) (uint16, bool) {
	for uid, k := range s.Hotkeys {
		if k == hotkey {
			return uint16(uid), true
		}
	}
	return 0, false
}

// Append - bind a new uid N to a credential pair
func (s *State) Append(hotkey account.Key, coldkey account.Key, stake uint64, height uint64) uint16 {
	uid := uint16(s.N)
	s.N += 1
	s.Hotkeys = append(s.Hotkeys, hotkey)
	s.Coldkeys = append(s.Coldkeys, coldkey)
	s.Stake = append(s.Stake, stake)
	s.LastUpdate = append(s.LastUpdate, height)
	s.RegisteredAt = append(s.RegisteredAt, height)
	s.Weights = append(s.Weights, Row{})
	s.Bonds = append(s.Bonds, Row{})
	s.Active = append(s.Active, true)
	s.Rank = append(s.Rank, 0)
	s.Trust = append(s.Trust, 0)
	s.Consensus = append(s.Consensus, 0)
	s.Incentive = append(s.Incentive, 0)
	s.Dividends = append(s.Dividends, 0)
	s.Emission = append(s.Emission, 0)
	return uid
}

// Replace - rebind an occupied uid to a new credential pair
//
// the slot starts fresh: empty rows, zero scores and no incoming edges
func (s *State) Replace(uid uint16, hotkey account.Key, coldkey account.Key, stake uint64, height uint64) {
	s.purge(uid)
	s.Hotkeys[uid] = hotkey
	s.Coldkeys[uid] = coldkey
	s.Stake[uid] = stake
	s.LastUpdate[uid] = height
	s.RegisteredAt[uid] = height
	s.Weights[uid] = Row{}
	s.Bonds[uid] = Row{}
	s.Active[uid] = true
	s.Rank[uid] = 0
	s.Trust[uid] = 0
	s.Consensus[uid] = 0
	s.Incentive[uid] = 0
	s.Dividends[uid] = 0
	s.Emission[uid] = 0
}

// Remove - free a uid by moving the last uid into its slot
//
// returns the uid that moved, equal to uid when it was the last
func (s *State) Remove(uid uint16) uint16 {
	last := uint16(s.N - 1)
	s.purge(uid)

	if uid != last {
		s.Hotkeys[uid] = s.Hotkeys[last]
		s.Coldkeys[uid] = s.Coldkeys[last]
		s.Stake[uid] = s.Stake[last]
		s.LastUpdate[uid] = s.LastUpdate[last]
		s.RegisteredAt[uid] = s.RegisteredAt[last]
		s.Weights[uid] = s.Weights[last]
		s.Bonds[uid] = s.Bonds[last]
		s.Active[uid] = s.Active[last]
		s.Rank[uid] = s.Rank[last]
		s.Trust[uid] = s.Trust[last]
		s.Consensus[uid] = s.Consensus[last]
		s.Incentive[uid] = s.Incentive[last]
		s.Dividends[uid] = s.Dividends[last]
		s.Emission[uid] = s.Emission[last]

		for i := 0; i < s.N; i += 1 {
			s.Weights[i] = s.Weights[i].Remap(last, uid)
			s.Bonds[i] = s.Bonds[i].Remap(last, uid)
		}
	}

	n := s.N - 1
	s.N = n
	s.Hotkeys = s.Hotkeys[:n]
	s.Coldkeys = s.Coldkeys[:n]
	s.Stake = s.Stake[:n]
	s.LastUpdate = s.LastUpdate[:n]
	s.RegisteredAt = s.RegisteredAt[:n]
	s.Weights = s.Weights[:n]
	s.Bonds = s.Bonds[:n]
	s.Active = s.Active[:n]
	s.Rank = s.Rank[:n]
	s.Trust = s.Trust[:n]
	s.Consensus = s.Consensus[:n]
	s.Incentive = s.Incentive[:n]
	s.Dividends = s.Dividends[:n]
	s.Emission = s.Emission[:n]

	return last
}

// drop every edge pointing at uid
func (s *State) purge(uid uint16) {
	for i := 0; i < s.N; i += 1 {
		s.Weights[i] = s.Weights[i].Without(uid)
		s.Bonds[i] = s.Bonds[i].Without(uid)
	}
}
