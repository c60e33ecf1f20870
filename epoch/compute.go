// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package epoch

import (
	"github.com/bitmark-inc/paratensord/fixed"
	"github.com/bitmark-inc/paratensord/hyperparameter"
	"github.com/bitmark-inc/paratensord/subnet"
)

// Inputs - the values an epoch needs beyond the subnetwork itself
type Inputs struct {
	Height         uint64 // current block
	Elapsed        uint64 // blocks since the previous epoch
	BlockEmission  uint64 // global amount created per block
	EmissionRatio  uint16 // this subnetwork's share, 0xffff = all
	IncentiveShare uint16 // share of the budget paid as incentive
}

// an outgoing edge with its weight as a fraction
type edge struct {
	uid    uint16
	weight fixed.Fixed
}

// Compute - score one subnetwork
//
// replaces the activity, the five score vectors, the bonds and the
// emission of s; nothing else is changed. The only error is a
// RecordError from an inconsistent state, in which case s is untouched.
func Compute(s *subnet.State, in Inputs) error {
	err := s.Check()
	if nil != err {
		return err
	}

	n := s.N
	p := s.Params

	active := activity(s, in.Height)
	stake := normalisedStake(s, active)

	zeroStake := fixed.Zero == fixed.Sum(stake)

	rows := make([][]edge, n)
	for i := 0; i < n; i += 1 {
		rows[i] = normaliseRow(s.Weights[i], p)
	}

	// stake weighted in-flow and the stake of the endorsers behind it
	rank := make([]fixed.Fixed, n)
	endorsing := make([]fixed.Fixed, n)
	for i, row := range rows {
		if fixed.Zero == stake[i] {
			continue
		}
		for _, e := range row {
			rank[e.uid] = rank[e.uid].Add(stake[i].Mul(e.weight))
			endorsing[e.uid] = endorsing[e.uid].Add(stake[i])
		}
	}

	trust := make([]fixed.Fixed, n)
	consensus := make([]fixed.Fixed, n)
	kappa := fixed.FromU16(p.Kappa)
	for j := 0; j < n; j += 1 {
		trust[j] = rank[j].Div(endorsing[j])
		if trust[j] > fixed.One {
			trust[j] = fixed.One
		}
		consensus[j] = rank[j].Mul(clip(trust[j], kappa, p.Rho))
	}

	incentive := make([]fixed.Fixed, n)
	copy(incentive, consensus)
	fixed.Normalise(incentive)

	bonds := make([]subnet.Row, n)
	for i := 0; i < n; i += 1 {
		current := rows[i]
		if zeroStake {
			current = nil
		}
		bonds[i] = movingAverage(s.Bonds[i], current, p.BondsMovingAverage)
	}

	dividends := make([]fixed.Fixed, n)
	for i := 0; i < n; i += 1 {
		d := fixed.Zero
		for _, b := range bonds[i] {
			d = d.Add(fixed.FromU16(b.Value).Mul(incentive[b.Uid]))
		}
		dividends[i] = d
	}
	fixed.Normalise(dividends)

	budget := fixed.MulDiv(saturatingMul(in.BlockEmission, in.Elapsed), uint64(in.EmissionRatio), fixed.U16One)
	incentiveBudget := fixed.MulDiv(budget, uint64(in.IncentiveShare), fixed.U16One)
	dividendBudget := budget - incentiveBudget

	emission := make([]uint64, n)
	for i := 0; i < n; i += 1 {
		emission[i] = incentive[i].MulAmount(incentiveBudget) + dividends[i].MulAmount(dividendBudget)
	}

	s.Active = active
	s.Rank = fixed.ToU16Vector(rank)
	s.Trust = fixed.ToU16Vector(trust)
	s.Consensus = fixed.ToU16Vector(consensus)
	s.Incentive = fixed.ToU16Vector(incentive)
	s.Dividends = fixed.ToU16Vector(dividends)
	s.Bonds = bonds
	s.Emission = emission
	return nil
}

// a uid is active if it set weights or registered within the cutoff
func activity(s *subnet.State, height uint64) []bool {
	active := make([]bool, s.N)
	cutoff := s.Params.ActivityCutoff
	for i, last := range s.LastUpdate {
		active[i] = 0 == cutoff || height < last || height-last <= cutoff
	}
	return active
}

// stake of active uids as fractions of their total
func normalisedStake(s *subnet.State, active []bool) []fixed.Fixed {
	total := uint64(0)
	for i, amount := range s.Stake {
		if active[i] {
			total = saturatingAdd(total, amount)
		}
	}

	stake := make([]fixed.Fixed, s.N)
	if 0 == total {
		return stake
	}
	for i, amount := range s.Stake {
		if active[i] {
			stake[i] = fixed.FromRatio(amount, total)
		}
	}
	return stake
}

// clip to the max/min ratio and scale to sum to one
//
// a row with too few nonzero entries endorses nobody
func normaliseRow(row subnet.Row, p hyperparameter.Params) []edge {
	minimum := uint64(0)
	nonZero := 0
	for _, e := range row {
		if 0 == e.Value {
			continue
		}
		nonZero += 1
		if 0 == minimum || uint64(e.Value) < minimum {
			minimum = uint64(e.Value)
		}
	}
	if 0 == nonZero || nonZero < int(p.MinAllowedWeights) {
		return nil
	}

	limit := uint64(fixed.U16One)
	if 0 != p.MaxAllowedMaxMinRatio {
		limit = minimum * uint64(p.MaxAllowedMaxMinRatio)
	}

	edges := make([]edge, 0, nonZero)
	values := make([]fixed.Fixed, 0, nonZero)
	for _, e := range row {
		if 0 == e.Value {
			continue
		}
		v := uint64(e.Value)
		if v > limit {
			v = limit
		}
		edges = append(edges, edge{uid: e.Uid})
		values = append(values, fixed.FromRatio(v, fixed.U16One))
	}
	fixed.Normalise(values)
	for i := range edges {
		edges[i].weight = values[i]
	}
	return edges
}

// clamp(½ + rho·(t − kappa), 0, 1)
func clip(t fixed.Fixed, kappa fixed.Fixed, rho uint16) fixed.Fixed {
	if t >= kappa {
		s := fixed.Half.Add(t.Sub(kappa).MulInt(uint64(rho)))
		if s > fixed.One {
			return fixed.One
		}
		return s
	}
	return fixed.Half.Sub(kappa.Sub(t).MulInt(uint64(rho)))
}

// bond' = m·bond + (1 − m)·weight over the union of both rows
//
// computed on u16 values with m scaled by BondsMovingAverageScale; the
// result truncates so an abandoned bond reaches zero and is dropped
func movingAverage(bonds subnet.Row, weights []edge, scaledAverage uint64) subnet.Row {
	const scale = hyperparameter.BondsMovingAverageScale
	m := scaledAverage
	if m > scale {
		m = scale
	}

	result := make(subnet.Row, 0, len(bonds)+len(weights))
	i, j := 0, 0
	for i < len(bonds) || j < len(weights) {
		var uid uint16
		b := uint64(0)
		w := uint64(0)
		switch {
		case j >= len(weights) || (i < len(bonds) && bonds[i].Uid < weights[j].uid):
			uid = bonds[i].Uid
			b = uint64(bonds[i].Value)
			i += 1
		case i >= len(bonds) || weights[j].uid < bonds[i].Uid:
			uid = weights[j].uid
			w = uint64(weights[j].weight.ToU16())
			j += 1
		default:
			uid = bonds[i].Uid
			b = uint64(bonds[i].Value)
			w = uint64(weights[j].weight.ToU16())
			i += 1
			j += 1
		}
		value := (m*b + (scale-m)*w) / scale
		if 0 != value {
			result = append(result, subnet.Entry{Uid: uid, Value: uint16(value)})
		}
	}
	return result
}

func saturatingAdd(a uint64, b uint64) uint64 {
	if a+b < a {
		return 1<<64 - 1
	}
	return a + b
}

func saturatingMul(a uint64, b uint64) uint64 {
	return fixed.MulDiv(a, b, 1)
}
