// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hyperparameter

import (
	"encoding/binary"

	"github.com/bitmark-inc/paratensord/fault"
)

// BondsMovingAverageScale - BondsMovingAverage is parts per million
const BondsMovingAverageScale = 1000000

// Params - per-subnetwork scalars controlling the epoch
type Params struct {
	// weight rows with fewer nonzero entries are rejected, and ignored by the epoch
	MinAllowedWeights uint16 `gluamapper:"min_allowed_weights" json:"min_allowed_weights"`
	// largest allowed max/min nonzero weight ratio, 0 disables the check
	MaxAllowedMaxMinRatio uint16 `gluamapper:"max_allowed_max_min_ratio" json:"max_allowed_max_min_ratio"`
	// blocks between epochs (multiplied by the global blocks per step)
	Tempo          uint16 `gluamapper:"tempo" json:"tempo"`
	MaxAllowedUids uint16 `gluamapper:"max_allowed_uids" json:"max_allowed_uids"`
	// consensus sigmoid centre as a u16 fraction, and its slope
	Kappa uint16 `gluamapper:"kappa" json:"kappa"`
	Rho   uint16 `gluamapper:"rho" json:"rho"`
	// blocks after registration during which a uid cannot be evicted
	ImmunityPeriod uint64 `gluamapper:"immunity_period" json:"immunity_period"`
	// blocks without a weight update before a uid is inactive, 0 never expires
	ActivityCutoff     uint64 `gluamapper:"activity_cutoff" json:"activity_cutoff"`
	BondsMovingAverage uint64 `gluamapper:"bonds_moving_average" json:"bonds_moving_average"`
	Difficulty         uint64 `gluamapper:"difficulty" json:"difficulty"`
}

const packedLength = 6*2 + 4*8

// Default - parameters for a subnetwork created without explicit values
func Default() Params {
	return Params{
		MinAllowedWeights:     1,
		MaxAllowedMaxMinRatio: 0,
		Tempo:                 100,
		MaxAllowedUids:        4096,
		Kappa:                 0x7fff,
		Rho:                   10,
		ImmunityPeriod:        200,
		ActivityCutoff:        5000,
		BondsMovingAverage:    900000,
		Difficulty:            10000,
	}
}

// Validate - check that every value is usable
func (p Params) Validate() error {
	if 0 == p.Tempo {
		return fault.InvalidTempo
	}
	if 0 == p.MaxAllowedUids {
		return fault.MaxAllowedUidsTooSmall
	}
	if 0 == p.Difficulty {
		return fault.InvalidDifficulty
	}
	if p.BondsMovingAverage > BondsMovingAverageScale {
		return fault.InvalidHyperparameter
	}
	return nil
}

// Pack - fixed length big endian record
func (p Params) Pack() []byte {
	buffer := make([]byte, packedLength)
	binary.BigEndian.PutUint16(buffer[0:], p.MinAllowedWeights)
	binary.BigEndian.PutUint16(buffer[2:], p.MaxAllowedMaxMinRatio)
	binary.BigEndian.PutUint16(buffer[4:], p.Tempo)
	binary.BigEndian.PutUint16(buffer[6:], p.MaxAllowedUids)
	binary.BigEndian.PutUint16(buffer[8:], p.Kappa)
	binary.BigEndian.PutUint16(buffer[10:], p.Rho)
	binary.BigEndian.PutUint64(buffer[12:], p.ImmunityPeriod)
	binary.BigEndian.PutUint64(buffer[20:], p.ActivityCutoff)
	binary.BigEndian.PutUint64(buffer[28:], p.BondsMovingAverage)
	binary.BigEndian.PutUint64(buffer[36:], p.Difficulty)
	return buffer
}

// Unpack - decode a record made by Pack
func Unpack(buffer []byte) (Params, error) {
	if packedLength != len(buffer) {
		return Params{}, fault.TruncatedRecord
	}
	return Params{
		MinAllowedWeights:     binary.BigEndian.Uint16(buffer[0:]),
		MaxAllowedMaxMinRatio: binary.BigEndian.Uint16(buffer[2:]),
		Tempo:                 binary.BigEndian.Uint16(buffer[4:]),
		MaxAllowedUids:        binary.BigEndian.Uint16(buffer[6:]),
		Kappa:                 binary.BigEndian.Uint16(buffer[8:]),
		Rho:                   binary.BigEndian.Uint16(buffer[10:]),
		ImmunityPeriod:        binary.BigEndian.Uint64(buffer[12:]),
		ActivityCutoff:        binary.BigEndian.Uint64(buffer[20:]),
		BondsMovingAverage:    binary.BigEndian.Uint64(buffer[28:]),
		Difficulty:            binary.BigEndian.Uint64(buffer[36:]),
	}, nil
}
