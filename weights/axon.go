// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package weights

import (
	"encoding/binary"
	"net"

	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/messagebus"
	"github.com/bitmark-inc/paratensord/registry"
	"github.com/bitmark-inc/paratensord/storage"
)

// modalities
const (
	ModalityText   = 0
	ModalityImage  = 1
	ModalityTensor = 2
)

// Axon - the endpoint a hotkey serves from
type Axon struct {
	Version    uint32 `json:"version"`
	IP         string `json:"ip"`
	Port       uint16 `json:"port"`
	IPType     uint8  `json:"ip_type"`
	Modality   uint8  `json:"modality"`
	LastUpdate uint64 `json:"last_update"`
}

type axonServed struct {
	Hotkey account.Key `json:"hotkey"`
	Axon   Axon        `json:"axon"`
}

// version(4) ip(16) port(2) type(1) modality(1) block(8)
const packedAxonLength = 32

// ServeAxon - record the endpoint of a hotkey registered on any subnetwork
func ServeAxon(hotkey account.Key, version uint32, ip string, port uint16, ipType uint8, modality uint8, height uint64) error {
	globalData.RLock()
	log := globalData.log
	initialised := globalData.initialised
	globalData.RUnlock()

	if !initialised {
		return fault.NotInitialised
	}

	address := net.ParseIP(ip)
	if nil == address {
		return fault.InvalidIpAddress
	}
	switch ipType {
	case 4:
		if nil == address.To4() {
			return fault.InvalidIpType
		}
	case 6:
		if nil != address.To4() {
			return fault.InvalidIpType
		}
	default:
		return fault.InvalidIpType
	}
	if 0 == port {
		return fault.InvalidPort
	}
	if modality > ModalityTensor {
		return fault.InvalidModality
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	if !registry.IsRegisteredAnywhere(trx, hotkey) {
		return fault.NotRegistered
	}

	a := Axon{
		Version:    version,
		IP:         address.String(),
		Port:       port,
		IPType:     ipType,
		Modality:   modality,
		LastUpdate: height,
	}
	trx.Put(storage.Pool.Axons, hotkey.Bytes(), a.pack(address))

	err = trx.Commit()
	if nil != err {
		return err
	}

	log.Infof("hotkey: %s  axon: %s:%d", hotkey, a.IP, port)
	messagebus.Bus.Events.SendItem("axon-served", axonServed{Hotkey: hotkey, Axon: a})
	return nil
}

// GetAxon - committed endpoint of a hotkey
func GetAxon(hotkey account.Key) (Axon, bool) {
	buffer := storage.Pool.Axons.Get(hotkey.Bytes())
	if packedAxonLength != len(buffer) {
		return Axon{}, false
	}
	ipType := buffer[22]
	address := net.IP(buffer[4:20])
	if 4 == ipType {
		address = address.To4()
	}
	return Axon{
		Version:    binary.BigEndian.Uint32(buffer[0:]),
		IP:         address.String(),
		Port:       binary.BigEndian.Uint16(buffer[20:]),
		IPType:     ipType,
		Modality:   buffer[23],
		LastUpdate: binary.BigEndian.Uint64(buffer[24:]),
	}, true
}

func (a Axon) pack(address net.IP) []byte {
	buffer := make([]byte, packedAxonLength)
	binary.BigEndian.PutUint32(buffer[0:], a.Version)
	copy(buffer[4:20], address.To16())
	binary.BigEndian.PutUint16(buffer[20:], a.Port)
	buffer[22] = a.IPType
	buffer[23] = a.Modality
	binary.BigEndian.PutUint64(buffer[24:], a.LastUpdate)
	return buffer
}
