// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast state transition events over ZeroMQ
//
// each message is three frames: chain name, event name, JSON payload
package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/background"
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/zmqutil"
)

// Configuration - publishing section of the configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

var globalData struct {
	sync.RWMutex
	log         *logger.L
	publicKey   []byte
	background  *background.T
	initialised bool
}

// Initialise - bind the broadcast sockets and start forwarding events
//
// an empty broadcast list leaves publishing disabled
func Initialise(configuration *Configuration, chain string) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("publish")
	globalData.log = log

	if 0 == len(configuration.Broadcast) {
		log.Info("no broadcast addresses: publishing disabled")
		globalData.initialised = true
		return nil
	}

	keys, err := loadKeys(log, configuration)
	if nil != err {
		return err
	}

	brdc, err := newBroadcaster(logger.New("broadcaster"), chain, keys, configuration.Broadcast)
	if nil != err {
		return err
	}

	globalData.publicKey = keys.Public
	globalData.background = background.Start(background.Processes{brdc}, nil)
	globalData.initialised = true

	log.Infof("publishing chain: %s  on: %v", chain, configuration.Broadcast)
	return nil
}

func loadKeys(log *logger.L, configuration *Configuration) (zmqutil.Keys, error) {
	private, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
	if nil != err {
		log.Errorf("private key file: %q  error: %s", configuration.PrivateKey, err)
		return zmqutil.Keys{}, err
	}
	public, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
	if nil != err {
		log.Errorf("public key file: %q  error: %s", configuration.PublicKey, err)
		return zmqutil.Keys{}, err
	}
	log.Tracef("public key: %x", public)
	return zmqutil.Keys{Private: private, Public: public}, nil
}

// Finalise - stop the broadcaster
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")

	globalData.background.Stop()
	globalData.background = nil
	globalData.publicKey = nil
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// PublicKey - curve public key subscribers need to connect
func PublicKey() []byte {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.publicKey
}
