// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for package tests
package fixtures

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/storage"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - log to a throwaway directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the log files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// SetupTestStorage - open an empty database in a temporary directory
//
// returns the directory to pass to TeardownTestStorage
func SetupTestStorage() string {
	tmp, err := ioutil.TempDir("", "paratensord-test")
	if nil != err {
		panic(err)
	}
	err = storage.Initialise(filepath.Join(tmp, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		panic(err)
	}
	return tmp
}

// TeardownTestStorage - close and remove the database
func TeardownTestStorage(tmp string) {
	storage.Finalise()
	_ = os.RemoveAll(tmp)
}

// Key - a fresh random public key
func Key() account.Key {
	privateKey, err := account.NewPrivateKey()
	if nil != err {
		panic(err)
	}
	return privateKey.Key()
}

// KeyPair - a fresh private key and its public key
func KeyPair() (*account.PrivateKey, account.Key) {
	privateKey, err := account.NewPrivateKey()
	if nil != err {
		panic(err)
	}
	return privateKey, privateKey.Key()
}
