// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/fault"
)

// pools - one field per table, tagged with its key prefix
//
// fields must be exported for reflection to set them
type pools struct {
	Globals         *PoolHandle `prefix:"G"`
	EmissionRatio   *PoolHandle `prefix:"R"`
	Subnets         *PoolHandle `prefix:"U"`
	SubnetN         *PoolHandle `prefix:"N"`
	Hyperparameters *PoolHandle `prefix:"H"`
	LastEpoch       *PoolHandle `prefix:"E"`
	Vectors         *PoolHandle `prefix:"V"`
	Keys            *PoolHandle `prefix:"K"`
	Uids            *PoolHandle `prefix:"I"`
	Coldkeys        *PoolHandle `prefix:"C"`
	Hotkeys         *PoolHandle `prefix:"O"`
	RegisteredAt    *PoolHandle `prefix:"T"`
	LastUpdate      *PoolHandle `prefix:"L"`
	Weights         *PoolHandle `prefix:"W"`
	Bonds           *PoolHandle `prefix:"B"`
	Stake           *PoolHandle `prefix:"S"`
	Axons           *PoolHandle `prefix:"A"`
	Balances        *PoolHandle `prefix:"$"`
	TestData        *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// the version record sits below every pool prefix
var versionKey = []byte("\x00VERSION")

const currentDBVersion uint32 = 0x100

var poolData struct {
	sync.RWMutex
	db  *leveldb.DB
	trx *transaction
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open the database and bind every pool to it
//
// this must be called before any pool is accessed; an empty database
// opened read-write is stamped with the current layout version
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	db, err := openDB(database, readOnly)
	if nil != err {
		return err
	}

	access := newAccess(db, newCache())
	if err := bindPools(&Pool, access); nil != err {
		db.Close()
		return err
	}

	poolData.db = db
	poolData.trx = newTransaction(access)
	return nil
}

// openDB - open leveldb and check its layout version
func openDB(name string, readOnly bool) (*leveldb.DB, error) {
	db, err := leveldb.OpenFile(name, &ldb_opt.Options{
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	})
	if nil != err {
		return nil, err
	}

	version, err := readVersion(db)
	switch {
	case nil != err:
	case version > currentDBVersion:
		logger.Criticalf("database: %q  version: %d is newer than: %d", name, version, currentDBVersion)
		err = fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	case 0 == version && readOnly:
		err = fmt.Errorf("database: %q is empty", name)
	case 0 == version:
		stamp := make([]byte, 4)
		binary.BigEndian.PutUint32(stamp, currentDBVersion)
		err = db.Put(versionKey, stamp, nil)
	}
	if nil != err {
		db.Close()
		return nil, err
	}
	return db, nil
}

// readVersion - zero for a database never stamped
func readVersion(db *leveldb.DB) (uint32, error) {
	value, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	}
	if nil != err {
		return 0, err
	}
	if 4 != len(value) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(value))
	}
	return binary.BigEndian.Uint32(value), nil
}

// bindPools - give each *PoolHandle field of the struct the one byte
// prefix from its tag; prefixes must be unique
func bindPools(target interface{}, access Access) error {
	v := reflect.ValueOf(target).Elem()
	t := v.Type()

	seen := make(map[byte]string, t.NumField())
	for i := 0; i < t.NumField(); i += 1 {
		field := t.Field(i)
		tag := field.Tag.Get("prefix")
		if 1 != len(tag) {
			return fmt.Errorf("pool: %s has invalid prefix: %q", field.Name, tag)
		}
		prefix := tag[0]
		if other, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %s reuses prefix: %q of: %s", field.Name, tag, other)
		}
		seen[prefix] = field.Name

		var limit []byte
		if prefix < 0xff {
			limit = []byte{prefix + 1}
		}
		v.Field(i).Set(reflect.ValueOf(&PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: access,
		}))
	}
	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		poolData.db.Close()
		poolData.db = nil
	}
	poolData.trx = nil
}

// IsInitialised - true between Initialise and Finalise
func IsInitialised() bool {
	poolData.RLock()
	defer poolData.RUnlock()
	return nil != poolData.db
}

// NewDBTransaction - start the single write transaction
//
// blocks until any other transaction has been committed or aborted;
// every state transition is written by exactly one transaction
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	trx := poolData.trx
	poolData.RUnlock()

	if nil == trx {
		return nil, fault.DatabaseIsNotSet
	}
	return trx.begin()
}
