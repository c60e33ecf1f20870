// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - one table of the database, all of its keys start with
// the same prefix byte
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess Access
}

// Element - a record with the pool prefix removed from its key
type Element struct {
	Key   []byte
	Value []byte
}

func (p *PoolHandle) prefixKey(key []byte) []byte {
	return append([]byte{p.prefix}, key...)
}

func currentDB() *leveldb.DB {
	poolData.RLock()
	defer poolData.RUnlock()
	return poolData.db
}

// write - apply one direct change; storage must be open
func (p *PoolHandle) write(op string, apply func(*leveldb.DB, []byte) error, key []byte) {
	db := currentDB()
	if nil == db {
		logger.Panicf("pool.%s: database is not open", op)
	}
	logger.PanicIfError("pool."+op, apply(db, p.prefixKey(key)))
}

// Put - write a record outside any transaction
//
// only for pools no transaction writes, e.g. balances
func (p *PoolHandle) Put(key []byte, value []byte) {
	p.write("Put", func(db *leveldb.DB, k []byte) error {
		return db.Put(k, value, nil)
	}, key)
}

// PutN - Put of a big endian uint64
func (p *PoolHandle) PutN(key []byte, value uint64) {
	p.Put(key, encodeN(value))
}

// Delete - remove a record outside any transaction
func (p *PoolHandle) Delete(key []byte) {
	p.write("Delete", func(db *leveldb.DB, k []byte) error {
		return db.Delete(k, nil)
	}, key)
}

// Get - committed value or nil; the caller must not modify it
func (p *PoolHandle) Get(key []byte) []byte {
	db := currentDB()
	if nil == db {
		return nil
	}
	value, err := db.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - committed big endian uint64, false when absent
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	return decodeN(key, p.Get(key))
}

// Has - true if a committed record exists
func (p *PoolHandle) Has(key []byte) bool {
	db := currentDB()
	if nil == db {
		return false
	}
	found, err := db.Has(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Has", err)
	return found
}

func encodeN(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}

// records shorter than 8 bytes mean a corrupt database
func decodeN(key []byte, buffer []byte) (uint64, bool) {
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer), true
}
