// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/paratensord/fault"
)

// Access - the shared write batch behind every transaction
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Pending(prefix byte) map[string][]byte
	Put([]byte, []byte)
}

// batchAccess - leveldb batch plus a read-your-writes overlay
//
// the overlay answers reads of keys touched by the open transaction,
// touched records which keys those are so Pending can enumerate them
type batchAccess struct {
	sync.Mutex
	open    bool
	db      *leveldb.DB
	batch   *leveldb.Batch
	overlay Cache
	touched map[string]struct{}
}

func newAccess(db *leveldb.DB, pending Cache) Access {
	return &batchAccess{
		db:      db,
		batch:   new(leveldb.Batch),
		overlay: pending,
		touched: make(map[string]struct{}),
	}
}

func (b *batchAccess) Begin() error {
	b.Lock()
	defer b.Unlock()

	if b.open {
		return fault.TransactionAlreadyInUse
	}
	b.open = true
	return nil
}

func (b *batchAccess) InUse() bool {
	b.Lock()
	defer b.Unlock()
	return b.open
}

func (b *batchAccess) Put(key []byte, value []byte) {
	b.record(dbPut, key, value)
	b.batch.Put(key, value)
}

func (b *batchAccess) Delete(key []byte) {
	b.record(dbDelete, key, nil)
	b.batch.Delete(key)
}

func (b *batchAccess) record(op dbOperation, key []byte, value []byte) {
	k := string(key)
	b.overlay.Set(op, k, value)
	b.touched[k] = struct{}{}
}

func (b *batchAccess) Get(key []byte) ([]byte, error) {
	switch value, found, deleted := b.overlay.Get(string(key)); {
	case deleted:
		return nil, leveldb.ErrNotFound
	case found:
		return value, nil
	}
	return b.db.Get(key, nil)
}

func (b *batchAccess) Has(key []byte) (bool, error) {
	switch _, found, deleted := b.overlay.Get(string(key)); {
	case deleted:
		return false, nil
	case found:
		return true, nil
	}
	return b.db.Has(key, nil)
}

// Iterator - committed records only, pending writes are not visible
func (b *batchAccess) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return b.db.NewIterator(searchRange, nil)
}

// Pending - touched keys under one pool prefix; nil marks a delete
func (b *batchAccess) Pending(prefix byte) map[string][]byte {
	result := make(map[string][]byte)
	for k := range b.touched {
		if 0 == len(k) || prefix != k[0] {
			continue
		}
		value, _, _ := b.overlay.Get(k)
		result[k] = value
	}
	return result
}

// Commit - one atomic leveldb write; the batch is emptied either way
func (b *batchAccess) Commit() error {
	b.Lock()
	defer b.Unlock()

	err := b.db.Write(b.batch, nil)
	b.clear()
	return err
}

func (b *batchAccess) Abort() {
	b.Lock()
	defer b.Unlock()
	b.clear()
}

func (b *batchAccess) clear() {
	b.batch.Reset()
	b.overlay.Clear()
	b.touched = make(map[string]struct{})
	b.open = false
}
