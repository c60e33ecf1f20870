// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"sort"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/fault"
)

// Transaction - an all-or-nothing group of writes
//
// reads see the transaction's own pending writes; Commit writes
// everything in one leveldb batch, Abort discards it; both end the
// transaction and a second call is a no-op
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Fetch(*PoolHandle, []byte) []Element
	Commit() error
	Abort()
	InUse() bool
}

// only one transaction may be open at a time
var writer sync.Mutex

type transaction struct {
	sync.Mutex
	access Access
	done   bool
}

func newTransaction(access Access) *transaction {
	return &transaction{
		access: access,
		done:   true,
	}
}

// begin a fresh transaction on the shared batch
func (t *transaction) begin() (Transaction, error) {
	writer.Lock()
	err := t.access.Begin()
	if nil != err {
		writer.Unlock()
		return nil, err
	}
	return &transaction{
		access: t.access,
		done:   false,
	}, nil
}

func (t *transaction) check() {
	if t.done {
		logger.Panic("storage: use of finished transaction")
	}
}

func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	t.check()
	v := make([]byte, len(value))
	copy(v, value)
	t.access.Put(handle.prefixKey(key), v)
}

func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	t.Put(handle, key, encodeN(value))
}

func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	t.check()
	t.access.Delete(handle.prefixKey(key))
}

func (t *transaction) Get(handle *PoolHandle, key []byte) []byte {
	t.check()
	value, err := t.access.Get(handle.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(handle, key))
}

func (t *transaction) Has(handle *PoolHandle, key []byte) bool {
	t.check()
	found, err := t.access.Has(handle.prefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return found
}

// Fetch - all elements of a pool whose key starts with keyPrefix,
// in key order, including this transaction's pending writes
func (t *transaction) Fetch(handle *PoolHandle, keyPrefix []byte) []Element {
	t.check()

	start := handle.prefixKey(keyPrefix)
	merged := make(map[string][]byte)

	cursor := handle.NewFetchCursor().Seek(keyPrefix)
	err := cursor.Map(func(key []byte, value []byte) error {
		if !bytes.HasPrefix(key, keyPrefix) {
			return errStopMap
		}
		merged[string(key)] = value
		return nil
	})
	if errStopMap != err {
		logger.PanicIfError("transaction.Fetch", err)
	}

	for k, v := range t.access.Pending(handle.prefix) {
		if !bytes.HasPrefix([]byte(k), start) {
			continue
		}
		if nil == v {
			delete(merged, k[1:])
		} else {
			merged[k[1:]] = v
		}
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]Element, 0, len(keys))
	for _, k := range keys {
		result = append(result, Element{
			Key:   []byte(k),
			Value: merged[k],
		})
	}
	return result
}

func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if t.done {
		return nil
	}
	t.done = true
	defer writer.Unlock()

	return t.access.Commit()
}

func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	if t.done {
		return
	}
	t.done = true
	defer writer.Unlock()

	t.access.Abort()
}

func (t *transaction) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return !t.done
}

// sentinel to end a Map early
var errStopMap = fault.ProcessError("stop")
