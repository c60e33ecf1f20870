// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// Cache - overlay of the open transaction's writes
//
// Get returns value, found, deleted; a pending delete is found with
// a nil value
type Cache interface {
	Get(string) ([]byte, bool, bool)
	Set(dbOperation, string, []byte)
	Clear()
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

type pendingWrite struct {
	op    dbOperation
	value []byte
}

// overlay - go-cache with expiry and janitor disabled, cleared at the
// end of every transaction
type overlay struct {
	items *cache.Cache
}

func newCache() Cache {
	return &overlay{
		items: cache.New(cache.NoExpiration, 0),
	}
}

func (o *overlay) Get(key string) ([]byte, bool, bool) {
	item, ok := o.items.Get(key)
	if !ok {
		return nil, false, false
	}
	w := item.(pendingWrite)
	if dbDelete == w.op {
		return nil, true, true
	}
	return w.value, true, false
}

func (o *overlay) Set(op dbOperation, key string, value []byte) {
	o.items.Set(key, pendingWrite{op: op, value: value}, cache.NoExpiration)
}

func (o *overlay) Clear() {
	o.items.Flush()
}
