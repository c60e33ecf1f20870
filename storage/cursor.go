// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/paratensord/fault"
)

// FetchCursor - ordered walk over the committed records of one pool
type FetchCursor struct {
	pool  *PoolHandle
	scope ldb_util.Range
}

// NewFetchCursor - cursor positioned at the first key of the pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool:  p,
		scope: ldb_util.Range{Start: []byte{p.prefix}, Limit: p.limit},
	}
}

// Seek - reposition to the first key not less than key
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.scope.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - up to count elements, advancing the cursor past them
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.DatabaseIsNotSet
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.each(func(e Element) bool {
		results = append(results, e)
		return len(results) < count
	})

	if n := len(results); n > 0 {
		// 0x00 makes the successor of the last key returned
		cursor.scope.Start = append(cursor.pool.prefixKey(results[n-1].Key), 0x00)
	}
	return results, err
}

// Map - call f on each element from the cursor position; the first
// error from f stops the walk and is returned
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.DatabaseIsNotSet
	}

	var ferr error
	err := cursor.each(func(e Element) bool {
		ferr = f(e.Key, e.Value)
		return nil == ferr
	})
	if nil != ferr {
		return ferr
	}
	return err
}

// each - visit elements while visit returns true
func (cursor *FetchCursor) each(visit func(Element) bool) error {
	access := cursor.pool.dataAccess
	if nil == access {
		return nil
	}

	iter := access.Iterator(&cursor.scope)
	defer iter.Release()

	for iter.Next() {
		if !visit(element(iter)) {
			break
		}
	}
	return iter.Error()
}

// element - copy the current record out of the iterator without its
// prefix byte, iterator buffers are reused by Next
func element(iter iterator.Iterator) Element {
	key := iter.Key()
	value := iter.Value()
	return Element{
		Key:   append([]byte{}, key[1:]...),
		Value: append([]byte{}, value...),
	}
}
