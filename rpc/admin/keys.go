// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admin

import (
	"sync"

	"github.com/bitmark-inc/paratensord/account"
)

// KeySet - the keys allowed to sign administrative requests
//
// the set is replaced as a whole when the configuration is reloaded
type KeySet struct {
	sync.RWMutex
	keys map[account.Key]struct{}
}

// NewKeySet - create a set from a list of keys
func NewKeySet(keys []account.Key) *KeySet {
	s := &KeySet{}
	s.Set(keys)
	return s
}

// Set - replace all keys
func (s *KeySet) Set(keys []account.Key) {
	m := make(map[account.Key]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}
	s.Lock()
	s.keys = m
	s.Unlock()
}

// Contains - true if the key may sign administrative requests
func (s *KeySet) Contains(key account.Key) bool {
	s.RLock()
	defer s.RUnlock()
	_, ok := s.keys[key]
	return ok
}

// Count - number of keys in the set
func (s *KeySet) Count() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.keys)
}
