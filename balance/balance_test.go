// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/paratensord/balance"
	"github.com/bitmark-inc/paratensord/fault"
	"github.com/bitmark-inc/paratensord/fixtures"
	"github.com/bitmark-inc/paratensord/stake"
)

var _ stake.Ledger = balance.Accounts{}

func TestCreditDebit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	tmp := fixtures.SetupTestStorage()
	defer fixtures.TeardownTestStorage(tmp)

	assert.Nil(t, balance.Initialise(), "wrong Initialise")
	defer balance.Finalise()

	coldkey := fixtures.Key()
	assert.Equal(t, uint64(0), balance.Get(coldkey), "wrong initial balance")

	assert.Nil(t, balance.Credit(coldkey, 500), "wrong Credit")
	assert.Nil(t, balance.Credit(coldkey, 250), "wrong Credit")
	assert.Equal(t, uint64(750), balance.Get(coldkey), "wrong balance")

	err := balance.Debit(coldkey, 751)
	assert.Equal(t, fault.NotEnoughBalanceToStake, err, "wrong overdraw error")
	assert.Equal(t, uint64(750), balance.Get(coldkey), "overdraw changed balance")

	accounts := balance.Accounts{}
	assert.Nil(t, accounts.Debit(coldkey, 700), "wrong Debit")
	assert.Equal(t, uint64(50), balance.Get(coldkey), "wrong balance after debit")

	assert.Nil(t, accounts.Debit(coldkey, 50), "wrong Debit")
	assert.Equal(t, uint64(0), balance.Get(coldkey), "wrong empty balance")

	assert.Equal(t, fault.ZeroAmount, balance.Credit(coldkey, 0), "wrong zero credit")
}

func TestCreditOverflow(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	tmp := fixtures.SetupTestStorage()
	defer fixtures.TeardownTestStorage(tmp)

	assert.Nil(t, balance.Initialise(), "wrong Initialise")
	defer balance.Finalise()

	coldkey := fixtures.Key()
	assert.Nil(t, balance.Credit(coldkey, ^uint64(0)-1), "wrong Credit")
	assert.Equal(t, fault.AmountTooLarge, balance.Credit(coldkey, 2), "wrong overflow error")
	assert.Equal(t, ^uint64(0)-1, balance.Get(coldkey), "overflow changed balance")
}

func TestNotInitialised(t *testing.T) {
	err := balance.Debit(fixtures.Key(), 1)
	assert.Equal(t, fault.NotInitialised, err, "wrong error")
}
