// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/command/paratensor-cli/rpccalls"
)

func printJson(handle io.Writer, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(handle, "JSON marshal error: %s\n", err)
		return
	}
	fmt.Fprintf(handle, "%s\n", b)
}

func newClient(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

// the key from --key or the environment
func signingKey(m *metadata) (*account.PrivateKey, error) {
	if "" == m.seed {
		return nil, ErrMissingKey
	}
	return account.PrivateKeyFromBase58Seed(m.seed)
}

func checkKey(name string, s string) (account.Key, error) {
	if "" == s {
		return account.Key{}, fmt.Errorf("%s is required", name)
	}
	key, err := account.KeyFromBase58(s)
	if nil != err {
		return account.Key{}, fmt.Errorf("%s: %q  error: %s", name, s, err)
	}
	return key, nil
}

func checkUint16(name string, n uint) (uint16, error) {
	if n > math.MaxUint16 {
		return 0, fmt.Errorf("%s: %d is out of range", name, n)
	}
	return uint16(n), nil
}

func checkNetuid(c *cli.Context) (uint16, error) {
	return checkUint16("netuid", c.Uint("netuid"))
}

func checkPositive(name string, n uint64) (uint64, error) {
	if 0 == n {
		return 0, fmt.Errorf("%s must be greater than zero", name)
	}
	return n, nil
}

// "1, 2,3" -> [1 2 3]
func parseUint16List(name string, s string) ([]uint16, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, fmt.Errorf("%s is required", name)
	}

	items := strings.Split(s, ",")
	result := make([]uint16, 0, len(items))
	for _, item := range items {
		n, err := strconv.ParseUint(strings.TrimSpace(item), 10, 16)
		if nil != err {
			return nil, fmt.Errorf("%s: %q  error: %s", name, item, err)
		}
		result = append(result, uint16(n))
	}
	return result, nil
}
