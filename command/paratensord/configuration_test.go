// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/fixtures"
	"github.com/bitmark-inc/paratensord/hyperparameter"
)

const configTemplate = `
local M = {}

M.data_directory = "."
M.chain = "Testing"
M.blocks_per_step = 2

M.emission = {
    block_emission = 5000,
}

M.admin_keys = {
    %q,
}

M.genesis_subnetworks = {
    {
        netuid = 1,
        emission_ratio = 16384,
        tempo = 10,
    },
    {
        netuid = 2,
        emission_ratio = 8192,
        max_allowed_uids = 16,
        difficulty = 1,
    },
}

M.client_rpc = {
    maximum_connections = 5,
    listen = {
        "127.0.0.1:2130",
    },
}

return M
`

func writeConfiguration(t *testing.T, dir string, text string) string {
	fileName := filepath.Join(dir, "paratensord.conf")
	err := ioutil.WriteFile(fileName, []byte(text), 0600)
	require.Nil(t, err, "write configuration")
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, err := ioutil.TempDir("", "paratensord-config")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	key := fixtures.Key()
	fileName := writeConfiguration(t, dir, fmt.Sprintf(configTemplate, key.String()))

	options, err := getConfiguration(fileName)
	require.Nil(t, err, "configuration")

	assert.Equal(t, "testing", options.Chain, "chain not lower case")
	assert.Equal(t, uint64(2), options.BlocksPerStep, "blocks per step")
	assert.Equal(t, uint64(defaultBlockInterval), options.BlockInterval, "default interval")
	assert.Equal(t, uint64(5000), options.Emission.BlockEmission, "block emission")
	assert.Equal(t, hyperparameter.Default(), options.Defaults, "defaults changed")
	assert.Equal(t, uint64(5), options.ClientRPC.MaximumConnections, "rpc connections")
	assert.Equal(t, []string{"127.0.0.1:2130"}, options.ClientRPC.Listen, "rpc listen")

	assert.True(t, filepath.IsAbs(options.Database.Name), "database not absolute")
	assert.Equal(t, "testing.leveldb", filepath.Base(options.Database.Name), "database name")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), options.Logging.Directory, "log directory")
	assert.Equal(t, filepath.Join(dir, defaultCertificateFile), options.ClientRPC.Certificate, "certificate")

	info, err := os.Stat(options.Database.Directory)
	require.Nil(t, err, "database directory")
	assert.True(t, info.IsDir(), "database directory")

	require.Equal(t, 2, len(options.Genesis), "genesis count")
	p := options.genesisParams(options.Genesis[0])
	assert.Equal(t, uint16(10), p.Tempo, "genesis tempo")
	assert.Equal(t, hyperparameter.Default().MaxAllowedUids, p.MaxAllowedUids, "default uids")

	p = options.genesisParams(options.Genesis[1])
	assert.Equal(t, hyperparameter.Default().Tempo, p.Tempo, "default tempo")
	assert.Equal(t, uint16(16), p.MaxAllowedUids, "genesis uids")
	assert.Equal(t, uint64(1), p.Difficulty, "genesis difficulty")
	assert.Equal(t, uint16(16384), options.Genesis[0].EmissionRatio, "emission ratio")

	keys, err := parseAdminKeys(options.AdminKeys)
	require.Nil(t, err, "admin keys")
	assert.Equal(t, 1, len(keys), "admin key count")
	assert.Equal(t, key, keys[0], "admin key")
}

func TestGetConfigurationErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "paratensord-config")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	tests := []struct {
		name string
		text string
	}{
		{"no data directory", `return { chain = "local" }`},
		{"bad chain", `return { data_directory = ".", chain = "no spaces" }`},
		{"bad admin key", `return { data_directory = ".", admin_keys = { "not-a-key" } }`},
		{"zero step", `return { data_directory = ".", blocks_per_step = 0 }`},
		{"zero tempo", `return { data_directory = ".", defaults = { tempo = 0 } }`},
		{"not a table", `return 42`},
	}

	for _, test := range tests {
		fileName := writeConfiguration(t, dir, test.text)
		_, err := getConfiguration(fileName)
		assert.NotNil(t, err, test.name)
	}
}

func TestParseAdminKeys(t *testing.T) {
	k1 := fixtures.Key()
	k2 := fixtures.Key()

	keys, err := parseAdminKeys([]string{" " + k1.String(), "", k2.String() + "\n"})
	require.Nil(t, err, "parse")
	assert.Equal(t, []account.Key{k1, k2}, keys, "keys")

	_, err = parseAdminKeys([]string{k1.String(), "1111"})
	assert.NotNil(t, err, "invalid key accepted")
}
