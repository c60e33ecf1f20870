// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/account"
	"github.com/bitmark-inc/paratensord/configuration"
	"github.com/bitmark-inc/paratensord/epoch"
	"github.com/bitmark-inc/paratensord/hyperparameter"
	"github.com/bitmark-inc/paratensord/publish"
	"github.com/bitmark-inc/paratensord/rpc/listeners"
	"github.com/bitmark-inc/paratensord/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultChain = "local"

	defaultPublisherPublicKeyFile  = "publisher.public"
	defaultPublisherPrivateKeyFile = "publisher.private"
	defaultKeyFile                 = "rpc.key"
	defaultCertificateFile         = "rpc.crt"

	defaultLevelDBDirectory = "data"

	defaultLogDirectory = "log"
	defaultLogFile      = "paratensord.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients    = 10
	defaultBlockInterval = 12 // seconds
	defaultBlockEmission = 1000000000
	defaultBlocksPerStep = 1
)

var chainName = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - leveldb location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// GenesisSubnetwork - a subnetwork created when the database is empty
//
// zero values take the corresponding entry from the defaults section
type GenesisSubnetwork struct {
	Netuid         uint16 `gluamapper:"netuid" json:"netuid"`
	EmissionRatio  uint16 `gluamapper:"emission_ratio" json:"emission_ratio"`
	Tempo          uint16 `gluamapper:"tempo" json:"tempo"`
	MaxAllowedUids uint16 `gluamapper:"max_allowed_uids" json:"max_allowed_uids"`
	ImmunityPeriod uint64 `gluamapper:"immunity_period" json:"immunity_period"`
	Difficulty     uint64 `gluamapper:"difficulty" json:"difficulty"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	BlockInterval uint64                `gluamapper:"block_interval" json:"block_interval"`
	BlocksPerStep uint64                `gluamapper:"blocks_per_step" json:"blocks_per_step"`
	Emission      epoch.Configuration   `gluamapper:"emission" json:"emission"`
	Defaults      hyperparameter.Params `gluamapper:"defaults" json:"defaults"`
	Genesis       []GenesisSubnetwork   `gluamapper:"genesis_subnetworks" json:"genesis_subnetworks"`
	AdminKeys     []string              `gluamapper:"admin_keys" json:"admin_keys"`

	ClientRPC  listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC   listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Publishing publish.Configuration        `gluamapper:"publishing" json:"publishing"`
	Logging    logger.Configuration         `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         defaultChain,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      "",
		},

		BlockInterval: defaultBlockInterval,
		BlocksPerStep: defaultBlocksPerStep,
		Emission: epoch.Configuration{
			BlockEmission:  defaultBlockEmission,
			IncentiveShare: epoch.DefaultIncentiveShare,
		},
		Defaults: hyperparameter.Default(),

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		// default: share config with normal RPC
		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Publishing: publish.Configuration{
			PublicKey:  defaultPublisherPublicKeyFile,
			PrivateKey: defaultPublisherPrivateKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Chain = strings.ToLower(options.Chain)
	if !chainName.MatchString(options.Chain) {
		return nil, fmt.Errorf("chain: %q is not a valid name", options.Chain)
	}

	// if database was not set default to the chain name
	if "" == options.Database.Name {
		options.Database.Name = options.Chain + ".leveldb"
	}

	if err := options.Defaults.Validate(); nil != err {
		return nil, fmt.Errorf("defaults: %s", err)
	}
	for i, g := range options.Genesis {
		if err := options.genesisParams(g).Validate(); nil != err {
			return nil, fmt.Errorf("genesis_subnetworks[%d]: %s", i, err)
		}
	}
	if 0 == options.BlocksPerStep {
		return nil, fmt.Errorf("blocks_per_step: must be positive")
	}

	if _, err := parseAdminKeys(options.AdminKeys); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HttpsRPC.Certificate,
		&options.HttpsRPC.PrivateKey,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path separator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("files: %q is not plain name", *f[0])
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// parameters for a genesis subnetwork
func (c *Configuration) genesisParams(g GenesisSubnetwork) hyperparameter.Params {
	p := c.Defaults
	if 0 != g.Tempo {
		p.Tempo = g.Tempo
	}
	if 0 != g.MaxAllowedUids {
		p.MaxAllowedUids = g.MaxAllowedUids
	}
	if 0 != g.ImmunityPeriod {
		p.ImmunityPeriod = g.ImmunityPeriod
	}
	if 0 != g.Difficulty {
		p.Difficulty = g.Difficulty
	}
	return p
}

// decode base58 admin keys
func parseAdminKeys(keys []string) ([]account.Key, error) {
	result := make([]account.Key, 0, len(keys))
	for i, s := range keys {
		s = strings.TrimSpace(s)
		if "" == s {
			continue
		}
		k, err := account.KeyFromBase58(s)
		if nil != err {
			return nil, fmt.Errorf("admin_keys[%d]: %q  error: %s", i, s, err)
		}
		result = append(result, k)
	}
	return result, nil
}
