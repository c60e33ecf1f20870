// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paratensord/background"
	"github.com/bitmark-inc/paratensord/balance"
	"github.com/bitmark-inc/paratensord/clock"
	"github.com/bitmark-inc/paratensord/epoch"
	"github.com/bitmark-inc/paratensord/hyperparameter"
	"github.com/bitmark-inc/paratensord/proof"
	"github.com/bitmark-inc/paratensord/publish"
	"github.com/bitmark-inc/paratensord/registry"
	"github.com/bitmark-inc/paratensord/rpc"
	"github.com/bitmark-inc/paratensord/rpc/admin"
	"github.com/bitmark-inc/paratensord/stake"
	"github.com/bitmark-inc/paratensord/storage"
	"github.com/bitmark-inc/paratensord/weights"
	"github.com/bitmark-inc/paratensord/zmqutil"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("chain: %q", theConfiguration.Chain)
	log.Infof("database: %q", theConfiguration.Database)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "HttpsRPC", theConfiguration.HttpsRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	err = hyperparameter.Initialise()
	if nil != err {
		log.Criticalf("hyperparameter initialise error: %s", err)
		exitwithstatus.Message("hyperparameter initialise error: %s", err)
	}
	defer hyperparameter.Finalise()

	err = balance.Initialise()
	if nil != err {
		log.Criticalf("balance initialise error: %s", err)
		exitwithstatus.Message("balance initialise error: %s", err)
	}
	defer balance.Finalise()

	// registration proofs are checked against the committed height
	err = registry.Initialise(proof.New(logger.New("proof"), clock.Height))
	if nil != err {
		log.Criticalf("registry initialise error: %s", err)
		exitwithstatus.Message("registry initialise error: %s", err)
	}
	defer registry.Finalise()

	err = weights.Initialise()
	if nil != err {
		log.Criticalf("weights initialise error: %s", err)
		exitwithstatus.Message("weights initialise error: %s", err)
	}
	defer weights.Finalise()

	err = stake.Initialise(balance.Accounts{})
	if nil != err {
		log.Criticalf("stake initialise error: %s", err)
		exitwithstatus.Message("stake initialise error: %s", err)
	}
	defer stake.Finalise()

	err = epoch.Initialise(theConfiguration.Emission)
	if nil != err {
		log.Criticalf("epoch initialise error: %s", err)
		exitwithstatus.Message("epoch initialise error: %s", err)
	}
	defer epoch.Finalise()

	err = genesis(log, theConfiguration)
	if nil != err {
		log.Criticalf("genesis error: %s", err)
		exitwithstatus.Message("genesis error: %s", err)
	}

	// initialise encryption
	err = zmqutil.StartAuthentication()
	if nil != err {
		log.Criticalf("zmq.AuthStart: error: %s", err)
		exitwithstatus.Message("zmq.AuthStart: error: %s", err)
	}
	defer zmqutil.StopAuthentication()

	// start up the publishing background processes
	err = publish.Initialise(&theConfiguration.Publishing, theConfiguration.Chain)
	if nil != err {
		log.Criticalf("publish initialise error: %s", err)
		exitwithstatus.Message("publish initialise error: %s", err)
	}
	defer publish.Finalise()

	// admin keys can change while running
	adminKeys, err := parseAdminKeys(theConfiguration.AdminKeys)
	if nil != err {
		log.Criticalf("admin keys error: %s", err)
		exitwithstatus.Message("admin keys error: %s", err)
	}
	keySet := admin.NewKeySet(adminKeys)
	log.Infof("admin keys: %d", keySet.Count())

	watcher, err := newKeyWatcher(configurationFile, keySet)
	if nil != err {
		log.Criticalf("key watcher error: %s", err)
		exitwithstatus.Message("key watcher error: %s", err)
	}
	watching := background.Start(background.Processes{watcher}, nil)
	defer watching.Stop()

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, &theConfiguration.HttpsRPC, version, theConfiguration.Chain, clock.Height, keySet)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// blocks start last so every service sees the first one
	err = clock.Initialise(time.Duration(theConfiguration.BlockInterval) * time.Second)
	if nil != err {
		log.Criticalf("clock initialise error: %s", err)
		exitwithstatus.Message("clock initialise error: %s", err)
	}
	defer clock.Finalise()

	// if memory logging enabled
	if len(options["memory-stats"]) > 0 {
		go memstats()
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
