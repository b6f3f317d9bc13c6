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

	"github.com/bitmark-inc/aitrustd/contract"
	"github.com/bitmark-inc/aitrustd/identity"
	"github.com/bitmark-inc/aitrustd/messagebus"
	"github.com/bitmark-inc/aitrustd/mode"
	"github.com/bitmark-inc/aitrustd/publish"
	"github.com/bitmark-inc/aitrustd/registry"
	"github.com/bitmark-inc/aitrustd/rpc"
	"github.com/bitmark-inc/aitrustd/storage"
	"github.com/bitmark-inc/aitrustd/storage/sqlstore"
	"github.com/bitmark-inc/aitrustd/zmqutil"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
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
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Chain)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	// general info
	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %s  %q", theConfiguration.Database.Backend, theConfiguration.Database.Name)
	log.Infof("organisations: %q  default: %q", theConfiguration.Organisations, theConfiguration.DefaultOrganisation)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "HttpsRPC", theConfiguration.HttpsRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)

	organisations, err := identity.New(theConfiguration.Organisations, theConfiguration.DefaultOrganisation)
	if nil != err {
		log.Criticalf("organisations error: %s", err)
		exitwithstatus.Message("organisations error: %s", err)
	}

	// start the world state storage
	log.Info("initialise storage")
	backend, err := openBackend(logger.New("storage"), &theConfiguration.Database)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer backend.Close()

	// committed events flow through the queue to the publisher
	queue, err := messagebus.New(logger.New("messagebus"), messagebus.DefaultQueueSize)
	if nil != err {
		log.Criticalf("message bus initialise error: %s", err)
		exitwithstatus.Message("message bus initialise error: %s", err)
	}
	defer queue.Close()

	// initialise encryption
	if "" != theConfiguration.Publishing.PrivateKey {
		err = zmqutil.StartAuthentication(logger.New("zap"))
		if nil != err {
			log.Criticalf("zmq.AuthStart: error: %s", err)
			exitwithstatus.Message("zmq.AuthStart: error: %s", err)
		}
		defer zmqutil.StopAuthentication()
	}

	// start up the publishing background processes
	err = publish.Initialise(&theConfiguration.Publishing, queue)
	if nil != err {
		log.Criticalf("publish initialise error: %s", err)
		exitwithstatus.Message("publish initialise error: %s", err)
	}
	defer publish.Finalise()

	host, err := contract.New(logger.New("contract"), backend, organisations, queue)
	if nil != err {
		log.Criticalf("contract initialise error: %s", err)
		exitwithstatus.Message("contract initialise error: %s", err)
	}

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, &theConfiguration.HttpsRPC, version, host)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// storage is open and clients can be served
	mode.Set(mode.Normal)

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
	mode.Set(mode.Stopped)
}

// open the configured world state with the registry indexes
func openBackend(log *logger.L, database *DatabaseType) (storage.Backend, error) {
	indexes := registry.Indexes()

	switch database.Backend {
	case backendLevelDB:
		db, err := storage.Open(log, database.Name, indexes)
		if nil != err {
			return nil, err
		}
		return db, nil

	case sqlstore.SQLite:
		dsn := database.DSN
		if "" == dsn {
			dsn = database.Name
		}
		db, err := sqlstore.Open(log, sqlstore.SQLite, dsn, indexes)
		if nil != err {
			return nil, err
		}
		return db, nil

	default:
		db, err := sqlstore.Open(log, database.Backend, database.DSN, indexes)
		if nil != err {
			return nil, err
		}
		return db, nil
	}
}
