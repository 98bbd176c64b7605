// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
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

	"github.com/agritrace/anchord/anchor"
	"github.com/agritrace/anchord/background"
	"github.com/agritrace/anchord/mode"
	"github.com/agritrace/anchord/settlement"
	"github.com/agritrace/anchord/storage"
	"github.com/agritrace/anchord/token"
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

	// these commands do not require the configuration
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

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Chain)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	// general info
	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %q", theConfiguration.Database)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, false)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// build the ledgers over their storage pools
	anchorLedger := anchor.New(storage.Pool.Anchors, storage.Pool.Aggregations)
	tokenLedger := token.New(
		storage.Pool.Batches,
		storage.Pool.BatchCode,
		storage.Pool.Balances,
		storage.Pool.Approvals,
		storage.Pool.Lineage,
		storage.Pool.Counters,
	)
	settlementLedger := settlement.New(storage.Pool.Settlements)

	ledgers := &ledgerSet{
		log:        logger.New("heartbeat"),
		anchor:     anchorLedger,
		token:      tokenLedger,
		settlement: settlementLedger,
		counters:   storage.Pool.Counters,
	}

	// start background processes
	log.Info("start background…")
	processes := background.Processes{
		ledgers,
	}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	// the ledgers are ready to accept transactions
	mode.Set(mode.Normal)

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("Type CTRL-C to stop\n")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down...\n")
	}

	mode.Set(mode.Stopped)
}

// periodic state summary logged while the daemon runs
type ledgerSet struct {
	log        *logger.L
	anchor     *anchor.Ledger
	token      *token.Ledger
	settlement *settlement.Ledger
	counters   storage.Handle
}

const heartbeatInterval = 60 * time.Second

func (l *ledgerSet) Run(args interface{}, shutdown <-chan struct{}) {

	l.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-time.After(heartbeatInterval):
			allocated, _ := l.counters.GetN([]byte("batch"))
			l.log.Infof("mode: %s  batches allocated: %d", mode.String(), allocated)
			if allocated > 0 {
				metadata, err := l.token.Metadata(allocated)
				if nil == err {
					l.log.Infof("last batch: %q  container: %v  settled: %v",
						metadata.Code, metadata.IsContainer, l.settlement.IsSettled(allocated))
				}
			}
		}
	}

	l.log.Info("shutting down…")
	l.log.Flush()
}
