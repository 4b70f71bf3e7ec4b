// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ckbdump/blockdump"
	"github.com/bitmark-inc/ckbdump/fault"
	"github.com/bitmark-inc/ckbdump/storage"
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
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "database", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "engine", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'e'},
		{Long: "output", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'o'},
		{Long: "workers", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'w'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	// not an error: nothing is read or written
	if len(options["help"]) > 0 || len(arguments) < 2 {
		fmt.Printf("usage: %s [--help] [--verbose] [--config-file=FILE] [--database=DIR] [--engine=leveldb|pebble] [--output=DIR] [--workers=N] start end\n", program)
		fmt.Printf("  a relative --database or --output is relative to the current directory\n")
		return
	}

	start, err := strconv.ParseUint(arguments[0], 10, 64)
	if nil != err {
		exitwithstatus.Message("%s: start: %q error: %s", program, arguments[0], err)
	}
	end, err := strconv.ParseUint(arguments[1], 10, 64)
	if nil != err {
		exitwithstatus.Message("%s: end: %q error: %s", program, arguments[1], err)
	}

	o := overrides{
		verbose: len(options["verbose"]) > 0,
	}
	if len(options["database"]) > 0 {
		o.database = options["database"][0]
	}
	if len(options["engine"]) > 0 {
		o.engine = options["engine"][0]
	}
	if len(options["output"]) > 0 {
		o.output = options["output"][0]
	}
	if len(options["workers"]) > 0 {
		o.workers, err = strconv.Atoi(options["workers"][0])
		if nil != err || o.workers < 1 {
			exitwithstatus.Message("%s: invalid workers: %q", program, options["workers"][0])
		}
	}

	configurationFile := ""
	if len(options["config-file"]) > 0 {
		configurationFile = options["config-file"][0]
	}

	err = dump(start, end, configurationFile, o)
	if nil != err {
		fmt.Fprintf(os.Stderr, "%s: %s\n", program, err)
		exitwithstatus.Exit(fault.ExitStatus(err))
	}
}

// write the blocks [start, end) as configured
//
// an empty range is a no-op: no directory is created and the store
// is not opened
func dump(start uint64, end uint64, configurationFile string, o overrides) error {
	if start == end {
		return nil
	}

	masterConfiguration, err := getConfiguration(configurationFile, o)
	if nil != err {
		return fmt.Errorf("configuration error: %w", err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		return fmt.Errorf("logger setup failed with error: %w", err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Infof("database: %q  engine: %s", masterConfiguration.Database.Directory, masterConfiguration.Database.Engine)
	log.Infof("output: %q  workers: %d", masterConfiguration.OutputDirectory, masterConfiguration.Workers)

	engine, _ := storage.ParseEngine(masterConfiguration.Database.Engine)
	store, err := storage.Open(masterConfiguration.Database.Directory, engine)
	if nil != err {
		log.Criticalf("storage open error: %s", err)
		return fmt.Errorf("storage open error: %w", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	assembler := blockdump.NewAssembler(store, blockdump.DefaultLayout(), logger.New("blockdump"))
	err = assembler.Range(ctx, start, end, masterConfiguration.Workers, func(result *blockdump.Result) error {
		return writeResult(masterConfiguration.OutputDirectory, result)
	})
	if nil != err {
		log.Criticalf("dump: [%d, %d) error: %s", start, end, err)
		return fmt.Errorf("dump error: %w", err)
	}

	log.Infof("dumped: [%d, %d)", start, end)
	return nil
}
