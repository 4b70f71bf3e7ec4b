// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ckbdump/blockdump"
	"github.com/bitmark-inc/ckbdump/fault"
	"github.com/bitmark-inc/ckbdump/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// colours
const (
	keyColour1 = "\033[1;36m"
	keyColour2 = "\033[1;31m"
	valColour1 = "\033[1;33m"
	valColour2 = "\033[1;34m"
	endColour  = "\033[0m"
)

// returned from the scan callback to end it early
const errStop = fault.ProcessError("stop")

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "list", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "early", HasArg: getoptions.NO_ARGUMENT, Short: 'e'},
		{Long: "colour", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
		{Long: "ascii", HasArg: getoptions.NO_ARGUMENT, Short: 'a'},
		{Long: "decode", HasArg: getoptions.NO_ARGUMENT, Short: 'j'},
		{Long: "database", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "engine", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'E'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["list"]) > 0 {
		fmt.Printf(" columns:\n")
		for c := storage.Column(0); c.Valid(); c += 1 {
			fmt.Printf("       %2d → %s\n", c, c)
		}
		return
	}

	if len(options["help"]) > 0 || 0 == len(arguments) || 1 != len(options["database"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--count=N] [--colour] [--ascii] [--decode] [--engine=E] --database=DIR column [--list] [key-prefix]", program)
	}

	// stop if prefix no longer matches
	earlyStop := len(options["early"]) > 0

	colour := len(options["colour"]) > 0
	ascii := len(options["ascii"]) > 0
	decode := len(options["decode"]) > 0
	verbose := len(options["verbose"]) > 0

	count := 10
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	engineName := ""
	if len(options["engine"]) > 0 {
		engineName = options["engine"][0]
	}
	engine, err := storage.ParseEngine(engineName)
	if nil != err {
		exitwithstatus.Message("%s: engine: %q error: %s", program, engineName, err)
	}

	directory := options["database"][0]
	column, err := storage.ParseColumn(arguments[0])
	if nil != err {
		exitwithstatus.Message("%s: column: %q error: %s", program, arguments[0], err)
	}
	if verbose {
		fmt.Printf("read column: %s from: %q\n", column, directory)
	}

	prefix := []byte(nil)
	if len(arguments) > 1 {
		prefix, err = hex.DecodeString(arguments[1])
		if nil != err {
			exitwithstatus.Message("%s: convert prefix error: %s", program, err)
		}
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "ckb-dumpdb.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// start of main processing
	store, err := storage.Open(directory, engine)
	if nil != err {
		exitwithstatus.Exit(report(program, "storage setup", err))
	}
	defer store.Close()

	if decode {
		a := blockdump.NewAssembler(store, blockdump.DefaultLayout(), logger.New("dump"))
		result, err := a.DumpColumn(column)
		if nil != err {
			exitwithstatus.Exit(report(program, "decode", err))
		}
		buffer, err := json.MarshalIndent(result, "", "  ")
		if nil != err {
			exitwithstatus.Exit(report(program, "encode", err))
		}
		fmt.Printf("%s\n", buffer)
		return
	}

	ck1 := ""
	ck2 := ""
	cv1 := ""
	cv2 := ""
	ce := ""
	if colour {
		ck1 = keyColour1
		ck2 = keyColour2
		cv1 = valColour1
		cv2 = valColour2
		ce = endColour
	}

	l := len(prefix)
	i := 0
	err = store.Map(column, func(key []byte, value []byte) error {
		if bytes.Compare(key, prefix) < 0 {
			return nil
		}
		if earlyStop && len(key) >= l && !bytes.Equal(prefix, key[:l]) {
			fmt.Printf("*** early stop\n")
			return errStop
		}

		fmt.Printf("%d: %sKey: %s%x%s\n", i, ck1, ck2, key, ce)
		if ascii {
			prefix := fmt.Sprintf("%d: %sVal: %s", i, cv1, cv2)
			suffix := ce
			hexDump(prefix, suffix, value)

		} else {
			fmt.Printf("%d: %sVal: %s%x%s\n", i, cv1, cv2, value, ce)
		}

		i += 1
		if i >= count {
			return errStop
		}
		return nil
	})
	if nil != err && errStop != err {
		exitwithstatus.Exit(report(program, "scan", err))
	}
}

// print an error and return the exit status for its class
func report(program string, what string, err error) int {
	fmt.Fprintf(os.Stderr, "%s: %s failed with error: %s\n", program, what, err)
	return fault.ExitStatus(err)
}

// dump hex data on stdout
func hexDump(prefix string, suffix string, data []byte) {
	address := 0
	const bytesPerLine = 32
	for i := 0; i < len(data); i += bytesPerLine {
		fmt.Printf("%s%04x  ", prefix, address)
		address += bytesPerLine
		for j := 0; j < bytesPerLine; j += 1 {
			if bytesPerLine/2 == j {
				fmt.Printf(" ")
			}
			if i+j < len(data) {
				fmt.Printf("%02x ", data[i+j])
			} else {
				fmt.Printf("   ")
			}
		}
		fmt.Printf(" |")
	ascii_loop:
		for j := 0; j < bytesPerLine; j += 1 {
			if i+j < len(data) {
				c := data[i+j]
				if c < 32 || c >= 127 {
					c = '.'
				}
				fmt.Printf("%c", c)

			} else {
				break ascii_loop
			}
		}
		fmt.Printf("|%s\n", suffix)
	}
}
