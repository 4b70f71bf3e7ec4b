// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ckbdump/configuration"
	"github.com/bitmark-inc/ckbdump/storage"
	"github.com/bitmark-inc/ckbdump/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory   = "."
	defaultDatabase        = "db"
	defaultOutputDirectory = "blocks"

	defaultLogDirectory = "log"
	defaultLogFile      = "ckb-blockdump.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// default log level, and the level used by --verbose
const (
	defaultLogLevel = "error"
	verboseLogLevel = "info"
)

// DatabaseType - location and format of the chain store
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Engine    string `gluamapper:"engine" json:"engine"`
}

// Configuration - everything the program reads from its configuration file
type Configuration struct {
	DataDirectory   string               `gluamapper:"data_directory" json:"data_directory"`
	Database        DatabaseType         `gluamapper:"database" json:"database"`
	OutputDirectory string               `gluamapper:"output_directory" json:"output_directory"`
	Workers         int                  `gluamapper:"workers" json:"workers"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`
}

// command line values that replace those of the configuration file
type overrides struct {
	database string
	engine   string
	output   string
	workers  int
	verbose  bool
}

// will read decode and verify the configuration
//
// with no file name the defaults are relative to the current directory
func getConfiguration(configurationFileName string, o overrides) (*Configuration, error) {

	options := &Configuration{
		DataDirectory:   defaultDataDirectory,
		Database:        DatabaseType{Directory: defaultDatabase, Engine: string(storage.EngineLevelDB)},
		OutputDirectory: defaultOutputDirectory,
		Workers:         runtime.NumCPU(),

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    LoglevelMap{logger.DefaultTag: defaultLogLevel},
		},
	}

	currentDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}
	baseDirectory := currentDirectory

	if "" != configurationFileName {
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		if !util.EnsureFileExists(configurationFileName) {
			return nil, fmt.Errorf("configuration file: %q does not exist", configurationFileName)
		}

		// absolute path to the main directory
		baseDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}
	}

	// command line paths are relative to the current directory
	if "" != o.database {
		options.Database.Directory = util.EnsureAbsolute(currentDirectory, o.database)
	}
	if "" != o.engine {
		options.Database.Engine = o.engine
	}
	if "" != o.output {
		options.OutputDirectory = util.EnsureAbsolute(currentDirectory, o.output)
	}
	if o.workers > 0 {
		options.Workers = o.workers
	}
	if o.verbose {
		options.Logging.Levels = LoglevelMap{logger.DefaultTag: verboseLogLevel}
	}

	if options.Workers < 1 {
		options.Workers = 1
	}

	if _, err := storage.ParseEngine(options.Database.Engine); nil != err {
		return nil, fmt.Errorf("engine: %q is not supported", options.Database.Engine)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	}
	options.DataDirectory = util.EnsureAbsolute(baseDirectory, options.DataDirectory)

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
		&options.OutputDirectory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// fail if the log file name is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.OutputDirectory,
		options.Logging.Directory,
	} {
		if err := util.EnsureDirectory(d); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
