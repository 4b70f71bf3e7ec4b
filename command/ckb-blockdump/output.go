// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/ckbdump/blockdump"
	"github.com/bitmark-inc/ckbdump/fault"
)

// write one block as <directory>/<height>.json
func writeResult(directory string, result *blockdump.Result) error {
	filename := filepath.Join(directory, strconv.FormatUint(result.Height, 10)+".json")
	return printJsonToFile(filename, result)
}

// output a JSON block to a file
func printJsonToFile(filename string, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "    ")
	if nil != err {
		return &fault.OutputError{Name: filename, Err: err}
	}
	file, err := os.Create(filename)
	if nil != err {
		return &fault.OutputError{Name: filename, Err: err}
	}
	_, err = file.Write(b)
	if nil != err {
		file.Close()
		return &fault.OutputError{Name: filename, Err: err}
	}
	err = file.Close()
	if nil != err {
		return &fault.OutputError{Name: filename, Err: err}
	}
	return nil
}
