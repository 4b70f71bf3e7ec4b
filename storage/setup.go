// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ckbdump/fault"
)

// Engine - the database library a store was written with
type Engine string

// supported engines
const (
	EngineLevelDB Engine = "leveldb"
	EnginePebble  Engine = "pebble"
)

var openers = map[Engine]func(string) (partition, error){
	EngineLevelDB: openLevelDB,
	EnginePebble:  openPebble,
}

// ParseEngine - validate an engine name, empty selects LevelDB
func ParseEngine(s string) (Engine, error) {
	if "" == s {
		return EngineLevelDB, nil
	}
	e := Engine(s)
	if _, ok := openers[e]; !ok {
		return "", fault.ErrInvalidEngine
	}
	return e, nil
}

// Open - open every partition found below path, read-only
//
// a partition is a sub-directory named by its column id; unknown
// directory names are ignored
func Open(path string, engine Engine) (*Store, error) {
	log := logger.New("storage")

	opener, ok := openers[engine]
	if !ok {
		return nil, fault.ErrInvalidEngine
	}

	entries, err := os.ReadDir(path)
	if nil != err {
		return nil, &fault.OpenError{Path: path, Err: err}
	}

	store := &Store{
		path:       path,
		log:        log,
		partitions: make(map[Column]partition),
	}

	ok = false
	defer func() {
		if !ok {
			for _, p := range store.partitions {
				p.close()
			}
		}
	}()

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		n, err := strconv.ParseUint(entry.Name(), 10, 8)
		if nil != err || !Column(n).Valid() {
			log.Debugf("skip: %q", entry.Name())
			continue
		}
		column := Column(n)
		partitionPath := filepath.Join(path, entry.Name())

		p, err := opener(partitionPath)
		if nil != err {
			log.Errorf("open: %s  path: %q  error: %s", column, partitionPath, err)
			return nil, &fault.OpenError{Path: partitionPath, Err: err}
		}
		store.partitions[column] = p
		log.Debugf("opened: %s  engine: %s", column, engine)
	}

	if 0 == len(store.partitions) {
		return nil, &fault.OpenError{Path: path, Err: fault.ErrNoPartitions}
	}

	log.Infof("opened: %q  partitions: %d", path, len(store.partitions))
	ok = true
	return store, nil
}
