// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
)

type levelPartition struct {
	db *leveldb.DB
}

func openLevelDB(path string) (partition, error) {
	options := &ldb_opt.Options{
		ErrorIfMissing: true,
		ReadOnly:       true,
	}
	db, err := leveldb.OpenFile(path, options)
	if nil != err {
		return nil, err
	}
	return &levelPartition{db: db}, nil
}

// leveldb returns a fresh slice from Get so no copy is needed
func (p *levelPartition) get(key []byte) ([]byte, bool, error) {
	value, err := p.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, false, nil
	}
	if nil != err {
		return nil, false, err
	}
	return value, true, nil
}

func (p *levelPartition) iterate(f func(key []byte, value []byte) error) error {
	iter := p.db.NewIterator(nil, nil)
	defer iter.Release()

	for iter.Next() {
		// contents of the returned slices must not be modified, and are
		// only valid until the next call to Next
		err := f(iter.Key(), iter.Value())
		if nil != err {
			return callbackError{err: err}
		}
	}
	return iter.Error()
}

func (p *levelPartition) close() error {
	return p.db.Close()
}
