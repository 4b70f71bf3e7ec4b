// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"errors"

	"github.com/cockroachdb/pebble"
)

type pebblePartition struct {
	db *pebble.DB
}

func openPebble(path string) (partition, error) {
	options := &pebble.Options{
		ErrorIfNotExists: true,
		ReadOnly:         true,
	}
	db, err := pebble.Open(path, options)
	if nil != err {
		return nil, err
	}
	return &pebblePartition{db: db}, nil
}

// the value from pebble is only valid until the closer is closed
func (p *pebblePartition) get(key []byte) ([]byte, bool, error) {
	v, closer, err := p.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, false, nil
	}
	if nil != err {
		return nil, false, err
	}
	defer closer.Close()

	value := make([]byte, len(v))
	copy(value, v)
	return value, true, nil
}

func (p *pebblePartition) iterate(f func(key []byte, value []byte) error) error {
	iter, err := p.db.NewIter(nil)
	if nil != err {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		err := f(iter.Key(), iter.Value())
		if nil != err {
			return callbackError{err: err}
		}
	}
	return iter.Error()
}

func (p *pebblePartition) close() error {
	return p.db.Close()
}
