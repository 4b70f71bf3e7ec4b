// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sort"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ckbdump/fault"
)

// Handle - read access to a partitioned store
type Handle interface {
	Get(Column, []byte) ([]byte, bool, error)
	MultiGet([]Key) []Result
	Map(Column, func(key []byte, value []byte) error) error
	Columns() []Column
	Close() error
}

// Key - a key within a partition
type Key struct {
	Column Column
	Key    []byte
}

// Result - outcome of one lookup
//
// a missing key has Found false and a nil Err
type Result struct {
	Value []byte
	Found bool
	Err   error
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// one open database
type partition interface {
	get(key []byte) ([]byte, bool, error)
	iterate(func(key []byte, value []byte) error) error
	close() error
}

// Store - a set of open partitions
type Store struct {
	sync.RWMutex
	path       string
	log        *logger.L
	partitions map[Column]partition
}

// Get - read one value
//
// the returned slice belongs to the caller
func (s *Store) Get(column Column, key []byte) ([]byte, bool, error) {
	s.RLock()
	defer s.RUnlock()

	p, err := s.partition(column)
	if nil != err {
		return nil, false, err
	}
	value, found, err := p.get(key)
	if nil != err {
		s.log.Errorf("get: %s  key: %x  error: %s", column, key, err)
		return nil, false, &fault.IOError{
			Partition: column.String(),
			Key:       key,
			Err:       err,
		}
	}
	return value, found, nil
}

// MultiGet - read several values, results in the same order as keys
func (s *Store) MultiGet(keys []Key) []Result {
	results := make([]Result, len(keys))
	for i, k := range keys {
		results[i].Value, results[i].Found, results[i].Err = s.Get(k.Column, k.Key)
	}
	return results
}

// Map - call f for every key/value of a partition in key order
//
// key and value are only valid for the duration of the call
func (s *Store) Map(column Column, f func(key []byte, value []byte) error) error {
	s.RLock()
	defer s.RUnlock()

	p, err := s.partition(column)
	if nil != err {
		return err
	}
	err = p.iterate(f)
	if nil != err && !isCallbackError(err) {
		return &fault.IOError{
			Partition: column.String(),
			Err:       err,
		}
	}
	return unwrapCallbackError(err)
}

// Columns - the partitions that are open, in order
func (s *Store) Columns() []Column {
	s.RLock()
	defer s.RUnlock()

	columns := make([]Column, 0, len(s.partitions))
	for c := range s.partitions {
		columns = append(columns, c)
	}
	sort.Slice(columns, func(i, j int) bool { return columns[i] < columns[j] })
	return columns
}

// Close - close all partitions
func (s *Store) Close() error {
	s.Lock()
	defer s.Unlock()

	var first error
	for c, p := range s.partitions {
		err := p.close()
		if nil != err {
			s.log.Errorf("close: %s  error: %s", c, err)
			if nil == first {
				first = err
			}
		}
	}
	s.partitions = nil
	s.log.Infof("closed: %q", s.path)
	return first
}

// must hold the read lock
func (s *Store) partition(column Column) (partition, error) {
	if nil == s.partitions {
		return nil, fault.ErrNotInitialised
	}
	p, ok := s.partitions[column]
	if !ok {
		return nil, fault.ErrPartitionNotOpen
	}
	return p, nil
}

// ScanAll - read a whole partition into memory
func ScanAll(h Handle, column Column) ([]Element, error) {
	elements := []Element{}
	err := h.Map(column, func(key []byte, value []byte) error {
		k := make([]byte, len(key))
		copy(k, key)
		v := make([]byte, len(value))
		copy(v, value)
		elements = append(elements, Element{Key: k, Value: v})
		return nil
	})
	if nil != err {
		return nil, err
	}
	return elements, nil
}

// errors from a Map callback are returned unchanged rather than
// reported as I/O failures
type callbackError struct {
	err error
}

func (e callbackError) Error() string { return e.err.Error() }

func isCallbackError(err error) bool {
	_, ok := err.(callbackError)
	return ok
}

func unwrapCallbackError(err error) error {
	if e, ok := err.(callbackError); ok {
		return e.err
	}
	return err
}
