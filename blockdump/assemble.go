// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdump

import (
	"context"
	"fmt"

	"github.com/bitmark-inc/logger"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/ckbdump/blockkey"
	"github.com/bitmark-inc/ckbdump/blockrecord"
	"github.com/bitmark-inc/ckbdump/fault"
	"github.com/bitmark-inc/ckbdump/storage"
	"github.com/bitmark-inc/ckbdump/value"
)

// stages of assembling one height, each needs one lookup
type stage int

const (
	stageInit stage = iota
	stageHashResolved
	stageHeaderLoaded
	stageUnclesLoaded
	stageTxCountLoaded
	stageTransactionsLoaded
	stageProposalsLoaded
	stageExtensionChecked
	stageDone
)

func (s stage) String() string {
	switch s {
	case stageInit:
		return "init"
	case stageHashResolved:
		return "hash resolved"
	case stageHeaderLoaded:
		return "header loaded"
	case stageUnclesLoaded:
		return "uncles loaded"
	case stageTxCountLoaded:
		return "transaction count loaded"
	case stageTransactionsLoaded:
		return "transactions loaded"
	case stageProposalsLoaded:
		return "proposals loaded"
	case stageExtensionChecked:
		return "extension checked"
	case stageDone:
		return "done"
	default:
		return "unknown"
	}
}

// Assembler - builds blocks from a store
//
// holds no state between heights so one Assembler may be shared by
// several goroutines
type Assembler struct {
	store  storage.Handle
	layout Layout
	log    *logger.L
}

// NewAssembler - create an assembler for a store with a given layout
func NewAssembler(store storage.Handle, layout Layout, log *logger.L) *Assembler {
	return &Assembler{
		store:  store,
		layout: layout,
		log:    log,
	}
}

// what is needed from each transaction for the auxiliary lookups
type transactionRef struct {
	hash    []byte
	outputs int
}

// Assemble - build the block at one height
func (a *Assembler) Assemble(height uint64) (*Result, error) {
	current := stageInit
	fail := func(err error) (*Result, error) {
		a.log.Errorf("height: %d  after: %s  error: %s", height, current, err)
		return nil, fmt.Errorf("height: %d  after: %s: %w", height, current, err)
	}

	hashValue, err := a.required(storage.ColumnIndex, blockkey.Index(height))
	if nil != err {
		return fail(err)
	}
	hash, ok := hashValue.(value.Bytes)
	if !ok || blockkey.HashSize != len(hash) {
		return fail(fault.ErrInvalidHashLength)
	}
	current = stageHashResolved
	a.log.Debugf("height: %d  hash: %x", height, []byte(hash))

	result := &Result{
		Height: height,
	}

	hashKey, err := blockkey.Hash(hash)
	if nil != err {
		return fail(err)
	}

	result.Block.Header, err = a.required(storage.ColumnBlockHeader, hashKey)
	if nil != err {
		return fail(err)
	}
	current = stageHeaderLoaded

	result.Block.Uncles, err = a.required(storage.ColumnBlockUncle, hashKey)
	if nil != err {
		return fail(err)
	}
	current = stageUnclesLoaded

	countKey, err := blockkey.NumberHash(height, hash)
	if nil != err {
		return fail(err)
	}
	countValue, err := a.required(storage.ColumnNumberHash, countKey)
	if nil != err {
		return fail(err)
	}
	count, ok := countValue.(value.Scalar)
	if !ok {
		return fail(fault.ErrInvalidCount)
	}
	current = stageTxCountLoaded

	result.Block.Transactions = value.List{}
	refs := []transactionRef(nil)
	for i := uint64(0); i < count.Value; i += 1 {
		txKey, err := blockkey.Transaction(hash, uint32(i))
		if nil != err {
			return fail(err)
		}
		tx, err := a.required(storage.ColumnBlockBody, txKey)
		if nil != err {
			return fail(fmt.Errorf("transaction: %d: %w", i, err))
		}
		result.Block.Transactions = append(result.Block.Transactions, tx)
		refs = append(refs, reference(tx))
	}
	current = stageTransactionsLoaded

	result.Block.Proposals, err = a.required(storage.ColumnBlockProposalIds, hashKey)
	if nil != err {
		return fail(err)
	}
	current = stageProposalsLoaded

	result.Block.Extension, err = a.optional(height, storage.ColumnBlockExtension, hashKey)
	if nil != err {
		return fail(err)
	}
	current = stageExtensionChecked

	for _, ref := range refs {
		err = a.auxiliary(height, ref, result)
		if nil != err {
			return fail(err)
		}
	}
	result.BlockExt, err = a.optional(height, storage.ColumnBlockExt, hashKey)
	if nil != err {
		return fail(err)
	}
	current = stageDone

	a.log.Infof("height: %d  transactions: %d  %s", height, len(refs), current)
	return result, nil
}

// fetch and decode a record that must exist
func (a *Assembler) required(column storage.Column, key []byte) (value.Value, error) {
	data, found, err := a.store.Get(column, key)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%s key: %x: %w", column, key, fault.ErrKeyNotFound)
	}
	v, err := blockrecord.Decode(a.layout.Schema(column), data)
	if nil != err {
		return nil, fmt.Errorf("%s key: %x: %w", column, key, err)
	}
	if nil == v {
		return nil, fmt.Errorf("%s key: %x: %w", column, key, fault.ErrMissingRecord)
	}
	return v, nil
}

// fetch and decode a record that may be left out
//
// a missing key or a record that does not decode is omitted; a read
// failure is returned
func (a *Assembler) optional(height uint64, column storage.Column, key []byte) (value.Value, error) {
	data, found, err := a.store.Get(column, key)
	return a.decodeOptional(height, column, key, storage.Result{Value: data, Found: found, Err: err})
}

func (a *Assembler) decodeOptional(height uint64, column storage.Column, key []byte, r storage.Result) (value.Value, error) {
	if nil != r.Err {
		return nil, fmt.Errorf("%s key: %x: %w", column, key, r.Err)
	}
	if !r.Found {
		a.log.Tracef("height: %d  %s key: %x  not found", height, column, key)
		return nil, nil
	}
	v, err := blockrecord.Decode(a.layout.Schema(column), r.Value)
	if nil != err {
		a.log.Warnf("height: %d  %s key: %x  decode error: %s", height, column, key, err)
		return nil, nil
	}
	return v, nil
}

// transaction info and one cell and cell data entry per output, all
// read with a single multi-get
func (a *Assembler) auxiliary(height uint64, ref transactionRef, result *Result) error {
	infoKey, err := blockkey.TransactionInfo(ref.hash)
	if nil != err {
		a.log.Warnf("height: %d  transaction hash: %x  error: %s", height, ref.hash, err)
		return nil
	}

	keys := make([]storage.Key, 0, 1+2*ref.outputs)
	keys = append(keys, storage.Key{Column: storage.ColumnTransactionInfo, Key: infoKey})
	for i := 0; i < ref.outputs; i += 1 {
		cellKey, err := blockkey.Cell(infoKey, uint32(i))
		if nil != err {
			return err
		}
		dataKey, err := blockkey.CellData(infoKey, uint32(i))
		if nil != err {
			return err
		}
		keys = append(keys,
			storage.Key{Column: storage.ColumnCell, Key: cellKey},
			storage.Key{Column: storage.ColumnCellData, Key: dataKey},
		)
	}

	results := a.store.MultiGet(keys)
	if len(results) != len(keys) {
		return fmt.Errorf("multi-get returned: %d results for: %d keys: %w", len(results), len(keys), fault.ErrInvalidCount)
	}

	for i, k := range keys {
		v, err := a.decodeOptional(height, k.Column, k.Key, results[i])
		if nil != err {
			return err
		}
		if nil == v {
			continue
		}
		switch k.Column {
		case storage.ColumnTransactionInfo:
			result.Info = append(result.Info, v)
		case storage.ColumnCell:
			result.Entry = append(result.Entry, v)
		case storage.ColumnCellData:
			result.DataEntry = append(result.DataEntry, v)
		}
	}
	return nil
}

// hash and output count of a decoded transaction view
func reference(tx value.Value) transactionRef {
	ref := transactionRef{}
	if h, ok := value.Lookup(tx, "hash"); ok {
		if b, ok := h.(value.Bytes); ok {
			ref.hash = b
		}
	}
	if outputs, ok := value.Lookup(tx, "data", "raw", "outputs"); ok {
		if l, ok := outputs.(value.List); ok {
			ref.outputs = len(l)
		}
	}
	return ref
}

// Range - assemble heights [start, end) using up to workers goroutines
//
// emit is called once per height, possibly concurrently and in any
// order; the first error stops the remaining heights and is returned
func (a *Assembler) Range(ctx context.Context, start uint64, end uint64, workers int, emit func(*Result) error) error {
	if start > end {
		return fault.ErrInvalidHeightRange
	}
	if start == end {
		return nil
	}
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

loop:
	for h := start; h < end; h += 1 {
		select {
		case <-gctx.Done():
			break loop
		default:
		}

		height := h
		g.Go(func() error {
			if err := gctx.Err(); nil != err {
				return err
			}
			result, err := a.Assemble(height)
			if nil != err {
				return err
			}
			return emit(result)
		})
	}

	err := g.Wait()
	if nil != err {
		return err
	}
	return ctx.Err()
}
