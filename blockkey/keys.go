// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockkey - build the lookup keys for each partition
//
// Key formats:
//
//   index            height(LE u64)
//   header, uncles   block hash
//   proposals, ext   block hash
//   number-hash      height(LE u64) ++ block hash
//   body             block hash ++ ordinal(BE u32)
//   transaction info tx hash
//   cell, cell data  tx hash ++ ordinal(LE u32)
//
// Transaction ordinals are big endian so a block's transactions sort
// in order; cell ordinals are little endian as written by the node.
package blockkey

import (
	"encoding/binary"

	"github.com/bitmark-inc/ckbdump/fault"
)

// byte sizes of key parts
const (
	HashSize    = 32
	HeightSize  = 8
	OrdinalSize = 4
)

// Index - key of the height to hash index
func Index(height uint64) []byte {
	key := make([]byte, HeightSize)
	binary.LittleEndian.PutUint64(key, height)
	return key
}

// Hash - key of any partition keyed by a block hash
func Hash(hash []byte) ([]byte, error) {
	if HashSize != len(hash) {
		return nil, fault.ErrInvalidHashLength
	}
	key := make([]byte, HashSize)
	copy(key, hash)
	return key, nil
}

// NumberHash - key of the transaction count for a block
func NumberHash(height uint64, hash []byte) ([]byte, error) {
	if HashSize != len(hash) {
		return nil, fault.ErrInvalidHashLength
	}
	key := make([]byte, HeightSize+HashSize)
	binary.LittleEndian.PutUint64(key, height)
	copy(key[HeightSize:], hash)
	return key, nil
}

// Transaction - key of the ordinal-th transaction in a block
func Transaction(blockHash []byte, ordinal uint32) ([]byte, error) {
	return withOrdinal(blockHash, ordinal, binary.BigEndian)
}

// TransactionInfo - key of the location record of a transaction
func TransactionInfo(txHash []byte) ([]byte, error) {
	return Hash(txHash)
}

// Cell - key of the ordinal-th output of a transaction
func Cell(txHash []byte, ordinal uint32) ([]byte, error) {
	return withOrdinal(txHash, ordinal, binary.LittleEndian)
}

// CellData - key of the data of the ordinal-th output of a transaction
func CellData(txHash []byte, ordinal uint32) ([]byte, error) {
	return withOrdinal(txHash, ordinal, binary.LittleEndian)
}

func withOrdinal(hash []byte, ordinal uint32, order binary.ByteOrder) ([]byte, error) {
	if HashSize != len(hash) {
		return nil, fault.ErrInvalidHashLength
	}
	key := make([]byte, HashSize+OrdinalSize)
	copy(key, hash)
	order.PutUint32(key[HashSize:], ordinal)
	return key, nil
}
