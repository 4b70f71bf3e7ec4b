// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"github.com/bitmark-inc/ckbdump/molecule"
	"github.com/bitmark-inc/ckbdump/value"
)

// byte sizes for the raw header fields
const (
	VersionSize          = Uint32Size  // block version
	CompactTargetSize    = Uint32Size  // difficulty in compact form
	TimestampSize        = Uint64Size  // milliseconds since 1970-01-01T00:00 UTC
	NumberSize           = Uint64Size  // block height
	EpochSize            = Uint64Size  // packed epoch number, index and length
	ParentHashSize       = HashSize    // hash of the previous header
	TransactionsRootSize = HashSize    // merkle root of transactions and witnesses
	ProposalsHashSize    = HashSize    // hash of the proposal ids and uncles
	ExtraHashSize        = HashSize    // hash of uncles and extension
	DaoSize              = HashSize    // DAO accumulator
	NonceSize            = Uint128Size // proof of work nonce
)

// record sizes
const (
	RawHeaderSize = VersionSize + CompactTargetSize + TimestampSize + NumberSize + EpochSize +
		ParentHashSize + TransactionsRootSize + ProposalsHashSize + ExtraHashSize + DaoSize
	HeaderSize = RawHeaderSize + NonceSize
)

var rawHeaderFields = []structField{
	{"version", VersionSize, decodeUint32},
	{"compact_target", CompactTargetSize, decodeUint32},
	{"timestamp", TimestampSize, decodeUint64},
	{"number", NumberSize, decodeUint64},
	{"epoch", EpochSize, decodeUint64},
	{"parent_hash", ParentHashSize, decodeByte32},
	{"transactions_root", TransactionsRootSize, decodeByte32},
	{"proposals_hash", ProposalsHashSize, decodeByte32},
	{"extra_hash", ExtraHashSize, decodeByte32},
	{"dao", DaoSize, decodeByte32},
}

func decodeRawHeader(s molecule.Segment) (value.Value, error) {
	return decodeStruct(s, rawHeaderFields)
}

var headerFields = []structField{
	{"raw", RawHeaderSize, decodeRawHeader},
	{"nonce", NonceSize, decodeUint128},
}

func decodeHeader(s molecule.Segment) (value.Value, error) {
	return decodeStruct(s, headerFields)
}

// header column: 32 byte hash followed by the header, flattened to
// hash, raw, nonce
func decodeHeaderWithHash(s molecule.Segment) (value.Value, error) {
	hash, rest, err := splitHash(s)
	if nil != err {
		return nil, err
	}
	header, err := decodeHeader(rest)
	if nil != err {
		return nil, err
	}

	record := value.NewRecord(3)
	record.Set("hash", hash)
	for _, f := range header.(*value.Record).Fields() {
		record.Set(f.Name, f.Value)
	}
	return record, nil
}

// 32 byte hash followed by the header as a nested data field
func decodeHeaderView(s molecule.Segment) (value.Value, error) {
	hash, rest, err := splitHash(s)
	if nil != err {
		return nil, err
	}
	header, err := decodeHeader(rest)
	if nil != err {
		return nil, err
	}

	record := value.NewRecord(2)
	record.Set("hash", hash)
	record.Set("data", header)
	return record, nil
}

// separate a leading hash from the rest of the record
func splitHash(s molecule.Segment) (value.Value, molecule.Segment, error) {
	head, rest, err := s.Split(HashSize)
	if nil != err {
		return nil, molecule.Segment{}, err
	}
	return value.Bytes(head.Copy()), rest, nil
}

var uncleBlockFields = []tableField{
	{"header", decodeHeader},
	{"proposals", decodeProposalShortIdVec},
}

func decodeUncleBlock(s molecule.Segment) (value.Value, error) {
	return decodeTable(s, uncleBlockFields)
}

func decodeUncleBlockVec(s molecule.Segment) (value.Value, error) {
	return decodeDynVec(s, decodeUncleBlock)
}

var uncleBlockVecViewFields = []tableField{
	{"hashes", decodeByte32Vec},
	{"data", decodeUncleBlockVec},
}

// uncles column: hashes of the uncles and the uncles themselves
func decodeUncleBlockVecView(s molecule.Segment) (value.Value, error) {
	return decodeTable(s, uncleBlockVecViewFields)
}
