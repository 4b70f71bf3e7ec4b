// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"sort"

	"github.com/bitmark-inc/ckbdump/fault"
	"github.com/bitmark-inc/ckbdump/molecule"
	"github.com/bitmark-inc/ckbdump/value"
)

// Schema - identifies one record type
type Schema int

// the record types - keep Invalid first
const (
	Invalid Schema = iota
	Raw
	Uint32
	Uint64
	Byte32
	Bytes
	HeaderWithHash
	HeaderView
	TransactionView
	UncleBlockVecView
	ProposalShortIdVec
	TransactionInfo
	BlockExt
	EpochExt
	CellEntry
	CellDataEntry
	Header
	Transaction
	UncleBlock
	Script
	CellOutput
)

// decode a verified or unverified segment
type decoder func(molecule.Segment) (value.Value, error)

type schemaInfo struct {
	name   string
	decode decoder
}

var schemas = map[Schema]schemaInfo{
	Raw:                {"raw", decodeRaw},
	Uint32:             {"uint32", decodeUint32},
	Uint64:             {"uint64", decodeUint64},
	Byte32:             {"byte32", decodeByte32},
	Bytes:              {"bytes", decodeBytes},
	HeaderWithHash:     {"header-with-hash", decodeHeaderWithHash},
	HeaderView:         {"header-view", decodeHeaderView},
	TransactionView:    {"transaction-view", decodeTransactionView},
	UncleBlockVecView:  {"uncle-block-vec-view", decodeUncleBlockVecView},
	ProposalShortIdVec: {"proposal-short-id-vec", decodeProposalShortIdVec},
	TransactionInfo:    {"transaction-info", decodeTransactionInfo},
	BlockExt:           {"block-ext", decodeBlockExt},
	EpochExt:           {"epoch-ext", decodeEpochExt},
	CellEntry:          {"cell-entry", decodeCellEntry},
	CellDataEntry:      {"cell-data-entry", decodeCellDataEntry},
	Header:             {"header", decodeHeader},
	Transaction:        {"transaction", decodeTransaction},
	UncleBlock:         {"uncle-block", decodeUncleBlock},
	Script:             {"script", decodeScript},
	CellOutput:         {"cell-output", decodeCellOutput},
}

// String - printable name of a schema
func (s Schema) String() string {
	if info, ok := schemas[s]; ok {
		return info.name
	}
	return "invalid"
}

// Names - all schema names in sorted order
func Names() []string {
	names := make([]string, 0, len(schemas))
	for _, info := range schemas {
		names = append(names, info.name)
	}
	sort.Strings(names)
	return names
}

// ParseSchema - find a schema from its name
func ParseSchema(name string) (Schema, error) {
	for s, info := range schemas {
		if info.name == name {
			return s, nil
		}
	}
	return Invalid, fault.ErrInvalidSchema
}

// Decode - decode a stored value
//
// an empty buffer is an absent record and returns nil without error
func Decode(schema Schema, data []byte) (value.Value, error) {
	info, ok := schemas[schema]
	if !ok {
		return nil, fault.ErrInvalidSchema
	}
	if 0 == len(data) {
		return nil, nil
	}
	return info.decode(molecule.New(data))
}
