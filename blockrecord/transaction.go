// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"github.com/bitmark-inc/ckbdump/molecule"
	"github.com/bitmark-inc/ckbdump/value"
)

// struct sizes
const (
	OutPointSize        = HashSize + Uint32Size
	CellInputSize       = Uint64Size + OutPointSize
	CellDepSize         = OutPointSize + ByteSize
	TransactionKeySize  = HashSize + Uint32Size
	TransactionInfoSize = Uint64Size + Uint64Size + TransactionKeySize
)

var scriptFields = []tableField{
	{"code_hash", decodeByte32},
	{"hash_type", decodeByte},
	{"args", decodeBytes},
}

func decodeScript(s molecule.Segment) (value.Value, error) {
	return decodeTable(s, scriptFields)
}

var outPointFields = []structField{
	{"tx_hash", HashSize, decodeByte32},
	{"index", Uint32Size, decodeUint32},
}

func decodeOutPoint(s molecule.Segment) (value.Value, error) {
	return decodeStruct(s, outPointFields)
}

var cellInputFields = []structField{
	{"since", Uint64Size, decodeUint64},
	{"previous_output", OutPointSize, decodeOutPoint},
}

func decodeCellInput(s molecule.Segment) (value.Value, error) {
	return decodeStruct(s, cellInputFields)
}

var cellDepFields = []structField{
	{"out_point", OutPointSize, decodeOutPoint},
	{"dep_type", ByteSize, decodeByte},
}

func decodeCellDep(s molecule.Segment) (value.Value, error) {
	return decodeStruct(s, cellDepFields)
}

var cellOutputFields = []tableField{
	{"capacity", decodeUint64},
	{"lock", decodeScript},
	{"type_", optional(decodeScript)},
}

func decodeCellOutput(s molecule.Segment) (value.Value, error) {
	return decodeTable(s, cellOutputFields)
}

var rawTransactionFields = []tableField{
	{"version", decodeUint32},
	{"cell_deps", func(s molecule.Segment) (value.Value, error) {
		return decodeFixVec(s, CellDepSize, decodeCellDep)
	}},
	{"header_deps", decodeByte32Vec},
	{"inputs", func(s molecule.Segment) (value.Value, error) {
		return decodeFixVec(s, CellInputSize, decodeCellInput)
	}},
	{"outputs", func(s molecule.Segment) (value.Value, error) {
		return decodeDynVec(s, decodeCellOutput)
	}},
	{"outputs_data", decodeBytesVec},
}

func decodeRawTransaction(s molecule.Segment) (value.Value, error) {
	return decodeTable(s, rawTransactionFields)
}

var transactionFields = []tableField{
	{"raw", decodeRawTransaction},
	{"witnesses", decodeBytesVec},
}

func decodeTransaction(s molecule.Segment) (value.Value, error) {
	return decodeTable(s, transactionFields)
}

var transactionViewFields = []tableField{
	{"hash", decodeByte32},
	{"witness_hash", decodeByte32},
	{"data", decodeTransaction},
}

// body column: a transaction with its two hashes
func decodeTransactionView(s molecule.Segment) (value.Value, error) {
	return decodeTable(s, transactionViewFields)
}

// the transaction ordinal in this key is big endian
var transactionKeyFields = []structField{
	{"block_hash", HashSize, decodeByte32},
	{"index", Uint32Size, decodeBeUint32},
}

func decodeTransactionKey(s molecule.Segment) (value.Value, error) {
	return decodeStruct(s, transactionKeyFields)
}

var transactionInfoFields = []structField{
	{"block_number", Uint64Size, decodeUint64},
	{"block_epoch", Uint64Size, decodeUint64},
	{"key", TransactionKeySize, decodeTransactionKey},
}

// location of a transaction in the chain
func decodeTransactionInfo(s molecule.Segment) (value.Value, error) {
	return decodeStruct(s, transactionInfoFields)
}

var cellEntryFields = []tableField{
	{"output", decodeCellOutput},
	{"block_hash", decodeByte32},
	{"block_number", decodeUint64},
	{"block_epoch", decodeUint64},
	{"index", decodeUint32},
	{"data_size", decodeUint64},
}

func decodeCellEntry(s molecule.Segment) (value.Value, error) {
	return decodeTable(s, cellEntryFields)
}

var cellDataEntryFields = []tableField{
	{"output_data", decodeBytes},
	{"output_data_hash", decodeByte32},
}

func decodeCellDataEntry(s molecule.Segment) (value.Value, error) {
	return decodeTable(s, cellDataEntryFields)
}
