// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord_test

import (
	"encoding/binary"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ckbdump/blockrecord"
	"github.com/bitmark-inc/ckbdump/fault"
	"github.com/bitmark-inc/ckbdump/fixtures"
	"github.com/bitmark-inc/ckbdump/value"
)

func TestSchemaNames(t *testing.T) {
	for _, name := range blockrecord.Names() {
		s, err := blockrecord.ParseSchema(name)
		assert.Nil(t, err, "parse: %s", name)
		assert.Equal(t, name, s.String(), "round trip name")
	}

	_, err := blockrecord.ParseSchema("no-such-schema")
	assert.Equal(t, fault.ErrInvalidSchema, err, "unknown schema")

	_, err = blockrecord.Decode(blockrecord.Invalid, []byte{1})
	assert.Equal(t, fault.ErrInvalidSchema, err, "invalid schema decode")
}

func TestEmptyIsAbsent(t *testing.T) {
	v, err := blockrecord.Decode(blockrecord.HeaderView, nil)
	assert.Nil(t, err, "empty decode error")
	assert.Nil(t, v, "empty decode value")
}

func TestHeaderNonce(t *testing.T) {
	hash := fixtures.Hash(0xab)
	v, err := blockrecord.Decode(blockrecord.HeaderView, fixtures.HeaderView(hash, 100, 12345))
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}

	nonce, ok := value.Lookup(v, "data", "nonce")
	assert.True(t, ok, "nonce present")
	assert.Equal(t, value.Text("12345"), nonce, "nonce as decimal")

	number, ok := value.Lookup(v, "data", "raw", "number")
	assert.True(t, ok, "number present")
	assert.Equal(t, value.Scalar{Width: 8, Value: 100}, number, "block number")

	h, ok := value.Lookup(v, "hash")
	assert.True(t, ok, "hash present")
	assert.Equal(t, value.Bytes(hash), h, "header hash")
}

func TestLargeNonce(t *testing.T) {
	header := fixtures.Header(1, 0)
	for i := blockrecord.RawHeaderSize; i < blockrecord.HeaderSize; i += 1 {
		header[i] = 0xff
	}
	v, err := blockrecord.Decode(blockrecord.Header, header)
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	nonce, _ := value.Lookup(v, "nonce")
	assert.Equal(t, value.Text("340282366920938463463374607431768211455"), nonce, "maximum nonce")

	zero, err := blockrecord.Decode(blockrecord.Header, fixtures.Header(1, 0))
	assert.Nil(t, err, "decode error")
	nonce, _ = value.Lookup(zero, "nonce")
	assert.Equal(t, value.Text("0"), nonce, "zero nonce")
}

func TestHeaderWithHashIsFlat(t *testing.T) {
	v, err := blockrecord.Decode(blockrecord.HeaderWithHash, fixtures.HeaderView(fixtures.Hash(1), 7, 9))
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	names := []string{}
	for _, f := range v.(*value.Record).Fields() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"hash", "raw", "nonce"}, names, "field order")
}

func TestHeaderWrongSize(t *testing.T) {
	buffer := fixtures.HeaderView(fixtures.Hash(1), 7, 9)
	_, err := blockrecord.Decode(blockrecord.HeaderView, buffer[:len(buffer)-1])
	assert.True(t, fault.IsErrLayout(err), "short header: %v", err)

	_, err = blockrecord.Decode(blockrecord.HeaderView, buffer[:20])
	assert.True(t, fault.IsErrLayout(err), "shorter than hash: %v", err)
}

// decoding the same bytes twice gives equal trees and leaves the input alone
func TestDecodeIsPure(t *testing.T) {
	buffer := fixtures.TransactionView(fixtures.Hash(0x42), 3)
	saved := make([]byte, len(buffer))
	copy(saved, buffer)

	a, err := blockrecord.Decode(blockrecord.TransactionView, buffer)
	if nil != err {
		t.Fatalf("first decode error: %s", err)
	}
	b, err := blockrecord.Decode(blockrecord.TransactionView, buffer)
	if nil != err {
		t.Fatalf("second decode error: %s", err)
	}

	assert.True(t, value.Equal(a, b), "trees differ")
	assert.Equal(t, saved, buffer, "input modified")

	// blobs must not alias the input
	for i := range buffer {
		buffer[i] = 0
	}
	assert.True(t, value.Equal(a, b), "trees changed with input")
	hash, _ := value.Lookup(a, "hash")
	assert.Equal(t, value.Bytes(fixtures.Hash(0x42)), hash, "hash after clearing input")
}

func TestTransactionView(t *testing.T) {
	v, err := blockrecord.Decode(blockrecord.TransactionView, fixtures.TransactionView(fixtures.Hash(0x42), 2))
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}

	outputs, ok := value.Lookup(v, "data", "raw", "outputs")
	assert.True(t, ok, "outputs present")
	list := outputs.(value.List)
	assert.Equal(t, 2, len(list), "output count")

	_, ok = value.Lookup(list[0], "type_")
	assert.False(t, ok, "empty type script omitted")
	codeHash, ok := value.Lookup(list[1], "type_", "code_hash")
	assert.True(t, ok, "type script present")
	assert.Equal(t, value.Bytes(fixtures.Hash(0x33)), codeHash, "type script code hash")

	args, ok := value.Lookup(list[0], "lock", "args")
	assert.True(t, ok, "lock args present")
	assert.Equal(t, value.Bytes{0xaa, 0xbb, 0xcc}, args, "lock args")

	capacity, _ := value.Lookup(list[1], "capacity")
	assert.Equal(t, value.Scalar{Width: 8, Value: 2000}, capacity, "capacity")

	inputs, ok := value.Lookup(v, "data", "raw", "inputs")
	assert.True(t, ok, "inputs present")
	outIndex, _ := value.Lookup(inputs.(value.List)[0], "previous_output", "index")
	assert.Equal(t, value.Scalar{Width: 4, Value: 1}, outIndex, "input out point index")
}

// a nested element failing fails the whole vector
func TestNestedFailure(t *testing.T) {
	bad := fixtures.CellOutput(1, false)
	binary.LittleEndian.PutUint32(bad, uint32(len(bad)+1))
	raw := fixtures.Table(
		fixtures.Uint32(0),
		fixtures.FixVec(),
		fixtures.FixVec(),
		fixtures.FixVec(),
		fixtures.DynVec(fixtures.CellOutput(1, false), bad),
		fixtures.DynVec(),
	)
	buffer := fixtures.Table(fixtures.Hash(1), fixtures.Hash(2), fixtures.Table(raw, fixtures.DynVec()))

	_, err := blockrecord.Decode(blockrecord.TransactionView, buffer)
	assert.True(t, fault.IsErrLayout(err), "bad output accepted: %v", err)
}

func TestScriptForwardCompatible(t *testing.T) {
	buffer := fixtures.Table(fixtures.Hash(5), []byte{1})
	v, err := blockrecord.Decode(blockrecord.Script, buffer)
	if nil != err {
		t.Fatalf("two of three fields: %s", err)
	}
	r := v.(*value.Record)
	assert.Equal(t, 2, r.Len(), "field count")
	_, ok := r.Get("args")
	assert.False(t, ok, "args absent")

	extra := fixtures.Table(fixtures.Hash(5), []byte{1}, fixtures.Bytes(nil), fixtures.Uint32(0))
	_, err = blockrecord.Decode(blockrecord.Script, extra)
	assert.True(t, fault.IsErrLayout(err), "too many fields: %v", err)
}

func TestTransactionInfo(t *testing.T) {
	blockHash := fixtures.Hash(0x21)
	v, err := blockrecord.Decode(blockrecord.TransactionInfo, fixtures.TransactionInfo(blockHash, 100, 0x0700080000001d, 5))
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	number, _ := value.Lookup(v, "block_number")
	epoch, _ := value.Lookup(v, "block_epoch")
	index, _ := value.Lookup(v, "key", "index")
	hash, _ := value.Lookup(v, "key", "block_hash")
	assert.Equal(t, value.Scalar{Width: 8, Value: 100}, number, "block number")
	assert.Equal(t, value.Scalar{Width: 8, Value: 0x0700080000001d}, epoch, "block epoch")
	assert.Equal(t, value.Scalar{Width: 4, Value: 5}, index, "big endian index")
	assert.Equal(t, value.Bytes(blockHash), hash, "block hash")
}

func TestBlockExt(t *testing.T) {
	short, err := blockrecord.Decode(blockrecord.BlockExt, fixtures.BlockExt(false))
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	assert.Equal(t, 4, short.(*value.Record).Len(), "without tail")

	full, err := blockrecord.Decode(blockrecord.BlockExt, fixtures.BlockExt(true))
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	assert.Equal(t, 7, full.(*value.Record).Len(), "with tail")
	cycles, _ := value.Lookup(full, "cycles")
	assert.Equal(t, value.List{value.Scalar{Width: 8, Value: 500}, value.Scalar{Width: 8, Value: 600}}, cycles, "cycles")
}

func TestEpochExt(t *testing.T) {
	buffer := fixtures.EpochExt(3)
	assert.Equal(t, blockrecord.EpochExtSize, len(buffer), "fixture size")

	v, err := blockrecord.Decode(blockrecord.EpochExt, buffer)
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	start, _ := value.Lookup(v, "start_number")
	assert.Equal(t, value.Scalar{Width: 8, Value: 5400}, start, "start number")
}

func TestCellRecords(t *testing.T) {
	v, err := blockrecord.Decode(blockrecord.CellEntry, fixtures.CellEntry(fixtures.Hash(3), 100, 1))
	if nil != err {
		t.Fatalf("cell entry error: %s", err)
	}
	index, _ := value.Lookup(v, "index")
	assert.Equal(t, value.Scalar{Width: 4, Value: 1}, index, "cell index")

	d, err := blockrecord.Decode(blockrecord.CellDataEntry, fixtures.CellDataEntry([]byte{9, 8}))
	if nil != err {
		t.Fatalf("cell data entry error: %s", err)
	}
	data, _ := value.Lookup(d, "output_data")
	assert.Equal(t, value.Bytes{9, 8}, data, "cell data")
}

func TestUnclesAndProposals(t *testing.T) {
	v, err := blockrecord.Decode(blockrecord.UncleBlockVecView, fixtures.UncleBlockVecView(2))
	if nil != err {
		t.Fatalf("uncles error: %s", err)
	}
	hashes, _ := value.Lookup(v, "hashes")
	data, _ := value.Lookup(v, "data")
	assert.Equal(t, 2, len(hashes.(value.List)), "uncle hashes")
	assert.Equal(t, 2, len(data.(value.List)), "uncle blocks")

	p, err := blockrecord.Decode(blockrecord.ProposalShortIdVec, fixtures.ProposalIds(3))
	if nil != err {
		t.Fatalf("proposals error: %s", err)
	}
	buffer, err := json.Marshal(p)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `["00000000000000000000","01000000000000000000","02000000000000000000"]`, string(buffer), "proposal ids")
}
