// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

// RawHeader - 192 byte raw header with the given number and nonce free
// fields filled from fill
func RawHeader(number uint64, fill byte) []byte {
	return Struct(
		Uint32(0),                // version
		Uint32(0x1d00ffff),       // compact_target
		Uint64(1600000000000),    // timestamp
		Uint64(number),           // number
		Uint64(0x0700080000001d), // epoch
		Hash(fill),               // parent_hash
		Hash(fill+1),             // transactions_root
		Hash(fill+2),             // proposals_hash
		Hash(fill+3),             // extra_hash
		Hash(fill+4),             // dao
	)
}

// Header - raw header followed by a 16 byte little endian nonce
func Header(number uint64, nonce uint64) []byte {
	n := make([]byte, 16)
	copy(n, Uint64(nonce))
	return Struct(RawHeader(number, 0x10), n)
}

// HeaderView - hash prefixed header as stored in the header column
func HeaderView(hash []byte, number uint64, nonce uint64) []byte {
	return Struct(hash, Header(number, nonce))
}

// Script - code_hash, hash_type and args
func Script(fill byte, hashType byte, args []byte) []byte {
	return Table(Hash(fill), []byte{hashType}, Bytes(args))
}

// CellOutput - capacity, lock and optional type script
func CellOutput(capacity uint64, withType bool) []byte {
	typeScript := []byte{}
	if withType {
		typeScript = Script(0x33, 1, []byte{0x01, 0x02})
	}
	return Table(Uint64(capacity), Script(0x22, 0, []byte{0xaa, 0xbb, 0xcc}), typeScript)
}

// OutPoint - 36 byte transaction hash and index
func OutPoint(txHash []byte, index uint32) []byte {
	return Struct(txHash, Uint32(index))
}

// RawTransaction - one input, one dep and the given outputs
func RawTransaction(outputs int) []byte {
	outs := make([][]byte, outputs)
	data := make([][]byte, outputs)
	for i := 0; i < outputs; i += 1 {
		outs[i] = CellOutput(uint64(1000*(i+1)), 1 == i%2)
		data[i] = Bytes([]byte{byte(i)})
	}
	return Table(
		Uint32(0),
		FixVec(Struct(OutPoint(Hash(0x44), 0), []byte{1})),
		FixVec(Hash(0x55)),
		FixVec(Struct(Uint64(0), OutPoint(Hash(0x66), 1))),
		DynVec(outs...),
		DynVec(data...),
	)
}

// Transaction - raw transaction and one witness
func Transaction(outputs int) []byte {
	return Table(RawTransaction(outputs), DynVec(Bytes([]byte{0xde, 0xad})))
}

// TransactionView - hash, witness hash and transaction
func TransactionView(hash []byte, outputs int) []byte {
	return Table(hash, Hash(0x77), Transaction(outputs))
}

// UncleBlockVecView - n uncles and their hashes
func UncleBlockVecView(n int) []byte {
	hashes := make([][]byte, n)
	uncles := make([][]byte, n)
	for i := 0; i < n; i += 1 {
		hashes[i] = Hash(byte(0x80 + i))
		uncles[i] = Table(Header(uint64(i), 0), FixVec())
	}
	return Table(FixVec(hashes...), DynVec(uncles...))
}

// ProposalIds - n 10 byte short ids
func ProposalIds(n int) []byte {
	ids := make([][]byte, n)
	for i := 0; i < n; i += 1 {
		id := make([]byte, 10)
		id[0] = byte(i)
		ids[i] = id
	}
	return FixVec(ids...)
}

// TransactionInfo - 52 byte transaction location
func TransactionInfo(blockHash []byte, number uint64, epoch uint64, index uint32) []byte {
	return Struct(Uint64(number), Uint64(epoch), blockHash, BeUint32(index))
}

// BlockExt - the four required fields and optional tail fields
func BlockExt(tail bool) []byte {
	fields := [][]byte{
		Hash(0x01),
		Uint64(2),
		Uint64(1600000000000),
		FixVec(Uint64(0), Uint64(100)),
	}
	if tail {
		fields = append(fields,
			[]byte{1},
			FixVec(Uint64(500), Uint64(600)),
			FixVec(Uint64(300), Uint64(400)),
		)
	}
	return Table(fields...)
}

// CellEntry - live cell metadata
func CellEntry(blockHash []byte, number uint64, index uint32) []byte {
	return Table(
		CellOutput(1000, false),
		blockHash,
		Uint64(number),
		Uint64(0x0700080000001d),
		Uint32(index),
		Uint64(1),
	)
}

// CellDataEntry - cell data and its hash
func CellDataEntry(data []byte) []byte {
	return Table(Bytes(data), Hash(0x99))
}

// EpochExt - 108 byte epoch record
func EpochExt(number uint64) []byte {
	return Struct(
		Hash(0x01),
		Hash(0x02),
		Uint32(0x1d00ffff),
		Uint64(number),
		Uint64(1000),
		Uint64(10),
		Uint64(number*1800),
		Uint64(1800),
	)
}
