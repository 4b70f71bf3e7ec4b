// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures builds molecule encoded buffers for tests
package fixtures

import (
	"encoding/binary"
)

// Uint32 - little endian u32
func Uint32(n uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, n)
	return b
}

// Uint64 - little endian u64
func Uint64(n uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, n)
	return b
}

// BeUint32 - big endian u32
func BeUint32(n uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, n)
	return b
}

// Hash - 32 bytes all set to fill
func Hash(fill byte) []byte {
	b := make([]byte, 32)
	for i := range b {
		b[i] = fill
	}
	return b
}

// Struct - fixed fields are simply concatenated
func Struct(fields ...[]byte) []byte {
	result := []byte{}
	for _, f := range fields {
		result = append(result, f...)
	}
	return result
}

// FixVec - item count header followed by the items
func FixVec(items ...[]byte) []byte {
	result := Uint32(uint32(len(items)))
	for _, item := range items {
		result = append(result, item...)
	}
	return result
}

// Bytes - byte vector
func Bytes(data []byte) []byte {
	result := Uint32(uint32(len(data)))
	return append(result, data...)
}

// DynVec - total size, offsets then items
func DynVec(items ...[]byte) []byte {
	return offsetTable(items)
}

// Table - total size, offsets then fields
func Table(fields ...[]byte) []byte {
	return offsetTable(fields)
}

func offsetTable(items [][]byte) []byte {
	header := 4 * (len(items) + 1)
	total := header
	for _, item := range items {
		total += len(item)
	}
	result := Uint32(uint32(total))
	offset := header
	for _, item := range items {
		result = append(result, Uint32(uint32(offset))...)
		offset += len(item)
	}
	for _, item := range items {
		result = append(result, item...)
	}
	return result
}
