// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/ckbdump/molecule"
	"github.com/bitmark-inc/ckbdump/value"
)

// byte sizes of the primitive types
const (
	ByteSize            = 1
	Uint32Size          = 4
	Uint64Size          = 8
	Uint128Size         = 16
	HashSize            = 32
	Uint256Size         = 32
	ProposalShortIdSize = 10
)

// one field of a struct
type structField struct {
	name   string
	size   int
	decode decoder
}

// one field of a table
type tableField struct {
	name   string
	decode decoder
}

// decode a fixed size struct as a record
func decodeStruct(s molecule.Segment, fields []structField) (value.Value, error) {
	total := 0
	for _, f := range fields {
		total += f.size
	}
	err := molecule.VerifyStruct(s, total)
	if nil != err {
		return nil, err
	}

	record := value.NewRecord(len(fields))
	start := 0
	for _, f := range fields {
		field, err := s.Slice(start, start+f.size)
		if nil != err {
			return nil, err
		}
		v, err := f.decode(field)
		if nil != err {
			return nil, err
		}
		record.Set(f.name, v)
		start += f.size
	}
	return record, nil
}

// decode a table as a record
//
// fields beyond those present in the buffer are left out of the record
func decodeTable(s molecule.Segment, fields []tableField) (value.Value, error) {
	table, err := molecule.VerifyTable(s, len(fields))
	if nil != err {
		return nil, err
	}

	record := value.NewRecord(table.Len())
	for i, f := range fields {
		if !table.Has(i) {
			break
		}
		field, err := table.Field(i)
		if nil != err {
			return nil, err
		}
		v, err := f.decode(field)
		if nil != err {
			return nil, err
		}
		if nil != v {
			record.Set(f.name, v)
		}
	}
	return record, nil
}

// decode every item of a fixvec
func decodeFixVec(s molecule.Segment, width int, decode decoder) (value.Value, error) {
	vec, err := molecule.VerifyFixVec(s, width)
	if nil != err {
		return nil, err
	}
	list := make(value.List, vec.Len())
	for i := range list {
		item, err := vec.Item(i)
		if nil != err {
			return nil, err
		}
		list[i], err = decode(item)
		if nil != err {
			return nil, err
		}
	}
	return list, nil
}

// decode every item of a dynvec, failing if any item fails
func decodeDynVec(s molecule.Segment, decode decoder) (value.Value, error) {
	vec, err := molecule.VerifyDynVec(s)
	if nil != err {
		return nil, err
	}
	list := make(value.List, vec.Len())
	for i := range list {
		item, err := vec.Item(i)
		if nil != err {
			return nil, err
		}
		list[i], err = decode(item)
		if nil != err {
			return nil, err
		}
	}
	return list, nil
}

// an option is empty when absent
func optional(decode decoder) decoder {
	return func(s molecule.Segment) (value.Value, error) {
		if s.IsEmpty() {
			return nil, nil
		}
		return decode(s)
	}
}

// scalar of a given width and byte order
func scalar(width int, order binary.ByteOrder) decoder {
	return func(s molecule.Segment) (value.Value, error) {
		err := molecule.VerifyStruct(s, width)
		if nil != err {
			return nil, err
		}
		n, err := s.Uint(0, width, order)
		if nil != err {
			return nil, err
		}
		return value.Scalar{Width: width, Value: n}, nil
	}
}

// blob of a fixed size
func fixedBytes(size int) decoder {
	return func(s molecule.Segment) (value.Value, error) {
		err := molecule.VerifyStruct(s, size)
		if nil != err {
			return nil, err
		}
		return value.Bytes(s.Copy()), nil
	}
}

var (
	decodeByte       = scalar(ByteSize, binary.LittleEndian)
	decodeUint32     = scalar(Uint32Size, binary.LittleEndian)
	decodeUint64     = scalar(Uint64Size, binary.LittleEndian)
	decodeBeUint32   = scalar(Uint32Size, binary.BigEndian)
	decodeByte32     = fixedBytes(HashSize)
	decodeUint256    = fixedBytes(Uint256Size)
	decodeProposalId = fixedBytes(ProposalShortIdSize)
)

// the meta column is not decoded
func decodeRaw(s molecule.Segment) (value.Value, error) {
	return value.Bytes(s.Copy()), nil
}

// 128 bit little endian integer as decimal text
func decodeUint128(s molecule.Segment) (value.Value, error) {
	err := molecule.VerifyStruct(s, Uint128Size)
	if nil != err {
		return nil, err
	}
	le := s.Copy()
	be := make([]byte, len(le))
	for i, b := range le {
		be[len(le)-1-i] = b
	}
	return value.Text(new(uint256.Int).SetBytes(be).Dec()), nil
}

// byte vector as a blob
func decodeBytes(s molecule.Segment) (value.Value, error) {
	vec, err := molecule.VerifyFixVec(s, ByteSize)
	if nil != err {
		return nil, err
	}
	data, err := vec.Data()
	if nil != err {
		return nil, err
	}
	return value.Bytes(data.Copy()), nil
}

func decodeBytesVec(s molecule.Segment) (value.Value, error) {
	return decodeDynVec(s, decodeBytes)
}

func decodeByte32Vec(s molecule.Segment) (value.Value, error) {
	return decodeFixVec(s, HashSize, decodeByte32)
}

func decodeUint64Vec(s molecule.Segment) (value.Value, error) {
	return decodeFixVec(s, Uint64Size, decodeUint64)
}

func decodeProposalShortIdVec(s molecule.Segment) (value.Value, error) {
	return decodeFixVec(s, ProposalShortIdSize, decodeProposalId)
}
