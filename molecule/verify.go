// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package molecule

import (
	"github.com/bitmark-inc/ckbdump/fault"
)

// Shape - the four layouts a buffer can have
type Shape int

// the shapes
const (
	ShapeStruct Shape = iota
	ShapeFixVec
	ShapeDynVec
	ShapeTable
)

// HeaderSize - bytes in a size or count header
const HeaderSize = 4

// Layout - what a buffer is expected to look like
//
//   Struct: Size is the total byte size
//   FixVec: Size is the byte size of one item
//   DynVec: no parameters
//   Table:  Fields is the number of fields the schema declares
type Layout struct {
	Shape  Shape
	Size   int
	Fields int
}

func (s Shape) String() string {
	switch s {
	case ShapeStruct:
		return "struct"
	case ShapeFixVec:
		return "fixvec"
	case ShapeDynVec:
		return "dynvec"
	case ShapeTable:
		return "table"
	default:
		return "unknown"
	}
}

// Verify - check that a buffer conforms to a layout
func Verify(s Segment, layout Layout) error {
	var err error
	switch layout.Shape {
	case ShapeStruct:
		err = VerifyStruct(s, layout.Size)
	case ShapeFixVec:
		_, err = VerifyFixVec(s, layout.Size)
	case ShapeDynVec:
		_, err = VerifyDynVec(s)
	case ShapeTable:
		_, err = VerifyTable(s, layout.Fields)
	default:
		err = fault.NewLayoutError(s.base, "unknown shape: %d", layout.Shape)
	}
	return err
}

// VerifyStruct - a struct (or fixed array) must be exactly size bytes
func VerifyStruct(s Segment, size int) error {
	if s.Len() != size {
		return fault.NewLayoutError(s.base, "struct size: %d  expected: %d", s.Len(), size)
	}
	return nil
}

// VerifyFixVec - check item count header against the buffer size
func VerifyFixVec(s Segment, width int) (FixVec, error) {
	if s.Len() < HeaderSize {
		return FixVec{}, fault.NewLayoutError(s.base, "fixvec length: %d is less than header size: %d", s.Len(), HeaderSize)
	}
	if width <= 0 {
		return FixVec{}, fault.NewLayoutError(s.base, "fixvec item size: %d is invalid", width)
	}
	count, err := s.Uint32(0)
	if nil != err {
		return FixVec{}, err
	}
	expected := uint64(HeaderSize) + uint64(count)*uint64(width)
	if expected != uint64(s.Len()) {
		return FixVec{}, fault.NewLayoutError(s.base, "fixvec of: %d items of size: %d needs: %d bytes  actual: %d", count, width, expected, s.Len())
	}
	return FixVec{
		segment: s,
		width:   width,
		count:   int(count),
	}, nil
}

// VerifyDynVec - check the size and offset header of a dynvec
func VerifyDynVec(s Segment) (DynVec, error) {
	offsets, err := readOffsets(s, -1)
	if nil != err {
		return DynVec{}, err
	}
	return DynVec{
		offsetTable{
			segment: s,
			offsets: offsets,
		},
	}, nil
}

// VerifyTable - check the size and offset header of a table
//
// fewer fields than declared is accepted, more is an error
func VerifyTable(s Segment, fields int) (Table, error) {
	offsets, err := readOffsets(s, fields)
	if nil != err {
		return Table{}, err
	}
	return Table{
		offsetTable{
			segment: s,
			offsets: offsets,
		},
	}, nil
}

// decode the header shared by dynvec and table
//
// checks, in order:
//   1. room for the total size
//   2. total size equals the buffer length
//   3. first offset is the header size and no offset decreases or
//      goes past the end
//   4. no more entries than limit (ignored if limit < 0)
func readOffsets(s Segment, limit int) ([]int, error) {
	n := s.Len()
	if n < HeaderSize {
		return nil, fault.NewLayoutError(s.base, "length: %d is less than header size: %d", n, HeaderSize)
	}
	total, err := s.Uint32(0)
	if nil != err {
		return nil, err
	}
	if uint64(total) != uint64(n) {
		return nil, fault.NewLayoutError(s.base, "total size: %d  actual: %d", total, n)
	}

	// no items
	if HeaderSize == n {
		return []int{}, nil
	}

	first, err := s.Uint32(HeaderSize)
	if nil != err {
		return nil, err
	}
	if first%HeaderSize != 0 || first < 2*HeaderSize {
		return nil, fault.NewLayoutError(s.base+HeaderSize, "first offset: %d is not a valid header size", first)
	}
	if uint64(first) > uint64(n) {
		return nil, fault.NewLayoutError(s.base+HeaderSize, "header size: %d exceeds total size: %d", first, n)
	}

	count := int(first/HeaderSize) - 1
	if limit >= 0 && count > limit {
		return nil, fault.NewLayoutError(s.base+HeaderSize, "field count: %d exceeds schema field count: %d", count, limit)
	}

	offsets := make([]int, count)
	previous := int(first)
	for i := 0; i < count; i += 1 {
		at := HeaderSize * (i + 1)
		offset, err := s.Uint32(at)
		if nil != err {
			return nil, err
		}
		o := int(offset)
		if uint64(offset) > uint64(n) {
			return nil, fault.NewLayoutError(s.base+at, "offset: %d beyond total size: %d", offset, n)
		}
		if o < previous {
			return nil, fault.NewLayoutError(s.base+at, "offset: %d is less than previous: %d", offset, previous)
		}
		offsets[i] = o
		previous = o
	}
	return offsets, nil
}
