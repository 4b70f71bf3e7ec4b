// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package molecule

import (
	"encoding/binary"

	"github.com/bitmark-inc/ckbdump/fault"
)

// Segment - a borrowed view of part of a buffer
//
// base is the position of the view in the outermost buffer so errors
// can report an absolute offset
type Segment struct {
	data []byte
	base int
}

// New - view the whole of a buffer
func New(data []byte) Segment {
	return Segment{
		data: data,
		base: 0,
	}
}

// Len - number of bytes in view
func (s Segment) Len() int {
	return len(s.data)
}

// IsEmpty - true for a zero length view
func (s Segment) IsEmpty() bool {
	return 0 == len(s.data)
}

// Offset - position of the view in the outermost buffer
func (s Segment) Offset() int {
	return s.base
}

// Slice - sub-view of [start, end)
//
// this is the only way to create a narrower view
func (s Segment) Slice(start int, end int) (Segment, error) {
	if start < 0 || end < start || end > len(s.data) {
		return Segment{}, fault.NewLayoutError(s.base+start, "range: [%d, %d) outside buffer of length: %d", start, end, len(s.data))
	}
	return Segment{
		data: s.data[start:end:end],
		base: s.base + start,
	}, nil
}

// Split - divide into [0, n) and [n, end)
func (s Segment) Split(n int) (Segment, Segment, error) {
	head, err := s.Slice(0, n)
	if nil != err {
		return Segment{}, Segment{}, err
	}
	tail, err := s.Slice(n, len(s.data))
	if nil != err {
		return Segment{}, Segment{}, err
	}
	return head, tail, nil
}

// Copy - bytes of the view in a new slice
func (s Segment) Copy() []byte {
	result := make([]byte, len(s.data))
	copy(result, s.data)
	return result
}

// Uint - read a width byte unsigned integer at an offset
//
// width must be 1, 2, 4 or 8
func (s Segment) Uint(at int, width int, order binary.ByteOrder) (uint64, error) {
	field, err := s.Slice(at, at+width)
	if nil != err {
		return 0, err
	}
	b := field.data
	switch width {
	case 1:
		return uint64(b[0]), nil
	case 2:
		return uint64(order.Uint16(b)), nil
	case 4:
		return uint64(order.Uint32(b)), nil
	case 8:
		return order.Uint64(b), nil
	default:
		return 0, fault.NewLayoutError(s.base+at, "unsupported integer width: %d", width)
	}
}

// Uint32 - read a little endian u32 at an offset
func (s Segment) Uint32(at int) (uint32, error) {
	n, err := s.Uint(at, 4, binary.LittleEndian)
	return uint32(n), err
}
