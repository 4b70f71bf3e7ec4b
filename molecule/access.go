// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package molecule

import (
	"github.com/bitmark-inc/ckbdump/fault"
)

// FixVec - a verified fixed item size vector
type FixVec struct {
	segment Segment
	width   int
	count   int
}

// Len - number of items
func (v FixVec) Len() int {
	return v.count
}

// Item - the i-th item
func (v FixVec) Item(i int) (Segment, error) {
	if i < 0 || i >= v.count {
		return Segment{}, fault.NewLayoutError(v.segment.base, "fixvec index: %d out of range: %d", i, v.count)
	}
	start := HeaderSize + i*v.width
	return v.segment.Slice(start, start+v.width)
}

// Data - all items as one segment, without the count header
func (v FixVec) Data() (Segment, error) {
	return v.segment.Slice(HeaderSize, v.segment.Len())
}

// items located by an offset header
type offsetTable struct {
	segment Segment
	offsets []int
}

// Len - number of items or fields present
func (t offsetTable) Len() int {
	return len(t.offsets)
}

func (t offsetTable) get(i int) (Segment, error) {
	if i < 0 || i >= len(t.offsets) {
		return Segment{}, fault.NewLayoutError(t.segment.base, "index: %d out of range: %d", i, len(t.offsets))
	}
	end := t.segment.Len()
	if i+1 < len(t.offsets) {
		end = t.offsets[i+1]
	}
	return t.segment.Slice(t.offsets[i], end)
}

// DynVec - a verified variable item size vector
type DynVec struct {
	offsetTable
}

// Item - the i-th item, which must be verified before it is read
func (v DynVec) Item(i int) (Segment, error) {
	return v.get(i)
}

// Table - a verified table
type Table struct {
	offsetTable
}

// Has - true if field i is present in the buffer
func (t Table) Has(i int) bool {
	return i >= 0 && i < len(t.offsets)
}

// Field - the i-th field, which must be verified before it is read
func (t Table) Field(i int) (Segment, error) {
	return t.get(i)
}
