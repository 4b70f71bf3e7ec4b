// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package molecule_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ckbdump/fault"
	"github.com/bitmark-inc/ckbdump/fixtures"
	"github.com/bitmark-inc/ckbdump/molecule"
)

func TestSegmentSlice(t *testing.T) {
	s := molecule.New([]byte{0, 1, 2, 3, 4, 5, 6, 7})

	sub, err := s.Slice(2, 6)
	assert.Nil(t, err, "slice error")
	assert.Equal(t, 4, sub.Len(), "sub length")
	assert.Equal(t, 2, sub.Offset(), "sub offset")
	assert.Equal(t, []byte{2, 3, 4, 5}, sub.Copy(), "sub bytes")

	inner, err := sub.Slice(1, 2)
	assert.Nil(t, err, "inner slice error")
	assert.Equal(t, 3, inner.Offset(), "inner offset is absolute")

	_, err = sub.Slice(0, 5)
	assert.True(t, fault.IsErrLayout(err), "slice past end: %v", err)

	_, err = sub.Slice(3, 2)
	assert.True(t, fault.IsErrLayout(err), "reversed slice: %v", err)

	head, tail, err := s.Split(3)
	assert.Nil(t, err, "split error")
	assert.Equal(t, 3, head.Len(), "head length")
	assert.Equal(t, 5, tail.Len(), "tail length")
	assert.Equal(t, 3, tail.Offset(), "tail offset")
}

func TestSegmentCopyIsIndependent(t *testing.T) {
	data := []byte{1, 2, 3}
	c := molecule.New(data).Copy()
	c[0] = 99
	assert.Equal(t, byte(1), data[0], "source modified")
}

func TestSegmentUint(t *testing.T) {
	s := molecule.New([]byte{0x01, 0x02, 0x03, 0x04, 0x05})

	n, err := s.Uint(0, 4, binary.LittleEndian)
	assert.Nil(t, err, "le error")
	assert.Equal(t, uint64(0x04030201), n, "little endian")

	n, err = s.Uint(1, 4, binary.BigEndian)
	assert.Nil(t, err, "be error")
	assert.Equal(t, uint64(0x02030405), n, "big endian")

	_, err = s.Uint(2, 4, binary.LittleEndian)
	assert.True(t, fault.IsErrLayout(err), "read past end: %v", err)

	_, err = s.Uint(0, 3, binary.LittleEndian)
	assert.True(t, fault.IsErrLayout(err), "odd width: %v", err)
}

func TestVerifyStruct(t *testing.T) {
	err := molecule.Verify(molecule.New(make([]byte, 36)), molecule.Layout{Shape: molecule.ShapeStruct, Size: 36})
	assert.Nil(t, err, "exact size")

	err = molecule.Verify(molecule.New(make([]byte, 35)), molecule.Layout{Shape: molecule.ShapeStruct, Size: 36})
	assert.True(t, fault.IsErrLayout(err), "short struct: %v", err)

	err = molecule.Verify(molecule.New(make([]byte, 37)), molecule.Layout{Shape: molecule.ShapeStruct, Size: 36})
	assert.True(t, fault.IsErrLayout(err), "long struct: %v", err)
}

func TestVerifyFixVec(t *testing.T) {
	buffer := fixtures.FixVec(fixtures.Hash(1), fixtures.Hash(2))
	v, err := molecule.VerifyFixVec(molecule.New(buffer), 32)
	assert.Nil(t, err, "valid fixvec")
	assert.Equal(t, 2, v.Len(), "item count")

	item, err := v.Item(1)
	assert.Nil(t, err, "item error")
	assert.Equal(t, fixtures.Hash(2), item.Copy(), "second item")
	assert.Equal(t, 36, item.Offset(), "second item offset")

	_, err = v.Item(2)
	assert.True(t, fault.IsErrLayout(err), "index out of range: %v", err)

	empty, err := molecule.VerifyFixVec(molecule.New(fixtures.FixVec()), 10)
	assert.Nil(t, err, "empty fixvec")
	assert.Equal(t, 0, empty.Len(), "empty count")

	_, err = molecule.VerifyFixVec(molecule.New(buffer[:len(buffer)-1]), 32)
	assert.True(t, fault.IsErrLayout(err), "truncated fixvec: %v", err)

	_, err = molecule.VerifyFixVec(molecule.New([]byte{1, 0}), 1)
	assert.True(t, fault.IsErrLayout(err), "no header: %v", err)
}

func TestVerifyTableAcceptsValid(t *testing.T) {
	buffer := fixtures.Table(fixtures.Uint32(7), fixtures.Bytes([]byte{1, 2, 3}), fixtures.Hash(9))

	table, err := molecule.VerifyTable(molecule.New(buffer), 3)
	assert.Nil(t, err, "valid table")
	assert.Equal(t, 3, table.Len(), "field count")

	f, err := table.Field(2)
	assert.Nil(t, err, "field error")
	assert.Equal(t, fixtures.Hash(9), f.Copy(), "last field extends to total")

	f, err = table.Field(1)
	assert.Nil(t, err, "field error")
	assert.Equal(t, fixtures.Bytes([]byte{1, 2, 3}), f.Copy(), "middle field")
}

func TestVerifyTableForwardCompatible(t *testing.T) {
	buffer := fixtures.Table(fixtures.Uint32(7), fixtures.Uint64(8))

	table, err := molecule.VerifyTable(molecule.New(buffer), 3)
	assert.Nil(t, err, "two of three fields")
	assert.True(t, table.Has(1), "second field present")
	assert.False(t, table.Has(2), "third field absent")

	_, err = table.Field(2)
	assert.True(t, fault.IsErrLayout(err), "absent field read: %v", err)
}

func TestVerifyTableTooManyFields(t *testing.T) {
	buffer := fixtures.Table(fixtures.Uint32(1), fixtures.Uint32(2), fixtures.Uint32(3))
	_, err := molecule.VerifyTable(molecule.New(buffer), 2)
	assert.True(t, fault.IsErrLayout(err), "field count overflow: %v", err)
}

func TestVerifyTotalSizeMismatch(t *testing.T) {
	buffer := fixtures.DynVec(fixtures.Uint32(1), fixtures.Uint32(2))

	binary.LittleEndian.PutUint32(buffer, uint32(len(buffer)+4))
	_, err := molecule.VerifyDynVec(molecule.New(buffer))
	assert.True(t, fault.IsErrLayout(err), "declared larger: %v", err)

	_, err = molecule.VerifyDynVec(molecule.New(buffer[:3]))
	assert.True(t, fault.IsErrLayout(err), "shorter than header: %v", err)
}

func TestVerifyEmptyDynVec(t *testing.T) {
	v, err := molecule.VerifyDynVec(molecule.New(fixtures.DynVec()))
	assert.Nil(t, err, "empty dynvec")
	assert.Equal(t, 0, v.Len(), "empty count")
}

// changing any single offset of a valid buffer must be detected
func TestVerifyOffsetMutation(t *testing.T) {
	valid := fixtures.DynVec(fixtures.Bytes([]byte{1}), fixtures.Bytes([]byte{2, 3}), fixtures.Bytes([]byte{4, 5, 6}))

	_, err := molecule.VerifyDynVec(molecule.New(valid))
	assert.Nil(t, err, "valid dynvec")

	mutations := []struct {
		index  int
		offset uint32
	}{
		{0, 2},                      // smaller than any header
		{0, 18},                     // not a whole number of offsets
		{0, 20},                     // header swallows the first item
		{1, 15},                     // before the previous offset
		{2, 17},                     // before the previous offset
		{2, uint32(len(valid) + 1)}, // beyond the total
		{1, 0xffffffff},             // beyond the total
	}

	for i, m := range mutations {
		buffer := make([]byte, len(valid))
		copy(buffer, valid)
		binary.LittleEndian.PutUint32(buffer[4*(m.index+1):], m.offset)

		_, err := molecule.VerifyDynVec(molecule.New(buffer))
		assert.True(t, fault.IsErrLayout(err), "%d: offset[%d] = %d accepted", i, m.index, m.offset)
	}
}

func TestLayoutErrorOffset(t *testing.T) {
	inner := fixtures.DynVec(fixtures.Uint32(1))
	binary.LittleEndian.PutUint32(inner, 99)
	outer := fixtures.Table(fixtures.Uint64(5), inner)

	table, err := molecule.VerifyTable(molecule.New(outer), 2)
	assert.Nil(t, err, "outer table")
	field, err := table.Field(1)
	assert.Nil(t, err, "inner field")

	_, err = molecule.VerifyDynVec(field)
	le, ok := err.(*fault.LayoutError)
	if !ok {
		t.Fatalf("expected layout error, got: %v", err)
	}
	assert.Equal(t, 20, le.Offset, "absolute offset of inner buffer")
}
