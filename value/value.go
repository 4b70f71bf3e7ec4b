// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package value

import (
	"bytes"
	"encoding/hex"
	"strconv"
)

// Value - any node of a decoded tree
type Value interface {
	isValue()
	appendJSON(buffer []byte) []byte
}

// Scalar - an unsigned integer of Width bytes
type Scalar struct {
	Width int
	Value uint64
}

// Text - an already formatted string
type Text string

// Bytes - a binary blob
type Bytes []byte

// List - an ordered sequence
type List []Value

// Field - one named entry of a record
type Field struct {
	Name  string
	Value Value
}

// Record - named fields in insertion order
type Record struct {
	fields []Field
}

func (Scalar) isValue()  {}
func (Text) isValue()    {}
func (Bytes) isValue()   {}
func (List) isValue()    {}
func (*Record) isValue() {}

// NewRecord - empty record with room for n fields
func NewRecord(n int) *Record {
	return &Record{
		fields: make([]Field, 0, n),
	}
}

// Set - append a field, or replace the value of an existing one
func (r *Record) Set(name string, v Value) {
	for i := range r.fields {
		if r.fields[i].Name == name {
			r.fields[i].Value = v
			return
		}
	}
	r.fields = append(r.fields, Field{Name: name, Value: v})
}

// Append - add a field without checking for an existing one of the
// same name
func (r *Record) Append(name string, v Value) {
	r.fields = append(r.fields, Field{Name: name, Value: v})
}

// Get - value of a field, false if not present
func (r *Record) Get(name string) (Value, bool) {
	if nil == r {
		return nil, false
	}
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Fields - copy of the fields in order
func (r *Record) Fields() []Field {
	if nil == r {
		return nil
	}
	result := make([]Field, len(r.fields))
	copy(result, r.fields)
	return result
}

// Len - number of fields
func (r *Record) Len() int {
	if nil == r {
		return 0
	}
	return len(r.fields)
}

// Lookup - follow a path of field names through nested records
func Lookup(v Value, path ...string) (Value, bool) {
	for _, name := range path {
		r, ok := v.(*Record)
		if !ok {
			return nil, false
		}
		v, ok = r.Get(name)
		if !ok {
			return nil, false
		}
	}
	return v, nil != v
}

// Equal - structural comparison of two trees
func Equal(a Value, b Value) bool {
	switch x := a.(type) {
	case nil:
		return nil == b
	case Scalar:
		y, ok := b.(Scalar)
		return ok && x == y
	case Text:
		y, ok := b.(Text)
		return ok && x == y
	case Bytes:
		y, ok := b.(Bytes)
		return ok && bytes.Equal(x, y)
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Record:
		y, ok := b.(*Record)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for i := range x.fields {
			if x.fields[i].Name != y.fields[i].Name || !Equal(x.fields[i].Value, y.fields[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// String - hex form of a blob
func (b Bytes) String() string {
	return hex.EncodeToString(b)
}

// String - decimal form of a scalar
func (s Scalar) String() string {
	return strconv.FormatUint(s.Value, 10)
}
