// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package value

import (
	"encoding/hex"
	"encoding/json"
	"strconv"
)

// MarshalJSON - scalars are plain JSON numbers
func (s Scalar) MarshalJSON() ([]byte, error) {
	return s.appendJSON(nil), nil
}

// MarshalJSON - text is a JSON string
func (t Text) MarshalJSON() ([]byte, error) {
	return t.appendJSON(nil), nil
}

// MarshalJSON - blobs are lower case hex strings
func (b Bytes) MarshalJSON() ([]byte, error) {
	return b.appendJSON(nil), nil
}

// MarshalJSON - lists are JSON arrays
func (l List) MarshalJSON() ([]byte, error) {
	return l.appendJSON(nil), nil
}

// MarshalJSON - records are JSON objects with keys in field order
func (r *Record) MarshalJSON() ([]byte, error) {
	return r.appendJSON(nil), nil
}

func (s Scalar) appendJSON(buffer []byte) []byte {
	return strconv.AppendUint(buffer, s.Value, 10)
}

func (t Text) appendJSON(buffer []byte) []byte {
	quoted, _ := json.Marshal(string(t))
	return append(buffer, quoted...)
}

func (b Bytes) appendJSON(buffer []byte) []byte {
	start := len(buffer) + 1
	buffer = append(buffer, '"')
	buffer = append(buffer, make([]byte, hex.EncodedLen(len(b)))...)
	hex.Encode(buffer[start:], b)
	return append(buffer, '"')
}

func (l List) appendJSON(buffer []byte) []byte {
	buffer = append(buffer, '[')
	for i, v := range l {
		if i > 0 {
			buffer = append(buffer, ',')
		}
		buffer = appendValue(buffer, v)
	}
	return append(buffer, ']')
}

func (r *Record) appendJSON(buffer []byte) []byte {
	buffer = append(buffer, '{')
	if nil != r {
		for i, f := range r.fields {
			if i > 0 {
				buffer = append(buffer, ',')
			}
			name, _ := json.Marshal(f.Name)
			buffer = append(buffer, name...)
			buffer = append(buffer, ':')
			buffer = appendValue(buffer, f.Value)
		}
	}
	return append(buffer, '}')
}

func appendValue(buffer []byte, v Value) []byte {
	if nil == v {
		return append(buffer, "null"...)
	}
	return v.appendJSON(buffer)
}
