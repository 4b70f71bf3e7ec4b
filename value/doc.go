// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package value - the decoded form of a stored record
//
// A Value is one of:
//
//   Scalar - fixed-width unsigned integer
//   Text   - decimal rendering of a wide integer
//   Bytes  - binary blob, hex encoded only when marshalled
//   List   - ordered sequence of values
//   Record - named fields kept in schema order
//
// The set is closed: no other package can add a variant.
package value
