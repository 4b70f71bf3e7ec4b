// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package molecule - bounds-checked access to molecule encoded buffers
//
// Every composite value declares its own size, so any field can be
// located without scanning the whole buffer.
//
// Layouts:
//
//   struct  - fixed size fields concatenated, no header
//   fixvec  - item count(u32) ++ items of one fixed size
//   dynvec  - total size(u32) ++ offset(u32) per item ++ items
//   table   - total size(u32) ++ offset(u32) per field ++ fields
//
// All integers in headers are little endian.  A table may carry fewer
// fields than its schema declares: the missing tail is absent, which
// allows a schema to grow without breaking stored data.
//
// Notes:
// 1. a Segment never owns its bytes; it borrows them from the caller
// 2. Segment.Slice is the only place a sub-range is created
// 3. each nested value must be verified again before it is read
package molecule
