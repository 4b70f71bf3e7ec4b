// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - read-only access to the partitioned chain store
//
// The store is a directory holding one database per partition, each
// in a sub-directory named by its numeric column id.  Only reads are
// supported; every database is opened read-only.
//
// Notes:
// 1. ++           = concatenation of byte data
// 2. height       = little endian uint64 (8 bytes)
// 3. hash         = 32 byte block or transaction hash
// 4. ordinal      = position in a block or transaction (uint32)
// 5. values       = molecule encoded records
//
// Partitions:
//
//    0  index             height -> block hash
//    1  header            block hash -> hash ++ header
//    2  body              block hash ++ ordinal(BE) -> transaction view
//    3  uncle             uncle hash -> hash ++ header
//    4  meta              string key -> raw bytes
//    5  transaction info  tx hash -> transaction location
//    6  block ext         block hash -> block ext
//    7  proposal ids      block hash -> proposal short id vec
//    8  block epoch       block hash -> epoch hash
//    9  epoch             epoch number -> epoch hash
//                         epoch hash -> epoch ext
//   10  cell              tx hash ++ ordinal(LE) -> cell entry
//   11  uncles            block hash -> uncle block vec view
//   12  cell data         tx hash ++ ordinal(LE) -> cell data entry
//   13  number hash       height ++ block hash -> transaction count(u32)
//   14  cell data hash    tx hash ++ ordinal(LE) -> data hash
//   15  block extension   block hash -> bytes
package storage
