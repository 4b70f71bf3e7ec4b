// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockdump - assemble blocks from the partitioned store
//
// A block is joined from several partitions:
//
//   height      -> index        -> block hash
//   block hash  -> header, uncles, proposals, extension, block ext
//   height+hash -> number hash  -> transaction count
//   hash+n      -> body         -> n-th transaction
//   tx hash     -> transaction info
//   tx hash+n   -> cell, cell data for the n-th output
//
// The header, uncles, transaction count, transactions and proposals
// must all be present; everything else is included when found.
//
// Also used by the column dump to decode whole partitions.
package blockdump
