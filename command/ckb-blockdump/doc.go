// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Block export program for a CKB chain store
//
// This program opens the store of a stopped node read-only and writes
// every block in the height range [start, end) as <height>.json into
// the output directory, together with the transaction info, cell and
// cell data records that refer to it.
package main
