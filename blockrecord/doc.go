// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockrecord - decoders for the fixed set of stored records
//
// Each record type is named by a Schema and decoded by Decode into a
// value tree whose field order is the schema field order.  Decoders
// copy every blob they keep, so the input buffer may be reused as soon
// as Decode returns.
package blockrecord
