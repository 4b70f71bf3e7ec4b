// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdump

import (
	"github.com/bitmark-inc/ckbdump/blockrecord"
	"github.com/bitmark-inc/ckbdump/storage"
)

// Layout - the record type stored in each partition
//
// a Layout is a value; With returns a modified copy
type Layout struct {
	schemas [storage.ColumnCount]blockrecord.Schema
}

// DefaultLayout - the layout of a current chain store
func DefaultLayout() Layout {
	l := Layout{}
	l.schemas[storage.ColumnIndex] = blockrecord.Byte32
	l.schemas[storage.ColumnBlockHeader] = blockrecord.HeaderWithHash
	l.schemas[storage.ColumnBlockBody] = blockrecord.TransactionView
	l.schemas[storage.ColumnBlockUncle] = blockrecord.UncleBlockVecView
	l.schemas[storage.ColumnMeta] = blockrecord.Raw
	l.schemas[storage.ColumnTransactionInfo] = blockrecord.TransactionInfo
	l.schemas[storage.ColumnBlockExt] = blockrecord.BlockExt
	l.schemas[storage.ColumnBlockProposalIds] = blockrecord.ProposalShortIdVec
	l.schemas[storage.ColumnBlockEpoch] = blockrecord.Byte32
	l.schemas[storage.ColumnEpoch] = blockrecord.EpochExt
	l.schemas[storage.ColumnCell] = blockrecord.CellEntry
	l.schemas[storage.ColumnUncles] = blockrecord.HeaderView
	l.schemas[storage.ColumnCellData] = blockrecord.CellDataEntry
	l.schemas[storage.ColumnNumberHash] = blockrecord.Uint32
	l.schemas[storage.ColumnCellDataHash] = blockrecord.Byte32
	l.schemas[storage.ColumnBlockExtension] = blockrecord.Bytes
	return l
}

// Schema - record type of a partition
func (l Layout) Schema(column storage.Column) blockrecord.Schema {
	if !column.Valid() {
		return blockrecord.Invalid
	}
	return l.schemas[column]
}

// With - copy of the layout with one partition changed
func (l Layout) With(column storage.Column, schema blockrecord.Schema) Layout {
	if column.Valid() {
		l.schemas[column] = schema
	}
	return l
}
