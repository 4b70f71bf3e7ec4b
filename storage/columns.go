// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"strconv"

	"github.com/bitmark-inc/ckbdump/fault"
)

// Column - identifies one partition of the store
type Column uint8

// the partitions
const (
	ColumnIndex Column = iota
	ColumnBlockHeader
	ColumnBlockBody
	ColumnBlockUncle
	ColumnMeta
	ColumnTransactionInfo
	ColumnBlockExt
	ColumnBlockProposalIds
	ColumnBlockEpoch
	ColumnEpoch
	ColumnCell
	ColumnUncles
	ColumnCellData
	ColumnNumberHash
	ColumnCellDataHash
	ColumnBlockExtension

	// to size the column tables
	ColumnCount = iota
)

var columnNames = [ColumnCount]string{
	"index",
	"header",
	"body",
	"uncle",
	"meta",
	"transaction-info",
	"block-ext",
	"proposal-ids",
	"block-epoch",
	"epoch",
	"cell",
	"uncles",
	"cell-data",
	"number-hash",
	"cell-data-hash",
	"block-extension",
}

// String - the name of a column
func (c Column) String() string {
	if int(c) < len(columnNames) {
		return columnNames[c]
	}
	return "column-" + strconv.Itoa(int(c))
}

// Valid - true for a known column
func (c Column) Valid() bool {
	return int(c) < ColumnCount
}

// ParseColumn - accept either a column name or its numeric id
func ParseColumn(s string) (Column, error) {
	for i, name := range columnNames {
		if name == s {
			return Column(i), nil
		}
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if nil != err || n >= ColumnCount {
		return 0, fault.ErrInvalidColumn
	}
	return Column(n), nil
}
