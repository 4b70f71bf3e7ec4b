// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdump

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/ckbdump/blockrecord"
	"github.com/bitmark-inc/ckbdump/fault"
	"github.com/bitmark-inc/ckbdump/storage"
	"github.com/bitmark-inc/ckbdump/value"
)

// the epoch partition holds two kinds of entry told apart by key size
const epochNumberKeySize = 8

// DumpColumn - decode every entry of a partition
//
// the result maps hex keys to decoded values in key order; empty
// values are left out
func (a *Assembler) DumpColumn(column storage.Column) (*value.Record, error) {
	schema := a.layout.Schema(column)
	if blockrecord.Invalid == schema {
		return nil, fmt.Errorf("%s: %w", column, fault.ErrNoSchema)
	}

	result := value.NewRecord(0)
	skipped := 0
	err := a.store.Map(column, func(key []byte, data []byte) error {
		s := schema
		if storage.ColumnEpoch == column && epochNumberKeySize == len(key) {
			s = blockrecord.Byte32
		}
		v, err := blockrecord.Decode(s, data)
		if nil != err {
			return fmt.Errorf("%s key: %x: %w", column, key, err)
		}
		if nil == v {
			skipped += 1
			return nil
		}
		result.Append(hex.EncodeToString(key), v)
		return nil
	})
	if nil != err {
		a.log.Errorf("dump: %s  error: %s", column, err)
		return nil, err
	}

	a.log.Infof("dump: %s  entries: %d  empty: %d", column, result.Len(), skipped)
	return result, nil
}
