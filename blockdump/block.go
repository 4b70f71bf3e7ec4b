// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdump

import (
	"github.com/bitmark-inc/ckbdump/value"
)

// Block - the chain block itself
type Block struct {
	Header       value.Value `json:"header"`
	Uncles       value.Value `json:"uncles"`
	Transactions value.List  `json:"transactions"`
	Proposals    value.Value `json:"proposals"`
	Extension    value.Value `json:"extension,omitempty"`
}

// Result - a block with the records that refer to it
type Result struct {
	Height    uint64      `json:"-"`
	Block     Block       `json:"block"`
	Info      value.List  `json:"info,omitempty"`
	Entry     value.List  `json:"entry,omitempty"`
	DataEntry value.List  `json:"data_entry,omitempty"`
	BlockExt  value.Value `json:"block_ext,omitempty"`
}
