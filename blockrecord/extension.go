// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"github.com/bitmark-inc/ckbdump/molecule"
	"github.com/bitmark-inc/ckbdump/value"
)

// EpochExtSize - bytes in an epoch record
const EpochExtSize = Uint256Size + HashSize + Uint32Size + 5*Uint64Size

// the last three fields were added later and may be missing
var blockExtFields = []tableField{
	{"total_difficulty", decodeUint256},
	{"total_uncles_count", decodeUint64},
	{"received_at", decodeUint64},
	{"txs_fees", decodeUint64Vec},
	{"verified", optional(decodeByte)},
	{"cycles", optional(decodeUint64Vec)},
	{"txs_sizes", optional(decodeUint64Vec)},
}

func decodeBlockExt(s molecule.Segment) (value.Value, error) {
	return decodeTable(s, blockExtFields)
}

var epochExtFields = []structField{
	{"previous_epoch_hash_rate", Uint256Size, decodeUint256},
	{"last_block_hash_in_previous_epoch", HashSize, decodeByte32},
	{"compact_target", Uint32Size, decodeUint32},
	{"number", Uint64Size, decodeUint64},
	{"base_block_reward", Uint64Size, decodeUint64},
	{"remainder_reward", Uint64Size, decodeUint64},
	{"start_number", Uint64Size, decodeUint64},
	{"length", Uint64Size, decodeUint64},
}

func decodeEpochExt(s molecule.Segment) (value.Value, error) {
	return decodeStruct(s, epochExtFields)
}
