// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package object

import (
	"github.com/gagliardetto/solana-go"
)

// Reference anchors a transaction to a recent block. The ledger rejects the
// transaction once the block height passes LastValidBlockHeight.
type Reference struct {
	Blockhash            solana.Hash `json:"blockhash"`
	LastValidBlockHeight uint64      `json:"last_valid_block_height"`
}

// Expired returns whether the reference can no longer be used at the given
// block height.
func (r Reference) Expired(height uint64) bool {
	return height > r.LastValidBlockHeight
}
