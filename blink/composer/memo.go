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

package composer

import (
	"github.com/gagliardetto/solana-go"

	"github.com/optakt/blink-actions/blink/configuration"
)

// Memo creates an instruction that records the text on the ledger, signed by
// the given account.
func Memo(signer solana.PublicKey, text string) solana.Instruction {
	accounts := solana.AccountMetaSlice{
		{PublicKey: signer, IsSigner: true, IsWritable: false},
	}
	return solana.NewInstruction(configuration.MemoProgramID, accounts, []byte(text))
}
