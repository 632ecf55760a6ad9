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

package assembler

import (
	"sort"

	"github.com/gagliardetto/solana-go"

	"github.com/optakt/blink-actions/blink/failure"
	"github.com/optakt/blink-actions/blink/object"
)

// maxAccounts is the number of accounts a compiled instruction can index.
const maxAccounts = 256

// Assembler compiles instructions into a transaction message.
type Assembler struct{}

// New creates a new transaction assembler.
func New() *Assembler {
	return &Assembler{}
}

type account struct {
	key      solana.PublicKey
	signer   bool
	writable bool
}

// rank orders accounts the way the message header expects them: writable
// signers, read-only signers, writable non-signers, read-only non-signers.
func (a account) rank() int {
	switch {
	case a.signer && a.writable:
		return 0
	case a.signer:
		return 1
	case a.writable:
		return 2
	default:
		return 3
	}
}

// Assemble creates an unsigned transaction paid for by the given fee payer.
// The fee payer always takes the first signature slot; the remaining slots
// follow the order in which signers first appear in the instructions, with
// duplicates collapsed. Every slot is left empty.
func (a *Assembler) Assemble(feePayer solana.PublicKey, ref object.Reference, instructions []solana.Instruction) (*object.Transaction, error) {

	if feePayer == (solana.PublicKey{}) {
		return nil, failure.InvalidTransaction{
			Description: failure.NewDescription("missing fee payer"),
		}
	}
	if len(instructions) == 0 {
		return nil, failure.InvalidTransaction{
			Description: failure.NewDescription("transaction has no instructions"),
		}
	}

	// Collect every account in first-seen order, merging the flags of
	// duplicate accounts. The fee payer is always a writable signer.
	accounts := []*account{{key: feePayer, signer: true, writable: true}}
	lookup := map[solana.PublicKey]*account{feePayer: accounts[0]}
	add := func(key solana.PublicKey, signer bool, writable bool) {
		acc, ok := lookup[key]
		if !ok {
			acc = &account{key: key}
			lookup[key] = acc
			accounts = append(accounts, acc)
		}
		acc.signer = acc.signer || signer
		acc.writable = acc.writable || writable
	}
	for _, instruction := range instructions {
		for _, meta := range instruction.Accounts() {
			add(meta.PublicKey, meta.IsSigner, meta.IsWritable)
		}
		add(instruction.ProgramID(), false, false)
	}

	if len(accounts) > maxAccounts {
		return nil, failure.InvalidTransaction{
			Description: failure.NewDescription("too many accounts",
				failure.WithInt("accounts", len(accounts)),
				failure.WithInt("max_accounts", maxAccounts),
			),
		}
	}

	sort.SliceStable(accounts, func(i int, j int) bool {
		return accounts[i].rank() < accounts[j].rank()
	})

	var header solana.MessageHeader
	keys := make([]solana.PublicKey, 0, len(accounts))
	indices := make(map[solana.PublicKey]uint16, len(accounts))
	for _, acc := range accounts {
		switch acc.rank() {
		case 0:
			header.NumRequiredSignatures++
		case 1:
			header.NumRequiredSignatures++
			header.NumReadonlySignedAccounts++
		case 3:
			header.NumReadonlyUnsignedAccounts++
		}
		indices[acc.key] = uint16(len(keys))
		keys = append(keys, acc.key)
	}

	compiled := make([]solana.CompiledInstruction, 0, len(instructions))
	for i, instruction := range instructions {
		data, err := instruction.Data()
		if err != nil {
			return nil, failure.InvalidTransaction{
				Description: failure.NewDescription("could not encode instruction data",
					failure.WithInt("instruction", i),
					failure.WithErr(err),
				),
			}
		}

		metas := instruction.Accounts()
		positions := make([]uint16, 0, len(metas))
		for _, meta := range metas {
			positions = append(positions, indices[meta.PublicKey])
		}

		compiled = append(compiled, solana.CompiledInstruction{
			ProgramIDIndex: indices[instruction.ProgramID()],
			Accounts:       positions,
			Data:           solana.Base58(data),
		})
	}

	payload := solana.Transaction{
		Signatures: make([]solana.Signature, header.NumRequiredSignatures),
		Message: solana.Message{
			AccountKeys:     keys,
			Header:          header,
			RecentBlockhash: ref.Blockhash,
			Instructions:    compiled,
		},
	}

	tx := object.Transaction{
		Reference: ref,
		Payload:   &payload,
	}

	return &tx, nil
}
