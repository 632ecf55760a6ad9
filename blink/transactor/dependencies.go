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

package transactor

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/optakt/blink-actions/blink/catalog"
	"github.com/optakt/blink-actions/blink/object"
)

// Catalog resolves blink names and selectors to actions.
type Catalog interface {
	Resolve(name string, selector string) (catalog.Action, error)
}

// Oracle reads the chain state needed to anchor a transaction.
type Oracle interface {
	Reference(ctx context.Context) (object.Reference, error)
	RentExemption(ctx context.Context, size uint64) (uint64, error)
}

// Composer turns actions into instructions.
type Composer interface {
	Compose(action catalog.Action, user solana.PublicKey, params map[string]string) ([]solana.Instruction, error)
	ServerSide(action catalog.Action, params map[string]string) ([]solana.Instruction, error)
	Payout(action catalog.Action) (uint64, bool)
	Message(action catalog.Action, user solana.PublicKey, params map[string]string) string
}

// Assembler compiles instructions into an unsigned transaction.
type Assembler interface {
	Assemble(feePayer solana.PublicKey, ref object.Reference, instructions []solana.Instruction) (*object.Transaction, error)
}

// Cosigner fills the server signature slot of a transaction.
type Cosigner interface {
	Cosign(ctx context.Context, tx *object.Transaction) (*object.Transaction, error)
}

// Submitter broadcasts fully signed transactions in the background.
type Submitter interface {
	Dispatch(tx *object.Transaction)
}
