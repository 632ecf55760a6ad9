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

// Transaction is a compiled ledger transaction together with the reference it
// was anchored to. Empty signature slots hold the zero signature.
type Transaction struct {
	Reference Reference
	Payload   *solana.Transaction
}

// FeePayer returns the account paying the network fees, which is always the
// first account key of the message.
func (t *Transaction) FeePayer() solana.PublicKey {
	if len(t.Payload.Message.AccountKeys) == 0 {
		return solana.PublicKey{}
	}
	return t.Payload.Message.AccountKeys[0]
}

// Signers returns the accounts that need to sign, in signature slot order.
func (t *Transaction) Signers() []solana.PublicKey {
	count := int(t.Payload.Message.Header.NumRequiredSignatures)
	if count > len(t.Payload.Message.AccountKeys) {
		count = len(t.Payload.Message.AccountKeys)
	}
	signers := make([]solana.PublicKey, count)
	copy(signers, t.Payload.Message.AccountKeys[:count])
	return signers
}

// SignerIndex returns the signature slot of the given account, if it is a
// required signer.
func (t *Transaction) SignerIndex(account solana.PublicKey) (int, bool) {
	for index, signer := range t.Signers() {
		if signer.Equals(account) {
			return index, true
		}
	}
	return 0, false
}

// Signed returns whether the slot at the given index holds a signature.
func (t *Transaction) Signed(index int) bool {
	if index < 0 || index >= len(t.Payload.Signatures) {
		return false
	}
	return t.Payload.Signatures[index] != solana.Signature{}
}

// Copy returns a transaction sharing the immutable message but owning its
// signature slots.
func (t *Transaction) Copy() *Transaction {
	signatures := make([]solana.Signature, len(t.Payload.Signatures))
	copy(signatures, t.Payload.Signatures)

	payload := solana.Transaction{
		Signatures: signatures,
		Message:    t.Payload.Message,
	}

	c := Transaction{
		Reference: t.Reference,
		Payload:   &payload,
	}

	return &c
}
