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

package cosigner

import (
	"context"
	"fmt"

	"github.com/optakt/blink-actions/blink/failure"
	"github.com/optakt/blink-actions/blink/object"
)

// Cosigner fills the signature slot of the server key on transactions that
// require it, leaving every other slot untouched.
type Cosigner struct {
	signer  Signer
	heights Heights
}

// New creates a co-signer for the given server key.
func New(signer Signer, heights Heights) *Cosigner {

	c := Cosigner{
		signer:  signer,
		heights: heights,
	}

	return &c
}

// Cosign returns a copy of the transaction with the server slot signed. When
// the server key is not a required signer, the copy is returned as is.
func (c *Cosigner) Cosign(ctx context.Context, tx *object.Transaction) (*object.Transaction, error) {

	if tx == nil || tx.Payload == nil {
		return nil, failure.InvalidTransaction{
			Description: failure.NewDescription("transaction is empty"),
		}
	}

	signed := tx.Copy()
	index, ok := signed.SignerIndex(c.signer.PublicKey())
	if !ok {
		return signed, nil
	}
	if index >= len(signed.Payload.Signatures) {
		return nil, failure.InvalidTransaction{
			Description: failure.NewDescription("missing signature slot",
				failure.WithInt("index", index),
				failure.WithInt("slots", len(signed.Payload.Signatures)),
			),
		}
	}

	height, err := c.heights.Height(ctx)
	if err != nil {
		return nil, err
	}
	if tx.Reference.Expired(height) {
		return nil, failure.StaleReference{
			Description: failure.NewDescription("block reference is no longer valid",
				failure.WithString("blockhash", tx.Reference.Blockhash.String()),
			),
			Height:    height,
			LastValid: tx.Reference.LastValidBlockHeight,
		}
	}

	message, err := signed.Payload.Message.MarshalBinary()
	if err != nil {
		return nil, failure.SerializationFailure{
			Description: failure.NewDescription("could not encode message",
				failure.WithErr(err),
			),
			Encoding: "message",
		}
	}

	signature, err := c.signer.Sign(message)
	if err != nil {
		return nil, fmt.Errorf("could not sign message: %w", err)
	}
	signed.Payload.Signatures[index] = signature

	return signed, nil
}
