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

package serializer

import (
	"encoding/base64"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/optakt/blink-actions/blink/failure"
	"github.com/optakt/blink-actions/blink/object"
)

// PacketSize is the maximum size of a serialized transaction accepted by the
// ledger.
const PacketSize = 1232

const (
	encodingWire   = "wire"
	encodingBase64 = "base64"
)

// Encode returns the base64 encoding of the transaction's wire format. Empty
// signature slots are kept as zero bytes so that the client can fill them in.
func Encode(tx *object.Transaction) (string, error) {

	if tx == nil || tx.Payload == nil {
		return "", failure.SerializationFailure{
			Description: failure.NewDescription("missing transaction"),
			Encoding:    encodingWire,
		}
	}

	data, err := tx.Payload.MarshalBinary()
	if err != nil {
		return "", failure.SerializationFailure{
			Description: failure.NewDescription("could not encode transaction", failure.WithErr(err)),
			Encoding:    encodingWire,
		}
	}

	if len(data) > PacketSize {
		return "", failure.SerializationFailure{
			Description: failure.NewDescription("transaction too large",
				failure.WithInt("size", len(data)),
				failure.WithInt("max_size", PacketSize),
			),
			Encoding: encodingWire,
		}
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// Decode parses a base64 encoded wire transaction.
func Decode(payload string) (*solana.Transaction, error) {

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, failure.SerializationFailure{
			Description: failure.NewDescription("could not decode payload", failure.WithErr(err)),
			Encoding:    encodingBase64,
		}
	}

	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(data))
	if err != nil {
		return nil, failure.SerializationFailure{
			Description: failure.NewDescription("could not decode transaction", failure.WithErr(err)),
			Encoding:    encodingWire,
		}
	}

	return tx, nil
}
