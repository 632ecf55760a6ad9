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

package validator

import (
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"

	"github.com/optakt/blink-actions/blink/failure"
)

// Address parses a base58 account identifier into its canonical binary form.
func Address(address string) (solana.PublicKey, error) {
	key, err := decode(address)
	if err != nil {
		return solana.PublicKey{}, failure.InvalidAddress{
			Description: failure.NewDescription(err.Error()),
			Address:     address,
		}
	}
	return key, nil
}

// Parameter parses the account identifier given for the named action
// parameter.
func Parameter(name string, address string) (solana.PublicKey, error) {
	key, err := decode(address)
	if err != nil {
		return solana.PublicKey{}, failure.InvalidAddress{
			Description: failure.NewDescription(err.Error()),
			Address:     address,
			Parameter:   name,
		}
	}
	return key, nil
}

// Valid returns whether the string is a valid account identifier.
func Valid(address string) bool {
	_, err := decode(address)
	return err == nil
}

func decode(address string) (solana.PublicKey, error) {
	if address == "" {
		return solana.PublicKey{}, errEmpty
	}

	data, err := base58.Decode(address)
	if err != nil {
		return solana.PublicKey{}, errEncoding
	}
	if len(data) != solana.PublicKeyLength {
		return solana.PublicKey{}, errLength
	}

	return solana.PublicKeyFromBytes(data), nil
}
