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

package configuration

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimals is the number of decimal places between SOL and lamports.
const Decimals = 9

// Lamports converts a decimal SOL amount into lamports. It fails for negative
// amounts and for amounts with more precision than a lamport.
func Lamports(sol string) (uint64, error) {

	amount, err := decimal.NewFromString(sol)
	if err != nil {
		return 0, fmt.Errorf("could not parse amount: %w", err)
	}
	if amount.Sign() < 0 {
		return 0, fmt.Errorf("negative amount (%s)", sol)
	}

	lamports := amount.Shift(Decimals)
	if !lamports.IsInteger() {
		return 0, fmt.Errorf("amount has more than %d decimals (%s)", Decimals, sol)
	}
	if !lamports.BigInt().IsUint64() {
		return 0, fmt.Errorf("amount out of range (%s)", sol)
	}

	return lamports.BigInt().Uint64(), nil
}

// MustLamports is like Lamports but panics on invalid input. It is meant for
// compiled constants only.
func MustLamports(sol string) uint64 {
	lamports, err := Lamports(sol)
	if err != nil {
		panic(err)
	}
	return lamports
}
