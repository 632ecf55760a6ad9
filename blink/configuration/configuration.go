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
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Static values that define how blink actions move funds. Amounts are kept as
// decimal SOL strings so they read the same way as on a block explorer.
const (
	CommissionAddress = "a514vQv8WeriXr6JYwTMB9gurRJVJW7yqvXghnJFT9Q"
	DonationAddress   = "CBDjvUkZZ6ucrVGrU3vRraasTytha8oVg2NLCxAHE25b"

	CommissionAmount = "0.0005"
	PayoutAmount     = "0.0031"
	DonationAmount   = "0.000000001"
	AirdropAmount    = "0.01"

	DefaultCommitment = rpc.CommitmentFinalized

	// ActionVersion and BlockchainIDs are advertised in the action headers.
	ActionVersion = "2.1.3"
	BlockchainIDs = "solana:5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp"
)

// MemoProgramID is the address of the SPL memo program.
var MemoProgramID = solana.MustPublicKeyFromBase58("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")

// Configuration holds the parsed fund movement constants.
type Configuration struct {
	Commission       solana.PublicKey
	Donation         solana.PublicKey
	CommissionAmount uint64
	PayoutAmount     uint64
	DonationAmount   uint64
	AirdropAmount    uint64
}

// Default returns the configuration built from the compiled constants.
func Default() Configuration {
	return Configuration{
		Commission:       solana.MustPublicKeyFromBase58(CommissionAddress),
		Donation:         solana.MustPublicKeyFromBase58(DonationAddress),
		CommissionAmount: MustLamports(CommissionAmount),
		PayoutAmount:     MustLamports(PayoutAmount),
		DonationAmount:   MustLamports(DonationAmount),
		AirdropAmount:    MustLamports(AirdropAmount),
	}
}
