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

package mocks

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Ledger mocks the ledger RPC client.
type Ledger struct {
	GetLatestBlockhashFunc                func(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	GetBlockHeightFunc                    func(ctx context.Context, commitment rpc.CommitmentType) (uint64, error)
	GetMinimumBalanceForRentExemptionFunc func(ctx context.Context, dataSize uint64, commitment rpc.CommitmentType) (uint64, error)
	SendTransactionWithOptsFunc           func(ctx context.Context, tx *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error)
	GetSignatureStatusesFunc              func(ctx context.Context, searchTransactionHistory bool, signatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
}

func BaselineLedger(t *testing.T) *Ledger {
	t.Helper()

	l := Ledger{
		GetLatestBlockhashFunc: func(context.Context, rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error) {
			result := rpc.GetLatestBlockhashResult{
				Value: &rpc.LatestBlockhashResult{
					Blockhash:            GenericBlockhash,
					LastValidBlockHeight: GenericLastValid,
				},
			}
			return &result, nil
		},
		GetBlockHeightFunc: func(context.Context, rpc.CommitmentType) (uint64, error) {
			return GenericHeight, nil
		},
		GetMinimumBalanceForRentExemptionFunc: func(context.Context, uint64, rpc.CommitmentType) (uint64, error) {
			return GenericRent, nil
		},
		SendTransactionWithOptsFunc: func(context.Context, *solana.Transaction, rpc.TransactionOpts) (solana.Signature, error) {
			return GenericSignature, nil
		},
		GetSignatureStatusesFunc: func(context.Context, bool, ...solana.Signature) (*rpc.GetSignatureStatusesResult, error) {
			result := rpc.GetSignatureStatusesResult{
				Value: []*rpc.SignatureStatusesResult{
					{ConfirmationStatus: rpc.ConfirmationStatusFinalized},
				},
			}
			return &result, nil
		},
	}

	return &l
}

func (l *Ledger) GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error) {
	return l.GetLatestBlockhashFunc(ctx, commitment)
}

func (l *Ledger) GetBlockHeight(ctx context.Context, commitment rpc.CommitmentType) (uint64, error) {
	return l.GetBlockHeightFunc(ctx, commitment)
}

func (l *Ledger) GetMinimumBalanceForRentExemption(ctx context.Context, dataSize uint64, commitment rpc.CommitmentType) (uint64, error) {
	return l.GetMinimumBalanceForRentExemptionFunc(ctx, dataSize, commitment)
}

func (l *Ledger) SendTransactionWithOpts(ctx context.Context, tx *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error) {
	return l.SendTransactionWithOptsFunc(ctx, tx, opts)
}

func (l *Ledger) GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, signatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error) {
	return l.GetSignatureStatusesFunc(ctx, searchTransactionHistory, signatures...)
}
