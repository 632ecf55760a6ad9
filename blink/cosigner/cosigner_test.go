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

package cosigner_test

import (
	"context"
	"crypto/ed25519"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/blink-actions/blink/assembler"
	"github.com/optakt/blink-actions/blink/cosigner"
	"github.com/optakt/blink-actions/blink/failure"
	"github.com/optakt/blink-actions/blink/keys"
	"github.com/optakt/blink-actions/blink/object"
	"github.com/optakt/blink-actions/testing/mocks"
)

func TestCosigner_Cosign(t *testing.T) {
	server, err := keys.New(mocks.GenericServerKey())
	require.NoError(t, err)

	user := mocks.GenericAccount(0)
	receiver := mocks.GenericAccount(1)

	// The server pays the fees and the payout, the user pays the commission.
	shared := assemble(t, server.PublicKey(),
		system.NewTransferInstruction(500_000, user, mocks.GenericAccount(2)).Build(),
		system.NewTransferInstruction(3_100_000, server.PublicKey(), receiver).Build(),
	)

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		c := cosigner.New(server, mocks.BaselineOracle(t))

		signed, err := c.Cosign(context.Background(), shared)

		require.NoError(t, err)
		require.Len(t, signed.Payload.Signatures, 2)
		assert.True(t, signed.Signed(0))
		assert.False(t, signed.Signed(1))

		message, err := signed.Payload.Message.MarshalBinary()
		require.NoError(t, err)
		public := server.PublicKey()
		valid := ed25519.Verify(ed25519.PublicKey(public[:]), message, signed.Payload.Signatures[0][:])
		assert.True(t, valid)
	})

	t.Run("does not modify the input transaction", func(t *testing.T) {
		t.Parallel()

		c := cosigner.New(server, mocks.BaselineOracle(t))

		_, err := c.Cosign(context.Background(), shared)

		require.NoError(t, err)
		assert.False(t, shared.Signed(0))
		assert.False(t, shared.Signed(1))
	})

	t.Run("signs deterministically", func(t *testing.T) {
		t.Parallel()

		c := cosigner.New(server, mocks.BaselineOracle(t))

		first, err := c.Cosign(context.Background(), shared)
		require.NoError(t, err)
		second, err := c.Cosign(context.Background(), shared)
		require.NoError(t, err)

		assert.Equal(t, first.Payload.Signatures, second.Payload.Signatures)
	})

	t.Run("leaves transactions without server signer unsigned", func(t *testing.T) {
		t.Parallel()

		tx := assemble(t, user, system.NewTransferInstruction(1, user, receiver).Build())

		signer := mocks.BaselineSigner(t)
		signer.SignFunc = func([]byte) (solana.Signature, error) {
			t.Fatal("signer should not be called")
			return solana.Signature{}, nil
		}

		c := cosigner.New(signer, mocks.BaselineOracle(t))

		signed, err := c.Cosign(context.Background(), tx)

		require.NoError(t, err)
		assert.False(t, signed.Signed(0))
	})

	t.Run("accepts reference at its last valid height", func(t *testing.T) {
		t.Parallel()

		oracle := mocks.BaselineOracle(t)
		oracle.HeightFunc = func(context.Context) (uint64, error) {
			return shared.Reference.LastValidBlockHeight, nil
		}

		c := cosigner.New(server, oracle)

		_, err := c.Cosign(context.Background(), shared)

		assert.NoError(t, err)
	})

	t.Run("handles stale reference", func(t *testing.T) {
		t.Parallel()

		oracle := mocks.BaselineOracle(t)
		oracle.HeightFunc = func(context.Context) (uint64, error) {
			return shared.Reference.LastValidBlockHeight + 1, nil
		}

		c := cosigner.New(server, oracle)

		_, err := c.Cosign(context.Background(), shared)

		var stale failure.StaleReference
		require.True(t, errors.As(err, &stale))
		assert.Equal(t, shared.Reference.LastValidBlockHeight+1, stale.Height)
		assert.Equal(t, shared.Reference.LastValidBlockHeight, stale.LastValid)
	})

	t.Run("handles height failure", func(t *testing.T) {
		t.Parallel()

		oracle := mocks.BaselineOracle(t)
		oracle.HeightFunc = func(context.Context) (uint64, error) {
			return 0, mocks.GenericError
		}

		c := cosigner.New(server, oracle)

		_, err := c.Cosign(context.Background(), shared)

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles signer failure", func(t *testing.T) {
		t.Parallel()

		signer := mocks.BaselineSigner(t)
		signer.PublicKeyFunc = server.PublicKey
		signer.SignFunc = func([]byte) (solana.Signature, error) {
			return solana.Signature{}, mocks.GenericError
		}

		c := cosigner.New(signer, mocks.BaselineOracle(t))

		_, err := c.Cosign(context.Background(), shared)

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles empty transaction", func(t *testing.T) {
		t.Parallel()

		c := cosigner.New(server, mocks.BaselineOracle(t))

		_, err := c.Cosign(context.Background(), &object.Transaction{})

		var invalid failure.InvalidTransaction
		assert.True(t, errors.As(err, &invalid))
	})
}

func assemble(t *testing.T, feePayer solana.PublicKey, instructions ...solana.Instruction) *object.Transaction {
	t.Helper()

	tx, err := assembler.New().Assemble(feePayer, mocks.GenericReference, instructions)
	require.NoError(t, err)

	return tx
}
