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

package serializer_test

import (
	"encoding/base64"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/blink-actions/blink/assembler"
	"github.com/optakt/blink-actions/blink/composer"
	"github.com/optakt/blink-actions/blink/failure"
	"github.com/optakt/blink-actions/blink/object"
	"github.com/optakt/blink-actions/blink/serializer"
	"github.com/optakt/blink-actions/testing/mocks"
)

func genericTransaction(t *testing.T) *object.Transaction {
	t.Helper()

	server := mocks.GenericServerKey().PublicKey()
	instructions := []solana.Instruction{
		system.NewTransferInstruction(500, mocks.GenericAccount(0), mocks.GenericAccount(2)).Build(),
		system.NewTransferInstruction(3100, server, mocks.GenericAccount(1)).Build(),
	}

	tx, err := assembler.New().Assemble(server, mocks.GenericReference, instructions)
	require.NoError(t, err)

	return tx
}

func TestEncode(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		tx := genericTransaction(t)

		got, err := serializer.Encode(tx)

		require.NoError(t, err)
		data, err := base64.StdEncoding.DecodeString(got)
		require.NoError(t, err)

		// Compact length prefix, then two empty signature slots.
		assert.Equal(t, byte(2), data[0])
		assert.Equal(t, make([]byte, 2*64), data[1:1+2*64])
	})

	t.Run("round trips through decode", func(t *testing.T) {
		t.Parallel()

		tx := genericTransaction(t)

		encoded, err := serializer.Encode(tx)
		require.NoError(t, err)

		got, err := serializer.Decode(encoded)

		require.NoError(t, err)
		assert.Equal(t, tx.Payload.Signatures, got.Signatures)
		assert.Equal(t, []solana.PublicKey(tx.Payload.Message.AccountKeys), []solana.PublicKey(got.Message.AccountKeys))
		assert.Equal(t, tx.Payload.Message.Header, got.Message.Header)
		assert.Equal(t, tx.Payload.Message.RecentBlockhash, got.Message.RecentBlockhash)
		require.Len(t, got.Message.Instructions, 2)
		for i := range got.Message.Instructions {
			assert.Equal(t, tx.Payload.Message.Instructions[i].ProgramIDIndex, got.Message.Instructions[i].ProgramIDIndex)
			assert.Equal(t, tx.Payload.Message.Instructions[i].Accounts, got.Message.Instructions[i].Accounts)
			assert.Equal(t, []byte(tx.Payload.Message.Instructions[i].Data), []byte(got.Message.Instructions[i].Data))
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		first, err := serializer.Encode(genericTransaction(t))
		require.NoError(t, err)
		second, err := serializer.Encode(genericTransaction(t))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("keeps filled signature slots", func(t *testing.T) {
		t.Parallel()

		tx := genericTransaction(t)
		tx.Payload.Signatures[0] = mocks.GenericSignature

		encoded, err := serializer.Encode(tx)
		require.NoError(t, err)
		got, err := serializer.Decode(encoded)
		require.NoError(t, err)

		assert.Equal(t, mocks.GenericSignature, got.Signatures[0])
		assert.Equal(t, solana.Signature{}, got.Signatures[1])
	})

	t.Run("handles oversized transaction", func(t *testing.T) {
		t.Parallel()

		user := mocks.GenericAccount(0)
		memo := composer.Memo(user, string(make([]byte, 2*serializer.PacketSize)))
		tx, err := assembler.New().Assemble(user, mocks.GenericReference, []solana.Instruction{memo})
		require.NoError(t, err)

		_, err = serializer.Encode(tx)

		assert.ErrorAs(t, err, &failure.SerializationFailure{})
	})

	t.Run("handles missing transaction", func(t *testing.T) {
		t.Parallel()

		_, err := serializer.Encode(nil)

		assert.ErrorAs(t, err, &failure.SerializationFailure{})
	})
}

func TestDecode(t *testing.T) {
	t.Run("handles invalid base64", func(t *testing.T) {
		t.Parallel()

		_, err := serializer.Decode("%%%")

		assert.ErrorAs(t, err, &failure.SerializationFailure{})
	})

	t.Run("handles truncated transaction", func(t *testing.T) {
		t.Parallel()

		_, err := serializer.Decode(base64.StdEncoding.EncodeToString([]byte{0x02, 0x2a}))

		assert.ErrorAs(t, err, &failure.SerializationFailure{})
	})
}
