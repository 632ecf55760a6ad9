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

package assembler_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/blink-actions/blink/assembler"
	"github.com/optakt/blink-actions/blink/composer"
	"github.com/optakt/blink-actions/blink/configuration"
	"github.com/optakt/blink-actions/blink/failure"
	"github.com/optakt/blink-actions/testing/mocks"
)

func TestAssembler_Assemble(t *testing.T) {
	server := mocks.GenericServerKey().PublicKey()
	user := mocks.GenericAccount(0)
	receiver := mocks.GenericAccount(1)
	commission := mocks.GenericAccount(2)

	transfer := func() []solana.Instruction {
		return []solana.Instruction{
			system.NewTransferInstruction(500, user, commission).Build(),
			system.NewTransferInstruction(3100, server, receiver).Build(),
		}
	}

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		a := assembler.New()

		tx, err := a.Assemble(server, mocks.GenericReference, transfer())

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericReference, tx.Reference)
		assert.Equal(t, server, tx.FeePayer())
		assert.Equal(t, []solana.PublicKey{server, user}, tx.Signers())

		msg := tx.Payload.Message
		assert.Equal(t, mocks.GenericBlockhash, msg.RecentBlockhash)
		assert.Equal(t, []solana.PublicKey{server, user, commission, receiver, solana.SystemProgramID}, []solana.PublicKey(msg.AccountKeys))
		assert.Equal(t, uint8(2), msg.Header.NumRequiredSignatures)
		assert.Equal(t, uint8(0), msg.Header.NumReadonlySignedAccounts)
		assert.Equal(t, uint8(1), msg.Header.NumReadonlyUnsignedAccounts)

		require.Len(t, msg.Instructions, 2)
		assert.Equal(t, uint16(4), msg.Instructions[0].ProgramIDIndex)
		assert.Equal(t, []uint16{1, 2}, msg.Instructions[0].Accounts)
		assert.Equal(t, uint16(4), msg.Instructions[1].ProgramIDIndex)
		assert.Equal(t, []uint16{0, 3}, msg.Instructions[1].Accounts)

		require.Len(t, tx.Payload.Signatures, 2)
		for i := range tx.Payload.Signatures {
			assert.False(t, tx.Signed(i))
		}
	})

	t.Run("keeps instruction order and data", func(t *testing.T) {
		t.Parallel()

		a := assembler.New()
		instructions := transfer()

		tx, err := a.Assemble(server, mocks.GenericReference, instructions)

		require.NoError(t, err)
		for i, instruction := range instructions {
			want, err := instruction.Data()
			require.NoError(t, err)
			assert.Equal(t, want, []byte(tx.Payload.Message.Instructions[i].Data))
		}
	})

	t.Run("fee payer comes first even when it appears later", func(t *testing.T) {
		t.Parallel()

		a := assembler.New()

		tx, err := a.Assemble(user, mocks.GenericReference, transfer())

		require.NoError(t, err)
		assert.Equal(t, user, tx.FeePayer())
		assert.Equal(t, []solana.PublicKey{user, server}, tx.Signers())
	})

	t.Run("fee payer outside instructions still gets a slot", func(t *testing.T) {
		t.Parallel()

		a := assembler.New()
		payer := mocks.GenericAccount(3)

		tx, err := a.Assemble(payer, mocks.GenericReference, transfer())

		require.NoError(t, err)
		assert.Equal(t, []solana.PublicKey{payer, user, server}, tx.Signers())
		assert.Len(t, tx.Payload.Signatures, 3)
	})

	t.Run("collapses duplicate accounts and merges flags", func(t *testing.T) {
		t.Parallel()

		a := assembler.New()
		instructions := []solana.Instruction{
			composer.Memo(user, "hello"),
			system.NewTransferInstruction(1, user, receiver).Build(),
		}

		tx, err := a.Assemble(user, mocks.GenericReference, instructions)

		require.NoError(t, err)
		msg := tx.Payload.Message
		assert.Equal(t, []solana.PublicKey{user, receiver, configuration.MemoProgramID, solana.SystemProgramID}, []solana.PublicKey(msg.AccountKeys))
		assert.Equal(t, uint8(1), msg.Header.NumRequiredSignatures)
		assert.Equal(t, uint8(2), msg.Header.NumReadonlyUnsignedAccounts)
	})

	t.Run("read-only signers come after writable signers", func(t *testing.T) {
		t.Parallel()

		a := assembler.New()
		witness := mocks.GenericAccount(4)
		instructions := []solana.Instruction{
			composer.Memo(witness, "witnessed"),
			system.NewTransferInstruction(1, user, receiver).Build(),
		}

		tx, err := a.Assemble(user, mocks.GenericReference, instructions)

		require.NoError(t, err)
		assert.Equal(t, []solana.PublicKey{user, witness}, tx.Signers())
		assert.Equal(t, uint8(1), tx.Payload.Message.Header.NumReadonlySignedAccounts)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		a := assembler.New()

		first, err := a.Assemble(server, mocks.GenericReference, transfer())
		require.NoError(t, err)
		second, err := a.Assemble(server, mocks.GenericReference, transfer())
		require.NoError(t, err)

		firstBytes, err := first.Payload.MarshalBinary()
		require.NoError(t, err)
		secondBytes, err := second.Payload.MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, firstBytes, secondBytes)
	})

	t.Run("handles missing instructions", func(t *testing.T) {
		t.Parallel()

		a := assembler.New()

		_, err := a.Assemble(server, mocks.GenericReference, nil)

		assert.ErrorAs(t, err, &failure.InvalidTransaction{})
	})

	t.Run("handles missing fee payer", func(t *testing.T) {
		t.Parallel()

		a := assembler.New()

		_, err := a.Assemble(solana.PublicKey{}, mocks.GenericReference, transfer())

		assert.ErrorAs(t, err, &failure.InvalidTransaction{})
	})

	t.Run("handles too many accounts", func(t *testing.T) {
		t.Parallel()

		a := assembler.New()
		var instructions []solana.Instruction
		for i := 0; i < 300; i++ {
			instructions = append(instructions, system.NewTransferInstruction(1, user, mocks.GenericAccount(10+i)).Build())
		}

		_, err := a.Assemble(user, mocks.GenericReference, instructions)

		assert.ErrorAs(t, err, &failure.InvalidTransaction{})
	})
}
