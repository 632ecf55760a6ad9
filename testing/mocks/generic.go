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
	"crypto/ed25519"
	"encoding/binary"
	"errors"
	"io"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"

	"github.com/optakt/blink-actions/blink/object"
)

var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericHeight = uint64(42)

	GenericLastValid = uint64(84)

	GenericRent = uint64(890_880)

	GenericBytes = []byte(`test`)

	GenericBlockhash = solana.Hash{
		0x2a, 0x2a, 0x2a, 0x2a, 0x2a, 0x2a, 0x2a, 0x2a,
		0x2a, 0x2a, 0x2a, 0x2a, 0x2a, 0x2a, 0x2a, 0x2a,
		0x2a, 0x2a, 0x2a, 0x2a, 0x2a, 0x2a, 0x2a, 0x2a,
		0x2a, 0x2a, 0x2a, 0x2a, 0x2a, 0x2a, 0x2a, 0x2a,
	}

	GenericReference = object.Reference{
		Blockhash:            GenericBlockhash,
		LastValidBlockHeight: GenericLastValid,
	}

	GenericSignature = genericSignature()

	GenericCommitment = rpc.CommitmentFinalized

	GenericResult = object.Result{
		Transaction: "AQAAAA==",
		Message:     "Hello satoshi",
	}
)

// GenericKey returns a deterministic private key for the given index.
func GenericKey(index int) solana.PrivateKey {
	seed := make([]byte, ed25519.SeedSize)
	binary.BigEndian.PutUint64(seed, uint64(index)+1)
	copy(seed[8:], GenericBlockhash[8:])
	return solana.PrivateKey(ed25519.NewKeyFromSeed(seed))
}

// GenericAccount returns the account of the deterministic key for the given
// index.
func GenericAccount(index int) solana.PublicKey {
	return GenericKey(index).PublicKey()
}

// GenericServerKey is the key used as server signing key throughout tests.
func GenericServerKey() solana.PrivateKey {
	return GenericKey(1000)
}

// GenericParams returns a set of action parameters that satisfy every action
// of the default catalog.
func GenericParams() map[string]string {
	return map[string]string{
		"receiverWallet": GenericAccount(1).String(),
		"nameParam":      "satoshi",
	}
}

func genericSignature() solana.Signature {
	var sig solana.Signature
	for i := range sig {
		sig[i] = 0x2a
	}
	return sig
}
