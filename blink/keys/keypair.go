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

package keys

import (
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// Keypair is a read-only handle on the server signing key. It can produce
// signatures but never hands out the secret itself.
type Keypair struct {
	private solana.PrivateKey
	public  solana.PublicKey
}

// New wraps the given private key, checking that its public half matches the
// key derived from its seed.
func New(private solana.PrivateKey) (Keypair, error) {

	if len(private) != ed25519.PrivateKeySize {
		return Keypair{}, fmt.Errorf("invalid private key length (have: %d, want: %d)", len(private), ed25519.PrivateKeySize)
	}

	derived := ed25519.NewKeyFromSeed(private[:ed25519.SeedSize])
	if !derived.Equal(ed25519.PrivateKey(private)) {
		return Keypair{}, errors.New("private key does not match its public key")
	}

	secret := make(solana.PrivateKey, len(private))
	copy(secret, private)

	k := Keypair{
		private: secret,
		public:  secret.PublicKey(),
	}

	return k, nil
}

// Parse reads a secret key either in the keygen JSON format, an array of 64
// byte values, or as a base58 string.
func Parse(secret string) (Keypair, error) {

	secret = strings.TrimSpace(secret)
	if secret == "" {
		return Keypair{}, errors.New("secret key is empty")
	}

	if strings.HasPrefix(secret, "[") {
		var values []int
		err := json.Unmarshal([]byte(secret), &values)
		if err != nil {
			return Keypair{}, fmt.Errorf("could not decode secret key array: %w", err)
		}
		private := make(solana.PrivateKey, 0, len(values))
		for _, value := range values {
			if value < 0 || value > 255 {
				return Keypair{}, fmt.Errorf("secret key array value out of range (%d)", value)
			}
			private = append(private, byte(value))
		}
		return New(private)
	}

	private, err := solana.PrivateKeyFromBase58(secret)
	if err != nil {
		return Keypair{}, fmt.Errorf("could not decode base58 secret key: %w", err)
	}

	return New(private)
}

// PublicKey returns the account of the keypair.
func (k Keypair) PublicKey() solana.PublicKey {
	return k.public
}

// Sign signs the given message with the private key.
func (k Keypair) Sign(message []byte) (solana.Signature, error) {
	if len(k.private) == 0 {
		return solana.Signature{}, errors.New("keypair is not initialized")
	}
	return k.private.Sign(message)
}

// String only ever reveals the public key.
func (k Keypair) String() string {
	return k.public.String()
}

// MarshalJSON only ever reveals the public key.
func (k Keypair) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.public.String())
}
