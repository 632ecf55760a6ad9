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

package submitter

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"

	"github.com/optakt/blink-actions/blink/failure"
	"github.com/optakt/blink-actions/blink/object"
)

var errPending = errors.New("transaction not confirmed yet")

// Submitter uses the ledger RPC API to submit fully signed transactions and
// follow them until they reach the configured commitment.
type Submitter struct {
	log  zerolog.Logger
	api  API
	cfg  Config
	wg   *sync.WaitGroup
	done chan struct{}
	once *sync.Once
}

// New creates a new submitter that uses the specified API, typically the
// ledger RPC client.
func New(log zerolog.Logger, api API, options ...func(*Config)) *Submitter {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	s := Submitter{
		log:  log.With().Str("component", "submitter").Logger(),
		api:  api,
		cfg:  cfg,
		wg:   &sync.WaitGroup{},
		done: make(chan struct{}),
		once: &sync.Once{},
	}

	return &s
}

// Transaction submits the transaction and waits until it reaches the configured
// commitment, the context is canceled or the ledger reports it as failed.
func (s *Submitter) Transaction(ctx context.Context, tx *object.Transaction) (solana.Signature, error) {

	if tx == nil || tx.Payload == nil {
		return solana.Signature{}, failure.InvalidTransaction{
			Description: failure.NewDescription("transaction is empty"),
		}
	}
	for index := range tx.Signers() {
		if !tx.Signed(index) {
			return solana.Signature{}, failure.InvalidTransaction{
				Description: failure.NewDescription("transaction is missing signatures",
					failure.WithInt("slot", index),
					failure.WithString("signer", tx.Signers()[index].String()),
				),
			}
		}
	}

	opts := rpc.TransactionOpts{
		PreflightCommitment: s.cfg.Commitment,
	}
	signature, err := s.api.SendTransactionWithOpts(ctx, tx.Payload, opts)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("could not submit transaction: %w", err)
	}

	err = s.confirm(ctx, signature)
	if err != nil {
		return signature, fmt.Errorf("could not confirm transaction (signature: %s): %w", signature, err)
	}

	return signature, nil
}

// Dispatch submits the transaction in the background without making the
// caller wait for its confirmation. The outcome is only logged.
func (s *Submitter) Dispatch(tx *object.Transaction) {

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
		defer cancel()
		go func() {
			select {
			case <-s.done:
				cancel()
			case <-ctx.Done():
			}
		}()

		signature, err := s.Transaction(ctx, tx)
		if err != nil {
			s.log.Error().Err(err).Str("signature", signature.String()).Msg("dispatched transaction failed")
			return
		}

		s.log.Info().Str("signature", signature.String()).Msg("dispatched transaction confirmed")
	}()
}

// Wait blocks until every dispatched transaction has been followed to the end.
func (s *Submitter) Wait() {
	s.wg.Wait()
}

// Stop cancels the confirmation of every dispatched transaction and waits for
// them to return.
func (s *Submitter) Stop() {
	s.once.Do(func() {
		close(s.done)
	})
	s.wg.Wait()
}

func (s *Submitter) confirm(ctx context.Context, signature solana.Signature) error {

	poll := func() error {
		result, err := s.api.GetSignatureStatuses(ctx, false, signature)
		if err != nil {
			return err
		}
		if result == nil || len(result.Value) == 0 || result.Value[0] == nil {
			return errPending
		}

		status := result.Value[0]
		if status.Err != nil {
			return backoff.Permanent(fmt.Errorf("transaction failed on ledger: %v", status.Err))
		}
		if !reached(status.ConfirmationStatus, s.cfg.Commitment) {
			return errPending
		}

		return nil
	}

	policy := backoff.WithContext(backoff.NewConstantBackOff(s.cfg.Interval), ctx)
	err := backoff.Retry(poll, policy)
	if err != nil {
		return err
	}

	return nil
}

// reached returns whether the status satisfies the given commitment level.
func reached(status rpc.ConfirmationStatusType, commitment rpc.CommitmentType) bool {
	switch commitment {
	case rpc.CommitmentProcessed:
		return status == rpc.ConfirmationStatusProcessed ||
			status == rpc.ConfirmationStatusConfirmed ||
			status == rpc.ConfirmationStatusFinalized
	case rpc.CommitmentConfirmed:
		return status == rpc.ConfirmationStatusConfirmed ||
			status == rpc.ConfirmationStatusFinalized
	default:
		return status == rpc.ConfirmationStatusFinalized
	}
}
