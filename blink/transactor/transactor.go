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

package transactor

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"golang.org/x/sync/errgroup"

	"github.com/optakt/blink-actions/blink/catalog"
	"github.com/optakt/blink-actions/blink/failure"
	"github.com/optakt/blink-actions/blink/object"
	"github.com/optakt/blink-actions/blink/serializer"
	"github.com/optakt/blink-actions/blink/validator"
)

// Transactor compiles actions into ledger transactions. It either hands back a
// partially signed transaction for the client to complete, or signs and
// broadcasts a server-only transaction itself.
type Transactor struct {
	catalog  Catalog
	oracle   Oracle
	compose  Composer
	assemble Assembler
	cosign   Cosigner
	submit   Submitter
	server   solana.PublicKey
}

// New creates a new transactor paying and co-signing with the given server
// account.
func New(catalog Catalog, oracle Oracle, compose Composer, assemble Assembler, cosign Cosigner, submit Submitter, server solana.PublicKey) *Transactor {

	t := Transactor{
		catalog:  catalog,
		oracle:   oracle,
		compose:  compose,
		assemble: assemble,
		cosign:   cosign,
		submit:   submit,
		server:   server,
	}

	return &t
}

// BuildForClient compiles the selected action of the blink into a transaction
// for the given account. The server slot is signed when the server takes part
// in the transaction, the client slot is always left empty.
func (t *Transactor) BuildForClient(ctx context.Context, blink string, selector string, account string, params map[string]string) (*object.Result, error) {

	user, err := validator.Address(account)
	if err != nil {
		return nil, err
	}

	action, err := t.catalog.Resolve(blink, selector)
	if err != nil {
		return nil, err
	}

	instructions, err := t.compose.Compose(action, user, params)
	if err != nil {
		return nil, err
	}

	feePayer := user
	if action.Kind.Payer() == catalog.PayerServer {
		feePayer = t.server
	}

	tx, err := t.build(ctx, action, feePayer, params, instructions)
	if err != nil {
		return nil, err
	}

	encoded, err := serializer.Encode(tx)
	if err != nil {
		return nil, err
	}

	result := object.Result{
		Transaction: encoded,
		Message:     t.compose.Message(action, user, params),
	}

	return &result, nil
}

// ExecuteServerSide compiles the part of the action the server can authorize
// alone, signs it completely and broadcasts it without waiting for the
// outcome. Failures to broadcast are only logged by the submitter.
func (t *Transactor) ExecuteServerSide(ctx context.Context, blink string, selector string, account string, params map[string]string) (*object.Result, error) {

	user, err := validator.Address(account)
	if err != nil {
		return nil, err
	}

	action, err := t.catalog.Resolve(blink, selector)
	if err != nil {
		return nil, err
	}

	instructions, err := t.compose.ServerSide(action, params)
	if err != nil {
		return nil, err
	}

	tx, err := t.build(ctx, action, t.server, params, instructions)
	if err != nil {
		return nil, err
	}

	encoded, err := serializer.Encode(tx)
	if err != nil {
		return nil, err
	}

	t.submit.Dispatch(tx)

	result := object.Result{
		Transaction: encoded,
		Message:     t.compose.Message(action, user, params),
	}

	return &result, nil
}

// build anchors the instructions to a fresh reference and co-signs them. When
// the action pays out of the server account, the payout is checked against the
// rent exemption minimum at the same time as the reference is fetched.
func (t *Transactor) build(ctx context.Context, action catalog.Action, feePayer solana.PublicKey, params map[string]string, instructions []solana.Instruction) (*object.Transaction, error) {

	var ref object.Reference
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		ref, err = t.oracle.Reference(gctx)
		return err
	})
	payout, ok := t.compose.Payout(action)
	if ok {
		group.Go(func() error {
			return t.exempt(gctx, params[catalog.ParamReceiver], payout)
		})
	}
	err := group.Wait()
	if err != nil {
		return nil, err
	}

	tx, err := t.assemble.Assemble(feePayer, ref, instructions)
	if err != nil {
		return nil, err
	}

	signed, err := t.cosign.Cosign(ctx, tx)
	if err != nil {
		return nil, err
	}

	return signed, nil
}

func (t *Transactor) exempt(ctx context.Context, receiver string, amount uint64) error {

	minimum, err := t.oracle.RentExemption(ctx, 0)
	if err != nil {
		return err
	}
	if amount < minimum {
		return failure.BelowRentExemption{
			Description: failure.NewDescription("receiving account may not be rent exempt"),
			Receiver:    receiver,
			Amount:      amount,
			Minimum:     minimum,
		}
	}

	return nil
}
