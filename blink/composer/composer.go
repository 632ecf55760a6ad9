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

package composer

import (
	"strings"
	"unicode/utf8"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"

	"github.com/optakt/blink-actions/blink/catalog"
	"github.com/optakt/blink-actions/blink/configuration"
	"github.com/optakt/blink-actions/blink/failure"
	"github.com/optakt/blink-actions/blink/validator"
)

// MaxNickname is the maximum length in bytes of a nickname written to a memo.
const MaxNickname = 64

// Composer translates an action into the ordered list of instructions that
// carry it out on the ledger. Amounts and fixed destinations always come from
// the configuration, never from the client.
type Composer struct {
	cfg    configuration.Configuration
	server solana.PublicKey
}

// New creates a composer paying out of the given server account.
func New(cfg configuration.Configuration, server solana.PublicKey) *Composer {

	c := Composer{
		cfg:    cfg,
		server: server,
	}

	return &c
}

// Compose returns the instructions of the action for the given user. When an
// action charges a commission, the commission transfer always comes before
// the payout, so the payout can never execute without it.
func (c *Composer) Compose(action catalog.Action, user solana.PublicKey, params map[string]string) ([]solana.Instruction, error) {

	err := c.check(action, params)
	if err != nil {
		return nil, err
	}

	switch action.Kind {

	case catalog.KindTransfer:
		receiver, err := validator.Parameter(catalog.ParamReceiver, param(params, catalog.ParamReceiver))
		if err != nil {
			return nil, err
		}
		commission := system.NewTransferInstruction(c.cfg.CommissionAmount, user, c.cfg.Commission).Build()
		payout := system.NewTransferInstruction(c.cfg.PayoutAmount, c.server, receiver).Build()
		return []solana.Instruction{commission, payout}, nil

	case catalog.KindDonate:
		donation := system.NewTransferInstruction(c.cfg.DonationAmount, user, c.cfg.Donation).Build()
		return []solana.Instruction{donation}, nil

	case catalog.KindNickname:
		name := param(params, catalog.ParamNickname)
		err := nickname(name)
		if err != nil {
			return nil, err
		}
		donation := system.NewTransferInstruction(c.cfg.DonationAmount, user, c.cfg.Donation).Build()
		memo := Memo(user, greeting(name))
		return []solana.Instruction{donation, memo}, nil

	case catalog.KindAirdrop:
		claim := system.NewTransferInstruction(c.cfg.AirdropAmount, user, c.cfg.Donation).Build()
		return []solana.Instruction{claim}, nil

	default:
		return nil, unknownKind(action)
	}
}

// ServerSide returns the instructions of the action that the server can
// authorize on its own, without any signature from the user.
func (c *Composer) ServerSide(action catalog.Action, params map[string]string) ([]solana.Instruction, error) {

	if action.Kind != catalog.KindTransfer {
		return nil, failure.UnknownAction{
			Description: failure.NewDescription("action can not be executed by the server",
				failure.WithString("kind", action.Kind.String()),
			),
			Selector: action.Selector,
		}
	}

	err := c.check(action, params)
	if err != nil {
		return nil, err
	}

	receiver, err := validator.Parameter(catalog.ParamReceiver, param(params, catalog.ParamReceiver))
	if err != nil {
		return nil, err
	}

	payout := system.NewTransferInstruction(c.cfg.PayoutAmount, c.server, receiver).Build()

	return []solana.Instruction{payout}, nil
}

// Payout returns the amount paid out by the server for the action, if any.
func (c *Composer) Payout(action catalog.Action) (uint64, bool) {
	if action.Kind != catalog.KindTransfer {
		return 0, false
	}
	return c.cfg.PayoutAmount, true
}

// Message returns the text shown to the user alongside the transaction.
func (c *Composer) Message(action catalog.Action, user solana.PublicKey, params map[string]string) string {
	switch action.Kind {
	case catalog.KindTransfer:
		return "Check your wallet for the transaction"
	case catalog.KindNickname:
		return greeting(param(params, catalog.ParamNickname))
	case catalog.KindAirdrop:
		return "Airdrop claimed!"
	default:
		return greeting(user.String())
	}
}

func (c *Composer) check(action catalog.Action, params map[string]string) error {
	for _, name := range action.Required() {
		if param(params, name) == "" {
			return failure.MissingParameter{
				Description: failure.NewDescription("parameter is required for this action",
					failure.WithString("selector", action.Selector),
					failure.WithString("kind", action.Kind.String()),
				),
				Name: name,
			}
		}
	}
	return nil
}

func param(params map[string]string, name string) string {
	return strings.TrimSpace(params[name])
}

// nickname checks that the name can be written to a memo as is.
func nickname(name string) error {
	if !utf8.ValidString(name) {
		return failure.InvalidParameter{
			Description: failure.NewDescription("parameter is not valid UTF-8"),
			Name:        catalog.ParamNickname,
		}
	}
	if len(name) > MaxNickname {
		return failure.InvalidParameter{
			Description: failure.NewDescription("parameter is too long",
				failure.WithInt("length", len(name)),
				failure.WithInt("maximum", MaxNickname),
			),
			Name: catalog.ParamNickname,
		}
	}
	return nil
}

func greeting(name string) string {
	return "Hello " + name
}

func unknownKind(action catalog.Action) failure.UnknownAction {
	return failure.UnknownAction{
		Description: failure.NewDescription("unsupported action kind",
			failure.WithInt("kind", int(action.Kind)),
		),
		Selector: action.Selector,
	}
}
