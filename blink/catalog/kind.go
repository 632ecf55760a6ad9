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

package catalog

// Kind is the closed set of actions the server knows how to compile.
type Kind uint8

const (
	KindTransfer Kind = iota + 1
	KindDonate
	KindNickname
	KindAirdrop
)

// Payer designates which account pays the network fees of a transaction.
type Payer uint8

const (
	PayerUser Payer = iota + 1
	PayerServer
)

// Parameter names used by the action kinds.
const (
	ParamReceiver = "receiverWallet"
	ParamNickname = "nameParam"
)

func (k Kind) String() string {
	switch k {
	case KindTransfer:
		return "transfer"
	case KindDonate:
		return "donate"
	case KindNickname:
		return "nickname"
	case KindAirdrop:
		return "airdrop"
	default:
		return "unknown"
	}
}

// Payer returns the fee payer designated for the kind.
func (k Kind) Payer() Payer {
	if k == KindTransfer {
		return PayerServer
	}
	return PayerUser
}

// Schema returns the typed parameter schema of the kind.
func (k Kind) Schema() []Parameter {
	switch k {
	case KindTransfer:
		return []Parameter{
			{Name: ParamReceiver, Label: "Receiver Wallet", Required: true},
		}
	case KindNickname:
		return []Parameter{
			{Name: ParamNickname, Label: "nickname", Required: true},
		}
	default:
		return nil
	}
}
