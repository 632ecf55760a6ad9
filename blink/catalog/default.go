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

// Icons of the default blinks. Relative icons are served from the base URL.
const (
	SolphiIcon = "https://i.ibb.co/S3tHzDy/turbin.png"
	DemoIcon   = "/logoS.png"
)

// Default returns the catalog of blinks served out of the box.
func Default() *Catalog {

	solphi := Blink{
		Name:        "solphi",
		Title:       "Solφ Turbin3 Advertisement",
		Icon:        SolphiIcon,
		Description: "Earn SOL by watching ads.",
		Label:       "Transfer",
		Actions: []Action{
			NewAction(KindTransfer, "", "Send"),
		},
	}

	demo := Blink{
		Name:        "demo",
		Title:       "Do Blink",
		Icon:        DemoIcon,
		Description: "This is solFHE demo blink",
		Label:       "Try me!",
		Actions: []Action{
			NewAction(KindDonate, "another", "Another Action"),
			NewAction(KindNickname, "nickname", "With Param"),
			NewAction(KindAirdrop, "claim_airdrop", "Claim Airdrop"),
		},
	}

	c, err := New(solphi, demo)
	if err != nil {
		panic(err)
	}

	return c
}
