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

package actions

import (
	"github.com/optakt/blink-actions/blink/catalog"
)

// GetResponse is the discovery document of a blink.
type GetResponse struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Label       string `json:"label"`
	Disabled    bool   `json:"disabled,omitempty"`
	Links       Links  `json:"links"`
}

type Links struct {
	Actions []LinkedAction `json:"actions"`
}

type LinkedAction struct {
	Label      string              `json:"label"`
	Href       string              `json:"href"`
	Parameters []catalog.Parameter `json:"parameters,omitempty"`
}

// PostResponse carries the transaction the client has to sign.
type PostResponse struct {
	Transaction string `json:"transaction"`
	Message     string `json:"message,omitempty"`
}

// RulesResponse maps website paths to the actions API.
type RulesResponse struct {
	Rules []Rule `json:"rules"`
}

type Rule struct {
	PathPattern string `json:"pathPattern"`
	APIPath     string `json:"apiPath"`
}
