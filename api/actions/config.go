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
	"github.com/optakt/blink-actions/blink/configuration"
)

type Config struct {
	BaseURL       string
	ActionVersion string
	BlockchainIDs string
}

var DefaultConfig = Config{
	BaseURL:       "",
	ActionVersion: configuration.ActionVersion,
	BlockchainIDs: configuration.BlockchainIDs,
}

// WithBaseURL sets the URL under which links and relative icons are rendered.
// When empty, it is derived from each request.
func WithBaseURL(base string) func(*Config) {
	return func(cfg *Config) {
		cfg.BaseURL = base
	}
}
