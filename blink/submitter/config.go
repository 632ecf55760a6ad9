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
	"time"

	"github.com/gagliardetto/solana-go/rpc"

	"github.com/optakt/blink-actions/blink/configuration"
)

type Config struct {
	Commitment rpc.CommitmentType
	Timeout    time.Duration
	Interval   time.Duration
}

var DefaultConfig = Config{
	Commitment: configuration.DefaultCommitment,
	Timeout:    30 * time.Second,
	Interval:   500 * time.Millisecond,
}

// WithCommitment sets the commitment level a submitted transaction has to
// reach to be considered confirmed.
func WithCommitment(commitment rpc.CommitmentType) func(*Config) {
	return func(cfg *Config) {
		cfg.Commitment = commitment
	}
}

// WithTimeout sets how long a dispatched transaction is followed before giving
// up on its confirmation.
func WithTimeout(timeout time.Duration) func(*Config) {
	return func(cfg *Config) {
		cfg.Timeout = timeout
	}
}

// WithInterval sets the polling interval of signature statuses.
func WithInterval(interval time.Duration) func(*Config) {
	return func(cfg *Config) {
		cfg.Interval = interval
	}
}
