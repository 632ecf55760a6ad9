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

package oracle

import (
	"time"

	"github.com/gagliardetto/solana-go/rpc"

	"github.com/optakt/blink-actions/blink/configuration"
)

// Config holds the settings of the oracle.
type Config struct {
	Commitment rpc.CommitmentType
	Timeout    time.Duration
	Retries    uint64
	CacheSize  uint64
}

// DefaultConfig is the default configuration of the oracle.
var DefaultConfig = Config{
	Commitment: configuration.DefaultCommitment,
	Timeout:    5 * time.Second,
	Retries:    2,
	CacheSize:  1 << 20, // 1 MB
}

// WithCommitment sets the commitment level used for every read.
func WithCommitment(commitment rpc.CommitmentType) func(*Config) {
	return func(cfg *Config) {
		cfg.Commitment = commitment
	}
}

// WithTimeout sets the timeout of a single RPC call.
func WithTimeout(timeout time.Duration) func(*Config) {
	return func(cfg *Config) {
		cfg.Timeout = timeout
	}
}

// WithRetries sets how many times a failed read is retried.
func WithRetries(retries uint64) func(*Config) {
	return func(cfg *Config) {
		cfg.Retries = retries
	}
}

// WithCacheSize sets the maximum size of the rent exemption cache in bytes.
func WithCacheSize(size uint64) func(*Config) {
	return func(cfg *Config) {
		cfg.CacheSize = size
	}
}
