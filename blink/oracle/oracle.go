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
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"github.com/dgraph-io/ristretto"

	"github.com/optakt/blink-actions/blink/failure"
	"github.com/optakt/blink-actions/blink/object"
)

// Oracle reads the chain state needed to build transactions. References are
// fetched fresh on every call; only the rent exemption minimum, which depends
// solely on the account size, is cached.
type Oracle struct {
	api   API
	cfg   Config
	cache Cache
}

// New creates an oracle reading from the given ledger API.
func New(api API, options ...func(*Config)) (*Oracle, error) {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	// Entries are tiny, so we count every one of them as a single unit of cost
	// out of the configured size.
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: int64(cfg.CacheSize) / 8 * 10,
		MaxCost:     int64(cfg.CacheSize) / 8,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("could not initialize cache: %w", err)
	}

	o := Oracle{
		api:   api,
		cfg:   cfg,
		cache: cache,
	}

	return &o, nil
}

// Reference returns the latest block reference at the configured commitment.
func (o *Oracle) Reference(ctx context.Context) (object.Reference, error) {

	var ref object.Reference
	err := o.retry(ctx, "latest blockhash", func(ctx context.Context) error {
		result, err := o.api.GetLatestBlockhash(ctx, o.cfg.Commitment)
		if err != nil {
			return err
		}
		if result == nil || result.Value == nil {
			return errors.New("empty blockhash result")
		}
		ref = object.Reference{
			Blockhash:            result.Value.Blockhash,
			LastValidBlockHeight: result.Value.LastValidBlockHeight,
		}
		return nil
	})
	if err != nil {
		return object.Reference{}, err
	}

	return ref, nil
}

// Height returns the current block height at the configured commitment.
func (o *Oracle) Height(ctx context.Context) (uint64, error) {

	var height uint64
	err := o.retry(ctx, "block height", func(ctx context.Context) error {
		var err error
		height, err = o.api.GetBlockHeight(ctx, o.cfg.Commitment)
		return err
	})
	if err != nil {
		return 0, err
	}

	return height, nil
}

// RentExemption returns the minimum balance, in lamports, for an account of
// the given data size to be exempt from rent.
func (o *Oracle) RentExemption(ctx context.Context, size uint64) (uint64, error) {

	cached, ok := o.cache.Get(size)
	if ok {
		return cached.(uint64), nil
	}

	var minimum uint64
	err := o.retry(ctx, "rent exemption", func(ctx context.Context) error {
		var err error
		minimum, err = o.api.GetMinimumBalanceForRentExemption(ctx, size, o.cfg.Commitment)
		return err
	})
	if err != nil {
		return 0, err
	}

	_ = o.cache.Set(size, minimum, 1)

	return minimum, nil
}

// retry runs the read under a per-attempt timeout and retries it a bounded
// number of times. Cancellation of the parent context stops the retries.
func (o *Oracle) retry(ctx context.Context, operation string, read func(ctx context.Context) error) error {

	attempt := func() error {
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		readCtx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
		defer cancel()
		return read(readCtx)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), o.cfg.Retries), ctx)
	err := backoff.Retry(attempt, policy)
	if err != nil {
		return failure.OracleUnavailable{
			Description: failure.NewDescription("could not read from ledger",
				failure.WithString("commitment", string(o.cfg.Commitment)),
				failure.WithUint64("retries", o.cfg.Retries),
				failure.WithErr(err),
			),
			Operation: operation,
		}
	}

	return nil
}
