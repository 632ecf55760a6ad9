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

package configuration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/blink-actions/blink/configuration"
)

func TestLamports(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		got, err := configuration.Lamports("0.0031")

		require.NoError(t, err)
		assert.Equal(t, uint64(3_100_000), got)
	})

	t.Run("single lamport", func(t *testing.T) {
		t.Parallel()

		got, err := configuration.Lamports("0.000000001")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), got)
	})

	t.Run("handles sub-lamport precision", func(t *testing.T) {
		t.Parallel()

		_, err := configuration.Lamports("0.0000000001")

		assert.Error(t, err)
	})

	t.Run("handles negative amount", func(t *testing.T) {
		t.Parallel()

		_, err := configuration.Lamports("-1")

		assert.Error(t, err)
	})

	t.Run("handles garbage", func(t *testing.T) {
		t.Parallel()

		_, err := configuration.Lamports("one sol")

		assert.Error(t, err)
	})
}

func TestDefault(t *testing.T) {
	cfg := configuration.Default()

	assert.Equal(t, uint64(500_000), cfg.CommissionAmount)
	assert.Equal(t, uint64(3_100_000), cfg.PayoutAmount)
	assert.Equal(t, uint64(1), cfg.DonationAmount)
	assert.Equal(t, uint64(10_000_000), cfg.AirdropAmount)
	assert.Equal(t, configuration.CommissionAddress, cfg.Commission.String())
	assert.Equal(t, configuration.DonationAddress, cfg.Donation.String())
}
