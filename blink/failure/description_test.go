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

package failure_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optakt/blink-actions/blink/failure"
	"github.com/optakt/blink-actions/testing/mocks"
)

func TestDescription(t *testing.T) {
	descBody := "test"
	height := mocks.GenericHeight
	index := 84
	account := mocks.GenericAccount(0).String()
	params := []string{"receiverWallet", "nameParam"}

	t.Run("full description with fields", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(
			descBody,
			failure.WithErr(mocks.GenericError),
			failure.WithUint64("height", height),
			failure.WithInt("index", index),
			failure.WithString("account", account),
			failure.WithStrings("parameters", params...),
		)

		assert.Equal(t, desc.Text, descBody)
		assert.NotEqual(t, desc.String(), descBody)
		assert.Contains(t, desc.Fields.String(), mocks.GenericError.Error())
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("height: %v", height))
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("index: %v", index))
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("account: %v", account))
		assert.Contains(t, desc.Fields.String(), "parameters: receiverWallet,nameParam")
	})

	t.Run("no fields", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(descBody)

		assert.Equal(t, desc.Text, descBody)
		assert.Equal(t, desc.String(), descBody)
	})

	t.Run("iterates fields in order", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(descBody,
			failure.WithString("first", "1"),
			failure.WithString("second", "2"),
		)

		var keys []string
		desc.Fields.Iterate(func(key string, _ interface{}) {
			keys = append(keys, key)
		})

		assert.Equal(t, []string{"first", "second"}, keys)
	})
}

func TestFailures(t *testing.T) {
	desc := failure.NewDescription("dummy")

	t.Run("invalid address mentions the parameter", func(t *testing.T) {
		t.Parallel()

		err := failure.InvalidAddress{Description: desc, Address: "not-a-key", Parameter: "receiverWallet"}

		assert.Contains(t, err.Error(), "receiverWallet")
		assert.Contains(t, err.Error(), "not-a-key")
	})

	t.Run("stale reference mentions heights", func(t *testing.T) {
		t.Parallel()

		err := failure.StaleReference{Description: desc, Height: 100, LastValid: 90}

		assert.Contains(t, err.Error(), "height: 100")
		assert.Contains(t, err.Error(), "last valid: 90")
	})
}
