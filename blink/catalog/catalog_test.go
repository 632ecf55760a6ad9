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

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/blink-actions/blink/catalog"
	"github.com/optakt/blink-actions/blink/failure"
)

func TestDefault(t *testing.T) {
	c := catalog.Default()

	assert.Equal(t, []string{"demo", "solphi"}, c.Names())
	assert.NoError(t, c.Validate())

	solphi, err := c.Blink("solphi")
	require.NoError(t, err)
	require.Len(t, solphi.Actions, 1)
	assert.Equal(t, catalog.KindTransfer, solphi.Actions[0].Kind)
	assert.Equal(t, []string{catalog.ParamReceiver}, solphi.Actions[0].Required())
	assert.Equal(t, catalog.PayerServer, solphi.Actions[0].Kind.Payer())
}

func TestCatalog_Resolve(t *testing.T) {
	c := catalog.Default()

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		got, err := c.Resolve("demo", "nickname")

		require.NoError(t, err)
		assert.Equal(t, catalog.KindNickname, got.Kind)
		assert.Equal(t, []string{catalog.ParamNickname}, got.Required())
	})

	t.Run("empty selector resolves to first action", func(t *testing.T) {
		t.Parallel()

		got, err := c.Resolve("demo", "")

		require.NoError(t, err)
		assert.Equal(t, catalog.KindDonate, got.Kind)
	})

	t.Run("handles unknown selector", func(t *testing.T) {
		t.Parallel()

		_, err := c.Resolve("demo", "withdraw_everything")

		var uaErr failure.UnknownAction
		require.ErrorAs(t, err, &uaErr)
		assert.Equal(t, "demo", uaErr.Blink)
		assert.Equal(t, "withdraw_everything", uaErr.Selector)
	})

	t.Run("handles unknown blink", func(t *testing.T) {
		t.Parallel()

		_, err := c.Resolve("unknown", "")

		assert.ErrorAs(t, err, &failure.UnknownAction{})
	})
}

func TestNew(t *testing.T) {
	valid := catalog.Blink{
		Name:    "valid",
		Title:   "Valid",
		Actions: []catalog.Action{catalog.NewAction(catalog.KindDonate, "", "Donate")},
	}

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		c, err := catalog.New(valid)

		require.NoError(t, err)
		assert.Equal(t, []string{"valid"}, c.Names())
	})

	t.Run("reports every problem", func(t *testing.T) {
		t.Parallel()

		broken := catalog.Blink{
			Name: "broken",
			Actions: []catalog.Action{
				{Kind: catalog.Kind(42), Selector: "x", Label: ""},
				{Kind: catalog.KindDonate, Selector: "x", Label: "Again", Parameters: []catalog.Parameter{{Name: catalog.SelectorParam}}},
			},
		}

		_, err := catalog.New(valid, valid, broken)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate blink name (valid)")
		assert.Contains(t, err.Error(), "missing title (blink: broken)")
		assert.Contains(t, err.Error(), "unknown action kind")
		assert.Contains(t, err.Error(), "missing action label")
		assert.Contains(t, err.Error(), "duplicate selector")
		assert.Contains(t, err.Error(), "invalid parameter name")
	})

	t.Run("handles blink without actions", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.New(catalog.Blink{Name: "empty", Title: "Empty"})

		assert.Error(t, err)
	})
}

func TestHref(t *testing.T) {
	c := catalog.Default()

	t.Run("renders parameter placeholders", func(t *testing.T) {
		t.Parallel()

		action, err := c.Resolve("solphi", "")
		require.NoError(t, err)

		got, err := catalog.Href("https://example.com/", "solphi", action)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/api/actions/solphi?receiverWallet={receiverWallet}", got)
	})

	t.Run("renders selector", func(t *testing.T) {
		t.Parallel()

		action, err := c.Resolve("demo", "nickname")
		require.NoError(t, err)

		got, err := catalog.Href("https://example.com", "demo", action)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/api/actions/demo?action=nickname&nameParam={nameParam}", got)
	})

	t.Run("handles missing base", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.Href("", "demo", catalog.Action{})

		assert.Error(t, err)
	})
}
