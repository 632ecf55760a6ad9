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

package mocks

import (
	"context"
	"testing"

	"github.com/optakt/blink-actions/blink/object"
)

type Transactor struct {
	BuildForClientFunc    func(ctx context.Context, blink string, selector string, account string, params map[string]string) (*object.Result, error)
	ExecuteServerSideFunc func(ctx context.Context, blink string, selector string, account string, params map[string]string) (*object.Result, error)
}

func BaselineTransactor(t *testing.T) *Transactor {
	t.Helper()

	tr := Transactor{
		BuildForClientFunc: func(context.Context, string, string, string, map[string]string) (*object.Result, error) {
			return &GenericResult, nil
		},
		ExecuteServerSideFunc: func(context.Context, string, string, string, map[string]string) (*object.Result, error) {
			return &GenericResult, nil
		},
	}

	return &tr
}

func (t *Transactor) BuildForClient(ctx context.Context, blink string, selector string, account string, params map[string]string) (*object.Result, error) {
	return t.BuildForClientFunc(ctx, blink, selector, account, params)
}

func (t *Transactor) ExecuteServerSide(ctx context.Context, blink string, selector string, account string, params map[string]string) (*object.Result, error) {
	return t.ExecuteServerSideFunc(ctx, blink, selector, account, params)
}
