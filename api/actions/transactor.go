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
	"context"

	"github.com/optakt/blink-actions/blink/object"
)

// Transactor is used by the actions API to compile actions into transactions.
type Transactor interface {
	BuildForClient(ctx context.Context, blink string, selector string, account string, params map[string]string) (*object.Result, error)
	ExecuteServerSide(ctx context.Context, blink string, selector string, account string, params map[string]string) (*object.Result, error)
}
