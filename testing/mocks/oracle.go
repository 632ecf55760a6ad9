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

type Oracle struct {
	ReferenceFunc     func(ctx context.Context) (object.Reference, error)
	HeightFunc        func(ctx context.Context) (uint64, error)
	RentExemptionFunc func(ctx context.Context, size uint64) (uint64, error)
}

func BaselineOracle(t *testing.T) *Oracle {
	t.Helper()

	o := Oracle{
		ReferenceFunc: func(context.Context) (object.Reference, error) {
			return GenericReference, nil
		},
		HeightFunc: func(context.Context) (uint64, error) {
			return GenericHeight, nil
		},
		RentExemptionFunc: func(context.Context, uint64) (uint64, error) {
			return GenericRent, nil
		},
	}

	return &o
}

func (o *Oracle) Reference(ctx context.Context) (object.Reference, error) {
	return o.ReferenceFunc(ctx)
}

func (o *Oracle) Height(ctx context.Context) (uint64, error) {
	return o.HeightFunc(ctx)
}

func (o *Oracle) RentExemption(ctx context.Context, size uint64) (uint64, error) {
	return o.RentExemptionFunc(ctx, size)
}
