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

package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/optakt/blink-actions/api/actions"
	"github.com/optakt/blink-actions/blink/object"
)

// Transactor counts and times the transactions compiled by the wrapped
// transactor.
type Transactor struct {
	transact actions.Transactor
	known    map[string]struct{}
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

const unknownBlink = "unknown"

// NewTransactor wraps the transactor and registers its metrics with the given
// registerer. Requests for blinks that are not among the given names are
// labelled as unknown, so that clients can't grow the number of series.
func NewTransactor(reg prometheus.Registerer, transact actions.Transactor, blinks []string) *Transactor {

	known := make(map[string]struct{}, len(blinks))
	for _, name := range blinks {
		known[name] = struct{}{}
	}

	factory := promauto.With(reg)

	requestsOpts := prometheus.CounterOpts{
		Name:      "action_requests_total",
		Namespace: namespaceBlinks,
		Help:      "number of action requests by operation, blink and outcome",
	}
	requests := factory.NewCounterVec(requestsOpts, []string{"operation", "blink", "outcome"})

	durationOpts := prometheus.HistogramOpts{
		Name:      "action_duration_seconds",
		Namespace: namespaceBlinks,
		Help:      "time spent compiling action transactions",
		Buckets:   prometheus.DefBuckets,
	}
	duration := factory.NewHistogramVec(durationOpts, []string{"operation"})

	t := Transactor{
		transact: transact,
		known:    known,
		requests: requests,
		duration: duration,
	}

	return &t
}

func (t *Transactor) BuildForClient(ctx context.Context, blink string, selector string, account string, params map[string]string) (*object.Result, error) {
	start := time.Now()
	result, err := t.transact.BuildForClient(ctx, blink, selector, account, params)
	t.observe("build", blink, start, err)
	return result, err
}

func (t *Transactor) ExecuteServerSide(ctx context.Context, blink string, selector string, account string, params map[string]string) (*object.Result, error) {
	start := time.Now()
	result, err := t.transact.ExecuteServerSide(ctx, blink, selector, account, params)
	t.observe("execute", blink, start, err)
	return result, err
}

func (t *Transactor) observe(operation string, blink string, start time.Time, err error) {
	t.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	_, ok := t.known[blink]
	if !ok {
		blink = unknownBlink
	}
	t.requests.WithLabelValues(operation, blink, outcome(err)).Inc()
}
