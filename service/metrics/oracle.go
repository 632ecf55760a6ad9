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

	"github.com/optakt/blink-actions/blink/object"
)

// Reader is the set of ledger reads that can be timed.
type Reader interface {
	Reference(ctx context.Context) (object.Reference, error)
	Height(ctx context.Context) (uint64, error)
	RentExemption(ctx context.Context, size uint64) (uint64, error)
}

// Oracle times the ledger reads of the wrapped oracle.
type Oracle struct {
	read     Reader
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

// NewOracle wraps the oracle and registers its metrics with the given
// registerer.
func NewOracle(reg prometheus.Registerer, read Reader) *Oracle {

	factory := promauto.With(reg)

	durationOpts := prometheus.HistogramOpts{
		Name:      "ledger_read_duration_seconds",
		Namespace: namespaceBlinks,
		Help:      "time spent reading from the ledger, retries included",
		Buckets:   prometheus.DefBuckets,
	}
	duration := factory.NewHistogramVec(durationOpts, []string{"read"})

	failuresOpts := prometheus.CounterOpts{
		Name:      "ledger_read_failures_total",
		Namespace: namespaceBlinks,
		Help:      "number of failed ledger reads",
	}
	failures := factory.NewCounterVec(failuresOpts, []string{"read"})

	o := Oracle{
		read:     read,
		duration: duration,
		failures: failures,
	}

	return &o
}

func (o *Oracle) Reference(ctx context.Context) (object.Reference, error) {
	defer o.time("reference")()
	ref, err := o.read.Reference(ctx)
	o.fail("reference", err)
	return ref, err
}

func (o *Oracle) Height(ctx context.Context) (uint64, error) {
	defer o.time("height")()
	height, err := o.read.Height(ctx)
	o.fail("height", err)
	return height, err
}

func (o *Oracle) RentExemption(ctx context.Context, size uint64) (uint64, error) {
	defer o.time("rent_exemption")()
	minimum, err := o.read.RentExemption(ctx, size)
	o.fail("rent_exemption", err)
	return minimum, err
}

func (o *Oracle) time(read string) func() {
	start := time.Now()
	return func() {
		o.duration.WithLabelValues(read).Observe(time.Since(start).Seconds())
	}
}

func (o *Oracle) fail(read string, err error) {
	if err != nil {
		o.failures.WithLabelValues(read).Inc()
	}
}
