// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package uri

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// scopeName is the instrumentation scope reported to OpenTelemetry.
const scopeName = "rivaas.dev/uri"

// recorder collects build metrics through the OpenTelemetry metric API.
// The zero value is disabled; [WithMeterProvider] creates an enabled one.
// This package never installs or reads the global meter provider.
type recorder struct {
	enabled       bool
	buildTotal    metric.Int64Counter
	buildDuration metric.Float64Histogram
}

// newRecorder creates instruments from the given provider. Instrument
// creation failures are routed to the OpenTelemetry error handler and
// leave the affected instrument nil (recording then skips it).
func newRecorder(provider metric.MeterProvider) *recorder {
	meter := provider.Meter(scopeName)

	buildTotal, err := meter.Int64Counter("uri_build_total",
		metric.WithDescription("Total number of URI builds"),
	)
	if err != nil {
		otel.Handle(err)
	}

	buildDuration, err := meter.Float64Histogram("uri_build_duration_seconds",
		metric.WithDescription("Duration of URI builds in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return &recorder{
		enabled:       true,
		buildTotal:    buildTotal,
		buildDuration: buildDuration,
	}
}

// record registers one completed build with its outcome and duration.
func (r *recorder) record(elapsed time.Duration, buildErr error) {
	if r == nil || !r.enabled {
		return
	}

	status := "ok"
	if buildErr != nil {
		status = "error"
	}
	attrs := metric.WithAttributes(attribute.String("status", status))

	ctx := context.Background()
	if r.buildTotal != nil {
		r.buildTotal.Add(ctx, 1, attrs)
	}
	if r.buildDuration != nil {
		r.buildDuration.Record(ctx, elapsed.Seconds(), attrs)
	}
}
