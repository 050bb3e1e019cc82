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

import "go.opentelemetry.io/otel/metric"

// Option configures a [Builder] at construction time.
type Option func(*Builder)

// WithDiagnostics sets a diagnostic handler for the builder.
//
// Diagnostic events are optional informational events that may indicate
// configuration issues (clamped weights, dropped segments, defaulted
// scheme). The builder functions correctly whether diagnostics are
// collected or not.
//
// Example:
//
//	import "log/slog"
//
//	handler := uri.DiagnosticHandlerFunc(func(e uri.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	b := uri.New("api.example.com", uri.WithDiagnostics(handler))
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(b *Builder) {
		b.diagnostics = handler
	}
}

// WithMeterProvider enables build metrics through the given OpenTelemetry
// meter provider. Without this option no metrics are recorded and the
// global provider is never touched.
//
// Recorded instruments:
//
//	uri_build_total            counter, attribute status=ok|error
//	uri_build_duration_seconds histogram, same attributes
//
// Example:
//
//	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
//	b := uri.New("api.example.com", uri.WithMeterProvider(provider))
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(b *Builder) {
		b.metrics = newRecorder(provider)
	}
}
