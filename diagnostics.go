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

// DiagnosticEvent represents a builder diagnostic or anomaly.
// These are informational events that may indicate configuration issues.
//
// Diagnostic events are optional - the builder functions correctly
// whether they are collected or not. They provide visibility into edge
// cases for observability systems.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any // Structured context
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// DiagWeightClamped is emitted when an explicit path weight falls
	// outside the allowed range and is clamped.
	DiagWeightClamped DiagnosticKind = "path_weight_clamped"

	// DiagEmptySegmentDropped is emitted when an empty path segment is
	// discarded during Build.
	DiagEmptySegmentDropped DiagnosticKind = "empty_segment_dropped"

	// DiagSchemeDefaulted is emitted when Build falls back to the https
	// default because no scheme was configured.
	DiagSchemeDefaulted DiagnosticKind = "scheme_defaulted"
)

// DiagnosticHandler receives diagnostic events from the builder.
// Implementations may log, emit metrics, trace events, or ignore them.
//
// This interface is optional - if not provided, diagnostics are silently
// dropped. The builder's behavior is unchanged whether diagnostics are
// collected or not.
//
// Example with logging:
//
//	import "log/slog"
//
//	handler := uri.DiagnosticHandlerFunc(func(e uri.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	b := uri.New("api.example.com", uri.WithDiagnostics(handler))
type DiagnosticHandler interface {
	// HandleDiagnostic processes a diagnostic event.
	// Must be safe for concurrent use and must not block.
	HandleDiagnostic(event DiagnosticEvent)
}

// DiagnosticHandlerFunc adapts a function to the [DiagnosticHandler]
// interface.
type DiagnosticHandlerFunc func(event DiagnosticEvent)

// HandleDiagnostic calls f(event).
func (f DiagnosticHandlerFunc) HandleDiagnostic(event DiagnosticEvent) {
	f(event)
}

// emit sends a diagnostic event to the configured handler, if any.
func (b Builder) emit(kind DiagnosticKind, message string, fields map[string]any) {
	if b.diagnostics == nil {
		return
	}
	b.diagnostics.HandleDiagnostic(DiagnosticEvent{
		Kind:    kind,
		Message: message,
		Fields:  fields,
	})
}
