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

// Package uri constructs URIs from the ground up: weighted path
// segments, query parameters, and a scheme compose into a single URL.
// Useful where routes with common properties are built dynamically
// rather than written as literals.
//
// # Features
//
//   - Chainable value-type [Builder]: no shared state, no locking
//   - Weighted path ordering with a stable ascending sort; unweighted
//     segments sort last
//   - Resource chains from rivaas.dev/uri/resource merge in via
//     [AddResource]
//   - Declarative YAML/JSON route manifests ([Manifest])
//   - Optional OpenTelemetry build metrics ([WithMeterProvider]) and
//     diagnostic events ([WithDiagnostics])
//
// # Quick Start
//
//	u, err := uri.New("api.example.com").
//	    WithPathWeight("v2", 1).
//	    WithPath("users").
//	    WithParam("page", 1).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(u) // https://api.example.com/v2/users?page=1
//
// A bare builder produces just scheme and host:
//
//	uri.New("example.com").MustBuild() // https://example.com
//
// # Manifests
//
// Routes can be declared in YAML or JSON and loaded at runtime:
//
//	m, err := uri.LoadManifestFile("route.yaml")
//	if err != nil {
//	    return err
//	}
//	b, err := m.Builder()
//
// Final parsing and structural validation are delegated to net/url;
// Build surfaces its errors unchanged.
package uri
