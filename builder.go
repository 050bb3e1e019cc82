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
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"rivaas.dev/uri/resource"
)

// Builder composes a URI from a host, weighted path segments, query
// parameters, and an optional scheme.
//
// Builder is a value type: every configuration method returns an updated
// copy, so calls chain freely and earlier values are never aliased or
// mutated. A builder is typically constructed per URI and consumed once
// by [Builder.Build].
//
// Example:
//
//	u, err := uri.New("api.example.com").
//	    WithPathWeight("v2", 1).
//	    WithPath("users").
//	    WithParam("page", 1).
//	    Build()
//	// https://api.example.com/v2/users?page=1
type Builder struct {
	host        string
	scheme      string
	entries     []pathEntry
	params      []string
	err         error
	diagnostics DiagnosticHandler
	metrics     *recorder
}

// New creates a Builder for the given host. The path buffer is seeded
// with the root segment "/" at weight 0; explicit weights clamp to at
// least 0.1, so the root always sorts first.
func New(host string, opts ...Option) Builder {
	b := Builder{
		host:    host,
		entries: []pathEntry{{path: "/", weight: 0}},
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// WithParam appends a query parameter to the builder. The value is
// stringified with fmt.Sprint. Parameters keep insertion order and join
// with "&" at build time; duplicate names are kept as-is.
func (b Builder) WithParam(name string, value any) Builder {
	params := slices.Clone(b.params)
	b.params = append(params, fmt.Sprintf("%s=%s", name, fmt.Sprint(value)))
	return b
}

// WithPath appends a path segment with no explicit weight. Unweighted
// segments receive the maximum weight and therefore sort after every
// explicitly weighted segment, in insertion order among themselves.
func (b Builder) WithPath(path string) Builder {
	return b.insertPath(path, nil)
}

// WithPathWeight inserts a path segment with an explicit ordering
// weight. Weights clamp to [0.1, MaxFloat64]; clamping emits a
// [DiagWeightClamped] diagnostic. Segments sort ascending by weight,
// stably, on every insert.
func (b Builder) WithPathWeight(path string, weight float64) Builder {
	return b.insertPath(path, &weight)
}

// WithScheme overrides the default "https" scheme.
func (b Builder) WithScheme(scheme string) Builder {
	b.scheme = scheme
	return b
}

// AddResource composes a resource chain and inserts the resulting path
// into the builder at the chain root's weight. It is a free function
// because Go methods cannot introduce type parameters.
//
// Composition failure is not reported here: the error is carried by the
// builder and surfaced by [Builder.Build], which returns it before
// assembling anything. The first carried error wins.
func AddResource[T any](b Builder, root *resource.Resource[T]) Builder {
	path, err := root.Compose()
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	weight := root.Weight()
	return b.insertPath(path, &weight)
}

// insertPath adds one entry, applying the default-weight rule when
// weight is nil, then re-sorts all entries ascending by weight.
func (b Builder) insertPath(path string, weight *float64) Builder {
	w := defaultWeight
	if weight != nil {
		w = *weight
	}
	clamped := clampWeight(w)
	if weight != nil && clamped != w {
		b.emit(DiagWeightClamped, "path weight clamped", map[string]any{
			"path":    path,
			"weight":  w,
			"clamped": clamped,
		})
	}

	entries := append(slices.Clone(b.entries), pathEntry{path: path, weight: clamped})
	sortEntries(entries)
	b.entries = entries
	return b
}

// Build assembles the configured scheme, host, path, and query into a
// URL, delegating final parsing and validation to net/url and surfacing
// its error unchanged.
//
// Assembly rules:
//
//   - The scheme defaults to "https" when not configured.
//   - Non-empty path segments join with "/" in weight order, and a
//     literal "//" collapses to "/" in a single pass.
//   - A path that collapses to exactly "/" renders as an empty path, and
//     an empty parameter list omits the "?", so a bare builder yields
//     "https://host".
//
// A composition error carried by [AddResource] is returned before any
// assembly happens; no partial URL is ever produced.
func (b Builder) Build() (*url.URL, error) {
	start := time.Now()
	u, err := b.build()
	b.metrics.record(time.Since(start), err)
	return u, err
}

// MustBuild is like [Builder.Build] but panics on error. Use in tests or
// for URIs known to be static.
func (b Builder) MustBuild() *url.URL {
	u, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("uri.MustBuild: %v", err))
	}
	return u
}

func (b Builder) build() (*url.URL, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.host == "" {
		return nil, ErrEmptyHost
	}

	scheme := b.scheme
	if scheme == "" {
		scheme = "https"
		b.emit(DiagSchemeDefaulted, "scheme defaulted to https", map[string]any{
			"host": b.host,
		})
	}

	path, dropped := joinEntries(b.entries)
	if dropped > 0 {
		b.emit(DiagEmptySegmentDropped, "empty path segments dropped", map[string]any{
			"count": dropped,
		})
	}
	if path == "/" {
		path = ""
	}

	var raw strings.Builder
	raw.WriteString(scheme)
	raw.WriteString("://")
	raw.WriteString(b.host)
	raw.WriteString(path)
	if params := strings.Join(b.params, "&"); params != "" {
		raw.WriteString("?")
		raw.WriteString(params)
	}

	return url.Parse(raw.String())
}
