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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/uri/resource"
)

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		builder Builder
		want    string
	}{
		{
			name:    "bare host uses https and empty path",
			builder: New("example.com"),
			want:    "https://example.com",
		},
		{
			name:    "single param",
			builder: New("example.com").WithParam("page", 1),
			want:    "https://example.com?page=1",
		},
		{
			name:    "params join in insertion order",
			builder: New("example.com").WithParam("page", 1).WithParam("limit", 10),
			want:    "https://example.com?page=1&limit=10",
		},
		{
			name:    "single path",
			builder: New("example.com").WithPath("resource"),
			want:    "https://example.com/resource",
		},
		{
			name:    "weighted paths sort ascending",
			builder: New("example.com").WithPathWeight("b", 2.0).WithPathWeight("a", 1.0),
			want:    "https://example.com/a/b",
		},
		{
			name:    "default weight sorts last",
			builder: New("example.com").WithPathWeight("y", 0.5).WithPath("x"),
			want:    "https://example.com/y/x",
		},
		{
			name:    "default weight sorts last regardless of insertion order",
			builder: New("example.com").WithPath("x").WithPathWeight("y", 0.5),
			want:    "https://example.com/y/x",
		},
		{
			name:    "custom scheme",
			builder: New("localhost").WithScheme("file"),
			want:    "file://localhost",
		},
		{
			name:    "paths and params combine",
			builder: New("example.com").WithPathWeight("v2", 1).WithPath("users").WithParam("page", 1),
			want:    "https://example.com/v2/users?page=1",
		},
		{
			name:    "duplicate paths are kept",
			builder: New("example.com").WithPath("x").WithPath("x"),
			want:    "https://example.com/x/x",
		},
		{
			name:    "equal weights keep insertion order",
			builder: New("example.com").WithPathWeight("first", 1).WithPathWeight("second", 1),
			want:    "https://example.com/first/second",
		},
		{
			name:    "below-range weights clamp and keep insertion order",
			builder: New("example.com").WithPathWeight("a", 0.01).WithPathWeight("b", 0.05),
			want:    "https://example.com/a/b",
		},
		{
			name:    "empty segments are dropped",
			builder: New("example.com").WithPath("").WithPath("users"),
			want:    "https://example.com/users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := tt.builder.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestBuilder_BuildErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty host", func(t *testing.T) {
		t.Parallel()

		_, err := New("").Build()
		assert.ErrorIs(t, err, ErrEmptyHost)
	})

	t.Run("invalid host surfaces parse error", func(t *testing.T) {
		t.Parallel()

		_, err := New("exa mple.com").Build()
		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid character")
	})
}

func TestBuilder_ValueSemantics(t *testing.T) {
	t.Parallel()

	base := New("example.com")
	withA := base.WithPath("a")
	withB := base.WithPath("b")

	a, err := withA.Build()
	require.NoError(t, err)
	b, err := withB.Build()
	require.NoError(t, err)
	bare, err := base.Build()
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/a", a.String())
	assert.Equal(t, "https://example.com/b", b.String())
	assert.Equal(t, "https://example.com", bare.String(), "base builder must be unaffected")
}

func TestMustBuild(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://example.com", New("example.com").MustBuild().String())
	assert.Panics(t, func() { New("").MustBuild() })
}

func TestAddResource(t *testing.T) {
	t.Parallel()

	t.Run("merges composed chain", func(t *testing.T) {
		t.Parallel()

		chain, err := resource.New[int]("users").
			WithArgument(42).
			WithChild(resource.New[int]("orders"))
		require.NoError(t, err)

		u, err := AddResource(New("api.example.com"), chain).Build()
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/users/42/orders/", u.String())
	})

	t.Run("resource weight orders against plain paths", func(t *testing.T) {
		t.Parallel()

		chain := resource.New[int]("users").WithWeight(0.5)

		b := New("api.example.com").WithPathWeight("v2", 0.2)
		b = AddResource(b, chain)
		b = b.WithPath("trailing")

		u, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/v2/users/trailing", u.String())
	})

	t.Run("composition failure surfaces at build", func(t *testing.T) {
		t.Parallel()

		broken := resource.New[int]("users").WithRequirement(resource.RequiredByMe)

		b := AddResource(New("api.example.com"), broken)
		_, err := b.Build()
		assert.ErrorIs(t, err, resource.ErrMissingArgument)
	})

	t.Run("first carried error wins", func(t *testing.T) {
		t.Parallel()

		first := resource.New[int]("users").WithRequirement(resource.RequiredByMe)
		second := resource.New[int]("orders").
			WithArgument(1).
			WithValidator(resource.Tag[int]("gte=5"))

		b := AddResource(AddResource(New("api.example.com"), first), second)
		_, err := b.Build()

		var missing *resource.MissingArgumentError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "users", missing.Resource)
	})
}

func TestBuilder_Diagnostics(t *testing.T) {
	t.Parallel()

	collect := func() (*[]DiagnosticEvent, DiagnosticHandler) {
		var mu sync.Mutex
		events := &[]DiagnosticEvent{}
		return events, DiagnosticHandlerFunc(func(e DiagnosticEvent) {
			mu.Lock()
			defer mu.Unlock()
			*events = append(*events, e)
		})
	}

	t.Run("weight clamped", func(t *testing.T) {
		t.Parallel()

		events, handler := collect()
		New("example.com", WithDiagnostics(handler)).WithPathWeight("a", 0.01)

		require.Len(t, *events, 1)
		assert.Equal(t, DiagWeightClamped, (*events)[0].Kind)
		assert.Equal(t, 0.1, (*events)[0].Fields["clamped"])
	})

	t.Run("in-range weight emits nothing", func(t *testing.T) {
		t.Parallel()

		events, handler := collect()
		New("example.com", WithDiagnostics(handler)).WithPathWeight("a", 1.5)

		assert.Empty(t, *events)
	})

	t.Run("scheme default and dropped segments emit on build", func(t *testing.T) {
		t.Parallel()

		events, handler := collect()
		_, err := New("example.com", WithDiagnostics(handler)).WithPath("").Build()
		require.NoError(t, err)

		kinds := make([]DiagnosticKind, 0, len(*events))
		for _, e := range *events {
			kinds = append(kinds, e.Kind)
		}
		assert.Contains(t, kinds, DiagSchemeDefaulted)
		assert.Contains(t, kinds, DiagEmptySegmentDropped)
	})

	t.Run("configured scheme does not emit default event", func(t *testing.T) {
		t.Parallel()

		events, handler := collect()
		_, err := New("example.com", WithDiagnostics(handler)).WithScheme("http").Build()
		require.NoError(t, err)

		for _, e := range *events {
			assert.NotEqual(t, DiagSchemeDefaulted, e.Kind)
		}
	})
}
