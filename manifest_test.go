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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlManifest = `
host: api.example.com
scheme: https
paths:
  - path: users
  - path: v2
    weight: 1
params:
  - name: page
    value: "1"
`

const jsonManifest = `{
	"host": "api.example.com",
	"paths": [
		{"path": "users"},
		{"path": "v2", "weight": 1}
	],
	"params": [
		{"name": "page", "value": "1"}
	]
}`

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{name: "yaml", data: yamlManifest, format: FormatYAML},
		{name: "json", data: jsonManifest, format: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := LoadManifest([]byte(tt.data), tt.format)
			require.NoError(t, err)

			assert.Equal(t, "api.example.com", m.Host)
			require.Len(t, m.Paths, 2)
			assert.Nil(t, m.Paths[0].Weight, "unweighted path must stay unweighted")
			require.NotNil(t, m.Paths[1].Weight)
			assert.Equal(t, 1.0, *m.Paths[1].Weight) //nolint:testifylint // exact value expected

			b, err := m.Builder()
			require.NoError(t, err)

			u, err := b.Build()
			require.NoError(t, err)
			assert.Equal(t, "https://api.example.com/v2/users?page=1", u.String())
		})
	}
}

func TestLoadManifest_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := LoadManifest([]byte("host: x"), Format("toml"))
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := LoadManifest([]byte("host: [unclosed"), FormatYAML)
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()

		_, err := LoadManifest([]byte("{"), FormatJSON)
		assert.Error(t, err)
	})
}

func TestLoadManifestFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	write := func(name, data string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
		return path
	}

	t.Run("yaml extension", func(t *testing.T) {
		m, err := LoadManifestFile(write("route.yaml", yamlManifest))
		require.NoError(t, err)
		assert.Equal(t, "api.example.com", m.Host)
	})

	t.Run("json extension", func(t *testing.T) {
		m, err := LoadManifestFile(write("route.json", jsonManifest))
		require.NoError(t, err)
		assert.Equal(t, "api.example.com", m.Host)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadManifestFile(write("route.txt", yamlManifest))
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadManifestFile(filepath.Join(dir, "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestManifest_Builder(t *testing.T) {
	t.Parallel()

	t.Run("empty host", func(t *testing.T) {
		t.Parallel()

		m := &Manifest{}
		_, err := m.Builder()
		assert.ErrorIs(t, err, ErrManifestEmptyHost)
	})

	t.Run("scheme override applies", func(t *testing.T) {
		t.Parallel()

		m := &Manifest{Host: "localhost", Scheme: "file"}
		b, err := m.Builder()
		require.NoError(t, err)

		u, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, "file://localhost", u.String())
	})

	t.Run("options are applied", func(t *testing.T) {
		t.Parallel()

		var events []DiagnosticEvent
		handler := DiagnosticHandlerFunc(func(e DiagnosticEvent) {
			events = append(events, e)
		})

		weight := 0.01
		m := &Manifest{
			Host:  "example.com",
			Paths: []PathSpec{{Path: "a", Weight: &weight}},
		}
		_, err := m.Builder(WithDiagnostics(handler))
		require.NoError(t, err)

		require.Len(t, events, 1)
		assert.Equal(t, DiagWeightClamped, events[0].Kind)
	})
}
