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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format identifies a manifest encoding.
type Format string

const (
	// FormatYAML is the YAML manifest encoding.
	FormatYAML Format = "yaml"

	// FormatJSON is the JSON manifest encoding.
	FormatJSON Format = "json"
)

// extensionFormats maps file extensions to formats for automatic
// detection in [LoadManifestFile].
var extensionFormats = map[string]Format{
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".json": FormatJSON,
}

// Manifest is a declarative description of a route, loadable from YAML
// or JSON. It mirrors the fluent builder API: weighted paths, ordered
// parameters, an optional scheme.
//
// Example manifest (YAML):
//
//	host: api.example.com
//	scheme: https
//	paths:
//	  - path: v2
//	    weight: 1
//	  - path: users
//	params:
//	  - name: page
//	    value: "1"
type Manifest struct {
	Host   string      `json:"host" yaml:"host"`
	Scheme string      `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	Paths  []PathSpec  `json:"paths,omitempty" yaml:"paths,omitempty"`
	Params []ParamSpec `json:"params,omitempty" yaml:"params,omitempty"`
}

// PathSpec declares one path segment. A nil Weight applies the
// default-weight rule: the segment sorts after all weighted ones.
type PathSpec struct {
	Path   string   `json:"path" yaml:"path"`
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// ParamSpec declares one query parameter.
type ParamSpec struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// LoadManifest decodes a manifest from data in the given format.
func LoadManifest(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("decode yaml manifest: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("decode json manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &m, nil
}

// LoadManifestFile reads and decodes a manifest file, detecting the
// format from the file extension (.yaml, .yml, .json).
func LoadManifestFile(path string) (*Manifest, error) {
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return LoadManifest(data, format)
}

// detectFormat detects the manifest format from the file extension.
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if format, ok := extensionFormats[ext]; ok {
		return format, nil
	}
	return "", fmt.Errorf("%w: cannot detect from extension %q", ErrUnknownFormat, ext)
}

// Builder converts the manifest into a configured [Builder], applying
// paths and parameters in declaration order. It fails with
// [ErrManifestEmptyHost] if the manifest declares no host.
func (m *Manifest) Builder(opts ...Option) (Builder, error) {
	if m.Host == "" {
		return Builder{}, ErrManifestEmptyHost
	}

	b := New(m.Host, opts...)
	if m.Scheme != "" {
		b = b.WithScheme(m.Scheme)
	}
	for _, p := range m.Paths {
		if p.Weight != nil {
			b = b.WithPathWeight(p.Path, *p.Weight)
			continue
		}
		b = b.WithPath(p.Path)
	}
	for _, p := range m.Params {
		b = b.WithParam(p.Name, p.Value)
	}
	return b, nil
}
