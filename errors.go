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

import "errors"

var (
	// ErrEmptyHost indicates that the builder was constructed with an
	// empty host.
	ErrEmptyHost = errors.New("host must not be empty")

	// ErrManifestEmptyHost indicates that a manifest did not declare a
	// host.
	ErrManifestEmptyHost = errors.New("manifest host must not be empty")

	// ErrUnknownFormat indicates that a manifest format could not be
	// detected or is not supported.
	ErrUnknownFormat = errors.New("unknown manifest format")
)
