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

// Package resource models URI path segments as linkable, argument-typed
// resource components.
//
// A [Resource] is one named segment with an optional typed argument, a
// policy declaring who requires that argument ([Requirement]), a chain of
// argument validators, and an ordering weight for consumers. Resources
// link into parent/child chains and compose deterministically into a path
// string.
//
// # Features
//
//   - Generic over the argument type; any value fmt can print works
//   - Copy-on-link chains: attaching never mutates the operands, so
//     there is no aliasing and cycles cannot be built
//   - One-time parent/child slots with explicit [AlreadySetError] on
//     re-attachment
//   - Requirement propagation: an argument can be required by the
//     resource itself, its parent, its child, or no one
//   - Validator chains with all failures collected into [NotValidError]
//   - go-playground/validator tag adapter via [Tag]
//
// # Quick Start
//
//	users := resource.New[int]("users").
//	    WithRequirement(resource.RequiredByMe).
//	    WithArgument(42).
//	    WithValidator(resource.Tag[int]("gte=1"))
//
//	chain, err := users.WithChild(resource.New[int]("orders"))
//	if err != nil {
//	    return err
//	}
//
//	path, err := chain.Compose() // "users/42/orders/"
//
// Compose the chain into a full URI with rivaas.dev/uri:
//
//	b := uri.New("api.example.com")
//	b = uri.AddResource(b, chain)
//	u, err := b.Build()
//
// All operations are synchronous and value-oriented; a composed chain is
// an immutable snapshot of the resources at attach time. Errors are
// always returned, never panicked, and unwrap to the package sentinels
// ([ErrMissingArgument], [ErrNotValid], [ErrAlreadySet]).
package resource
