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

package resource

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the resource package.
// Use errors.Is with these to classify failures without matching on the
// concrete error type.
var (
	// ErrMissingArgument indicates a required argument was absent at
	// composition time.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrNotValid indicates an argument was present but rejected by one or
	// more validators.
	ErrNotValid = errors.New("argument not valid")

	// ErrAlreadySet indicates an illegal second attachment of a parent or
	// child link.
	ErrAlreadySet = errors.New("relation already set")
)

// Relation identifies which link slot of a resource an operation touched.
type Relation string

const (
	// RelationParent is the parent link slot.
	RelationParent Relation = "parent"

	// RelationChild is the child link slot.
	RelationChild Relation = "child"
)

// MissingArgumentError is returned when composition requires an argument
// that was never set. Resource names the party that required it, which is
// not necessarily the resource being composed (see [RequiredByParent] and
// [RequiredByChild]).
type MissingArgumentError struct {
	Resource string
}

// Error implements the error interface.
func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("resource %q requires an argument", e.Resource)
}

// Unwrap returns [ErrMissingArgument] for errors.Is compatibility.
func (e *MissingArgumentError) Unwrap() error { return ErrMissingArgument }

// NotValidError is returned when an argument is present but one or more
// validators rejected it. Reasons holds every failure message, not just
// the first, in validator registration order.
type NotValidError struct {
	Resource string
	Reasons  []string
}

// Error implements the error interface.
func (e *NotValidError) Error() string {
	return fmt.Sprintf("resource %q argument not valid: %s", e.Resource, strings.Join(e.Reasons, "; "))
}

// Unwrap returns [ErrNotValid] for errors.Is compatibility.
func (e *NotValidError) Unwrap() error { return ErrNotValid }

// AlreadySetError is returned when attaching a parent or child to a
// resource whose corresponding link slot is already populated. Links are
// one-time and irreversible; a second attachment never replaces or merges.
type AlreadySetError struct {
	Resource string
	Relation Relation
}

// Error implements the error interface.
func (e *AlreadySetError) Error() string {
	return fmt.Sprintf("resource %q %s already set", e.Resource, e.Relation)
}

// Unwrap returns [ErrAlreadySet] for errors.Is compatibility.
func (e *AlreadySetError) Unwrap() error { return ErrAlreadySet }
