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
	"fmt"
	"strings"
)

// PathComponent composes the resource into its single path segment,
// formatted as "{name}/{argument}" with an empty argument slot when no
// argument is set.
//
// Requirement resolution, in order:
//
//  1. [RequiredByMe] with no argument fails with [MissingArgumentError]
//     naming this resource.
//  2. [RequiredByParent] with no argument fails with
//     [MissingArgumentError] naming the parent, but only if a parent link
//     exists.
//  3. [RequiredByChild] with no argument fails with
//     [MissingArgumentError] naming the child, but only if a child link
//     exists.
//  4. Otherwise the segment is composed. A present argument is first run
//     through every validator; all failure reasons are collected and
//     reported together as [NotValidError]. An absent argument yields an
//     empty slot and validators do not run.
//
// A Parent/Child requirement whose named relative does not exist falls
// through to composition rather than failing.
func (r *Resource[T]) PathComponent() (string, error) {
	switch {
	case r.requiredBy.IsMe() && !r.hasArg:
		return "", &MissingArgumentError{Resource: r.name}
	case r.requiredBy.IsParent() && r.parent != nil && !r.hasArg:
		return "", &MissingArgumentError{Resource: r.parent.name}
	case r.requiredBy.IsChild() && r.child != nil && !r.hasArg:
		return "", &MissingArgumentError{Resource: r.child.name}
	}

	arg := ""
	if r.hasArg {
		var reasons []string
		for _, validate := range r.validators {
			if err := validate(r.arg); err != nil {
				reasons = append(reasons, err.Error())
			}
		}
		if len(reasons) > 0 {
			return "", &NotValidError{Resource: r.name, Reasons: reasons}
		}
		arg = fmt.Sprint(r.arg)
	}
	return r.name + "/" + arg, nil
}

// Compose walks from r forward through child links, composing each node
// with [Resource.PathComponent] and joining the segments with "/". The
// walk never ascends to parents, so calling Compose on a non-root node
// composes only the remainder of the chain.
//
// The first node-level failure aborts the whole composition; no partial
// path is ever returned.
//
// Adjacent empty argument slots produce a literal "//", which is
// collapsed to "/" in a single non-overlapping pass. Three or more
// consecutive empty segments can therefore still leave a "//" in the
// result. Known limitation, kept for compatibility.
func (r *Resource[T]) Compose() (string, error) {
	var parts []string
	for node := r; node != nil; node = node.child {
		part, err := node.PathComponent()
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	return strings.ReplaceAll(strings.Join(parts, "/"), "//", "/"), nil
}
