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

// Requirement declares whose responsibility it is for a resource's
// argument to be populated before composition.
//
// The zero value is [RequiredByNone]: the argument is always optional and
// an absent argument composes as an empty path segment.
type Requirement int

const (
	// RequiredByNone means the argument is never required.
	RequiredByNone Requirement = iota

	// RequiredByMe means the resource itself requires its argument to be
	// set before it can be composed.
	RequiredByMe

	// RequiredByParent means the parent resource requires this resource's
	// argument. Composition fails only if a parent link actually exists.
	RequiredByParent

	// RequiredByChild means the child resource requires this resource's
	// argument. Composition fails only if a child link actually exists.
	RequiredByChild
)

// IsNone reports whether no party requires the argument.
func (q Requirement) IsNone() bool { return q == RequiredByNone }

// IsMe reports whether the resource itself requires the argument.
func (q Requirement) IsMe() bool { return q == RequiredByMe }

// IsParent reports whether the parent requires the argument.
func (q Requirement) IsParent() bool { return q == RequiredByParent }

// IsChild reports whether the child requires the argument.
func (q Requirement) IsChild() bool { return q == RequiredByChild }

// String returns a stable name for the requirement, suitable for logs and
// diagnostics.
func (q Requirement) String() string {
	switch q {
	case RequiredByMe:
		return "me"
	case RequiredByParent:
		return "parent"
	case RequiredByChild:
		return "child"
	default:
		return "none"
	}
}
