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

import "slices"

// Resource is a single named component of a URI path, generic over the
// type of its optional argument. Argument values are embedded in path
// segments via fmt.Sprint, so any type with a useful string form works.
//
// A resource can be linked to at most one parent and at most one child,
// forming a simple chain (not a general tree). Linking is copy-on-link:
// [Resource.WithChild] and [Resource.WithParent] never mutate their
// operands, they return a new composite value built from deep copies.
// Handles held before an attach therefore stay unlinked, and cycles are
// unrepresentable.
//
// Example:
//
//	users := resource.New[int]("users").
//	    WithRequirement(resource.RequiredByMe).
//	    WithArgument(42)
//	orders := resource.New[int]("orders")
//
//	chain, err := users.WithChild(orders)
//	if err != nil {
//	    return err
//	}
//	path, err := chain.Compose() // "users/42/orders/"
type Resource[T any] struct {
	name       string
	arg        T
	hasArg     bool
	requiredBy Requirement
	validators []Validator[T]
	weight     float64
	parent     *Resource[T]
	child      *Resource[T]
}

// New creates a resource with the given name. The fresh resource is both
// root and tail, carries no argument, requires none, and has weight 0.
//
// The name is used verbatim as the path segment and in error messages.
func New[T any](name string) *Resource[T] {
	return &Resource[T]{name: name}
}

// clone deep-copies the resource, including both link chains and the
// validator list. Used by the copy-on-link attach operations.
func (r *Resource[T]) clone() *Resource[T] {
	if r == nil {
		return nil
	}
	c := *r
	c.validators = slices.Clone(r.validators)
	c.parent = r.parent.clone()
	c.child = r.child.clone()
	return &c
}

// Name returns the resource's immutable name.
func (r *Resource[T]) Name() string { return r.name }

// IsRoot reports whether the resource has no parent link.
func (r *Resource[T]) IsRoot() bool { return r.parent == nil }

// IsChild reports whether the resource is linked under a parent.
func (r *Resource[T]) IsChild() bool { return r.parent != nil }

// IsTail reports whether the resource has no child link. A freshly
// constructed resource is both root and tail.
func (r *Resource[T]) IsTail() bool { return r.child == nil }

// Argument returns the resource's argument and whether one is set.
func (r *Resource[T]) Argument() (T, bool) { return r.arg, r.hasArg }

// RequiredBy returns the resource's argument-requirement policy.
func (r *Resource[T]) RequiredBy() Requirement { return r.requiredBy }

// Weight returns the ordering weight. The resource does not interpret it;
// consumers (the route builder) use it to order sibling segments.
func (r *Resource[T]) Weight() float64 { return r.weight }

// Parent returns the linked parent copy, or nil for a root. The returned
// value is for read-only navigation; mutating it does not affect r.
func (r *Resource[T]) Parent() *Resource[T] { return r.parent }

// Child returns the linked child copy, or nil for a tail. The returned
// value is for read-only navigation; mutating it does not affect r.
func (r *Resource[T]) Child() *Resource[T] { return r.child }

// WithArgument sets the resource's argument and returns the receiver for
// chaining. Configure resources before linking them: links hold copies,
// so later mutation of an original is not seen by composites.
func (r *Resource[T]) WithArgument(arg T) *Resource[T] {
	r.arg = arg
	r.hasArg = true
	return r
}

// WithRequirement sets the argument-requirement policy and returns the
// receiver for chaining.
func (r *Resource[T]) WithRequirement(req Requirement) *Resource[T] {
	r.requiredBy = req
	return r
}

// WithWeight sets the ordering weight and returns the receiver for
// chaining.
func (r *Resource[T]) WithWeight(weight float64) *Resource[T] {
	r.weight = weight
	return r
}

// WithValidator appends validators to the resource's validator chain and
// returns the receiver for chaining. Validators run in registration order
// during composition, only when an argument is present, and all failures
// are collected (see [NotValidError]).
func (r *Resource[T]) WithValidator(validators ...Validator[T]) *Resource[T] {
	r.validators = append(r.validators, validators...)
	return r
}

// WithChild attaches child under r and returns the merged composite.
// It fails with [AlreadySetError] if r already has a child, or if child
// already has a parent.
//
// Neither r nor child is mutated: the composite is built from deep
// copies, with the child copy's parent link pointing back at the r copy.
// Attaching is one-time per value; the composite's slots cannot be reset.
func (r *Resource[T]) WithChild(child *Resource[T]) (*Resource[T], error) {
	if r.child != nil {
		return nil, &AlreadySetError{Resource: r.name, Relation: RelationChild}
	}
	merged := r.clone()
	linked, err := child.WithParent(merged)
	if err != nil {
		return nil, err
	}
	merged.child = linked
	return merged, nil
}

// WithParent attaches parent above r and returns the merged composite.
// It fails with [AlreadySetError] if r already has a parent.
//
// Like [Resource.WithChild], the operation is copy-on-link: r is not
// mutated and the composite holds a deep copy of parent.
func (r *Resource[T]) WithParent(parent *Resource[T]) (*Resource[T], error) {
	if r.parent != nil {
		return nil, &AlreadySetError{Resource: r.name, Relation: RelationParent}
	}
	merged := r.clone()
	merged.parent = parent.clone()
	return merged, nil
}
