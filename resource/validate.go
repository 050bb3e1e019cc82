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
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator is a pure predicate over a resource argument. A nil return
// means the argument passed; a non-nil error's text is collected as the
// failure reason.
//
// Validators must be side-effect free: they run synchronously during
// composition and may run more than once for the same value (composition
// is repeatable). This is assumed, not enforced.
type Validator[T any] func(T) error

// tagValidator is the shared go-playground/validator instance backing
// [Tag]. Initialized lazily; validator.Validate is safe for concurrent
// use, so one instance serves all resources.
var (
	tagValidator     *validator.Validate
	tagValidatorOnce sync.Once
)

// Tag adapts a go-playground/validator tag expression into a
// [Validator]. The full tag syntax is supported, including parameters
// and comma-separated conjunctions.
//
// Example:
//
//	id := resource.New[string]("users").
//	    WithArgument(input).
//	    WithValidator(resource.Tag[string]("uuid4"))
//
//	page := resource.New[int]("page").
//	    WithArgument(n).
//	    WithValidator(resource.Tag[int]("gte=1,lte=500"))
func Tag[T any](tag string) Validator[T] {
	return func(value T) error {
		tagValidatorOnce.Do(func() {
			tagValidator = validator.New(validator.WithRequiredStructEnabled())
		})
		if err := tagValidator.Var(value, tag); err != nil {
			return fmt.Errorf("must satisfy %q", tag)
		}
		return nil
	}
}

// Not inverts a validator: it fails with the given reason when the
// wrapped validator passes, and passes when it fails. Useful for deny
// rules expressed with tag validators.
func Not[T any](v Validator[T], reason string) Validator[T] {
	return func(value T) error {
		if err := v(value); err == nil {
			return errors.New(reason)
		}
		return nil
	}
}
