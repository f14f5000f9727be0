// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for requests entering the
// services.
//
// Rules live in `validate` struct tags on the models and are checked with
// go-playground/validator. On top of the builtin tags the package registers:
//   - aitype: the value is one of the four AI request types.
//   - trimmed_required: the string is non-empty after trimming spaces.
//
// Services receive a Validator through their constructors, handlers never
// validate on their own.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named struct fields.
	Validate(context.Context, any, ...string) error
}
