// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the server boundary.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values. Supports
//     optional field-level scoping for targeted validation.
//   - BlindValidator: structural envelope check. It never decrypts and
//     never inspects content; this package imports no key-handling code.
//
// Validators are injected into services and called with a context, the
// value and optional field names.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
