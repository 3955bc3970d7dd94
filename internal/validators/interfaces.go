// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the format rules for contact book input and
// the structural validation applied to persisted snapshots.
//
// Core concepts:
//   - Field rules: ValidateName, ValidatePhone and ValidateBirthday check a
//     single raw value and are used by the book field types on every
//     construction and mutation.
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
