// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package book

import "errors"

// Error kinds reported by the contact book. Validation failures also wrap
// the specific validators sentinel (for example validators.ErrInvalidPhone),
// so callers may match either one.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrIO          = errors.New("snapshot i/o failed")
	ErrCorruptData = errors.New("snapshot data is corrupt")
)
