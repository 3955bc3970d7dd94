// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName          = errors.New("name must not be empty")
	ErrInvalidPhone       = errors.New("phone must be exactly 10 digits")
	ErrInvalidBirthday    = errors.New("birthday must be a real date in YYYY-MM-DD format")
	ErrInvalidVersion     = errors.New("unsupported snapshot version")
	ErrInvalidContactList = errors.New("invalid contact list")
)
