// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate].
var (
	// ErrInvalidStorageConfigs indicates invalid snapshot settings
	// (for example, empty path or unknown format).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, non-positive page size).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLoggerConfigs indicates an unknown log level or empty log file.
	ErrInvalidLoggerConfigs = errors.New("invalid logger configuration")
	// ErrInvalidUIConfigs indicates an unknown UI mode.
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
)
