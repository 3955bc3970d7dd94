// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// validate checks the enumerated values of the merged [StructuredConfig].
// Empty values are allowed here; they are checked on the client view.
func (cfg *StructuredConfig) validate() error {
	if f := cfg.Storage.Snapshot.Format; f != "" && !slices.Contains([]string{FormatAuto, FormatJSON, FormatSQLite}, f) {
		return fmt.Errorf("%w: unknown snapshot format %q", ErrInvalidStorageConfigs, f)
	}

	if m := cfg.UI.Mode; m != "" && !slices.Contains([]string{UIModeAuto, UIModeTUI, UIModePlain}, m) {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidUIConfigs, m)
	}

	if cfg.App.PageSize < 0 {
		return fmt.Errorf("%w: page size must be positive", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.SnapshotPath == "" || cfg.Storage.Format == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.PageSize <= 0 || cfg.App.Name == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Logger.File == "" {
		return ErrInvalidLoggerConfigs
	}
	if _, err := zerolog.ParseLevel(cfg.Logger.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLoggerConfigs, err)
	}

	if cfg.UI.Mode == "" {
		return ErrInvalidUIConfigs
	}

	return nil
}
