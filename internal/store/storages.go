// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/models"
)

// sqliteExtensions lists the file extensions that select the SQLite
// encoding in auto mode.
var sqliteExtensions = []string{".db", ".sqlite", ".sqlite3"}

// snapshotStores dispatches every call to the JSON or SQLite store. With a
// fixed format every path uses that encoding; in auto mode the path
// extension decides.
type snapshotStores struct {
	format string
	json   SnapshotStore
	sqlite SnapshotStore
}

// NewSnapshotStore builds the snapshot store described by cfg.
// Returns ErrUnknownFormat for an unsupported cfg.Format.
func NewSnapshotStore(cfg config.ClientStorage, log *logger.Logger) (SnapshotStore, error) {
	log.Info().Str("format", cfg.Format).Msg("creating snapshot store...")

	switch cfg.Format {
	case config.FormatAuto, config.FormatJSON, config.FormatSQLite:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}

	return &snapshotStores{
		format: cfg.Format,
		json:   NewJSONSnapshotStore(log),
		sqlite: NewSQLiteSnapshotStore(log),
	}, nil
}

func (s *snapshotStores) Save(ctx context.Context, path string, snapshot models.Snapshot) error {
	return s.pick(path).Save(ctx, path, snapshot)
}

func (s *snapshotStores) Load(ctx context.Context, path string) (models.Snapshot, error) {
	return s.pick(path).Load(ctx, path)
}

func (s *snapshotStores) pick(path string) SnapshotStore {
	switch s.format {
	case config.FormatJSON:
		return s.json
	case config.FormatSQLite:
		return s.sqlite
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range sqliteExtensions {
		if ext == e {
			return s.sqlite
		}
	}
	return s.json
}
