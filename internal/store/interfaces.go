// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists contact book snapshots.
//
// A snapshot is written and read as a whole. Two encodings exist: a JSON
// document and a SQLite database file. Every implementation opens the file,
// fully writes or reads it, and releases it within the single call.
package store

import (
	"context"

	"github.com/MKhiriev/go-contact-book/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SnapshotStore saves and restores whole contact book snapshots.
type SnapshotStore interface {
	// Save writes snapshot to path, replacing any existing file.
	Save(ctx context.Context, path string, snapshot models.Snapshot) error

	// Load reads the snapshot at path. It returns ErrSnapshotNotFound when
	// the file does not exist and an error wrapping ErrCorruptSnapshot when
	// the file exists but does not hold a valid snapshot.
	Load(ctx context.Context, path string) (models.Snapshot, error)
}
