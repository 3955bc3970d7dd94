// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by snapshot stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSnapshotNotFound is returned by Load when no file exists at the
	// requested path.
	ErrSnapshotNotFound = errors.New("snapshot file not found")

	// ErrCorruptSnapshot is returned by Load when the file exists but its
	// content cannot be decoded into a valid snapshot.
	ErrCorruptSnapshot = errors.New("snapshot file is corrupt")

	// ErrUnknownFormat is returned when a snapshot format name is not
	// supported.
	ErrUnknownFormat = errors.New("unknown snapshot format")
)

// Low-level failures. Load and Save wrap these together with the
// underlying os or database error.
var (
	// ErrOpeningFile is returned when a snapshot file cannot be opened or
	// created.
	ErrOpeningFile = errors.New("failed to open snapshot file")

	// ErrWritingFile is returned when writing, syncing or renaming the
	// snapshot file fails.
	ErrWritingFile = errors.New("failed to write snapshot file")

	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement against the snapshot
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
