// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SnapshotVersion is the current version of the snapshot document layout.
const SnapshotVersion = 1

// Snapshot is a full, self-describing copy of a contact book.
// Contacts are stored in book iteration order.
type Snapshot struct {
	Version  int       `json:"version"`
	Contacts []Contact `json:"contacts"`
}
