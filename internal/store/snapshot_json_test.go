// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/models"
)

func TestJSONSnapshotStore_RoundTrip(t *testing.T) {
	s := NewJSONSnapshotStore(logger.Nop())
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "book.json")

	want := sampleSnapshot()
	require.NoError(t, s.Save(ctx, path, want))

	got, err := s.Load(ctx, path)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONSnapshotStore_SaveOverwrites(t *testing.T) {
	s := NewJSONSnapshotStore(logger.Nop())
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "book.json")

	require.NoError(t, s.Save(ctx, path, sampleSnapshot()))
	require.NoError(t, s.Save(ctx, path, models.Snapshot{Version: models.SnapshotVersion}))

	got, err := s.Load(ctx, path)
	require.NoError(t, err)
	assert.Empty(t, got.Contacts)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestJSONSnapshotStore_SaveCreatesParentDir(t *testing.T) {
	s := NewJSONSnapshotStore(logger.Nop())
	path := filepath.Join(t.TempDir(), "nested", "dir", "book.json")

	require.NoError(t, s.Save(context.Background(), path, sampleSnapshot()))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestJSONSnapshotStore_SaveIntoFileAsDir(t *testing.T) {
	s := NewJSONSnapshotStore(logger.Nop())
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := s.Save(context.Background(), filepath.Join(blocker, "book.json"), sampleSnapshot())
	require.ErrorIs(t, err, ErrOpeningFile)
}

func TestJSONSnapshotStore_LoadMissing(t *testing.T) {
	s := NewJSONSnapshotStore(logger.Nop())

	_, err := s.Load(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	require.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestJSONSnapshotStore_LoadCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"garbage bytes", "\x00\x01\x02 definitely not json"},
		{"empty file", ""},
		{"wrong shape", `{"version": 1, "contacts": {"John": "1234567890"}}`},
		{"unknown field", `{"version": 1, "contacts": [], "owner": "me"}`},
		{"trailing data", `{"version": 1, "contacts": []} {}`},
		{"invalid phone", `{"version": 1, "contacts": [{"name": "John", "phones": ["123"]}]}`},
		{"invalid birthday", `{"version": 1, "contacts": [{"name": "John", "phones": [], "birthday": "1990-02-31"}]}`},
		{"empty name", `{"version": 1, "contacts": [{"name": "", "phones": []}]}`},
		{"wrong version", `{"version": 7, "contacts": []}`},
	}

	s := NewJSONSnapshotStore(logger.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "book.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := s.Load(context.Background(), path)
			require.ErrorIs(t, err, ErrCorruptSnapshot)
		})
	}
}
