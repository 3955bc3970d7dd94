// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/validators"
	"github.com/MKhiriev/go-contact-book/models"
)

// jsonSnapshotStore keeps a snapshot as one indented JSON document:
//
//	{"version": 1, "contacts": [{"name": "...", "phones": ["..."], "birthday": "..."}]}
type jsonSnapshotStore struct {
	validator validators.Validator
	logger    *logger.Logger
}

// NewJSONSnapshotStore constructs a [SnapshotStore] writing JSON documents.
func NewJSONSnapshotStore(log *logger.Logger) SnapshotStore {
	return &jsonSnapshotStore{
		validator: validators.NewContactValidator(),
		logger:    log,
	}
}

func (s *jsonSnapshotStore) Save(ctx context.Context, path string, snapshot models.Snapshot) error {
	if snapshot.Contacts == nil {
		snapshot.Contacts = []models.Contact{}
	}

	err := writeFileAtomic(path, func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snapshot); err != nil {
			return fmt.Errorf("%w: encode snapshot: %w", ErrWritingFile, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Err(err).
			Str("func", "jsonSnapshotStore.Save").
			Str("path", path).
			Msg("failed to write snapshot")
		return err
	}

	s.logger.Debug().
		Str("func", "jsonSnapshotStore.Save").
		Str("path", path).
		Int("contacts", len(snapshot.Contacts)).
		Msg("snapshot saved")
	return nil
}

func (s *jsonSnapshotStore) Load(ctx context.Context, path string) (models.Snapshot, error) {
	var snapshot models.Snapshot

	err := readFile(path, func(r io.Reader) error {
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&snapshot); err != nil {
			return fmt.Errorf("%w: decode: %w", ErrCorruptSnapshot, err)
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: trailing data after document", ErrCorruptSnapshot)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrSnapshotNotFound) {
			s.logger.Err(err).
				Str("func", "jsonSnapshotStore.Load").
				Str("path", path).
				Msg("failed to read snapshot")
		}
		return models.Snapshot{}, err
	}

	if err = checkSnapshot(ctx, s.validator, snapshot); err != nil {
		s.logger.Err(err).
			Str("func", "jsonSnapshotStore.Load").
			Str("path", path).
			Msg("snapshot failed validation")
		return models.Snapshot{}, err
	}

	return snapshot, nil
}

// checkSnapshot runs the structural validation shared by all stores.
func checkSnapshot(ctx context.Context, v validators.Validator, snapshot models.Snapshot) error {
	if err := v.Validate(ctx, snapshot); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	return nil
}
