// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/utils"
	"github.com/MKhiriev/go-contact-book/internal/validators"
	"github.com/MKhiriev/go-contact-book/models"
)

// sqliteSnapshotStore keeps a snapshot as a self-contained SQLite database
// file. Contacts are rows keyed by a generated id; their position column
// preserves book order, and phones keep their own position per contact.
type sqliteSnapshotStore struct {
	validator validators.Validator
	ids       utils.IDGenerator
	logger    *logger.Logger
	now       func() time.Time
}

// NewSQLiteSnapshotStore constructs a [SnapshotStore] writing SQLite files.
func NewSQLiteSnapshotStore(log *logger.Logger) SnapshotStore {
	return &sqliteSnapshotStore{
		validator: validators.NewContactValidator(),
		ids:       utils.NewUUIDGenerator(),
		logger:    log,
		now:       time.Now,
	}
}

// Save builds the database in a temporary file next to path and renames it
// over path after the transaction commits.
func (s *sqliteSnapshotStore) Save(ctx context.Context, path string, snapshot models.Snapshot) (err error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create snapshot dir: %w", ErrOpeningFile, err)
		}
	}

	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+"."+s.ids.Generate()+".tmp")
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
			_ = os.Remove(tmpPath + "-journal")
			s.logger.Err(err).
				Str("func", "sqliteSnapshotStore.Save").
				Str("path", path).
				Msg("failed to write snapshot")
		}
	}()

	db, err := NewConnectSQLite(ctx, tmpPath, false, s.logger)
	if err != nil {
		return err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	if err = s.writeSnapshot(ctx, db.DB, snapshot); err != nil {
		_ = db.Close()
		return err
	}

	if err = db.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	if err = os.Chmod(tmpPath, 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	s.logger.Debug().
		Str("func", "sqliteSnapshotStore.Save").
		Str("path", path).
		Int("contacts", len(snapshot.Contacts)).
		Msg("snapshot saved")
	return nil
}

func (s *sqliteSnapshotStore) Load(ctx context.Context, path string) (models.Snapshot, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Snapshot{}, ErrSnapshotNotFound
		}
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrOpeningFile, err)
	}

	db, err := NewConnectSQLite(ctx, path, true, s.logger)
	if err != nil {
		if isCorruptSQLiteError(err) {
			return models.Snapshot{}, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
		}
		return models.Snapshot{}, err
	}
	defer db.Close()

	snapshot, err := s.readSnapshot(ctx, db.DB)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteSnapshotStore.Load").
			Str("path", path).
			Msg("failed to read snapshot")
		return models.Snapshot{}, err
	}

	if err = checkSnapshot(ctx, s.validator, snapshot); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteSnapshotStore.Load").
			Str("path", path).
			Msg("snapshot failed validation")
		return models.Snapshot{}, err
	}

	return snapshot, nil
}

// writeSnapshot inserts every contact and phone inside one transaction.
func (s *sqliteSnapshotStore) writeSnapshot(ctx context.Context, db *sql.DB, snapshot models.Snapshot) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %w", ErrExecutingQuery, err)
	}
	defer tx.Rollback()

	exec := func(query string, args []any, buildErr error) error {
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil
	}

	if err = exec(insertMetaQuery(snapshot.Version, s.now())); err != nil {
		return err
	}

	for i, contact := range snapshot.Contacts {
		id := s.ids.Generate()
		if err = exec(insertContactQuery(id, i, contact)); err != nil {
			return fmt.Errorf("save contact %q: %w", contact.Name, err)
		}
		for j, phone := range contact.Phones {
			if err = exec(insertPhoneQuery(id, j, phone)); err != nil {
				return fmt.Errorf("save phone of contact %q: %w", contact.Name, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrExecutingQuery, err)
	}
	return nil
}

// readSnapshot rebuilds a snapshot from the tables written by writeSnapshot.
func (s *sqliteSnapshotStore) readSnapshot(ctx context.Context, db *sql.DB) (models.Snapshot, error) {
	query, args, err := selectMetaQuery()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	var version int
	if err = db.QueryRowContext(ctx, query, args...).Scan(&version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Snapshot{}, fmt.Errorf("%w: no snapshot metadata", ErrCorruptSnapshot)
		}
		return models.Snapshot{}, classifySQLiteError(err)
	}

	phones, err := s.readPhones(ctx, db)
	if err != nil {
		return models.Snapshot{}, err
	}

	query, args, err = selectContactsQuery()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return models.Snapshot{}, classifySQLiteError(err)
	}
	defer rows.Close()

	snapshot := models.Snapshot{Version: version, Contacts: []models.Contact{}}
	for rows.Next() {
		var (
			id       string
			contact  models.Contact
			birthday sql.NullString
		)
		if err = rows.Scan(&id, &contact.Name, &birthday); err != nil {
			return models.Snapshot{}, fmt.Errorf("%w: scan contact row: %w", ErrCorruptSnapshot, err)
		}
		if birthday.Valid {
			contact.Birthday = &birthday.String
		}
		contact.Phones = phones[id]
		if contact.Phones == nil {
			contact.Phones = []string{}
		}
		snapshot.Contacts = append(snapshot.Contacts, contact)
	}
	if err = rows.Err(); err != nil {
		return models.Snapshot{}, classifySQLiteError(err)
	}

	return snapshot, nil
}

func (s *sqliteSnapshotStore) readPhones(ctx context.Context, db *sql.DB) (map[string][]string, error) {
	query, args, err := selectPhonesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classifySQLiteError(err)
	}
	defer rows.Close()

	phones := make(map[string][]string)
	for rows.Next() {
		var contactID, phone string
		if err = rows.Scan(&contactID, &phone); err != nil {
			return nil, fmt.Errorf("%w: scan phone row: %w", ErrCorruptSnapshot, err)
		}
		phones[contactID] = append(phones[contactID], phone)
	}
	if err = rows.Err(); err != nil {
		return nil, classifySQLiteError(err)
	}

	return phones, nil
}
