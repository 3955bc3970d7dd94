// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-contact-book/internal/logger"
)

// uriPathEscaper escapes the characters SQLite treats as URI delimiters
// inside a file: path. SQLite decodes %HH sequences back before opening.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// sqliteDSN builds a file: URI for path so that any legal file name,
// including ones containing '?' or '#', names exactly that file.
func sqliteDSN(path string, readOnly bool) string {
	dsn := "file:" + uriPathEscaper.Replace(path) + "?_foreign_keys=on"
	if readOnly {
		dsn += "&mode=ro"
	}
	return dsn
}

// NewConnectSQLite opens the SQLite database at path. When readOnly is set
// the file is opened with mode=ro and is never created.
func NewConnectSQLite(ctx context.Context, path string, readOnly bool, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", sqliteDSN(path, readOnly))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening database")
		return nil, fmt.Errorf("%w: %w", ErrOpeningFile, err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("%w: %w", ErrOpeningFile, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// classifySQLiteError maps a failed statement against a snapshot file to
// ErrCorruptSnapshot when the file content is at fault (not a database,
// damaged pages, missing tables) and to ErrExecutingQuery otherwise.
func classifySQLiteError(err error) error {
	if isCorruptSQLiteError(err) {
		return fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func isCorruptSQLiteError(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code {
	case sqlite3.ErrNotADB, sqlite3.ErrCorrupt, sqlite3.ErrError, sqlite3.ErrMismatch, sqlite3.ErrFormat:
		return true
	}
	return false
}
