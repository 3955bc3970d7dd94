// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/migrations"
)

// DB wraps a connection to one SQLite snapshot file.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the snapshot schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
