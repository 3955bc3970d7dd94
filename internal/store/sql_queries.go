// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contact-book/models"
)

var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func insertContactQuery(id string, position int, contact models.Contact) (string, []any, error) {
	return sqlBuilder.
		Insert("contacts").
		Columns("id", "position", "name", "birthday").
		Values(id, position, contact.Name, contact.Birthday).
		ToSql()
}

func insertPhoneQuery(contactID string, position int, phone string) (string, []any, error) {
	return sqlBuilder.
		Insert("phones").
		Columns("contact_id", "position", "phone").
		Values(contactID, position, phone).
		ToSql()
}

func insertMetaQuery(version int, createdAt time.Time) (string, []any, error) {
	return sqlBuilder.
		Insert("snapshot_meta").
		Columns("version", "created_at").
		Values(version, createdAt.UTC().Format(time.RFC3339)).
		ToSql()
}

func selectMetaQuery() (string, []any, error) {
	return sqlBuilder.
		Select("version").
		From("snapshot_meta").
		Limit(1).
		ToSql()
}

func selectContactsQuery() (string, []any, error) {
	return sqlBuilder.
		Select("id", "name", "birthday").
		From("contacts").
		OrderBy("position").
		ToSql()
}

func selectPhonesQuery() (string, []any, error) {
	return sqlBuilder.
		Select("contact_id", "phone").
		From("phones").
		OrderBy("contact_id", "position").
		ToSql()
}
