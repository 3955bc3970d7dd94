// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the contact book verbs used by the command
// dispatcher. A ContactService owns one *book.ContactBook and persists it
// through a store.SnapshotStore.
package service

import (
	"context"

	"github.com/MKhiriev/go-contact-book/internal/book"
	"github.com/MKhiriev/go-contact-book/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ContactService defines the operations available to the user on the
// currently held contact book. Names are matched exactly; phones must be
// ten digits and birthdays YYYY-MM-DD, otherwise book.ErrValidation is
// returned.
type ContactService interface {
	// Add creates a contact with one phone and an optional birthday. An
	// existing contact with the same name is replaced.
	Add(ctx context.Context, name, phone string, birthday ...string) error

	// AddPhone appends phone to an existing contact.
	// Returns book.ErrNotFound if the contact does not exist.
	AddPhone(ctx context.Context, name, phone string) error

	// RemovePhone removes every occurrence of phone from the contact.
	RemovePhone(ctx context.Context, name, phone string) error

	// Edit replaces the first occurrence of oldPhone with newPhone.
	// Returns book.ErrNotFound if the contact or oldPhone is missing.
	Edit(ctx context.Context, name, oldPhone, newPhone string) error

	// Change replaces the first phone of the contact with newPhone.
	// Returns ErrNoPhones if the contact has no phones.
	Change(ctx context.Context, name, newPhone string) error

	// GetPhone returns the first phone of the contact.
	GetPhone(ctx context.Context, name string) (string, error)

	// SetBirthday attaches or replaces the birthday of the contact.
	SetBirthday(ctx context.Context, name, date string) error

	// DaysToBirthday returns the days left until the contact's next
	// birthday. Returns ErrNoBirthday if none is set.
	DaysToBirthday(ctx context.Context, name string) (int, error)

	// Delete removes the contact.
	// Returns book.ErrNotFound if the contact does not exist.
	Delete(ctx context.Context, name string) error

	// ListAll returns every contact in book order.
	ListAll(ctx context.Context) []*book.Record

	// Page returns the n-th page (1-based) of size contacts together with
	// the total number of pages. Returns ErrPageOutOfRange for a page that
	// does not exist.
	Page(ctx context.Context, size, n int) ([]*book.Record, int, error)

	// Find returns contacts whose name or phone contains query.
	Find(ctx context.Context, query string) []*book.Record

	// Save writes the book to path, or to the configured snapshot path when
	// path is empty.
	Save(ctx context.Context, path string) (string, error)

	// Load replaces the held book with the one stored at path, or at the
	// configured snapshot path when path is empty. A missing file yields an
	// empty book.
	Load(ctx context.Context, path string) (string, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
