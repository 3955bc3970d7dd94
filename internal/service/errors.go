// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-book/internal/book"
)

var (
	// ErrContactNotFound also matches book.ErrNotFound.
	ErrContactNotFound = fmt.Errorf("contact %w", book.ErrNotFound)

	ErrNoPhones       = errors.New("contact has no phones")
	ErrNoBirthday     = errors.New("contact has no birthday")
	ErrPageOutOfRange = errors.New("page out of range")
	ErrNoSnapshotPath = errors.New("no snapshot path specified")
)
