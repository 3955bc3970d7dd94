// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Contact is the persisted form of a single contact book entry.
//
// Phones keep insertion order. Birthday is nil when the contact has no
// birthday; when set it is formatted as YYYY-MM-DD.
type Contact struct {
	// Name is the unique key of the contact inside a book.
	Name string `json:"name" yaml:"name"`

	// Phones is the ordered list of 10-digit phone numbers.
	// Duplicates are allowed.
	Phones []string `json:"phones" yaml:"phones"`

	// Birthday is the optional birthday in YYYY-MM-DD format.
	Birthday *string `json:"birthday,omitempty" yaml:"birthday,omitempty"`
}
