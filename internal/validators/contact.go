// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-book/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the contact name.
	FieldName = "name"

	// FieldPhones targets every phone of a contact.
	FieldPhones = "phones"

	// FieldBirthday targets the optional contact birthday.
	FieldBirthday = "birthday"

	// FieldVersion targets the snapshot layout version.
	FieldVersion = "version"

	// FieldContacts targets every contact of a snapshot.
	FieldContacts = "contacts"
)

// ContactValidator implements [Validator] for models.Contact and
// models.Snapshot, in both value and pointer form.
type ContactValidator struct {
}

// NewContactValidator constructs a new ContactValidator
// and returns it as the Validator interface.
func NewContactValidator() Validator {
	return &ContactValidator{}
}

// Validate dispatches validation by the dynamic type of obj.
// Returns ErrUnsupportedType if obj is not a contact or snapshot.
func (v *ContactValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Contact:
		return v.validateContact(ctx, value, fields...)
	case *models.Contact:
		return v.validateContact(ctx, *value, fields...)

	case models.Snapshot:
		return v.validateSnapshot(ctx, value, fields...)
	case *models.Snapshot:
		return v.validateSnapshot(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContactValidator) validateContact(ctx context.Context, contact models.Contact, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPhones, FieldBirthday}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := ValidateName(contact.Name); err != nil {
				return err
			}
		case FieldPhones:
			for i, phone := range contact.Phones {
				if err := ValidatePhone(phone); err != nil {
					return fmt.Errorf("phone at index %d: %w", i, err)
				}
			}
		case FieldBirthday:
			if contact.Birthday != nil {
				if err := ValidateBirthday(*contact.Birthday); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContactValidator) validateSnapshot(ctx context.Context, snapshot models.Snapshot, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVersion, FieldContacts}
	}

	for _, f := range fields {
		switch f {
		case FieldVersion:
			if snapshot.Version != models.SnapshotVersion {
				return ErrInvalidVersion
			}
		case FieldContacts:
			for i, contact := range snapshot.Contacts {
				if err := v.validateContact(ctx, contact); err != nil {
					return fmt.Errorf("%w: contact at index %d: %w", ErrInvalidContactList, i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
