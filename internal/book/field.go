// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package book

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-book/internal/validators"
)

// Field is the capability shared by Name, Phone and Birthday. A field value
// is validated on construction and on every SetValue, so it is never
// observably invalid.
type Field interface {
	Value() string
	String() string
	SetValue(raw string) error
}

var (
	_ Field = (*Name)(nil)
	_ Field = (*Phone)(nil)
	_ Field = (*Birthday)(nil)
)

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// Name is the non-empty display name and unique key of a contact.
type Name struct {
	value string
}

// NewName validates raw and returns it as a Name.
func NewName(raw string) (Name, error) {
	var n Name
	if err := n.SetValue(raw); err != nil {
		return Name{}, err
	}
	return n, nil
}

// SetValue replaces the name. The previous value is kept when raw is invalid.
func (n *Name) SetValue(raw string) error {
	if err := validators.ValidateName(raw); err != nil {
		return validationError(err)
	}
	n.value = raw
	return nil
}

func (n Name) Value() string  { return n.value }
func (n Name) String() string { return n.value }

// Phone is a phone number of exactly ten ASCII digits.
type Phone struct {
	value string
}

// NewPhone validates raw and returns it as a Phone.
func NewPhone(raw string) (Phone, error) {
	var p Phone
	if err := p.SetValue(raw); err != nil {
		return Phone{}, err
	}
	return p, nil
}

// SetValue replaces the number. The previous value is kept when raw is invalid.
func (p *Phone) SetValue(raw string) error {
	if err := validators.ValidatePhone(raw); err != nil {
		return validationError(err)
	}
	p.value = raw
	return nil
}

func (p Phone) Value() string  { return p.value }
func (p Phone) String() string { return p.value }

// Birthday is a calendar date written as YYYY-MM-DD.
type Birthday struct {
	value string
	date  time.Time
}

// NewBirthday validates raw and returns it as a Birthday.
func NewBirthday(raw string) (Birthday, error) {
	var b Birthday
	if err := b.SetValue(raw); err != nil {
		return Birthday{}, err
	}
	return b, nil
}

// SetValue replaces the date. The previous value is kept when raw is invalid.
func (b *Birthday) SetValue(raw string) error {
	date, err := validators.ParseBirthday(raw)
	if err != nil {
		return validationError(err)
	}
	b.value = raw
	b.date = date
	return nil
}

func (b Birthday) Value() string  { return b.value }
func (b Birthday) String() string { return b.value }

// Time returns the date at midnight UTC.
func (b Birthday) Time() time.Time { return b.date }

func (b Birthday) Month() time.Month { return b.date.Month() }
func (b Birthday) Day() int          { return b.date.Day() }
